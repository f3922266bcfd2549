package tui

import (
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/streamvault/internal/billing"
	"github.com/mmcdole/streamvault/internal/catalog"
	"github.com/mmcdole/streamvault/internal/domain"
	"github.com/mmcdole/streamvault/internal/scheduler"
	"github.com/mmcdole/streamvault/internal/session"
)

type fixedPicker int

func (p fixedPicker) IntN(n int) int { return int(p) % n }

// virtualClock stands in for tea.Tick: armed tasks wait until advance
// delivers them as timerFiredMsg
type virtualClock struct {
	now   time.Duration
	armed []armed
}

type armed struct {
	due time.Duration
	id  uint64
}

func (c *virtualClock) arm(p scheduler.Pending) tea.Cmd {
	c.armed = append(c.armed, armed{due: c.now + p.After, id: p.ID})
	return nil
}

// next pops the earliest task due at or before limit
func (c *virtualClock) next(limit time.Duration) (armed, bool) {
	if len(c.armed) == 0 {
		return armed{}, false
	}
	i := 0
	for j, a := range c.armed {
		if a.due < c.armed[i].due {
			i = j
		}
	}
	a := c.armed[i]
	if a.due > limit {
		return armed{}, false
	}
	c.armed = slices.Delete(c.armed, i, i+1)
	return a, true
}

type harness struct {
	t     *testing.T
	clock *virtualClock
	m     Model
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	c, err := catalog.New(catalog.Builtin())
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	timers := scheduler.NewDeferred()
	front := session.NewStorefront(c, session.Options{
		Scheduler:         timers,
		Picker:            fixedPicker(0), // 15s ad, skippable after 5s
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		AdTickInterval:    time.Second,
		ProvisioningDelay: 3 * time.Second,
	})

	h := &harness{t: t, clock: &virtualClock{}}
	h.m = NewModel(front, timers, false, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.m.arm = h.clock.arm
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	next, _ := h.m.Update(msg)
	h.m = next.(Model)
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) press(t tea.KeyType) {
	h.send(tea.KeyMsg{Type: t})
}

// advance delivers every armed task due within d, in due order
func (h *harness) advance(d time.Duration) {
	limit := h.clock.now + d
	for {
		a, ok := h.clock.next(limit)
		if !ok {
			break
		}
		h.clock.now = a.due
		h.send(timerFiredMsg{ID: a.id})
	}
	h.clock.now = limit
}

func (h *harness) signIn() *session.Session {
	h.t.Helper()
	h.typeText("viewer@example.com")
	h.press(tea.KeyEnter)
	s, ok := h.m.Front.Session()
	if !ok || h.m.State != StateBrowsing {
		h.t.Fatalf("sign-in did not reach browsing, state = %d", h.m.State)
	}
	return s
}

func TestSignInRequiresInput(t *testing.T) {
	h := newHarness(t)

	h.press(tea.KeyEnter)
	if h.m.State != StateSignIn || h.m.Front.Authenticated() {
		t.Fatalf("blank sign-in accepted")
	}

	s := h.signIn()
	if s.Email() != "viewer@example.com" {
		t.Errorf("Email() = %q", s.Email())
	}
	if !strings.Contains(h.m.View(), "STREAMVAULT") {
		t.Errorf("browse view missing header")
	}
}

func TestFeaturedPlaybackThroughSkippableAd(t *testing.T) {
	h := newHarness(t)
	s := h.signIn()

	// Row 0 is the hero banner
	h.press(tea.KeyEnter)
	if _, ok := s.Modal().(domain.AdModal); !ok {
		t.Fatalf("Modal() = %s, want ad", s.Modal().Name())
	}

	h.typeText("s")
	if _, ok := s.Modal().(domain.AdModal); !ok {
		t.Fatalf("skip honoured before unlock")
	}
	if !strings.Contains(h.m.StatusMsg, "skip in 5s") {
		t.Errorf("StatusMsg = %q", h.m.StatusMsg)
	}

	h.advance(5 * time.Second)
	if !s.Ad().CanSkip() {
		t.Fatalf("skip not unlocked after 5s")
	}
	h.typeText("s")
	pm, ok := s.Modal().(domain.PlayerModal)
	if !ok {
		t.Fatalf("Modal() = %s, want player", s.Modal().Name())
	}
	if pm.Title.ID != domain.FeaturedTitleID {
		t.Errorf("playing %d, want featured", pm.Title.ID)
	}

	h.advance(3 * time.Second)
	if got := s.Player().Position(); got != 3*time.Second {
		t.Errorf("Position() = %v, want 3s", got)
	}

	h.press(tea.KeyEsc)
	if _, ok := s.Modal().(domain.NoModal); !ok {
		t.Errorf("Modal() = %s, want none", s.Modal().Name())
	}
	if live := h.m.Timers.Live(); live != 0 {
		t.Errorf("Live() = %d after closing the player", live)
	}
}

func TestClosingAdStopsItsTimers(t *testing.T) {
	h := newHarness(t)
	s := h.signIn()

	h.press(tea.KeyEnter)
	h.press(tea.KeyEsc)
	if s.Ad() != nil {
		t.Fatalf("ad flow survived its modal")
	}
	h.advance(time.Minute)
	if _, ok := s.Modal().(domain.NoModal); !ok {
		t.Errorf("stale timer reopened %s", s.Modal().Name())
	}
}

func TestUpgradeProvisionsPremium(t *testing.T) {
	h := newHarness(t)
	s := h.signIn()

	h.typeText("u")
	if _, ok := s.Modal().(domain.UpgradeModal); !ok {
		t.Fatalf("Modal() = %s, want upgrade", s.Modal().Name())
	}
	h.press(tea.KeyEnter)
	if s.Upgrade().State() != billing.Provisioning {
		t.Fatalf("State() = %s, want provisioning", s.Upgrade().State())
	}

	h.advance(3 * time.Second)
	if s.Tier() != domain.TierPremium {
		t.Errorf("Tier() = %s, want premium", s.Tier())
	}
	if _, ok := s.Modal().(domain.NoModal); !ok {
		t.Errorf("Modal() = %s, want none", s.Modal().Name())
	}

	h.typeText("u")
	if _, ok := s.Modal().(domain.NoModal); !ok {
		t.Errorf("premium session offered an upgrade")
	}

	h.press(tea.KeyEnter)
	if _, ok := s.Modal().(domain.PlayerModal); !ok {
		t.Errorf("premium playback opened %s, want player", s.Modal().Name())
	}
}

func TestSearchFiltersAndEscapeClears(t *testing.T) {
	h := newHarness(t)
	s := h.signIn()

	h.typeText("/")
	if h.m.State != StateSearching {
		t.Fatalf("State = %d, want searching", h.m.State)
	}
	h.typeText("dark")
	if s.Query() != "dark" {
		t.Fatalf("Query() = %q, want dark", s.Query())
	}
	h.press(tea.KeyEnter)
	if h.m.State != StateBrowsing || s.Query() != "dark" {
		t.Fatalf("leaving the bar dropped the query")
	}
	if !strings.Contains(h.m.View(), "Search Results for") {
		t.Errorf("results header missing")
	}

	h.press(tea.KeyEsc)
	if s.Query() != "" {
		t.Errorf("Query() = %q after esc", s.Query())
	}
}

func TestSearchShowsSuggestions(t *testing.T) {
	h := newHarness(t)
	h.signIn()

	h.typeText("/")
	h.typeText("inseption")
	if !strings.Contains(h.m.View(), "Did you mean") {
		t.Errorf("no suggestions for a misspelled title")
	}
}

func TestBlockKeepsCursorInRange(t *testing.T) {
	h := newHarness(t)
	s := h.signIn()

	h.press(tea.KeyDown)
	v, ok := h.m.selected(s)
	if !ok {
		t.Fatalf("no selection on first shelf")
	}
	h.typeText("b")
	if !s.Preferences().IsBlocked(v.ID) {
		t.Fatalf("title %d not blocked", v.ID)
	}
	if next, ok := h.m.selected(s); ok && next.ID == v.ID {
		t.Errorf("blocked title still under the cursor")
	}
	for _, id := range s.Views().ResultIDs() {
		if id == v.ID {
			t.Errorf("blocked title %d still visible", id)
		}
	}
}

func TestJumpPlaysSelection(t *testing.T) {
	h := newHarness(t)
	s := h.signIn()

	h.press(tea.KeyCtrlP)
	if h.m.State != StateJumping {
		t.Fatalf("State = %d, want jumping", h.m.State)
	}
	h.typeText("wick")
	h.press(tea.KeyEnter)
	if h.m.State != StateBrowsing {
		t.Errorf("State = %d after selection", h.m.State)
	}
	if s.Modal().Name() == "none" {
		t.Errorf("selection did not request playback")
	}
}

func TestSettingsSignOut(t *testing.T) {
	h := newHarness(t)
	s := h.signIn()

	h.typeText(",")
	if _, ok := s.Modal().(domain.SettingsModal); !ok {
		t.Fatalf("Modal() = %s, want settings", s.Modal().Name())
	}

	// General row 0 flips dark mode
	h.press(tea.KeyEnter)
	if s.Settings().DarkMode {
		t.Errorf("DarkMode still on")
	}

	for i := 0; i < 4; i++ {
		h.press(tea.KeyTab)
	}
	h.press(tea.KeyEnter)
	if h.m.State != StateSignIn || h.m.Front.Authenticated() {
		t.Errorf("sign out did not return to the sign-in form")
	}
	if !s.Closed() {
		t.Errorf("old session not closed")
	}
}
