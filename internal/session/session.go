// Package session owns the signed-in user's state: tier, query, active
// modal, preference sets, and the timer-driven flows hanging off the modal.
// A Session is driven by a single event loop and is not safe for concurrent
// use; scheduled callbacks must be dispatched on that same loop.
package session

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/streamvault/internal/billing"
	"github.com/mmcdole/streamvault/internal/catalog"
	"github.com/mmcdole/streamvault/internal/domain"
	"github.com/mmcdole/streamvault/internal/metrics"
	"github.com/mmcdole/streamvault/internal/playback"
	"github.com/mmcdole/streamvault/internal/search"
	"github.com/patrickmn/go-cache"
)

const (
	viewCacheTTL     = 5 * time.Minute
	viewCacheCleanup = 10 * time.Minute
)

// launcher opens a title outside the terminal (consumer-defined interface)
type launcher interface {
	Launch(url string, startOffset time.Duration) error
}

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	Scheduler          domain.Scheduler
	Picker             catalog.Picker
	Logger             *slog.Logger
	Metrics            *metrics.Recorder
	Launcher           launcher
	AdTickInterval     time.Duration
	PlayerTickInterval time.Duration
	ProvisioningDelay  time.Duration
	InitialFavorites   []domain.TitleID
}

// globalPicker draws from the math/rand/v2 global source
type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.Intn(n) }

// Session is one signed-in user's state
type Session struct {
	id      string
	email   string
	catalog *catalog.Catalog
	opts    Options
	logger  *slog.Logger
	metrics *metrics.Recorder

	tier     domain.Tier
	query    string
	prefs    *Preferences
	settings Settings
	modal    modalCoordinator

	ad      *playback.AdFlow
	upgrade *billing.UpgradeFlow
	player  *playback.Player

	views  *cache.Cache
	closed bool
}

// New starts a basic-tier session with an empty query and no modal
func New(c *catalog.Catalog, email string, opts Options) *Session {
	if opts.Scheduler == nil {
		panic("session: Options.Scheduler is required")
	}
	if opts.Picker == nil {
		opts.Picker = globalPicker{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.AdTickInterval <= 0 {
		opts.AdTickInterval = time.Second
	}
	if opts.PlayerTickInterval <= 0 {
		opts.PlayerTickInterval = time.Second
	}
	if opts.ProvisioningDelay <= 0 {
		opts.ProvisioningDelay = billing.DefaultProvisioningDelay
	}

	id := uuid.NewString()
	s := &Session{
		id:       id,
		email:    email,
		catalog:  c,
		opts:     opts,
		logger:   opts.Logger.With("session", id),
		metrics:  opts.Metrics,
		tier:     domain.TierBasic,
		settings: defaultSettings(),
		views:    cache.New(viewCacheTTL, viewCacheCleanup),
	}
	s.prefs = NewPreferences(func(id domain.TitleID) bool {
		_, ok := c.Title(id)
		return ok
	}, opts.InitialFavorites)
	s.modal = newModalCoordinator(s.leaveModal)
	return s
}

// ID returns the session's unique id
func (s *Session) ID() string { return s.id }

// Email returns the address the session signed in with
func (s *Session) Email() string { return s.email }

// Tier returns the subscription tier
func (s *Session) Tier() domain.Tier { return s.tier }

// Plan returns the plan for the current tier
func (s *Session) Plan() (domain.Plan, bool) { return s.catalog.Plan(s.tier) }

// Catalog returns the shared catalog
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Query returns the current search query
func (s *Session) Query() string { return s.query }

// Modal returns the active modal
func (s *Session) Modal() domain.Modal { return s.modal.active }

// Preferences returns the favorite/blocked sets
func (s *Session) Preferences() *Preferences { return s.prefs }

// Settings returns the General tab toggles
func (s *Session) Settings() Settings { return s.settings }

// Ad returns the running ad flow, nil when no ad is on screen
func (s *Session) Ad() *playback.AdFlow { return s.ad }

// Upgrade returns the upgrade flow, nil when the upgrade modal is closed
func (s *Session) Upgrade() *billing.UpgradeFlow { return s.upgrade }

// Player returns the playback clock, nil when the player is closed
func (s *Session) Player() *playback.Player { return s.player }

// Closed reports whether the session has been signed out
func (s *Session) Closed() bool { return s.closed }

// SetSearchQuery replaces the query. Views recompute on next read.
func (s *Session) SetSearchQuery(q string) {
	if s.closed {
		return
	}
	s.query = q
}

// ToggleFavorite flips favorite membership; unknown ids are a no-op
func (s *Session) ToggleFavorite(id domain.TitleID) bool {
	if s.closed {
		return false
	}
	on, ok := s.prefs.ToggleFavorite(id)
	if !ok {
		s.logger.Debug("ignoring favorite toggle for unknown title", "titleID", id)
		return false
	}
	s.metrics.PreferenceToggled("favorite", on)
	return true
}

// ToggleBlocked flips blocked membership; unknown ids are a no-op
func (s *Session) ToggleBlocked(id domain.TitleID) bool {
	if s.closed {
		return false
	}
	on, ok := s.prefs.ToggleBlocked(id)
	if !ok {
		s.logger.Debug("ignoring block toggle for unknown title", "titleID", id)
		return false
	}
	s.metrics.PreferenceToggled("blocked", on)
	return true
}

// Views returns the derived catalog view for the current query and
// preference sets. Results are memoized per (revision, query).
func (s *Session) Views() search.View {
	key := fmt.Sprintf("%d\x00%s", s.prefs.Revision(), s.query)
	if v, ok := s.views.Get(key); ok {
		return v.(search.View)
	}
	v := search.Derive(s.catalog, s.prefs, s.query)
	s.views.SetDefault(key, v)
	return v
}

// Suggestions proposes title names when the current query found nothing
func (s *Session) Suggestions() []string {
	if len(s.Views().Results) > 0 {
		return nil
	}
	return search.Suggest(s.catalog, s.prefs, s.query)
}

// Jump ranks the current search results for the quick-jump palette
func (s *Session) Jump(pattern string) []search.JumpMatch {
	return search.Jump(pattern, s.Views().Results)
}

// Searching reports whether the query is non-blank
func (s *Session) Searching() bool {
	return !search.NewMatcher(s.query).Empty()
}

// Hero returns the featured banner, shown only while the query is empty
func (s *Session) Hero() (domain.TitleView, domain.Featured, bool) {
	f, ok := s.catalog.Featured()
	if !ok || s.Searching() {
		return domain.TitleView{}, domain.Featured{}, false
	}
	return search.Project(f.Title, s.prefs), f, true
}

// RequestPlayback routes a play request through the entitlement gate.
// Premium opens the player at once; basic opens an ad first and the player
// follows when the ad completes or is skipped. Unknown ids return
// ErrTitleNotFound and change nothing.
func (s *Session) RequestPlayback(id domain.TitleID) (domain.PlaybackDecision, error) {
	if s.closed {
		return domain.PlaybackDecision{}, domain.ErrNotSignedIn
	}
	title, err := s.catalog.Lookup(id)
	if err != nil {
		s.logger.Debug("playback requested for unknown title", "titleID", id)
		return domain.PlaybackDecision{}, err
	}

	decision := playback.Decide(s.tier, title)
	s.metrics.PlaybackRequested(decision.Kind.String())
	s.logger.Info("playback requested", "titleID", id, "title", title.Name, "decision", decision.Kind)

	if decision.Kind == domain.PlayDirectly {
		s.openPlayer(title)
		return decision, nil
	}

	ad, ok := s.catalog.PickAd(s.opts.Picker)
	if !ok {
		// Nothing to show; an empty pool behaves like an ad that ended at once.
		s.logger.Warn("ad pool empty, playing without interstitial", "titleID", id)
		s.openPlayer(title)
		return decision, nil
	}

	s.modal.open(domain.AdModal{Ad: ad, Title: title})
	flow, err := playback.StartAd(s.opts.Scheduler, ad, s.opts.AdTickInterval,
		func() { s.finishAd(title, playback.AdCompleted) },
		func() { s.finishAd(title, playback.AdSkipped) },
	)
	if err != nil {
		s.modal.close()
		return domain.PlaybackDecision{}, err
	}
	s.ad = flow
	s.logger.Info("showing advertisement", "adID", ad.ID, "brand", ad.Brand, "duration", ad.DurationSeconds)
	return decision, nil
}

func (s *Session) finishAd(title domain.Title, outcome playback.AdState) {
	s.metrics.AdFinished(outcome.String())
	s.logger.Info("advertisement finished", "outcome", outcome, "titleID", title.ID)
	s.openPlayer(title)
}

func (s *Session) openPlayer(title domain.Title) {
	s.modal.open(domain.PlayerModal{Title: title})
	s.player = playback.StartPlayer(s.opts.Scheduler, title, s.opts.PlayerTickInterval)
}

// SkipAd ends the running ad through its skip path. It is a no-op until
// the skip unlocks.
func (s *Session) SkipAd() bool {
	if s.closed || s.ad == nil {
		return false
	}
	return s.ad.Skip()
}

// OpenSettings shows the settings panel
func (s *Session) OpenSettings() {
	if s.closed {
		return
	}
	if _, open := s.modal.active.(domain.SettingsModal); open {
		return
	}
	s.modal.open(domain.SettingsModal{})
}

// RequestUpgrade offers the premium upgrade. Premium sessions get no
// upgrade affordance and nothing changes.
func (s *Session) RequestUpgrade() bool {
	if s.closed || !playback.OffersUpgrade(s.tier) {
		return false
	}
	if _, open := s.modal.active.(domain.UpgradeModal); open {
		return true
	}
	s.modal.open(domain.UpgradeModal{})
	s.upgrade = billing.NewUpgradeFlow(s.opts.Scheduler, s.opts.ProvisioningDelay, s.activatePremium)
	return true
}

// ConfirmUpgrade starts provisioning from the Offered state
func (s *Session) ConfirmUpgrade() bool {
	if s.closed || s.upgrade == nil {
		return false
	}
	if !s.upgrade.Confirm() {
		return false
	}
	s.logger.Info("provisioning premium", "delay", s.upgrade.Delay())
	return true
}

func (s *Session) activatePremium() {
	s.tier = domain.TierPremium
	s.metrics.UpgradeFinished(billing.Activated.String())
	s.logger.Info("premium activated")
	s.modal.close()
}

// CloseModal returns to no modal, tearing down any flow the modal owned
func (s *Session) CloseModal() {
	if s.closed {
		return
	}
	s.modal.close()
}

// OpenExternally hands the playing title's video URL to the configured
// external player
func (s *Session) OpenExternally() error {
	pm, ok := s.modal.active.(domain.PlayerModal)
	if !ok {
		return domain.ErrNothingPlaying
	}
	if s.opts.Launcher == nil {
		return domain.ErrNoExternalPlayer
	}
	var offset time.Duration
	if s.player != nil {
		offset = s.player.Position()
	}
	s.logger.Info("launching external player", "titleID", pm.Title.ID, "offset", offset)
	return s.opts.Launcher.Launch(pm.Title.VideoURL, offset)
}

// ToggleSetting flips a General tab toggle
func (s *Session) ToggleSetting(key SettingKey) {
	switch key {
	case SettingDarkMode:
		s.settings.DarkMode = !s.settings.DarkMode
	case SettingAutoPlay:
		s.settings.AutoPlay = !s.settings.AutoPlay
	case SettingNotifications:
		s.settings.Notifications = !s.settings.Notifications
	}
}

// CycleDataUsage advances the data usage preference
func (s *Session) CycleDataUsage() {
	s.settings.DataUsage = s.settings.DataUsage.Next()
}

// Close tears down every flow. Nothing scheduled by this session fires
// afterwards and further events are ignored.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.modal.close()
	s.closed = true
	s.views.Flush()
}

// leaveModal tears down the flow owned by the modal being left
func (s *Session) leaveModal(m domain.Modal) {
	switch m.(type) {
	case domain.AdModal:
		if s.ad != nil {
			if s.ad.Stop() {
				s.metrics.AdFinished(playback.AdStopped.String())
				s.logger.Info("advertisement torn down")
			}
			s.ad = nil
		}
	case domain.UpgradeModal:
		if s.upgrade != nil {
			if s.upgrade.Stop() {
				s.metrics.UpgradeFinished(billing.Cancelled.String())
				s.logger.Info("upgrade cancelled during provisioning")
			}
			s.upgrade = nil
		}
	case domain.PlayerModal:
		if s.player != nil {
			s.player.Stop()
			s.player = nil
		}
	}
}
