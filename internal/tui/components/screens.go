package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/streamvault/internal/billing"
	"github.com/mmcdole/streamvault/internal/domain"
	"github.com/mmcdole/streamvault/internal/playback"
	"github.com/mmcdole/streamvault/internal/tui/styles"
)

// newBar returns a static progress bar; it is rendered with ViewAs so no
// animation frames are needed.
func newBar(width int) progress.Model {
	bar := progress.New(
		progress.WithSolidFill(string(styles.BrandRed)),
		progress.WithoutPercentage(),
	)
	bar.Width = width
	return bar
}

func place(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// RenderAd draws the advertisement interstitial
func RenderAd(flow *playback.AdFlow, title domain.Title, width, height int) string {
	ad := flow.Ad()
	inner := min(max(width/2, 40), 70)

	var skip string
	switch {
	case flow.CanSkip():
		skip = styles.HighlightStyle.Render("Skip Ad ▸") + styles.DimStyle.Render("  press s")
	case flow.SkipIn() >= 0:
		skip = styles.DimBadgeStyle.Render(fmt.Sprintf("Skip in %ds", flow.SkipIn()))
	default:
		skip = styles.DimBadgeStyle.Render("Ad cannot be skipped")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.DimBadgeStyle.Render("Ad")+" "+styles.DimStyle.Render(fmt.Sprintf("%d:%02d", flow.Remaining()/60, flow.Remaining()%60)),
		"",
		styles.RatingStyle.Render(ad.Brand),
		styles.TitleStyle.Render(ad.Headline),
		styles.SubtitleStyle.Render(styles.WordWrap(ad.Description, inner)),
		"",
		newBar(inner).ViewAs(flow.Progress()),
		"",
		skip,
		"",
		styles.DimStyle.Render("Up next: "+title.Name+"  ·  Go Premium to remove ads (u)"),
	)

	return place(width, height, styles.ModalStyle.Width(inner+4).Render(content))
}

// RenderPlayer draws the simulated player
func RenderPlayer(p *playback.Player, external bool, width, height int) string {
	t := p.Title()
	inner := min(max(width*2/3, 40), 90)

	state := "▶ Playing"
	if p.Paused() {
		state = "❚❚ Paused"
	}
	if p.Finished() {
		state = "■ Finished"
	}

	var frac float64
	runtime := "--:--"
	if p.Runtime() > 0 {
		frac = float64(p.Position()) / float64(p.Runtime())
		runtime = clock(p.Runtime())
	}

	hints := "space: pause  esc: close"
	if external {
		hints = "space: pause  o: open externally  esc: close"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(t.Name),
		styles.DimStyle.Render(fmt.Sprintf("%s  ·  %s  ·  %s", t.Subtitle(), t.Duration, t.GenreList())),
		"",
		styles.SubtitleStyle.Render(styles.WordWrap(t.Description, inner)),
		"",
		styles.AccentStyle.Render(state),
		newBar(inner).ViewAs(frac),
		styles.DimStyle.Render(clock(p.Position())+" / "+runtime),
		"",
		styles.DimStyle.Render(hints),
	)

	return place(width, height, styles.ModalStyle.Width(inner+4).Render(content))
}

// RenderUpgrade draws the premium offer or its provisioning checklist
func RenderUpgrade(flow *billing.UpgradeFlow, premium domain.Plan, now time.Time, width, height int) string {
	inner := min(max(width/2, 40), 70)

	var content string
	if flow.State() == billing.Provisioning {
		elapsed := now.Sub(flow.StartedAt())
		frac := 1.0
		if flow.Delay() > 0 {
			frac = min(float64(elapsed)/float64(flow.Delay()), 1)
		}
		steps := billing.Steps()
		done := int(frac * float64(len(steps)))

		var b strings.Builder
		for i, step := range steps {
			switch {
			case i < done:
				b.WriteString(styles.SuccessStyle.Render("✓ " + step))
			case i == done:
				b.WriteString(styles.TitleStyle.Render("• " + step))
			default:
				b.WriteString(styles.DimStyle.Render("  " + step))
			}
			b.WriteString("\n")
		}

		content = lipgloss.JoinVertical(lipgloss.Left,
			styles.ModalTitleStyle.Render("Setting up Premium"),
			b.String(),
			newBar(inner).ViewAs(frac),
		)
	} else {
		var b strings.Builder
		for _, f := range premium.Features {
			b.WriteString(styles.SubtitleStyle.Render("✓ " + f))
			b.WriteString("\n")
		}
		content = lipgloss.JoinVertical(lipgloss.Left,
			styles.ModalTitleStyle.Render("Go Premium"),
			styles.SubtitleStyle.Render("Watch without interruptions."),
			"",
			b.String(),
			styles.HighlightStyle.Render("enter: upgrade now")+"  "+styles.DimStyle.Render("esc: maybe later"),
		)
	}

	return place(width, height, styles.ModalStyle.Width(inner+4).Render(content))
}

func clock(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
