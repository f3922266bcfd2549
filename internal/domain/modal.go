package domain

// Modal is the single active overlay of a session. The set of
// implementations is closed; exactly one value is active at a time.
type Modal interface {
	isModal()
	Name() string
}

// NoModal means the catalog is showing with no overlay
type NoModal struct{}

// PlayerModal shows the player for a title
type PlayerModal struct {
	Title Title
}

// SettingsModal shows the settings panel
type SettingsModal struct{}

// UpgradeModal shows the premium offer and its provisioning screen
type UpgradeModal struct{}

// AdModal plays an advertisement before opening the player for Title
type AdModal struct {
	Ad    Advertisement
	Title Title
}

func (NoModal) isModal()       {}
func (PlayerModal) isModal()   {}
func (SettingsModal) isModal() {}
func (UpgradeModal) isModal()  {}
func (AdModal) isModal()       {}

func (NoModal) Name() string       { return "none" }
func (PlayerModal) Name() string   { return "player" }
func (SettingsModal) Name() string { return "settings" }
func (UpgradeModal) Name() string  { return "upgrade" }
func (AdModal) Name() string       { return "ad" }
