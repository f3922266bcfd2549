package session

// DataUsage is the cosmetic streaming quality preference
type DataUsage int

const (
	DataUsageAuto DataUsage = iota
	DataUsageLow
	DataUsageMedium
	DataUsageHigh
)

func (d DataUsage) String() string {
	switch d {
	case DataUsageLow:
		return "Low"
	case DataUsageMedium:
		return "Medium"
	case DataUsageHigh:
		return "High"
	default:
		return "Auto"
	}
}

// Next cycles Low -> Medium -> High -> Auto -> Low
func (d DataUsage) Next() DataUsage {
	switch d {
	case DataUsageLow:
		return DataUsageMedium
	case DataUsageMedium:
		return DataUsageHigh
	case DataUsageHigh:
		return DataUsageAuto
	default:
		return DataUsageLow
	}
}

// Settings are the General tab toggles. They are session-scoped and
// affect nothing outside the settings panel.
type Settings struct {
	DarkMode      bool
	AutoPlay      bool
	Notifications bool
	DataUsage     DataUsage
}

func defaultSettings() Settings {
	return Settings{
		DarkMode:      true,
		AutoPlay:      true,
		Notifications: true,
		DataUsage:     DataUsageAuto,
	}
}

// SettingKey names a boolean General tab toggle
type SettingKey int

const (
	SettingDarkMode SettingKey = iota
	SettingAutoPlay
	SettingNotifications
)
