package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. STREAMVAULT_ADS_TICK_INTERVAL
const envPrefix = "STREAMVAULT"

// Config holds all application configuration
type Config struct {
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	Ads         AdsConfig         `mapstructure:"ads"`
	Upgrade     UpgradeConfig     `mapstructure:"upgrade"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	Player      PlayerConfig      `mapstructure:"player"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// CatalogConfig points at an optional bbolt catalog snapshot
type CatalogConfig struct {
	Path string `mapstructure:"path"` // empty uses the built-in catalog
}

// AdsConfig holds advertisement timing
type AdsConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval"` // wall-clock length of one ad second
}

// UpgradeConfig holds the simulated provisioning latency
type UpgradeConfig struct {
	ProvisioningDelay time.Duration `mapstructure:"provisioning_delay"`
}

// PreferencesConfig seeds new sessions
type PreferencesConfig struct {
	InitialFavorites []int `mapstructure:"initial_favorites"`
}

// PlayerConfig holds the optional external player
type PlayerConfig struct {
	Command   string   `mapstructure:"command"`    // empty disables "open externally"
	Args      []string `mapstructure:"args"`
	StartFlag string   `mapstructure:"start_flag"` // e.g., "--start=" or "--start-time="
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Addr string `mapstructure:"addr"` // empty disables the endpoint
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Ads: AdsConfig{
			TickInterval: time.Second,
		},
		Upgrade: UpgradeConfig{
			ProvisioningDelay: 3 * time.Second,
		},
		Preferences: PreferencesConfig{
			InitialFavorites: []int{1, 2, 3},
		},
		Player: PlayerConfig{
			Args: []string{},
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "streamvault", "streamvault.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "streamvault", "streamvault.log")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "streamvault")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "streamvault")
	}
}

// DefaultCatalogPath returns where `catalog seed` writes by default
func DefaultCatalogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "streamvault", "catalog.db")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "streamvault", "catalog.db")
	}
}

// LoadConfig loads configuration from a .env file, the config file and the
// environment, in increasing precedence. configFile may be empty to search
// the default locations.
func LoadConfig(configFile string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v, DefaultConfig())

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// Environment variable overrides
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("ads.tick_interval", d.Ads.TickInterval)
	v.SetDefault("upgrade.provisioning_delay", d.Upgrade.ProvisioningDelay)
	v.SetDefault("preferences.initial_favorites", d.Preferences.InitialFavorites)
	v.SetDefault("player.command", d.Player.Command)
	v.SetDefault("player.args", d.Player.Args)
	v.SetDefault("player.start_flag", d.Player.StartFlag)
	v.SetDefault("metrics.addr", d.Metrics.Addr)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.level", d.Logging.Level)
}

// Validate rejects timings the flows cannot run with
func (c *Config) Validate() error {
	if c.Ads.TickInterval <= 0 {
		return fmt.Errorf("ads.tick_interval must be positive, got %s", c.Ads.TickInterval)
	}
	if c.Upgrade.ProvisioningDelay < 0 {
		return fmt.Errorf("upgrade.provisioning_delay must not be negative, got %s", c.Upgrade.ProvisioningDelay)
	}
	return nil
}
