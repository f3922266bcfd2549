package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/streamvault/internal/adapter"
	"github.com/mmcdole/streamvault/internal/catalog"
	"github.com/mmcdole/streamvault/internal/domain"
	"github.com/mmcdole/streamvault/internal/metrics"
	"github.com/mmcdole/streamvault/internal/scheduler"
	"github.com/mmcdole/streamvault/internal/session"
	"github.com/mmcdole/streamvault/internal/store"
	"github.com/mmcdole/streamvault/internal/tui"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("streamvault needs an interactive terminal")

func runTUI(ctx context.Context, configFile string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Load configuration
	cfg, err := adapter.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting streamvault", "version", Version)

	c, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}

	rec := metrics.New()
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := rec.Serve(ctx, cfg.Metrics.Addr, logger); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	favorites := make([]domain.TitleID, 0, len(cfg.Preferences.InitialFavorites))
	for _, id := range cfg.Preferences.InitialFavorites {
		favorites = append(favorites, domain.TitleID(id))
	}

	timers := scheduler.NewDeferred()
	opts := session.Options{
		Scheduler:         timers,
		Logger:            logger,
		Metrics:           rec,
		AdTickInterval:    cfg.Ads.TickInterval,
		ProvisioningDelay: cfg.Upgrade.ProvisioningDelay,
		InitialFavorites:  favorites,
	}
	// A nil *Launcher must not reach the interface field
	launcher := adapter.NewLauncher(cfg.Player, logger)
	if launcher != nil {
		opts.Launcher = launcher
	}

	front := session.NewStorefront(c, opts)
	model := tui.NewModel(front, timers, launcher != nil, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	if s, ok := front.Session(); ok {
		s.Close()
	}
	logger.Info("shutting down")
	return nil
}

// loadCatalog opens the configured snapshot, or uses the built-in tables
// when no path is set
func loadCatalog(cfg *adapter.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Load(nil, logger)
	}

	st, err := store.NewCatalogStore(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog snapshot: %w", err)
	}
	defer st.Close()

	return catalog.Load(st, logger)
}
