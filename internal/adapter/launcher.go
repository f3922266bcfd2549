package adapter

import (
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// offsetFlags maps well-known players to their start-position flag
var offsetFlags = map[string]string{
	"mpv":       "--start=",
	"vlc":       "--start-time=",
	"iina":      "--mpv-start=",
	"celluloid": "--mpv-start=",
	"haruna":    "--mpv-start=",
	"ffplay":    "-ss ",
}

// Launcher opens a title's video URL in an external player
type Launcher struct {
	command   string
	args      []string
	startFlag string
	logger    *slog.Logger

	// start runs the command without waiting; swapped in tests
	start func(name string, args ...string) error
}

// NewLauncher returns nil when no command is configured, which disables
// the "open externally" action.
func NewLauncher(cfg PlayerConfig, logger *slog.Logger) *Launcher {
	if cfg.Command == "" {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	flag := cfg.StartFlag
	if flag == "" {
		base := strings.ToLower(filepath.Base(cfg.Command))
		base = strings.TrimSuffix(base, filepath.Ext(base))
		if f, ok := offsetFlags[base]; ok {
			flag = f
			logger.Debug("auto-detected player offset flag", "player", base, "flag", flag)
		}
	}

	return &Launcher{
		command:   cfg.Command,
		args:      append([]string{}, cfg.Args...),
		startFlag: flag,
		logger:    logger,
		start:     startDetached,
	}
}

func startDetached(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Args builds the argument list for url at startOffset
func (l *Launcher) Args(url string, startOffset time.Duration) []string {
	args := append([]string{}, l.args...)

	switch {
	case startOffset <= 0:
	case l.startFlag == "":
		l.logger.Warn("cannot set start offset - unknown player, configure player.start_flag",
			"command", l.command, "offset", startOffset)
	case strings.HasSuffix(l.startFlag, " "):
		// "-ss " takes the value as a separate arg
		args = append(args, strings.TrimSuffix(l.startFlag, " "), fmt.Sprintf("%.0f", startOffset.Seconds()))
	default:
		args = append(args, fmt.Sprintf("%s%.0f", l.startFlag, startOffset.Seconds()))
	}

	return append(args, url)
}

// Launch starts the configured player without waiting for it to exit
func (l *Launcher) Launch(url string, startOffset time.Duration) error {
	args := l.Args(url, startOffset)

	// GUI apps on macOS are often not on PATH
	if runtime.GOOS == "darwin" {
		if _, err := exec.LookPath(l.command); err != nil {
			openArgs := append([]string{"-a", l.command, "--args"}, args...)
			l.logger.Info("launching with open -a", "app", l.command, "args", openArgs)
			return l.start("open", openArgs...)
		}
	}

	l.logger.Info("launching player", "command", l.command, "args", args)
	if err := l.start(l.command, args...); err != nil {
		return fmt.Errorf("launch %s: %w", l.command, err)
	}
	return nil
}
