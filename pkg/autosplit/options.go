package autosplit

import (
	"io"
	"log/slog"
)

// WatchOption configures the streaming watcher using the functional options
// pattern.
type WatchOption func(*watchConfig)

// watchConfig holds internal configuration for the streaming watcher.
type watchConfig struct {
	poll           bool
	includeRawLine bool
	logger         *slog.Logger
}

// defaultWatchConfig returns a watchConfig with sensible defaults.
func defaultWatchConfig() *watchConfig {
	return &watchConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// applyWatchOptions applies functional options to a watchConfig.
func applyWatchOptions(opts []WatchOption) *watchConfig {
	cfg := defaultWatchConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithPoll uses filesystem polling instead of native change notification.
// Useful on filesystems where inotify is unreliable (network mounts, some
// container setups). Default: false.
func WithPoll(poll bool) WatchOption {
	return func(c *watchConfig) {
		c.poll = poll
	}
}

// WithIncludeRawLine includes the matched log line in Event.RawLine.
// Default: false.
func WithIncludeRawLine(include bool) WatchOption {
	return func(c *watchConfig) {
		c.includeRawLine = include
	}
}

// WithLogger sets the slog logger for debug output.
// If nil (default), logging is disabled.
func WithLogger(logger *slog.Logger) WatchOption {
	return func(c *watchConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
