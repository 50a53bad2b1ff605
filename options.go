package slicecube

import "log/slog"

// Option configures Engine behavior.
type Option func(*config)

type config struct {
	logger        *slog.Logger
	turnReduction bool
}

func defaultConfig() *config {
	return &config{
		logger:        slog.Default(),
		turnReduction: false,
	}
}

// WithLogger sets the logger used for per-operation debug output.
// A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTurnReduction enables reducing turn counts modulo 4 before stepping.
// Results are identical either way; enable it when sequences carry large
// turn counts, since each quarter-turn is otherwise applied literally.
func WithTurnReduction(enabled bool) Option {
	return func(c *config) {
		c.turnReduction = enabled
	}
}
