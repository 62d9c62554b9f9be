package internal

import (
	"log/slog"
	"math/rand/v2"

	"github.com/xob0t/fixturegen/pkg/render"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config   *Config
	renderer render.TextRenderer
	logger   *slog.Logger
	rng      *rand.Rand
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithRenderer replaces the font loaded from the configuration.
func WithRenderer(r render.TextRenderer) Option {
	return func(a *application) {
		a.renderer = r
	}
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(l *slog.Logger) Option {
	return func(a *application) {
		a.logger = l
	}
}

// WithRand replaces the seeded random source.
func WithRand(rng *rand.Rand) Option {
	return func(a *application) {
		a.rng = rng
	}
}
