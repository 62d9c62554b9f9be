// Package internal wires configuration, fonts and generators into one run.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/xob0t/fixturegen/pkg/imagegen"
	"github.com/xob0t/fixturegen/pkg/render"
	"github.com/xob0t/fixturegen/pkg/textgen"
)

// Run generates every configured image followed by the text fixture.
// The first failure aborts the run.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := app.logger
	if logger == nil {
		logger = NewLogger(os.Stdout, cfg.App)
	}

	rng := app.rng
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		logger.DebugContext(ctx, "Seeding random source", slog.Uint64("seed", seed))
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	logger.InfoContext(ctx, "Configuration loaded",
		slog.String("output_dir", cfg.Output.Dir),
		slog.String("font_path", cfg.Font.Path),
		slog.Int("images", cfg.Image.Count),
		slog.Int("text_length", cfg.Text.Length),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure output directory exists.
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	text := app.renderer
	if text == nil {
		fm, err := loadFont(cfg.Font)
		if err != nil {
			return fmt.Errorf("load font: %w", err)
		}
		defer fm.Close()
		logger.DebugContext(ctx, "Font loaded", slog.String("font", fm.Name()))
		text = fm
	}

	images := imagegen.New(cfg.Output.Dir, imageOptions(cfg), text, rng)
	for i := 1; i <= cfg.Image.Count; i++ {
		path, err := images.Generate(i)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "Image generated", slog.String("path", path))
	}

	res, err := textgen.Generate(rng, cfg.Output.Dir, textOptions(cfg))
	if err != nil {
		return fmt.Errorf("generate text: %w", err)
	}
	logger.InfoContext(ctx, "Text generated",
		slog.String("path", res.Path),
		slog.Int("chars", res.Chars),
		slog.Int("lines", res.Lines),
		slog.Int("wrap", cfg.Text.Wrap))

	logger.InfoContext(ctx, "Image and text generation complete",
		slog.String("output_dir", cfg.Output.Dir),
		slog.Int("images", cfg.Image.Count))
	return nil
}

// NewLogger builds the structured logger described by cfg.
func NewLogger(w io.Writer, cfg ApplicationConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func loadFont(cfg FontConfig) (*render.FontManager, error) {
	if cfg.Path == "" && cfg.AllowEmbedded {
		return render.NewEmbeddedFontManager()
	}
	return render.NewFontManager(cfg.Path)
}

func imageOptions(cfg *Config) imagegen.Options {
	img := cfg.Image
	return imagegen.Options{
		Width:      img.Width,
		Height:     img.Height,
		Format:     img.Format,
		Background: img.Background,
		Shapes:     img.Shapes,
		ShapeColor: img.ShapeColor,
		Stroke:     img.Stroke,
		Words:      img.Words,
		FontSize:   img.FontSize,
		TextColor:  img.TextColor,
		MarginX:    img.MarginX,
		MarginY:    img.MarginY,
		Smooth:     img.Smooth,
		Terms:      cfg.Vocabulary.Terms,
	}
}

func textOptions(cfg *Config) textgen.Options {
	return textgen.Options{
		Length:        cfg.Text.Length,
		Wrap:          cfg.Text.Wrap,
		File:          cfg.Text.File,
		TermProb:      cfg.Text.TermProb,
		ConnectorProb: cfg.Text.ConnectorProb,
		Terms:         cfg.Vocabulary.Terms,
		Chars:         cfg.Vocabulary.Chars,
		Connectors:    cfg.Vocabulary.Connectors,
	}
}
