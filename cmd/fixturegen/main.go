// fixturegen — Manufacturing test-fixture generator.
//
// Usage:
//
//	fixturegen [--config <file>] [--output <dir>] [--font <path>] [--seed <n>] [--count <n>]
//
// With no flags it writes five PNG images and one wrapped text file into ./output.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/xob0t/fixturegen/internal"
	pkgconfig "github.com/xob0t/fixturegen/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	if path := cmd.String("config"); path != "" {
		if err := pkgconfig.Load(path, cfg); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	applyFlags(cmd, cfg)

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	return nil
}

// applyFlags lets explicitly set flags override the loaded configuration.
func applyFlags(cmd *cli.Command, cfg *internal.Config) {
	if cmd.IsSet("output") {
		cfg.Output.Dir = cmd.String("output")
	}
	if cmd.IsSet("font") {
		cfg.Font.Path = cmd.String("font")
	}
	if cmd.IsSet("seed") {
		cfg.Seed = uint64(cmd.Uint("seed"))
	}
	if cmd.IsSet("count") {
		cfg.Image.Count = int(cmd.Int("count"))
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:   "fixturegen",
		Usage:  "Generate synthetic manufacturing images and text for tests",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file (built-in defaults when empty)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory",
			},
			&cli.StringFlag{
				Name:  "font",
				Usage: "Path to a TTF/OTF/TTC font with glyphs for the vocabulary",
			},
			&cli.UintFlag{
				Name:  "seed",
				Usage: "Random seed (0 = time based)",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of images to generate",
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
