package internal

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/xob0t/fixturegen/pkg/generator"
	"github.com/xob0t/fixturegen/pkg/vocab"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the generator configuration.
type Config struct {
	App        ApplicationConfig `yaml:"app"`
	Output     OutputConfig      `yaml:"output"`
	Font       FontConfig        `yaml:"font"`
	Image      ImageConfig       `yaml:"image"`
	Text       TextConfig        `yaml:"text"`
	Vocabulary VocabularyConfig  `yaml:"vocabulary"`
	// Seed drives every random choice. Zero picks a time-based seed.
	Seed uint64 `yaml:"seed"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := c.Font.Validate(); err != nil {
		return fmt.Errorf("font: %w", err)
	}
	if err := c.Image.Validate(); err != nil {
		return fmt.Errorf("image: %w", err)
	}
	if err := c.Text.Validate(); err != nil {
		return fmt.Errorf("text: %w", err)
	}
	if err := c.Vocabulary.Validate(); err != nil {
		return fmt.Errorf("vocabulary: %w", err)
	}
	return nil
}

// ApplicationConfig holds logging configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.Required, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// OutputConfig holds the directory all artifacts are written to.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// FontConfig selects the font used for text overlays.
//
// Path is required unless AllowEmbedded is set, in which case an empty
// Path selects the embedded Go Regular font.
type FontConfig struct {
	Path          string `yaml:"path"`
	AllowEmbedded bool   `yaml:"allow_embedded"`
}

// Validate validates the font configuration.
func (c *FontConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.When(!c.AllowEmbedded, validation.Required)),
	)
}

// ImageConfig holds raster fixture parameters.
type ImageConfig struct {
	Count      int             `yaml:"count"`
	Width      int             `yaml:"width"`
	Height     int             `yaml:"height"`
	Format     string          `yaml:"format"`
	Background generator.Range `yaml:"background"`
	Shapes     generator.Range `yaml:"shapes"`
	ShapeColor generator.Range `yaml:"shape_color"`
	Stroke     generator.Range `yaml:"stroke"`
	Words      generator.Range `yaml:"words"`
	FontSize   generator.Range `yaml:"font_size"`
	TextColor  generator.Range `yaml:"text_color"`
	MarginX    int             `yaml:"margin_x"`
	MarginY    int             `yaml:"margin_y"`
	Smooth     bool            `yaml:"smooth"`
}

// Validate validates the image configuration.
func (c *ImageConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Count, validation.Required, validation.Min(1)),
		validation.Field(&c.Width, validation.Required, validation.Min(1)),
		validation.Field(&c.Height, validation.Required, validation.Min(1)),
		validation.Field(&c.Format, validation.Required, validation.In(generator.FormatPNG, generator.FormatBMP)),
		validation.Field(&c.Background, channelRange),
		validation.Field(&c.Shapes, nonNegativeRange),
		validation.Field(&c.ShapeColor, channelRange),
		validation.Field(&c.Stroke, positiveRange),
		validation.Field(&c.Words, nonNegativeRange),
		validation.Field(&c.FontSize, positiveRange),
		validation.Field(&c.TextColor, channelRange),
		validation.Field(&c.MarginX, validation.Min(0), validation.Max(c.Width-1)),
		validation.Field(&c.MarginY, validation.Min(0), validation.Max(c.Height-1)),
	)
}

// TextConfig holds text fixture parameters.
type TextConfig struct {
	Length        int     `yaml:"length"`
	Wrap          int     `yaml:"wrap"`
	File          string  `yaml:"file"`
	TermProb      float64 `yaml:"term_prob"`
	ConnectorProb float64 `yaml:"connector_prob"`
}

// Validate validates the text configuration.
func (c *TextConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Length, validation.Required, validation.Min(1)),
		validation.Field(&c.Wrap, validation.Required, validation.Min(1)),
		validation.Field(&c.File, validation.Required),
		validation.Field(&c.TermProb, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&c.ConnectorProb, validation.Min(0.0), validation.Max(1.0)),
	)
}

// VocabularyConfig holds the word lists fixtures are built from.
type VocabularyConfig struct {
	Terms      vocab.List `yaml:"terms"`
	Chars      vocab.List `yaml:"chars"`
	Connectors vocab.List `yaml:"connectors"`
}

// Validate validates the vocabulary configuration.
func (c *VocabularyConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Terms, validation.Required, validation.Each(validation.Required)),
		validation.Field(&c.Chars, validation.Required, validation.Each(singleRune)),
		validation.Field(&c.Connectors, validation.Required, validation.Each(validation.Required)),
	)
}

var channelRange = validation.By(func(value interface{}) error {
	r, _ := value.(generator.Range)
	if r.Min < 0 || r.Max > 255 {
		return errors.New("must lie within 0..255")
	}
	return nil
})

var nonNegativeRange = validation.By(func(value interface{}) error {
	r, _ := value.(generator.Range)
	if r.Min < 0 {
		return errors.New("must not be negative")
	}
	return nil
})

var positiveRange = validation.By(func(value interface{}) error {
	r, _ := value.(generator.Range)
	if r.Min < 1 {
		return errors.New("must be at least 1")
	}
	return nil
})

var singleRune = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if utf8.RuneCountInString(s) != 1 {
		return fmt.Errorf("%q is not a single character", s)
	}
	return nil
})

// NewDefaultConfig returns a new Config with the built-in fixture parameters.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatText,
		},
		Output: OutputConfig{
			Dir: "output",
		},
		Font: FontConfig{
			Path: "fonts/simhei.ttf",
		},
		Image: ImageConfig{
			Count:      5,
			Width:      1000,
			Height:     800,
			Format:     generator.FormatPNG,
			Background: generator.Range{Min: 200, Max: 240},
			Shapes:     generator.Range{Min: 5, Max: 10},
			ShapeColor: generator.Range{Min: 120, Max: 220},
			Stroke:     generator.Range{Min: 2, Max: 5},
			Words:      generator.Range{Min: 8, Max: 15},
			FontSize:   generator.Range{Min: 40, Max: 80},
			TextColor:  generator.Range{Min: 0, Max: 100},
			MarginX:    200,
			MarginY:    100,
			Smooth:     true,
		},
		Text: TextConfig{
			Length:        2000,
			Wrap:          80,
			File:          "manufacturing_2000.txt",
			TermProb:      0.85,
			ConnectorProb: 0.4,
		},
		Vocabulary: VocabularyConfig{
			Terms:      vocab.Terms,
			Chars:      vocab.Chars,
			Connectors: vocab.Connectors,
		},
	}
}
