// Package textgen builds hard-wrapped vocabulary text fixtures.
//
// Lengths are counted in characters (runes), so multi-byte terms count
// once per character and a wrapped line never exceeds Wrap characters.
package textgen

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xob0t/fixturegen/pkg/vocab"
)

// Options configures a text fixture.
type Options struct {
	Length        int     // target character count
	Wrap          int     // maximum characters per line
	File          string  // file name inside the output directory
	TermProb      float64 // chance of a full term rather than a single char
	ConnectorProb float64 // chance of appending a connector to the unit
	Terms         vocab.List
	Chars         vocab.List
	Connectors    vocab.List
}

// Result describes a written text fixture.
type Result struct {
	Path  string
	Chars int // unwrapped character count
	Lines int
}

// Build accumulates random units until the text holds exactly opts.Length
// characters. The last unit is cut short when it would overshoot.
func Build(rng *rand.Rand, opts Options) string {
	var sb strings.Builder
	n := 0
	for n < opts.Length {
		var unit string
		if rng.Float64() < opts.TermProb {
			unit = opts.Terms.Pick(rng)
		} else {
			unit = opts.Chars.Pick(rng)
		}
		if rng.Float64() < opts.ConnectorProb {
			unit += opts.Connectors.Pick(rng)
		}

		remain := opts.Length - n
		size := utf8.RuneCountInString(unit)
		if size <= remain {
			sb.WriteString(unit)
			n += size
			continue
		}
		sb.WriteString(truncate(unit, remain))
		break
	}
	return sb.String()
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Wrap splits s into consecutive chunks of at most width characters,
// ignoring word and term boundaries. An empty s yields no lines.
func Wrap(s string, width int) []string {
	if s == "" {
		return nil
	}
	if width <= 0 {
		return []string{s}
	}

	var lines []string
	start, count := 0, 0
	for pos := range s {
		if count == width {
			lines = append(lines, s[start:pos])
			start, count = pos, 0
		}
		count++
	}
	if count > 0 {
		lines = append(lines, s[start:])
	}
	return lines
}

// Generate builds, wraps and writes the text fixture into dir.
func Generate(rng *rand.Rand, dir string, opts Options) (Result, error) {
	text := Build(rng, opts)
	lines := Wrap(text, opts.Wrap)

	path := filepath.Join(dir, opts.File)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", path, err)
	}

	return Result{
		Path:  path,
		Chars: utf8.RuneCountInString(text),
		Lines: len(lines),
	}, nil
}
