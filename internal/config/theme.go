// Package config holds the reference host's configuration: the theme
// mapping format tokens to terminal styling, loaded from TOML.
package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// FormatStyle describes how one format token renders on a terminal surface.
type FormatStyle struct {
	// Foreground and Background are hex colors ("#rrggbb"). Empty means
	// the terminal default.
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`

	Bold      bool `toml:"bold"`
	Italic    bool `toml:"italic"`
	Underline bool `toml:"underline"`
	Strike    bool `toml:"strike"`

	// ValueTarget says where a value-bearing format's style value lands:
	// "foreground" or "background". Defaults to "background".
	ValueTarget string `toml:"value_target"`
}

// Theme maps format tokens to terminal styles.
type Theme struct {
	Formats map[string]FormatStyle `toml:"formats"`
}

// DefaultTheme returns the built-in theme covering the demo's bindings.
func DefaultTheme() *Theme {
	return &Theme{
		Formats: map[string]FormatStyle{
			"bold":      {Bold: true},
			"italic":    {Italic: true},
			"underline": {Underline: true},
			"strike":    {Strike: true},
			"highlight": {Background: "#ffff00", Foreground: "#000000"},
		},
	}
}

// Format returns the style for a token and whether the theme defines one.
func (t *Theme) Format(token string) (FormatStyle, bool) {
	fs, ok := t.Formats[token]
	return fs, ok
}

// Validate checks every color in the theme parses.
func (t *Theme) Validate() error {
	for token, fs := range t.Formats {
		for _, c := range []string{fs.Foreground, fs.Background} {
			if c == "" {
				continue
			}
			if _, err := colorful.Hex(c); err != nil {
				return fmt.Errorf("config: format %q: bad color %q: %w", token, c, err)
			}
		}
		switch fs.ValueTarget {
		case "", "foreground", "background":
		default:
			return fmt.Errorf("config: format %q: bad value_target %q", token, fs.ValueTarget)
		}
	}
	return nil
}
