package config

import (
	"errors"
	"os"
	"testing"
)

// memFS serves theme files from memory.
type memFS map[string][]byte

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	theme, err := NewLoaderWithFS(memFS{}, "theme.toml").Load()
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if fs, ok := theme.Format("bold"); !ok || !fs.Bold {
		t.Errorf("defaults missing bold: %+v", fs)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	theme, err := NewLoaderWithFS(memFS{}, "").Load()
	if err != nil {
		t.Fatalf("empty path must not error: %v", err)
	}
	if _, ok := theme.Format("highlight"); !ok {
		t.Error("defaults missing highlight")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	fs := memFS{"theme.toml": []byte(`
[formats.highlight]
background = "#00ff00"
foreground = "#000000"

[formats.code]
foreground = "#888888"
`)}
	theme, err := NewLoaderWithFS(fs, "theme.toml").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	hl, _ := theme.Format("highlight")
	if hl.Background != "#00ff00" {
		t.Errorf("file must override defaults: %+v", hl)
	}
	if _, ok := theme.Format("code"); !ok {
		t.Error("new formats from the file must appear")
	}
	if b, ok := theme.Format("bold"); !ok || !b.Bold {
		t.Error("untouched defaults must survive")
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	fs := memFS{"theme.toml": []byte("[formats\nnope")}
	_, err := NewLoaderWithFS(fs, "theme.toml").Load()

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestLoadBadColor(t *testing.T) {
	fs := memFS{"theme.toml": []byte(`
[formats.highlight]
background = "chartreuse-ish"
`)}
	if _, err := NewLoaderWithFS(fs, "theme.toml").Load(); err == nil {
		t.Fatal("invalid color must fail validation")
	}
}

func TestValidateValueTarget(t *testing.T) {
	theme := &Theme{Formats: map[string]FormatStyle{
		"highlight": {ValueTarget: "sideways"},
	}}
	if err := theme.Validate(); err == nil {
		t.Fatal("bad value_target must fail validation")
	}
}
