package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FileSystem abstracts file access so tests can load themes from memory.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

type osFS struct{}

func (osFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the operating-system file system.
func DefaultFS() FileSystem {
	return osFS{}
}

// Loader reads a Theme from a TOML file. A missing file is not an error:
// the defaults apply.
type Loader struct {
	fs   FileSystem
	path string
}

// NewLoader creates a loader for the given path.
func NewLoader(path string) *Loader {
	return &Loader{fs: DefaultFS(), path: path}
}

// NewLoaderWithFS creates a loader with a custom file system.
func NewLoaderWithFS(fs FileSystem, path string) *Loader {
	return &Loader{fs: fs, path: path}
}

// Load reads the theme. File entries overlay the defaults per token, so a
// theme file only needs the formats it changes.
func (l *Loader) Load() (*Theme, error) {
	theme := DefaultTheme()
	if l.path == "" {
		return theme, nil
	}

	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return theme, nil
		}
		return nil, fmt.Errorf("reading theme file %s: %w", l.path, err)
	}

	var loaded Theme
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return nil, &ParseError{Path: l.path, Message: err.Error(), Err: err}
	}
	for token, fs := range loaded.Formats {
		theme.Formats[token] = fs
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return theme, nil
}

// ParseError reports a malformed theme file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
