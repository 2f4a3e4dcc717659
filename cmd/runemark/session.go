package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// session is the persisted editing state: the document markup plus the
// selection it was left with.
type session struct {
	Markup   string
	SelStart int
	SelEnd   int
}

// loadSession reads a session sidecar. A missing file or an empty path
// yields a fresh session; a malformed file is an error so a bad sidecar
// never silently eats a document.
func loadSession(path string) (session, error) {
	if path == "" {
		return session{SelStart: 1, SelEnd: 1}, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return session{SelStart: 1, SelEnd: 1}, nil
	}
	if err != nil {
		return session{}, err
	}
	if !gjson.ValidBytes(data) {
		return session{}, fmt.Errorf("session %s: not valid JSON", path)
	}
	root := gjson.ParseBytes(data)
	return session{
		Markup:   root.Get("markup").String(),
		SelStart: int(root.Get("selection.start").Int()),
		SelEnd:   int(root.Get("selection.end").Int()),
	}, nil
}

// saveSession writes the session sidecar.
func saveSession(path string, s session) error {
	out := "{}"
	var err error
	if out, err = sjson.Set(out, "markup", s.Markup); err != nil {
		return err
	}
	if out, err = sjson.Set(out, "selection.start", s.SelStart); err != nil {
		return err
	}
	if out, err = sjson.Set(out, "selection.end", s.SelEnd); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out+"\n"), 0o644)
}
