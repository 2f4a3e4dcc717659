package document

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by FromJSON when the input is not JSON at all.
var ErrInvalidJSON = errors.New("document: input is not valid JSON")

// ToJSON serializes the document for host persistence. The output round-trips
// through FromJSON.
func (d *Document) ToJSON() ([]byte, error) {
	return json.Marshal(d)
}

// FromJSON rebuilds a document from host-persisted JSON. Parsing is lenient:
// unknown fields are ignored, mistyped fields coerce or drop, and the result
// is always normalized. Only input that is not JSON at all is an error.
func FromJSON(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)

	var lines []Line
	root.Get("lines").ForEach(func(_, lv gjson.Result) bool {
		line := Line{Attrs: attrsFromJSON(lv.Get("attrs"))}
		lv.Get("runs").ForEach(func(_, rv gjson.Result) bool {
			if rv.Get("break").Bool() {
				line.Runs = append(line.Runs, BreakRun())
				return true
			}
			line.Runs = append(line.Runs, Run{
				Content: rv.Get("content").String(),
				Tokens:  tokenSetFromJSON(rv.Get("tokens")),
				Styles:  stylesFromJSON(rv.Get("styles")),
			})
			return true
		})
		if len(line.Runs) == 0 {
			line = EmptyLine()
		}
		lines = append(lines, line)
		return true
	})

	return FromLines(lines...), nil
}

func attrsFromJSON(v gjson.Result) Attrs {
	return Attrs{
		Tokens: tokenSetFromJSON(v.Get("tokens")),
		Styles: stylesFromJSON(v.Get("styles")),
	}
}

func tokenSetFromJSON(v gjson.Result) TokenSet {
	if !v.IsArray() {
		return nil
	}
	var tokens []string
	v.ForEach(func(_, tv gjson.Result) bool {
		if tv.Type == gjson.String {
			tokens = append(tokens, tv.String())
		}
		return true
	})
	return NewTokenSet(tokens...)
}

func stylesFromJSON(v gjson.Result) map[string]string {
	if !v.IsObject() {
		return nil
	}
	var styles map[string]string
	v.ForEach(func(k, sv gjson.Result) bool {
		if sv.Type != gjson.String {
			return true
		}
		if styles == nil {
			styles = make(map[string]string)
		}
		styles[k.String()] = sv.String()
		return true
	})
	return styles
}
