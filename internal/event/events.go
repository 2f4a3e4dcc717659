package event

import (
	"github.com/dshills/runemark/internal/engine/document"
	"github.com/dshills/runemark/internal/engine/index"
)

// Topic names an event stream.
type Topic string

const (
	// TopicChange is published after every mutating operation,
	// including content import.
	TopicChange Topic = "change"

	// TopicSelect is published on every selection report from the
	// display surface, whether or not the resolved range changed.
	TopicSelect Topic = "select"
)

// ChangeEvent is the payload for TopicChange. Document is a deep copy;
// listeners may keep or mutate it freely.
type ChangeEvent struct {
	Document *document.Document
	Markup   string
}

// SelectEvent is the payload for TopicSelect.
type SelectEvent struct {
	Range index.Range
	Text  string
}
