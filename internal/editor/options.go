package editor

// Option is a functional option for configuring an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. The default discards everything.
func WithLogger(l *Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithContent sets the engine's initial content from markup. Untrusted
// input is fine: unparseable markup imports as plain text.
func WithContent(markup string) Option {
	return func(e *Engine) {
		e.initialMarkup = markup
	}
}
