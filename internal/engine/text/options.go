package text

// Option is a functional option for configuring a Text.
type Option func(*Text)

// WithName sets a display name, usually the file path the text came from.
func WithName(name string) Option {
	return func(t *Text) {
		t.name = name
	}
}

// WithReadOnly makes Insert and Delete fail with ErrReadOnly.
func WithReadOnly() Option {
	return func(t *Text) {
		t.readOnly = true
	}
}

// WithNormalizedLineEndings converts CRLF and lone CR to LF on load and on
// every insertion.
func WithNormalizedLineEndings() Option {
	return func(t *Text) {
		t.normalize = true
	}
}
