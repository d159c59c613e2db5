package markup

import "errors"

// ErrUnsupportedMarkup reports a markup construct outside the
// document vocabulary.
var ErrUnsupportedMarkup = errors.New("unsupported markup")
