package parse

import "fmt"

type parseOpts struct {
	filename string
}

type ParseOption func(*parseOpts)

// WithFilename attaches a file name to parse errors.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

func (o *parseOpts) errf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	if o.filename != "" {
		err = fmt.Errorf("%s: %w", o.filename, err)
	}
	return err
}
