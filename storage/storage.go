package storage

import (
	"bytes"
	"os"

	"github.com/invdot/inv-format/go-inv/debug"
	"github.com/invdot/inv-format/go-inv/encode"
	"github.com/invdot/inv-format/go-inv/ir"
	"github.com/invdot/inv-format/go-inv/parse"
)

// Load reads and parses the document at path.
func Load(path string) (*ir.Item, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, parse.WithFilename(path))
}

// Save renders the tree and replaces the document at path. The
// previous content stays intact when rendering or writing fails.
func Save(path string, root *ir.Item, opts ...encode.EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(root, buf, opts...); err != nil {
		return err
	}
	// write to a temp file first, then rename atomically
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	if debug.Storage() {
		debug.Logf("storage: wrote %d bytes to %s\n", buf.Len(), path)
	}
	return nil
}

// Normalize parses document text and re-renders it in canonical
// form.
func Normalize(d []byte, opts ...encode.EncodeOption) ([]byte, error) {
	root, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(root, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
