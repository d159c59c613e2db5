package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/invdot/inv-format/go-inv/encode"
	"github.com/invdot/inv-format/go-inv/parse"
	"github.com/invdot/inv-format/go-inv/storage"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: fmt takes no arguments", cli.ErrUsage)
	}
	path, err := cfg.documentPath()
	if err != nil {
		return err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	root, err := parse.Parse(d, parse.WithFilename(path))
	if err != nil {
		return err
	}
	norm := []byte(encode.MustString(root, cfg.encodeOpts()...))
	switch {
	case cfg.Diff:
		diffs := storage.Diff(string(d), string(norm))
		_, err = io.WriteString(cc.Out, storage.FormatDiff(diffs, cfg.colorEnabled()))
		return err
	case cfg.Write:
		if bytes.Equal(d, norm) {
			return nil
		}
		return storage.Save(path, root, cfg.encodeOpts()...)
	default:
		_, err = cc.Out.Write(norm)
		return err
	}
}
