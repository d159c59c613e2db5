package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/invdot/inv-format/go-inv/encode"
	"github.com/invdot/inv-format/go-inv/resolve"
)

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		cfg.Show.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: show takes at most one query", cli.ErrUsage)
	}
	_, root, err := cfg.loadTree()
	if err != nil {
		return err
	}
	target := root
	if len(args) == 1 {
		target, err = resolve.Resolve(args[0], root, true)
		if err != nil {
			return err
		}
	}
	return encode.Display(target, cc.Out, cfg.displayOpts()...)
}
