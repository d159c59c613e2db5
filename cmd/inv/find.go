package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/invdot/inv-format/go-inv/resolve"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires an expression", cli.ErrUsage)
	}
	src := strings.Join(args, " ")
	_, root, err := cfg.loadTree()
	if err != nil {
		return err
	}
	items, err := resolve.Filter(src, root)
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Fprintln(cc.Out, itemLine(item))
	}
	return nil
}
