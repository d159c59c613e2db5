package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/scott-cotton/cli"

	"github.com/invdot/inv-format/go-inv/ident"
	"github.com/invdot/inv-format/go-inv/ir"
	"github.com/invdot/inv-format/go-inv/resolve"
	"github.com/invdot/inv-format/go-inv/storage"
)

func resolveCmd(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		cfg.Resolve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: resolve requires one query", cli.ErrUsage)
	}
	_, root, err := cfg.loadTree()
	if err != nil {
		return err
	}
	item, err := resolve.Resolve(args[0], root, true)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, itemLine(item))
	return nil
}

func loc(cfg *LocConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Loc.Parse(cc, args)
	if err != nil {
		cfg.Loc.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: loc requires one query", cli.ErrUsage)
	}
	_, root, err := cfg.loadTree()
	if err != nil {
		return err
	}
	item, err := resolve.Resolve(args[0], root, true)
	if err != nil {
		return err
	}
	writeLoc(cc.Out, item)
	return nil
}

func move(cfg *MoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Move.Parse(cc, args)
	if err != nil {
		cfg.Move.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: move requires <item> <into>", cli.ErrUsage)
	}
	path, root, err := cfg.loadTree()
	if err != nil {
		return err
	}
	item, err := resolve.Resolve(args[0], root, true)
	if err != nil {
		return err
	}
	into, err := resolve.Resolve(args[1], root, true)
	if err != nil {
		return err
	}
	if err := ir.Move(item, into); err != nil {
		return err
	}
	ir.UpdateParents(root)
	if err := storage.Save(path, root, cfg.encodeOpts()...); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "moved %s into %s\n", item.Name, into.Name)
	return nil
}

func checkout(cfg *CheckoutConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Checkout.Parse(cc, args)
	if err != nil {
		cfg.Checkout.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: checkout requires one item", cli.ErrUsage)
	}
	path, root, err := cfg.loadTree()
	if err != nil {
		return err
	}
	item, err := resolve.Resolve(args[0], root, true)
	if err != nil {
		return err
	}
	if err := ir.Checkout(item, root); err != nil {
		return err
	}
	ir.UpdateParents(root)
	if err := storage.Save(path, root, cfg.encodeOpts()...); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "checked out %s\n", item.Name)
	return nil
}

func hoist(cfg *HoistConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hoist.Parse(cc, args)
	if err != nil {
		cfg.Hoist.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		name := "unhoist"
		if cfg.Hoisted {
			name = "hoist"
		}
		return fmt.Errorf("%w: %s requires one item", cli.ErrUsage, name)
	}
	path, root, err := cfg.loadTree()
	if err != nil {
		return err
	}
	item, err := resolve.Resolve(args[0], root, true)
	if err != nil {
		return err
	}
	ir.SetHoisted(item, cfg.Hoisted)
	ir.UpdateParents(root)
	return storage.Save(path, root, cfg.encodeOpts()...)
}

func setID(cfg *SetIDConfig, cc *cli.Context, args []string) error {
	args, err := cfg.SetID.Parse(cc, args)
	if err != nil {
		cfg.SetID.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, root, err := cfg.loadTree()
	if err != nil {
		return err
	}
	var item *ir.Item
	switch {
	case cfg.New && len(args) == 1:
		item, err = resolve.Resolve(args[0], root, true)
		if err != nil {
			return err
		}
		id := uuid.New()
		item.ID = &id
	case !cfg.New && len(args) == 2:
		item, err = resolve.Resolve(args[0], root, true)
		if err != nil {
			return err
		}
		if err := ir.SetIdentifier(item, args[1]); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: setid requires <item> <identifier>, or -n <item>", cli.ErrUsage)
	}
	ir.UpdateParents(root)
	if err := storage.Save(path, root, cfg.encodeOpts()...); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "changed identifier of %s to %s\n", item.Name, ident.Short(*item.ID))
	return nil
}

func rmID(cfg *RmIDConfig, cc *cli.Context, args []string) error {
	args, err := cfg.RmID.Parse(cc, args)
	if err != nil {
		cfg.RmID.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: rmid requires one item", cli.ErrUsage)
	}
	path, root, err := cfg.loadTree()
	if err != nil {
		return err
	}
	item, err := resolve.Resolve(args[0], root, true)
	if err != nil {
		return err
	}
	ir.ClearIdentifier(item)
	ir.UpdateParents(root)
	return storage.Save(path, root, cfg.encodeOpts()...)
}

func itemLine(item *ir.Item) string {
	if item.ID != nil {
		return fmt.Sprintf("%s (%s)", item.Name, ident.Short(*item.ID))
	}
	return item.Name
}

func writeLoc(w io.Writer, item *ir.Item) {
	var trail []*ir.Item
	for i := item; i.Parent != nil; i = i.Parent {
		trail = append(trail, i)
	}
	slices.Reverse(trail)
	for depth, it := range trail {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), it.Name)
	}
}
