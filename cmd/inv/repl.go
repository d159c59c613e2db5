package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/invdot/inv-format/go-inv/encode"
	"github.com/invdot/inv-format/go-inv/ident"
	"github.com/invdot/inv-format/go-inv/ir"
	"github.com/invdot/inv-format/go-inv/resolve"
	"github.com/invdot/inv-format/go-inv/storage"
)

type replMode int

const (
	modeDefault replMode = iota
	modeMove
	modeAdd
	modeCheckout
	modeNewID
)

func (m replMode) String() string {
	switch m {
	case modeMove:
		return "move"
	case modeAdd:
		return "add"
	case modeCheckout:
		return "checkout"
	case modeNewID:
		return "new id"
	}
	return ""
}

// repl is the modal inventory shell. A bare query selects an item;
// mode commands arm the next query to act on the selection instead.
// Every line re-parses the document, applies at most one mutation,
// recomputes parent links and saves the full document back.
type repl struct {
	cfg      *MainConfig
	path     string
	in       *bufio.Scanner
	out      io.Writer
	tree     *ir.Item
	selected *ir.Item
	mode     replMode
	done     bool
}

func runRepl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		cfg.Repl.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: repl takes no arguments", cli.ErrUsage)
	}
	path, err := cfg.documentPath()
	if err != nil {
		return err
	}
	// fail before the first prompt when the document doesn't load
	if _, err := storage.Load(path); err != nil {
		return err
	}
	r := &repl{
		cfg:  cfg.MainConfig,
		path: path,
		in:   bufio.NewScanner(os.Stdin),
		out:  cc.Out,
	}
	fmt.Fprintf(r.out, "Welcome to the inventory shell.\nUsing file: %s\n", path)
	return r.loop()
}

func (r *repl) loop() error {
	for !r.done {
		fmt.Fprint(r.out, r.prompt())
		if !r.in.Scan() {
			break
		}
		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}
		if err := r.reload(); err != nil {
			fmt.Fprintln(r.out, err)
			continue
		}
		r.dispatch(line)
		ir.UpdateParents(r.tree)
		if err := storage.Save(r.path, r.tree, r.cfg.encodeOpts()...); err != nil {
			return err
		}
	}
	return r.in.Err()
}

func (r *repl) prompt() string {
	var b strings.Builder
	b.WriteString("\n")
	if r.selected != nil {
		b.WriteString("SELECTED: ")
		b.WriteString(itemLine(r.selected))
		b.WriteString("\n")
	}
	b.WriteString(r.mode.String())
	b.WriteString("> ")
	return b.String()
}

// reload re-parses the document and re-resolves the selection in the
// fresh tree, by identifier when the selected item has one, by name
// otherwise.
func (r *repl) reload() error {
	tree, err := storage.Load(r.path)
	if err != nil {
		return err
	}
	r.tree = tree
	if r.selected == nil {
		return nil
	}
	var sel *ir.Item
	if r.selected.ID != nil {
		sel, err = resolve.Resolve(ident.Canonical(*r.selected.ID), tree, false)
	} else {
		sel, err = resolve.Resolve(r.selected.Name, tree, true)
	}
	if err != nil {
		fmt.Fprintf(r.out, "selection lost: %v\n", err)
	}
	r.selected = sel
	return nil
}

func (r *repl) dispatch(line string) {
	switch line {
	case "move":
		if r.requireSelection() {
			r.mode = modeMove
		}
	case "add":
		if r.requireSelection() {
			r.mode = modeAdd
		}
	case "setid":
		if r.requireSelection() {
			r.mode = modeNewID
		}
	case "rmid":
		if r.requireSelection() {
			ir.ClearIdentifier(r.selected)
		}
	case "hoist":
		if r.requireSelection() {
			ir.SetHoisted(r.selected, true)
		}
	case "unhoist":
		if r.requireSelection() {
			ir.SetHoisted(r.selected, false)
		}
	case "contents":
		target := r.tree
		if r.selected != nil {
			target = r.selected
		}
		if err := encode.Display(target, r.out, r.cfg.displayOpts()...); err != nil {
			fmt.Fprintln(r.out, err)
		}
	case "loc":
		if r.requireSelection() {
			writeLoc(r.out, r.selected)
		}
	case "checkout":
		if r.selected != nil {
			r.checkout(r.selected)
		} else {
			r.mode = modeCheckout
		}
	case "exit":
		switch {
		case r.mode != modeDefault:
			r.mode = modeDefault
		case r.selected != nil:
			r.selected = nil
		default:
			r.done = true
		}
	default:
		r.query(line)
	}
}

// query handles a non-command line according to the current mode.
func (r *repl) query(line string) {
	if r.mode == modeNewID {
		if err := ir.SetIdentifier(r.selected, line); err != nil {
			fmt.Fprintln(r.out, err)
			return
		}
		r.mode = modeDefault
		fmt.Fprintf(r.out, "changed identifier of %s to %s\n",
			r.selected.Name, ident.Short(*r.selected.ID))
		return
	}
	item, err := resolve.Resolve(line, r.tree, true)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	switch r.mode {
	case modeDefault:
		r.selected = item
	case modeMove:
		if err := ir.Move(r.selected, item); err != nil {
			fmt.Fprintln(r.out, err)
			return
		}
		r.mode = modeDefault
		fmt.Fprintf(r.out, "moved %s into %s\n", r.selected.Name, item.Name)
	case modeCheckout:
		r.checkout(item)
	case modeAdd:
		// add mode stays armed for more items
		if err := ir.Move(item, r.selected); err != nil {
			fmt.Fprintln(r.out, err)
			return
		}
		fmt.Fprintf(r.out, "added %s to %s\n", item.Name, r.selected.Name)
	}
}

func (r *repl) checkout(item *ir.Item) {
	if err := ir.Checkout(item, r.tree); err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	fmt.Fprintf(r.out, "checked out %s\n", item.Name)
}

func (r *repl) requireSelection() bool {
	if r.selected == nil {
		fmt.Fprintln(r.out, "select an item first")
		return false
	}
	return true
}
