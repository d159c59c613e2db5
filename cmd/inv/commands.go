package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "inv").
		WithSynopsis("inv [opts] [command [opts]]").
		WithDescription("inv maintains a hierarchical inventory stored as a text document.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return invMain(cfg, cc, args)
		}).
		WithSubs(
			ShowCommand(cfg),
			ResolveCommand(cfg),
			LocCommand(cfg),
			MoveCommand(cfg),
			CheckoutCommand(cfg),
			HoistCommand(cfg, false),
			HoistCommand(cfg, true),
			SetIDCommand(cfg),
			RmIDCommand(cfg),
			FindCommand(cfg),
			FmtCommand(cfg),
			ExportCommand(cfg),
			LabelsCommand(cfg),
			ReplCommand(cfg))
}

func invMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.setup(); err != nil {
		return err
	}
	if len(args) == 0 {
		// the interactive shell is the default command
		return cfg.Main.FindSub(cc, "repl").Run(cc, nil)
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("show").
		WithAliases("ls", "contents").
		WithSynopsis("show [query]").
		WithDescription("show the item tree, or the subtree at the resolved item").
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
	cfg.Show = cmd
	return cmd
}

func ResolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResolveConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("resolve").
		WithAliases("r").
		WithSynopsis("resolve <query>").
		WithDescription("resolve a query to exactly one item").
		WithRun(func(cc *cli.Context, args []string) error {
			return resolveCmd(cfg, cc, args)
		})
	cfg.Resolve = cmd
	return cmd
}

func LocCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LocConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("loc").
		WithSynopsis("loc <query>").
		WithDescription("print the chain of ancestors down to the item").
		WithRun(func(cc *cli.Context, args []string) error {
			return loc(cfg, cc, args)
		})
	cfg.Loc = cmd
	return cmd
}

func MoveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MoveConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("move").
		WithAliases("mv").
		WithSynopsis("move <item> <into>").
		WithDescription("move an item to be the last child of another item").
		WithRun(func(cc *cli.Context, args []string) error {
			return move(cfg, cc, args)
		})
	cfg.Move = cmd
	return cmd
}

func CheckoutCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckoutConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("checkout").
		WithAliases("co").
		WithSynopsis("checkout <item>").
		WithDescription("move an item to the document root").
		WithRun(func(cc *cli.Context, args []string) error {
			return checkout(cfg, cc, args)
		})
	cfg.Checkout = cmd
	return cmd
}

func HoistCommand(mainCfg *MainConfig, hoisted bool) *cli.Command {
	cfg := &HoistConfig{MainConfig: mainCfg, Hoisted: hoisted}
	name, desc := "unhoist", "store an item's children inline again"
	if hoisted {
		name, desc = "hoist", "store an item's children in their own document section"
	}
	cmd := cli.NewCommand(name).
		WithSynopsis(name + " <item>").
		WithDescription(desc).
		WithRun(func(cc *cli.Context, args []string) error {
			return hoist(cfg, cc, args)
		})
	cfg.Hoist = cmd
	return cmd
}

func SetIDCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetIDConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("setid").
		WithSynopsis("setid [-n] <item> [identifier]").
		WithDescription("assign an identifier to an item").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return setID(cfg, cc, args)
		})
	cfg.SetID = cmd
	return cmd
}

func RmIDCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmIDConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("rmid").
		WithSynopsis("rmid <item>").
		WithDescription("remove an item's identifier").
		WithRun(func(cc *cli.Context, args []string) error {
			return rmID(cfg, cc, args)
		})
	cfg.RmID = cmd
	return cmd
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("find").
		WithSynopsis("find <expr>").
		WithDescription("list items matching a boolean expression over name, ident, short, hoisted, depth and path").
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
	cfg.Find = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithSynopsis("fmt [-w|-d]").
		WithDescription("re-render the document in canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("export").
		WithSynopsis("export [-j|-y]").
		WithDescription("export the item tree as JSON or YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
	cfg.Export = cmd
	return cmd
}

func LabelsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LabelsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("labels").
		WithSynopsis("labels [-n count] [-d dir] [query...]").
		WithDescription("render identifiers as DataMatrix label images with an index.csv").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return labels(cfg, cc, args)
		})
	cfg.Labels = cmd
	return cmd
}

func ReplCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("repl").
		WithSynopsis("repl").
		WithDescription("interactive inventory shell").
		WithRun(func(cc *cli.Context, args []string) error {
			return runRepl(cfg, cc, args)
		})
	cfg.Repl = cmd
	return cmd
}
