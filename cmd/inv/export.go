package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/invdot/inv-format/go-inv/ident"
	"github.com/invdot/inv-format/go-inv/ir"
)

type exportItem struct {
	Name     string        `json:"name" yaml:"name"`
	Ident    string        `json:"ident,omitempty" yaml:"ident,omitempty"`
	Hoisted  bool          `json:"hoisted,omitempty" yaml:"hoisted,omitempty"`
	Children []*exportItem `json:"children,omitempty" yaml:"children,omitempty"`
}

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: export takes no arguments", cli.ErrUsage)
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: -j and -y are mutually exclusive", cli.ErrUsage)
	}
	_, root, err := cfg.loadTree()
	if err != nil {
		return err
	}
	items := make([]*exportItem, 0, len(root.Children))
	for _, c := range root.Children {
		items = append(items, exportTree(c))
	}
	var d []byte
	if cfg.Y {
		d, err = yaml.Marshal(items)
	} else {
		d, err = json.MarshalIndent(items, "", "  ")
		d = append(d, '\n')
	}
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}

func exportTree(item *ir.Item) *exportItem {
	res := &exportItem{Name: item.Name, Hoisted: item.Hoisted}
	if item.ID != nil {
		res.Ident = ident.Canonical(*item.ID)
	}
	for _, c := range item.Children {
		res.Children = append(res.Children, exportTree(c))
	}
	return res
}
