package main

import (
	"encoding/csv"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/datamatrix"
	"github.com/google/uuid"
	"github.com/scott-cotton/cli"

	"github.com/invdot/inv-format/go-inv/ident"
	"github.com/invdot/inv-format/go-inv/resolve"
)

// labels renders DataMatrix images encoding the 22 character compact
// identifier form. With queries it renders the identifiers of the
// resolved items; without, it mints fresh identifiers to print and
// stick on things before they ever enter the inventory.
func labels(cfg *LabelsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Labels.Parse(cc, args)
	if err != nil {
		cfg.Labels.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "codes"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var ids []uuid.UUID
	if len(args) > 0 {
		_, root, err := cfg.loadTree()
		if err != nil {
			return err
		}
		for _, q := range args {
			item, err := resolve.Resolve(q, root, true)
			if err != nil {
				return err
			}
			if item.ID == nil {
				return fmt.Errorf("%s has no identifier", item.Name)
			}
			ids = append(ids, *item.ID)
		}
	} else {
		count := cfg.Count
		if count == 0 {
			count = 64
		}
		for range count {
			ids = append(ids, uuid.New())
		}
	}

	idx, err := os.Create(filepath.Join(dir, "index.csv"))
	if err != nil {
		return err
	}
	defer idx.Close()
	w := csv.NewWriter(idx)
	if err := w.Write([]string{"file", "uuid", "uuid_b64"}); err != nil {
		return err
	}
	for _, id := range ids {
		name := ident.Short(id) + ".png"
		if err := writeLabel(filepath.Join(dir, name), id, cfg.Size); err != nil {
			return err
		}
		if err := w.Write([]string{name, ident.Canonical(id), ident.Compact(id)}); err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s %s\n", name, ident.Short(id))
	}
	w.Flush()
	return w.Error()
}

func writeLabel(path string, id uuid.UUID, size int) error {
	if size == 0 {
		size = 400
	}
	bc, err := datamatrix.Encode(ident.Compact(id))
	if err != nil {
		return err
	}
	scaled, err := barcode.Scale(bc, size, size)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, scaled); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
