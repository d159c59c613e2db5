package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/invdot/inv-format/go-inv/encode"
	"github.com/invdot/inv-format/go-inv/ir"
	"github.com/invdot/inv-format/go-inv/storage"
)

type MainConfig struct {
	File    string `cli:"name=f aliases=file desc='inventory document file'"`
	Color   bool   `cli:"name=color desc='force color output'"`
	NoColor bool   `cli:"name=no-color desc='disable color output'"`

	fileCfg *FileConfig

	Main *cli.Command
}

// FileConfig is the on-disk configuration, inv.yaml.
type FileConfig struct {
	File   string `yaml:"file"`
	Indent string `yaml:"indent"`
	Color  *bool  `yaml:"color"`
}

// loadFileConfig reads inv.yaml from the working directory or from
// the user config directory; a missing file yields an empty config.
func loadFileConfig() (*FileConfig, error) {
	paths := []string{"inv.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "inv", "inv.yaml"))
	}
	for _, p := range paths {
		d, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		cfg := &FileConfig{}
		if err := yaml.Unmarshal(d, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		return cfg, nil
	}
	return &FileConfig{}, nil
}

func (cfg *MainConfig) setup() error {
	fc, err := loadFileConfig()
	if err != nil {
		return err
	}
	cfg.fileCfg = fc
	if cfg.Color {
		color.NoColor = false
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	return nil
}

// documentPath resolves the inventory file: the -f flag, then the
// INV_FILE environment variable, then inv.yaml.
func (cfg *MainConfig) documentPath() (string, error) {
	if cfg.File != "" {
		return cfg.File, nil
	}
	if v := os.Getenv("INV_FILE"); v != "" {
		return v, nil
	}
	if cfg.fileCfg != nil && cfg.fileCfg.File != "" {
		return cfg.fileCfg.File, nil
	}
	return "", fmt.Errorf("%w: no inventory file; use -f, INV_FILE, or inv.yaml", cli.ErrUsage)
}

func (cfg *MainConfig) loadTree() (string, *ir.Item, error) {
	path, err := cfg.documentPath()
	if err != nil {
		return "", nil, err
	}
	root, err := storage.Load(path)
	if err != nil {
		return "", nil, err
	}
	return path, root, nil
}

func (cfg *MainConfig) encodeOpts() []encode.EncodeOption {
	if cfg.fileCfg != nil && cfg.fileCfg.Indent != "" {
		return []encode.EncodeOption{encode.Indent(cfg.fileCfg.Indent)}
	}
	return nil
}

func (cfg *MainConfig) colorEnabled() bool {
	if cfg.NoColor {
		return false
	}
	if cfg.Color {
		return true
	}
	if cfg.fileCfg != nil && cfg.fileCfg.Color != nil {
		return *cfg.fileCfg.Color
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func (cfg *MainConfig) displayOpts() []encode.DisplayOption {
	if !cfg.colorEnabled() {
		return nil
	}
	return []encode.DisplayOption{encode.DisplayColors(encode.NewColors())}
}

type ShowConfig struct {
	*MainConfig
	Show *cli.Command
}

type ResolveConfig struct {
	*MainConfig
	Resolve *cli.Command
}

type LocConfig struct {
	*MainConfig
	Loc *cli.Command
}

type MoveConfig struct {
	*MainConfig
	Move *cli.Command
}

type CheckoutConfig struct {
	*MainConfig
	Checkout *cli.Command
}

type HoistConfig struct {
	*MainConfig
	Hoisted bool

	Hoist *cli.Command
}

type SetIDConfig struct {
	*MainConfig
	New bool `cli:"name=n aliases=new desc='mint a fresh identifier'"`

	SetID *cli.Command
}

type RmIDConfig struct {
	*MainConfig
	RmID *cli.Command
}

type FindConfig struct {
	*MainConfig
	Find *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='rewrite the document in place'"`
	Diff  bool `cli:"name=d desc='print a diff against the normalized form'"`

	Fmt *cli.Command
}

type ExportConfig struct {
	*MainConfig
	J bool `cli:"name=j aliases=json desc='export as JSON (default)'"`
	Y bool `cli:"name=y aliases=yaml desc='export as YAML'"`

	Export *cli.Command
}

type LabelsConfig struct {
	*MainConfig
	Count int    `cli:"name=n desc='number of labels to generate (default 64)'"`
	Dir   string `cli:"name=d aliases=dir desc='output directory (default codes)'"`
	Size  int    `cli:"name=s desc='label image size in pixels (default 400)'"`

	Labels *cli.Command
}

type ReplConfig struct {
	*MainConfig
	Repl *cli.Command
}
