package main

import (
	"fmt"
	"io"
	"os"

	translator "github.com/Ssajaia/universal-data-translator"
	"github.com/Ssajaia/universal-data-translator/encode"
	"github.com/Ssajaia/universal-data-translator/format"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

// ConfigEnv names the environment variable consulted for a config file
// when -config is not given.
const ConfigEnv = "UDT_CONFIG"

type MainConfig struct {
	Color      bool   `cli:"name=color desc='encode with color'"`
	Strict     bool   `cli:"name=strict desc='also check yaml and toml with a full decoder'"`
	V          bool   `cli:"name=v desc='log conversion steps to stderr'"`
	XMLRoot    string `cli:"name=root desc='root element name for xml output'"`
	ConfigFile string `cli:"name=config desc='yaml config file'"`

	InFormat, OutFormat *format.Format

	// File holds what was read from the config file, if any.
	File *FileConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// FileConfig is the shape of the optional YAML config file. Flags given
// on the command line take precedence over it.
type FileConfig struct {
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	Color   *bool  `yaml:"color"`
	Strict  *bool  `yaml:"strict"`
	XMLRoot string `yaml:"xmlRoot"`
}

func loadFileConfig(path string) (*FileConfig, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc := &FileConfig{}
	if err := yaml.Unmarshal(d, fc); err != nil {
		return nil, fmt.Errorf("error decoding config %s: %w", path, err)
	}
	return fc, nil
}

// applyFile merges fc into cfg wherever the corresponding flag was not
// given.
func (cfg *MainConfig) applyFile(fc *FileConfig) error {
	cfg.File = fc
	if cfg.InFormat == nil && fc.Input != "" {
		f, err := format.ParseFormat(fc.Input)
		if err != nil {
			return fmt.Errorf("config input: %w", err)
		}
		cfg.InFormat = &f
	}
	if cfg.OutFormat == nil && fc.Output != "" {
		f, err := format.ParseFormat(fc.Output)
		if err != nil {
			return fmt.Errorf("config output: %w", err)
		}
		cfg.OutFormat = &f
	}
	if fc.Strict != nil && !cfg.optSet("strict") {
		cfg.Strict = *fc.Strict
	}
	if cfg.XMLRoot == "" {
		cfg.XMLRoot = fc.XMLRoot
	}
	return nil
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// optSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

// inFormat is the format to read path as: -I, then the config file, then
// the file suffix, then detection.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if path != "-" {
		if f := format.FromPath(path); f.IsConcrete() {
			return f
		}
	}
	return format.AutoFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.JSONFormat
}

// colorOn decides whether output written to w is colored. An explicit
// -color wins, then the config file, then whether w is a terminal.
func (cfg *MainConfig) colorOn(w io.Writer) bool {
	if cfg.optSet("color") {
		return cfg.Color
	}
	if cfg.File != nil && cfg.File.Color != nil {
		return *cfg.File.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) converter(w io.Writer) *translator.Converter {
	opts := []translator.Option{
		translator.WithLogger(theLog),
		translator.WithStrict(cfg.Strict),
		translator.WithXMLRoot(cfg.XMLRoot),
	}
	if cfg.colorOn(w) {
		color.NoColor = false
		opts = append(opts, translator.WithColors(encode.NewColors()))
	}
	return translator.NewConverter(opts...)
}

// paint colors s with attrs when output to w is colored.
func (cfg *MainConfig) paint(w io.Writer, s string, attrs ...color.Attribute) string {
	if !cfg.colorOn(w) {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type DetectConfig struct {
	*MainConfig

	Detect *cli.Command
}

type ValidateConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`

	Validate *cli.Command
}

type ExampleConfig struct {
	*MainConfig

	Example *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Raw bool `cli:"name=raw desc='print results as raw json'"`

	Query *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env  map[string]any
	Test bool `cli:"name=test desc='print nothing, exit 1 unless the result is truthy'"`

	Eval *cli.Command
}
