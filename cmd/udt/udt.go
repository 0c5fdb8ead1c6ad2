package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"
)

func udtMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		err = cfg.finish(err)
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.V {
		logLevel.Set(slog.LevelDebug)
	}
	if err := cfg.loadConfig(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		return cli.ExitCodeErr(sub.Exit(cc, err))
	}
	return err
}

// finish closes the -o output. A close error only surfaces when the
// command itself succeeded.
func (cfg *MainConfig) finish(err error) error {
	if cfg.CloseOut == nil {
		return err
	}
	cerr := cfg.CloseOut()
	cfg.CloseOut = nil
	if err != nil {
		return err
	}
	return cerr
}

// loadConfig reads -config, or $UDT_CONFIG when -config is absent.
func (cfg *MainConfig) loadConfig() error {
	path := cfg.ConfigFile
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		return nil
	}
	fc, err := loadFileConfig(path)
	if err != nil {
		return err
	}
	theLog.Debug("config", "file", path)
	return cfg.applyFile(fc)
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readInput reads path, or standard input for "-".
func readInput(cc *cli.Context, path string) (string, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", path, err)
	}
	return string(d), nil
}

// inputs defaults to standard input.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
