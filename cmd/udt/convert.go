package main

import (
	"errors"
	"fmt"

	translator "github.com/Ssajaia/universal-data-translator"
	"github.com/Ssajaia/universal-data-translator/format"
	"github.com/Ssajaia/universal-data-translator/sample"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	conv := cfg.converter(cc.Out)
	to := cfg.outFormat()
	for _, path := range inputs(args) {
		text, err := readInput(cc, path)
		if err != nil {
			return err
		}
		out, err := conv.Convert(text, cfg.inFormat(path), to)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", path, err)
		}
		if err := writeLine(cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}

func detect(cfg *DetectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Detect.Parse(cc, args)
	if err != nil {
		return err
	}
	conv := cfg.converter(cc.Out)
	unknown := false
	for _, path := range inputs(args) {
		text, err := readInput(cc, path)
		if err != nil {
			return err
		}
		f := conv.DetectFormat(text)
		if f == format.UnknownFormat {
			unknown = true
		}
		line := f.String()
		if len(args) > 1 {
			line = path + ": " + line
		}
		if err := writeLine(cc.Out, line); err != nil {
			return err
		}
	}
	if unknown {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	conv := cfg.converter(cc.Out)
	failed := false
	for _, path := range inputs(args) {
		text, err := readInput(cc, path)
		if err != nil {
			return err
		}
		status := cfg.paint(cc.Out, "ok", color.FgGreen)
		verr := conv.Validate(text, cfg.inFormat(path))
		if verr != nil {
			var terr *translator.Error
			if !errors.As(verr, &terr) {
				return verr
			}
			failed = true
			status = cfg.paint(cc.Out, terr.Error(), color.FgRed)
		}
		if cfg.Quiet {
			continue
		}
		if err := writeLine(cc.Out, path+": "+status); err != nil {
			return err
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func example(cfg *ExampleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Example.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: example requires a format", cli.ErrUsage)
	}
	f, err := format.ParseFormat(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	text, err := sample.Person(f)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if cfg.OutFormat != nil && *cfg.OutFormat != f {
		text, err = cfg.converter(cc.Out).Convert(text, f, *cfg.OutFormat)
		if err != nil {
			return err
		}
	}
	return writeLine(cc.Out, text)
}
