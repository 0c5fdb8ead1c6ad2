package main

import (
	"fmt"
	"os"

	"github.com/Ssajaia/universal-data-translator/ir"
	"github.com/Ssajaia/universal-data-translator/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a json patch, and files to which to apply it", cli.ErrUsage)
	}
	ops, err := cfg.getPatch(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	conv := cfg.converter(cc.Out)
	for _, path := range inputs(args[1:]) {
		text, err := readInput(cc, path)
		if err != nil {
			return err
		}
		target, from, err := conv.Parse(text, cfg.inFormat(path))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", path, err)
		}
		res, err := applyPatch(target, ops)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", path, err)
		}
		to := from
		if cfg.OutFormat != nil {
			to = *cfg.OutFormat
		}
		out, err := conv.Encode(res, to)
		if err != nil {
			return err
		}
		if err := writeLine(cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}

// getPatch reads arg as a patch file, or as the patch itself with -s.
func (cfg *PatchConfig) getPatch(arg string) (jsonpatch.Patch, error) {
	d := []byte(arg)
	if !cfg.String {
		var err error
		d, err = os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
	}
	return jsonpatch.DecodePatch(d)
}

func applyPatch(doc *ir.Node, ops jsonpatch.Patch) (*ir.Node, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return parse.JSON(out)
}
