package main

import (
	"fmt"
	"strings"

	"github.com/Ssajaia/universal-data-translator/encode"
	"github.com/Ssajaia/universal-data-translator/ir"
	"github.com/Ssajaia/universal-data-translator/parse"

	"github.com/scott-cotton/cli"
	"github.com/tidwall/gjson"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	conv := cfg.converter(cc.Out)
	missing := false
	for _, arg := range inputs(args[1:]) {
		text, err := readInput(cc, arg)
		if err != nil {
			return err
		}
		doc, _, err := conv.Parse(text, cfg.inFormat(arg))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := selectPath(doc, path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
		if !res.Exists() {
			missing = true
			continue
		}
		out, err := cfg.render(cc, res)
		if err != nil {
			return err
		}
		if err := writeLine(cc.Out, out); err != nil {
			return err
		}
	}
	if missing {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func selectPath(doc *ir.Node, path string) (gjson.Result, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.GetBytes(d, path), nil
}

// render writes a result in the output format unless -raw asks for the
// matched json as is.
func (cfg *QueryConfig) render(cc *cli.Context, res gjson.Result) (string, error) {
	if cfg.Raw {
		return strings.TrimSuffix(string(encode.Pretty([]byte(res.Raw), 2)), "\n"), nil
	}
	node, err := parse.JSON([]byte(res.Raw))
	if err != nil {
		return "", err
	}
	return cfg.converter(cc.Out).Encode(node, cfg.outFormat())
}
