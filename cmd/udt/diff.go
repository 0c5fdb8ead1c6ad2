package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Ssajaia/universal-data-translator/format"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	conv := cfg.converter(io.Discard)
	docs := [2]string{}
	for i, path := range args {
		text, err := readInput(cc, path)
		if err != nil {
			return err
		}
		node, _, err := conv.Parse(text, cfg.inFormat(path))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", path, err)
		}
		docs[i], err = conv.Encode(node, format.JSONFormat)
		if err != nil {
			return err
		}
	}
	a, b := docs[0], docs[1]
	if cfg.Reverse {
		a, b = b, a
	}
	diffs := lineDiff(a, b)
	if !differs(diffs) {
		return nil
	}
	if err := cfg.writeDiff(cc.Out, diffs); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// lineDiff diffs a and b a line at a time.
func lineDiff(a, b string) []diffpatch.Diff {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a+"\n", b+"\n")
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func differs(diffs []diffpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

func (cfg *DiffConfig) writeDiff(w io.Writer, diffs []diffpatch.Diff) error {
	b := &strings.Builder{}
	for _, d := range diffs {
		var (
			prefix string
			attr   color.Attribute
		)
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, attr = "-", color.FgRed
		case diffpatch.DiffInsert:
			prefix, attr = "+", color.FgGreen
		case diffpatch.DiffEqual:
			prefix = " "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = prefix + strings.TrimSuffix(line, "\n")
			if d.Type != diffpatch.DiffEqual {
				line = cfg.paint(w, line, attr)
			}
			b.WriteString(line + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
