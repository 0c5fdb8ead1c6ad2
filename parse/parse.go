package parse

import (
	"fmt"

	"github.com/Ssajaia/universal-data-translator/format"
	"github.com/Ssajaia/universal-data-translator/ir"
)

// Parse reads d in the format selected by opts (JSON by default) and
// returns the complete tree, or an error wrapping ErrParse and no tree.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat:
		return JSON(d)
	case format.YAMLFormat:
		return YAML(d)
	case format.XMLFormat:
		return XML(d)
	case format.TOMLFormat:
		return TOML(d)
	default:
		return nil, fmt.Errorf("%w: cannot parse %s", format.ErrBadFormat, pOpts.format)
	}
}
