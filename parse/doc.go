// Package parse turns JSON, YAML, XML and TOML text into an [ir.Node].
//
// # Usage
//
//	node, err := parse.Parse(data, parse.ParseYAML())
//
//	// or call a format directly
//	node, err = parse.TOML(data)
//
// JSON goes through encoding/json and XML through encoding/xml. The YAML
// and TOML parsers are deliberately small line oriented readers: no
// anchors, multi-line scalars, flow collections, date-times or
// multi-line strings. Every error wraps [ErrParse] and no partial tree is
// returned alongside it.
//
// # Related Packages
//
//   - github.com/Ssajaia/universal-data-translator/ir - IR representation
//   - github.com/Ssajaia/universal-data-translator/encode - Encode IR to text
package parse
