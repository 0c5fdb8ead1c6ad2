// Package translator converts documents between JSON, YAML, XML and TOML.
//
// # Usage
//
//	out, err := translator.Convert(text, format.AutoFormat, format.YAMLFormat)
//
//	// or keep a configured converter around
//	c := translator.NewConverter(translator.WithLogger(log), translator.WithStrict(true))
//	out, err = c.Convert(text, format.TOMLFormat, format.JSONFormat)
//
// A conversion trims its input, resolves [format.AutoFormat] with the
// detector, validates the text, then either reprints it (same input and
// output format) or parses it into an [ir.Node] and encodes that. Every
// failure is an [*Error] whose Kind says which step failed; match kinds
// with errors.Is and the sentinel errors of this package.
//
// [Converter.Parse] and [Converter.Encode] expose the two halves
// separately for callers that want to work on the tree in between.
//
// # Related Packages
//
//   - github.com/Ssajaia/universal-data-translator/detect - format detection
//   - github.com/Ssajaia/universal-data-translator/validate - structural checks
//   - github.com/Ssajaia/universal-data-translator/parse - Parse text to IR
//   - github.com/Ssajaia/universal-data-translator/encode - Encode IR to text
package translator
