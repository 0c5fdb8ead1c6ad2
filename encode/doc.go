// Package encode writes IR nodes as JSON, YAML, XML or TOML text.
//
// # Usage
//
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.TOMLFormat))
//
//	// XML with a custom root element and terminal colors
//	err = encode.Encode(node, w,
//	    encode.EncodeFormat(format.XMLFormat),
//	    encode.XMLRoot("person"),
//	    encode.EncodeColors(encode.NewColors()))
//
// The output of every format ends with a single newline.
//
// Not every node survives every format. XML drops [ir.AttributesKey]
// entries and renders null as the text "null"; TOML omits nulls and wraps
// a root that is not an object under "data"; the YAML emitter writes
// empty collections as {} and [].
//
// # Related Packages
//
//   - github.com/Ssajaia/universal-data-translator/ir - IR representation
//   - github.com/Ssajaia/universal-data-translator/parse - Parse text to IR
package encode
