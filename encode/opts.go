package encode

import "github.com/Ssajaia/universal-data-translator/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Indent sets the number of spaces per nesting level for JSON and YAML.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// XMLRoot names the element wrapping the whole value in XML output.
func XMLRoot(name string) EncodeOption {
	return func(es *EncState) { es.xmlRoot = name }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
