package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	UnknownFormat Format = iota
	JSONFormat
	YAMLFormat
	XMLFormat
	TOMLFormat
	// AutoFormat asks for detection; it is only meaningful as an input format.
	AutoFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yml":  YAMLFormat,
		"yaml": YAMLFormat,
		"x":    XMLFormat,
		"xml":  XMLFormat,
		"t":    TOMLFormat,
		"toml": TOMLFormat,
		"a":    AutoFormat,
		"auto": AutoFormat,
	}[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return UnknownFormat, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case UnknownFormat:
		return []byte("unknown"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case XMLFormat:
		return []byte("xml"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	case AutoFormat:
		return []byte("auto"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Title is the upper case name used in messages, e.g. "YAML".
func (f Format) Title() string {
	return strings.ToUpper(f.String())
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }
func (f Format) IsXML() bool  { return f == XMLFormat }
func (f Format) IsTOML() bool { return f == TOMLFormat }

// IsConcrete reports whether f names one of the four supported
// serialization formats.
func (f Format) IsConcrete() bool {
	switch f {
	case JSONFormat, YAMLFormat, XMLFormat, TOMLFormat:
		return true
	default:
		return false
	}
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case XMLFormat:
		return ".xml"
	case TOMLFormat:
		return ".toml"
	default:
		return ""
	}
}

// FromPath infers a format from the extension of a file path. It returns
// UnknownFormat when the extension is not recognised.
func FromPath(p string) Format {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".json":
		return JSONFormat
	case ".yaml", ".yml":
		return YAMLFormat
	case ".xml":
		return XMLFormat
	case ".toml":
		return TOMLFormat
	default:
		return UnknownFormat
	}
}

// AllFormats returns all concrete formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat, XMLFormat, TOMLFormat}
}
