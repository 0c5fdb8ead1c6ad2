package encode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Ssajaia/universal-data-translator/ir"
)

var tomlBareKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// encodeTOML writes each table's plain keys first, then its sub-tables,
// then its arrays of tables, so that no key lands in a later table.
func encodeTOML(node *ir.Node, es *EncState) (string, error) {
	if node.Type != ir.ObjectType {
		node = ir.FromKeyVals([]ir.KeyVal{{Key: "data", Val: node}})
	}
	b := &strings.Builder{}
	if err := tomlTable(b, node, "", es); err != nil {
		return "", err
	}
	return b.String(), nil
}

func isTableArray(v *ir.Node) bool {
	if v.Type != ir.ArrayType || v.Len() == 0 {
		return false
	}
	for _, elt := range v.Values {
		if elt.Type != ir.ObjectType {
			return false
		}
	}
	return true
}

func isTable(v *ir.Node) bool {
	return v.Type == ir.ObjectType && v.Len() > 0
}

func tomlTable(b *strings.Builder, t *ir.Node, prefix string, es *EncState) error {
	for i, f := range t.Fields {
		v := t.Values[i]
		if v.Type == ir.NullType || isTable(v) || isTableArray(v) {
			continue
		}
		val, err := tomlInline(v)
		if err != nil {
			return err
		}
		b.WriteString(es.color(ir.ObjectType, FieldColor, tomlKey(f.String)))
		b.WriteString(es.color(ir.ObjectType, SepColor, " = "))
		b.WriteString(es.color(v.Type, ValueColor, val))
		b.WriteString("\n")
	}
	for i, f := range t.Fields {
		v := t.Values[i]
		if !isTable(v) {
			continue
		}
		full := joinKey(prefix, f.String)
		tomlHeader(b, "["+full+"]", ir.ObjectType, es)
		if err := tomlTable(b, v, full, es); err != nil {
			return err
		}
	}
	for i, f := range t.Fields {
		v := t.Values[i]
		if !isTableArray(v) {
			continue
		}
		full := joinKey(prefix, f.String)
		for _, elt := range v.Values {
			tomlHeader(b, "[["+full+"]]", ir.ArrayType, es)
			if err := tomlTable(b, elt, full, es); err != nil {
				return err
			}
		}
	}
	return nil
}

func tomlHeader(b *strings.Builder, h string, t ir.Type, es *EncState) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(es.color(t, TagColor, h))
	b.WriteString("\n")
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return tomlKey(key)
	}
	return prefix + "." + tomlKey(key)
}

func tomlKey(k string) string {
	if tomlBareKey.MatchString(k) {
		return k
	}
	return tomlQuote(k)
}

// tomlInline renders a value on one line: scalars, arrays and inline
// tables. Nulls inside arrays and inline tables are skipped.
func tomlInline(v *ir.Node) (string, error) {
	switch v.Type {
	case ir.StringType:
		return tomlQuote(v.String), nil
	case ir.BoolType:
		return strconv.FormatBool(v.Bool), nil
	case ir.NumberType:
		switch {
		case math.IsNaN(v.Float64):
			return "nan", nil
		case math.IsInf(v.Float64, 1):
			return "inf", nil
		case math.IsInf(v.Float64, -1):
			return "-inf", nil
		}
		return ir.FormatNumber(v.Float64), nil
	case ir.ArrayType:
		parts := make([]string, 0, len(v.Values))
		for _, elt := range v.Values {
			if elt.Type == ir.NullType {
				continue
			}
			s, err := tomlInline(elt)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case ir.ObjectType:
		parts := make([]string, 0, len(v.Values))
		for i, f := range v.Fields {
			elt := v.Values[i]
			if elt.Type == ir.NullType {
				continue
			}
			s, err := tomlInline(elt)
			if err != nil {
				return "", err
			}
			parts = append(parts, tomlKey(f.String)+" = "+s)
		}
		if len(parts) == 0 {
			return "{}", nil
		}
		return "{ " + strings.Join(parts, ", ") + " }", nil
	default:
		return "", fmt.Errorf("%w: cannot write %s in TOML", ErrEncoding, v.Type)
	}
}

// tomlQuote writes a TOML basic string.
func tomlQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f || r == utf8.RuneError {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
