package parse

import (
	"fmt"
	"strings"

	"github.com/Ssajaia/universal-data-translator/ir"
)

// TOML parses the line oriented subset of TOML: key/value pairs, dotted
// keys, [tables], [[arrays of tables]], single line arrays and inline
// tables. Values that are neither strings, numbers, booleans, arrays nor
// inline tables are kept as text.
func TOML(d []byte) (*ir.Node, error) {
	root := ir.NewObject()
	cur := root
	for i, raw := range splitLines(d) {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if !isContent(line) {
			continue
		}
		if strings.HasPrefix(line, "[") {
			t, err := tomlHeader(root, line)
			if err != nil {
				return nil, lineErr(lineNo, "%s", err)
			}
			cur = t
			continue
		}
		key, val, ok := cutAssignment(line)
		if !ok {
			return nil, lineErr(lineNo, "expected key = value, got %q", line)
		}
		val = strings.TrimSpace(stripComment(val))
		if val == "" {
			return nil, lineErr(lineNo, "missing value for key %q", key)
		}
		v, err := tomlValue(val)
		if err != nil {
			return nil, lineErr(lineNo, "%s", err)
		}
		if err := setDotted(cur, key, v); err != nil {
			return nil, lineErr(lineNo, "%s", err)
		}
	}
	return root, nil
}

// tomlHeader handles [a.b] and [[a.b]] lines and returns the table that
// following assignments go to.
func tomlHeader(root *ir.Node, line string) (*ir.Node, error) {
	if strings.HasPrefix(line, "[[") {
		end := indexUnquoted(line[2:], "]]")
		if end < 0 {
			return nil, fmt.Errorf("unterminated array table header %q", line)
		}
		parts, err := splitKey(line[2 : end+2])
		if err != nil {
			return nil, err
		}
		parent, err := walkTables(root, parts[:len(parts)-1])
		if err != nil {
			return nil, err
		}
		name := parts[len(parts)-1]
		arr := ir.Get(parent, name)
		switch {
		case arr == nil:
			arr = ir.NewArray()
			parent.Set(name, arr)
		case arr.Type != ir.ArrayType:
			return nil, fmt.Errorf("%q is not an array of tables", name)
		}
		t := ir.NewObject()
		arr.Append(t)
		return t, nil
	}
	end := indexUnquoted(line[1:], "]")
	if end < 0 {
		return nil, fmt.Errorf("unterminated table header %q", line)
	}
	parts, err := splitKey(line[1 : end+1])
	if err != nil {
		return nil, err
	}
	return walkTables(root, parts)
}

// walkTables descends from t along parts, creating missing tables. An
// array of tables is entered through its last element.
func walkTables(t *ir.Node, parts []string) (*ir.Node, error) {
	for _, part := range parts {
		next := ir.Get(t, part)
		if next == nil {
			next = ir.NewObject()
			t.Set(part, next)
		}
		if next.Type == ir.ArrayType && len(next.Values) > 0 {
			next = next.Values[len(next.Values)-1]
		}
		if next.Type != ir.ObjectType {
			return nil, fmt.Errorf("key %q is not a table", part)
		}
		t = next
	}
	return t, nil
}

func setDotted(t *ir.Node, key string, v *ir.Node) error {
	parts, err := splitKey(key)
	if err != nil {
		return err
	}
	target, err := walkTables(t, parts[:len(parts)-1])
	if err != nil {
		return err
	}
	target.Set(parts[len(parts)-1], v)
	return nil
}

// splitKey splits a dotted key on the dots outside quotes and unquotes
// each part.
func splitKey(key string) ([]string, error) {
	var parts []string
	rest := key
	for {
		i := indexUnquoted(rest, ".")
		part := rest
		if i >= 0 {
			part = rest[:i]
		}
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty key in %q", key)
		}
		parts = append(parts, unquoteEscaped(part))
		if i < 0 {
			return parts, nil
		}
		rest = rest[i+1:]
	}
}

// cutAssignment splits on the first '=' that is not inside a quoted key.
func cutAssignment(s string) (key, val string, ok bool) {
	i := indexUnquoted(s, "=")
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(s[:i]), s[i+1:], true
}

// indexUnquoted is strings.Index for the occurrences of sep outside
// quoted strings.
func indexUnquoted(s, sep string) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' && quote == '"' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case strings.HasPrefix(s[i:], sep):
			return i
		}
	}
	return -1
}

// tomlValue applies the value rules in order: quoted string, number,
// boolean, array, inline table, raw text.
func tomlValue(s string) (*ir.Node, error) {
	if quoted(s) {
		return ir.FromString(unquoteEscaped(s)), nil
	}
	if f, ok := ir.ParseNumber(s); ok {
		return ir.FromFloat(f), nil
	}
	if b, ok := parseBool(s); ok {
		return ir.FromBool(b), nil
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		arr := ir.NewArray()
		for _, elt := range splitTopLevel(s[1 : len(s)-1]) {
			if elt = strings.TrimSpace(elt); elt == "" {
				continue
			}
			v, err := tomlValue(elt)
			if err != nil {
				return nil, err
			}
			arr.Append(v)
		}
		return arr, nil
	}
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		obj := ir.NewObject()
		for _, pair := range splitTopLevel(s[1 : len(s)-1]) {
			if pair = strings.TrimSpace(pair); pair == "" {
				continue
			}
			k, v, ok := cutAssignment(pair)
			if !ok {
				return nil, fmt.Errorf("inline table entry %q is not key = value", pair)
			}
			val, err := tomlValue(strings.TrimSpace(v))
			if err != nil {
				return nil, err
			}
			if err := setDotted(obj, k, val); err != nil {
				return nil, err
			}
		}
		return obj, nil
	}
	return ir.FromString(s), nil
}

// splitTopLevel splits on commas outside brackets, braces and quotes.
func splitTopLevel(s string) []string {
	var (
		res   []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' && quote == '"' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[' || c == '{':
			depth++
		case c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			res = append(res, s[start:i])
			start = i + 1
		}
	}
	return append(res, s[start:])
}

// stripComment drops a trailing # comment that is outside quotes.
func stripComment(s string) string {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' && quote == '"' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return s[:i]
		}
	}
	return s
}
