package parse

import (
	"errors"
	"strings"
	"unicode"

	"github.com/Ssajaia/universal-data-translator/ir"
)

// YAML parses the indentation-driven subset of YAML: block mappings,
// block sequences and plain or quoted scalars, one document.
//
// Containers live on a stack of frames; a line belongs to the innermost
// frame whose indent is strictly less than its own.
func YAML(d []byte) (*ir.Node, error) {
	lines := splitLines(d)
	content := make([]int, 0, len(lines))
	for i, ln := range lines {
		if isContent(strings.TrimSpace(ln)) {
			content = append(content, i)
		}
	}

	root := ir.NewObject()
	if len(content) > 0 && isItem(strings.TrimSpace(lines[content[0]])) {
		root = ir.NewArray()
	}
	p := &yamlParser{stack: []yamlFrame{{node: root, indent: -1}}}

	for ci, li := range content {
		next := ""
		if ci+1 < len(content) {
			next = strings.TrimSpace(lines[content[ci+1]])
		}
		if err := p.line(li+1, lines[li], next); err != nil {
			return nil, err
		}
	}
	return root, nil
}

type yamlFrame struct {
	node   *ir.Node
	indent int
}

type yamlParser struct {
	stack []yamlFrame
}

func (p *yamlParser) push(n *ir.Node, indent int) {
	p.stack = append(p.stack, yamlFrame{node: n, indent: indent})
}

func (p *yamlParser) line(lineNo int, line, next string) error {
	indent := strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) })
	for len(p.stack) > 1 && indent <= p.stack[len(p.stack)-1].indent {
		p.stack = p.stack[:len(p.stack)-1]
	}
	cur := p.stack[len(p.stack)-1].node
	trimmed := strings.TrimSpace(line)

	if isItem(trimmed) {
		return p.item(lineNo, cur, trimmed, indent, next)
	}
	key, val, ok := splitYAMLKey(trimmed)
	if !ok {
		return lineErr(lineNo, "expected \"key: value\" or \"- item\", got %q", trimmed)
	}
	if cur.Type != ir.ObjectType {
		return lineErr(lineNo, "mapping entry %q inside a sequence", key)
	}
	p.entry(cur, key, val, indent, next)
	return nil
}

// entry assigns key in obj. An empty value opens a nested container whose
// kind depends on whether the next content line is a sequence item.
func (p *yamlParser) entry(obj *ir.Node, key, val string, indent int, next string) {
	if val != "" {
		obj.Set(key, coerceScalar(val))
		return
	}
	child := ir.NewObject()
	if isItem(next) {
		child = ir.NewArray()
	}
	obj.Set(key, child)
	p.push(child, indent)
}

func (p *yamlParser) item(lineNo int, cur *ir.Node, trimmed string, indent int, next string) error {
	seq, err := sequenceFor(cur)
	if err != nil {
		return lineErr(lineNo, "%s", err)
	}
	rest := strings.TrimLeftFunc(trimmed[1:], unicode.IsSpace)
	if rest == "" {
		elem := ir.NewObject()
		if isItem(next) {
			elem = ir.NewArray()
		}
		seq.Append(elem)
		p.push(elem, indent)
		return nil
	}
	key, val, ok := splitYAMLKey(rest)
	if !ok || quoted(rest) || strings.HasPrefix(rest, "- ") {
		seq.Append(coerceScalar(rest))
		return nil
	}
	elem := ir.NewObject()
	seq.Append(elem)
	p.push(elem, indent)
	// keys of this element line up with the text after the dash
	p.entry(elem, key, val, indent+len(trimmed)-len(rest), next)
	return nil
}

// sequenceFor finds the sequence a "- item" line appends to. Inside a
// mapping that is the most recently assigned key, which is promoted to a
// sequence (keeping its prior value as first element) if needed.
func sequenceFor(cur *ir.Node) (*ir.Node, error) {
	if cur.Type == ir.ArrayType {
		return cur, nil
	}
	key, val := cur.Last()
	if val == nil {
		return nil, errNoParentKey
	}
	if val.Type == ir.ArrayType {
		return val, nil
	}
	seq := ir.FromSlice([]*ir.Node{val})
	cur.Set(key, seq)
	return seq, nil
}

var errNoParentKey = errors.New("sequence item without a parent key")

func isItem(trimmed string) bool {
	if !strings.HasPrefix(trimmed, "-") {
		return false
	}
	return len(trimmed) == 1 || trimmed[1] == ' ' || trimmed[1] == '\t'
}

// splitYAMLKey splits "key: value" on the first ": " after the key, or
// takes a "key:" opener. A quoted key may itself contain ": ".
func splitYAMLKey(s string) (key, val string, ok bool) {
	start := 0
	if s != "" && (s[0] == '"' || s[0] == '\'') {
		end := closingQuote(s)
		if end < 0 {
			return "", "", false
		}
		start = end + 1
	}
	rest := s[start:]
	if i := strings.Index(rest, ": "); i >= 0 {
		return unquoteEscaped(strings.TrimSpace(s[:start+i])), strings.TrimSpace(rest[i+2:]), true
	}
	if strings.HasSuffix(rest, ":") {
		return unquoteEscaped(strings.TrimSpace(s[:len(s)-1])), "", true
	}
	return "", "", false
}

// closingQuote returns the index of the quote closing the one at s[0],
// honouring backslash escapes inside double quotes, or -1.
func closingQuote(s string) int {
	q := s[0]
	for i := 1; i < len(s); i++ {
		switch {
		case s[i] == '\\' && q == '"':
			i++
		case s[i] == q:
			return i
		}
	}
	return -1
}
