package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Ssajaia/universal-data-translator/format"
	"github.com/Ssajaia/universal-data-translator/parse"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

var ErrInvalid = errors.New("invalid input")

// Error describes why a document was rejected.
type Error struct {
	Format format.Format
	Line   int // 1-based, 0 when the whole document is at fault
	Reason string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Reason)
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalid}
	}
	return []error{ErrInvalid, e.Err}
}

type opts struct {
	strict bool
}

type Option func(*opts)

// Strict also decodes YAML with goccy/go-yaml and TOML with
// BurntSushi/toml after the line checks pass.
func Strict(v bool) Option {
	return func(o *opts) { o.strict = v }
}

// Validate reports whether text is plausibly a document in f. It returns
// nil or an error wrapping ErrInvalid, usually an *Error.
func Validate(text string, f format.Format, options ...Option) error {
	o := &opts{}
	for _, opt := range options {
		opt(o)
	}
	switch f {
	case format.JSONFormat:
		return validateJSON(text)
	case format.XMLFormat:
		return validateXML(text)
	case format.YAMLFormat:
		if err := validateYAML(text); err != nil || !o.strict {
			return err
		}
		var v any
		if err := yaml.Unmarshal([]byte(text), &v); err != nil {
			return &Error{Format: f, Reason: "Invalid YAML structure", Err: err}
		}
		return nil
	case format.TOMLFormat:
		if err := validateTOML(text); err != nil || !o.strict {
			return err
		}
		var v map[string]any
		if _, err := toml.Decode(text, &v); err != nil {
			return &Error{Format: f, Reason: "Invalid TOML structure", Err: err}
		}
		return nil
	default:
		return fmt.Errorf("%w: %w: cannot validate %s", ErrInvalid, format.ErrBadFormat, f)
	}
}

func validateJSON(text string) error {
	if _, err := parse.JSON([]byte(text)); err != nil {
		return &Error{Format: format.JSONFormat, Reason: "Invalid JSON", Err: err}
	}
	return nil
}

func validateXML(text string) error {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "<") {
		return &Error{Format: format.XMLFormat, Reason: "Invalid XML: Must start with <?xml or a tag"}
	}
	if err := parse.WellFormed([]byte(text)); err != nil {
		return &Error{Format: format.XMLFormat, Reason: "Invalid XML structure", Err: err}
	}
	return nil
}

const (
	// one bare or quoted key
	keySeg = `(?:[\w-]+|"(?:[^"\\]|\\.)*"|'[^']*')`
	// dotted toml key, quoted parts allowed
	tomlKey = keySeg + `(?:\s*\.\s*` + keySeg + `)*`
)

var (
	// key: value, key:, and their indented forms; keys may be quoted
	yamlKey = regexp.MustCompile(`^\s*` + keySeg + `:(\s|$)`)
	// - value and bare -, indented or not
	yamlItem = regexp.MustCompile(`^\s*-(\s|$)`)

	tomlLine = []*regexp.Regexp{
		regexp.MustCompile(`^` + tomlKey + `\s*=\s*(["'\d\[\{+-]|true\b|false\b)`),
		regexp.MustCompile(`^"[^"]*"\s*=`),
		regexp.MustCompile(`^'[^']*'\s*=`),
		regexp.MustCompile(`^\[\s*` + tomlKey + `\s*\]`),
		regexp.MustCompile(`^\[\[\s*` + tomlKey + `\s*\]\]`),
	}
)

func validateYAML(text string) error {
	return eachLine(text, format.YAMLFormat, "Invalid YAML structure", func(raw, _ string) bool {
		return yamlKey.MatchString(raw) || yamlItem.MatchString(raw)
	})
}

func validateTOML(text string) error {
	return eachLine(text, format.TOMLFormat, "Invalid TOML structure", func(_, trimmed string) bool {
		for _, re := range tomlLine {
			if re.MatchString(trimmed) {
				return true
			}
		}
		return false
	})
}

// eachLine applies ok to every non-blank, non-comment line and reports the
// first line it rejects.
func eachLine(text string, f format.Format, reason string, ok func(raw, trimmed string) bool) error {
	for i, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !ok(raw, trimmed) {
			return &Error{Format: f, Line: i + 1, Reason: reason, Err: fmt.Errorf("unexpected %q", trimmed)}
		}
	}
	return nil
}
