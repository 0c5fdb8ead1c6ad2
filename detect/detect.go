// Package detect guesses the format of a document from its text.
//
// Detection is a heuristic. JSON and XML are recognised by their
// delimiters and confirmed with a full check; YAML and TOML are told apart
// by tallying lines that look like one or the other.
package detect

import (
	"regexp"
	"strings"

	"github.com/Ssajaia/universal-data-translator/format"
	"github.com/Ssajaia/universal-data-translator/parse"

	"github.com/tidwall/gjson"
)

// MinShare is the fraction of all lines that must look like YAML (or
// TOML) before the text is classified as such.
const MinShare = 0.2

var (
	yamlLine = []*regexp.Regexp{
		regexp.MustCompile(`^[\w-]+:\s*\S`),
		regexp.MustCompile(`^-\s+\S`),
		regexp.MustCompile(`^\s+\w+:\s*\S`),
	}
	tomlLine = []*regexp.Regexp{
		regexp.MustCompile(`^\w+\s*=\s*["'\d\[\{]`),
		regexp.MustCompile(`^\[\[[\w.]+\]\]`),
		regexp.MustCompile(`^\[[\w.]+\]`),
	}
)

// Score is the line tally behind a YAML/TOML decision.
type Score struct {
	YAML  int
	TOML  int
	Lines int
}

// Detect returns the format of text, or format.UnknownFormat when none
// can be determined.
func Detect(text string) format.Format {
	text = strings.TrimSpace(text)
	if text == "" {
		return format.UnknownFormat
	}
	if looksJSON(text) && gjson.Valid(text) {
		return format.JSONFormat
	}
	if looksXML(text) && parse.WellFormed([]byte(text)) == nil {
		return format.XMLFormat
	}
	return Scores(text).Format()
}

func looksJSON(s string) bool {
	return (strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")) ||
		(strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"))
}

func looksXML(s string) bool {
	return strings.HasPrefix(s, "<?xml") ||
		(strings.HasPrefix(s, "<") && strings.Contains(s, "</"))
}

// Scores tallies the lines of text that look like YAML and like TOML. A
// line may count for both. Blank and comment lines count only towards
// Lines.
func Scores(text string) Score {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	sc := Score{Lines: len(lines)}
	for _, ln := range lines {
		ln = strings.TrimSuffix(ln, "\r")
		trimmed := strings.TrimSpace(ln)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if anyMatch(yamlLine, ln) {
			sc.YAML++
		}
		if anyMatch(tomlLine, trimmed) {
			sc.TOML++
		}
	}
	return sc
}

// Format applies the MinShare threshold to the tally.
func (sc Score) Format() format.Format {
	bar := MinShare * float64(sc.Lines)
	switch {
	case sc.YAML > sc.TOML && float64(sc.YAML) > bar:
		return format.YAMLFormat
	case sc.TOML > sc.YAML && float64(sc.TOML) > bar:
		return format.TOMLFormat
	}
	return format.UnknownFormat
}

func anyMatch(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
