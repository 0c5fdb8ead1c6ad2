// Package sample carries the canonical person record in every supported
// format. The four documents describe the same person and are used as
// examples by the command line tool and as fixtures by tests.
package sample

import (
	"embed"
	"fmt"

	"github.com/Ssajaia/universal-data-translator/format"
)

//go:embed person.*
var files embed.FS

// Person returns the canonical person record written in f.
func Person(f format.Format) (string, error) {
	if !f.IsConcrete() {
		return "", fmt.Errorf("%w: no example for %s", format.ErrBadFormat, f)
	}
	d, err := files.ReadFile("person" + f.Suffix())
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// MustPerson is Person for callers that know f is concrete.
func MustPerson(f format.Format) string {
	s, err := Person(f)
	if err != nil {
		panic(err)
	}
	return s
}
