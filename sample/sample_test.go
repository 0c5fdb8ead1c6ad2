package sample

import (
	"strings"
	"testing"

	"github.com/Ssajaia/universal-data-translator/format"
)

func TestPerson(t *testing.T) {
	for _, f := range format.AllFormats() {
		s, err := Person(f)
		if err != nil {
			t.Fatalf("Person(%s): %v", f, err)
		}
		if !strings.Contains(s, "Alice Johnson") {
			t.Errorf("Person(%s) does not mention Alice Johnson", f)
		}
	}
	if _, err := Person(format.AutoFormat); err == nil {
		t.Error("Person(auto) should fail")
	}
}
