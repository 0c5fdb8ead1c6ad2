package detect

import (
	"testing"

	"github.com/Ssajaia/universal-data-translator/format"
	"github.com/Ssajaia/universal-data-translator/sample"
	"github.com/google/go-cmp/cmp"
)

func TestDetectSamples(t *testing.T) {
	for _, f := range format.AllFormats() {
		if got := Detect(sample.MustPerson(f)); got != f {
			t.Errorf("Detect(person.%s) = %s", f, got)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want format.Format
	}{
		{"empty", "", format.UnknownFormat},
		{"blank", " \n\t\n", format.UnknownFormat},
		{"json array", " [1, 2, 3] ", format.JSONFormat},
		{"json scalar is not detected", `"x"`, format.UnknownFormat},
		{"broken json", `{"a": }`, format.UnknownFormat},
		{"xml without prolog", "<a><b>1</b></a>", format.XMLFormat},
		{"xml prolog self closed", `<?xml version="1.0"?><a/>`, format.XMLFormat},
		{"broken xml", "<a><b></a>", format.UnknownFormat},
		{"plain text", "hello world\nfoo bar", format.UnknownFormat},
		{"yaml list", "- a\n- b", format.YAMLFormat},
		{"toml tables", "[a]\nx = 1\n[[b]]\ny = 'q'", format.TOMLFormat},
		{"tie", "a: 1\nb = 2", format.UnknownFormat},
		{"yaml at threshold", "a: 1\nx\ny\nz\nw", format.UnknownFormat},
		{"yaml over threshold", "a: 1\nb: 2\nx\ny\nz", format.YAMLFormat},
		{"comments count as lines", "# one\n# two\n# three\n# four\nk = 1", format.UnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.in); got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestScores(t *testing.T) {
	got := Scores("name: x\n  inner: y\n- item\n\n# c\nk = 'v'\n[t]\n")
	want := Score{YAML: 3, TOML: 2, Lines: 7}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scores mismatch (-want +got):\n%s", diff)
	}
}
