package parse

import (
	"errors"
	"testing"

	"github.com/Ssajaia/universal-data-translator/format"
	"github.com/Ssajaia/universal-data-translator/ir"
	"github.com/Ssajaia/universal-data-translator/sample"
)

type parseTest struct {
	name string
	in   string
	want string // compact JSON of the expected tree
}

func toJSON(t *testing.T, n *ir.Node) string {
	t.Helper()
	d, err := n.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	return string(d)
}

func runParseTests(t *testing.T, f format.Format, pts []parseTest) {
	t.Helper()
	for _, pt := range pts {
		t.Run(pt.name, func(t *testing.T) {
			node, err := Parse([]byte(pt.in), ParseFormat(f))
			if err != nil {
				t.Fatalf("Parse(%s) error: %v", f, err)
			}
			if got := toJSON(t, node); got != pt.want {
				t.Errorf("Parse(%s)\n got %s\nwant %s", f, got, pt.want)
			}
		})
	}
}

func runParseErrTests(t *testing.T, f format.Format, ins []string) {
	t.Helper()
	for _, in := range ins {
		node, err := Parse([]byte(in), ParseFormat(f))
		if !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%s, %q) error = %v, want ErrParse", f, in, err)
		}
		if node != nil {
			t.Errorf("Parse(%s, %q) returned a tree alongside an error", f, in)
		}
	}
}

const personJSON = `{"name":"Alice Johnson","age":28,"isStudent":false,"courses":["Math","Computer Science","Physics"],"address":{"city":"Boston","zip":"02101"}}`

func TestParseJSON(t *testing.T) {
	runParseTests(t, format.JSONFormat, []parseTest{
		{"person", sample.MustPerson(format.JSONFormat), personJSON},
		{"order kept", `{"z":1,"a":2,"m":3}`, `{"z":1,"a":2,"m":3}`},
		{"duplicate key", `{"a":1,"b":2,"a":3}`, `{"a":3,"b":2}`},
		{"scalars", `[null,true,false,1.5,-2e3,"x"]`, `[null,true,false,1.5,-2000,"x"]`},
		{"scalar root", `"hi"`, `"hi"`},
		{"nested empty", `{"a":{},"b":[]}`, `{"a":{},"b":[]}`},
		{"out of range numbers", `[1e999,-1e999,1e-999]`, `[null,null,0]`},
	})
	runParseErrTests(t, format.JSONFormat, []string{
		``,
		`{`,
		`{"a" 1}`,
		`[1,]`,
		`{} {}`,
		`{} x`,
		`{'a':1}`,
	})
}

func TestParseYAML(t *testing.T) {
	runParseTests(t, format.YAMLFormat, []parseTest{
		{"person", sample.MustPerson(format.YAMLFormat), personJSON},
		{"scalar coercion",
			"a: 'q'\nb: \"1\"\nc: 1.50\nd: TRUE\ne: False\nf: plain text\ng: 02101",
			`{"a":"q","b":"1","c":1.5,"d":true,"e":false,"f":"plain text","g":2101}`},
		{"value split on first colon",
			"time: 10: 30",
			`{"time":"10: 30"}`},
		{"nested mappings",
			"a:\n  b:\n    c: 1\n  d: 2\ne: 3",
			`{"a":{"b":{"c":1},"d":2},"e":3}`},
		{"sequence at key indent",
			"courses:\n- Math\n- Physics\nafter: 1",
			`{"courses":["Math","Physics"],"after":1}`},
		{"scalar promoted to sequence",
			"tags: one\n- two\n- 3",
			`{"tags":["one","two",3]}`},
		{"sequence of mappings",
			"courses:\n- name: Math\n  credits: 3\n- name: CS",
			`{"courses":[{"name":"Math","credits":3},{"name":"CS"}]}`},
		{"indented sequence of mappings",
			"courses:\n  - name: Math\n    credits: 3\n  - name: CS",
			`{"courses":[{"name":"Math","credits":3},{"name":"CS"}]}`},
		{"bare dash items",
			"items:\n-\n  a: 1\n-\n  - x\n  - y",
			`{"items":[{"a":1},["x","y"]]}`},
		{"item opening a mapping",
			"people:\n- address:\n    city: Boston\n  name: Al",
			`{"people":[{"address":{"city":"Boston"},"name":"Al"}]}`},
		{"sequence root",
			"- a\n- 2\n- true",
			`["a",2,true]`},
		{"quoted keys and items",
			"\"first name\": Al\nlist:\n- \"a: b\"",
			`{"first name":"Al","list":["a: b"]}`},
		{"double quoted escapes",
			`q: "\"hi\" there"` + "\n" + `t: "a\tb\\c"` + "\n" + `s: 'it\s'`,
			`{"q":"\"hi\" there","t":"a\tb\\c","s":"it\\s"}`},
		{"quoted key with colon and escapes",
			`"k: \"x\"": 1` + "\n" + `list:` + "\n" + `- "a\nb"`,
			`{"k: \"x\"":1,"list":["a\nb"]}`},
		{"comments blank lines and CRLF",
			"# head\r\n\r\na: 1\r\n  # inner\r\nb: x\r\n",
			`{"a":1,"b":"x"}`},
		{"empty document", "", `{}`},
		{"duplicate key keeps position", "a: 1\nb: 2\na: 3", `{"a":3,"b":2}`},
	})
	runParseErrTests(t, format.YAMLFormat, []string{
		"a: 1\nnot valid",
		"- a\n  b: 1",
	})
}

func TestParseXML(t *testing.T) {
	runParseTests(t, format.XMLFormat, []parseTest{
		{"person", sample.MustPerson(format.XMLFormat),
			`{"person":{"name":"Alice Johnson","age":"28","isStudent":"false","courses":{"course":["Math","Computer Science","Physics"]},"address":{"city":"Boston","zip":"02101"}}}`},
		{"attributes",
			`<book id="7" lang="en"><title>Go</title></book>`,
			`{"book":{"@attributes":{"id":"7","lang":"en"},"title":"Go"}}`},
		{"leaf with attributes collapses to text",
			`<a><b x="1">hi</b></a>`,
			`{"a":{"b":"hi"}}`},
		{"empty element", `<a><b/></a>`, `{"a":{"b":{}}}`},
		{"mixed content", `<a> hello <b>x</b></a>`, `{"a":{"#text":"hello","b":"x"}}`},
		{"repeated tags",
			`<r><i>1</i><j>x</j><i>2</i><i>3</i></r>`,
			`{"r":{"i":["1","2","3"],"j":"x"}}`},
		{"entities", `<a>&lt;x&gt; &amp; y</a>`, `{"a":"<x> & y"}`},
		{"prefixed names",
			`<ns:a xmlns:ns="urn:x"><ns:b>1</ns:b></ns:a>`,
			`{"ns:a":{"@attributes":{"xmlns:ns":"urn:x"},"ns:b":"1"}}`},
		{"comments ignored", `<a><!-- c --><b>1</b></a>`, `{"a":{"b":"1"}}`},
	})
	runParseErrTests(t, format.XMLFormat, []string{
		``,
		`<a><b></a>`,
		`<a>`,
		`<a></a><b></b>`,
		`text<a/>`,
		`<a>&nbsp;</a>`,
		`just text`,
	})
}

func TestParseTOML(t *testing.T) {
	runParseTests(t, format.TOMLFormat, []parseTest{
		{"person", sample.MustPerson(format.TOMLFormat),
			`{"name":"Alice Johnson","age":28,"isStudent":false,"courses":[{"name":"Math"},{"name":"Computer Science"},{"name":"Physics"}],"address":{"city":"Boston","zip":"02101"}}`},
		{"everything", `title = "x" # comment
[server.http]
port = 8080
hosts = ["a", "b", ]
limits = { max = 10, name = "n" }
flags = [true, [1, 2], "c,d"]

[[server.routes]]
path = "/"
[[server.routes]]
path = "/api"
[server.routes.meta]
owner = 'me'
"quoted.key" = 1
a.b = 2
date = 1979-05-27
empty = []
`, `{"title":"x","server":{"http":{"port":8080,"hosts":["a","b"],"limits":{"max":10,"name":"n"},"flags":[true,[1,2],"c,d"]},"routes":[{"path":"/"},{"path":"/api","meta":{"owner":"me","quoted.key":1,"a":{"b":2},"date":"1979-05-27","empty":[]}}]}}`},
		{"value split on first equals", `url = "a=b"`, `{"url":"a=b"}`},
		{"escapes", `s = "tab\there \"q\""`, `{"s":"tab\there \"q\""}`},
		{"header comment", "[a] # table a\nx = 1", `{"a":{"x":1}}`},
		{"dot inside quoted header", "[a.\"b.c\"]\nx = 1", `{"a":{"b.c":{"x":1}}}`},
		{"quoted headers", "[\"my table\"]\nk = 1\n[[\"t s\".'u]v']]\nn = 2",
			`{"my table":{"k":1},"t s":{"u]v":[{"n":2}]}}`},
		{"quoted dotted key", `a."x=y" = 1` + "\n" + `"p.q".r = 2`, `{"a":{"x=y":1},"p.q":{"r":2}}`},
	})
	runParseErrTests(t, format.TOMLFormat, []string{
		"x = ",
		"a = 1\n[a]",
		"garbage",
		"[[a",
		"x = 1\n[[x]]",
		"t = { a }",
		"[a.]",
		"[\"open]",
	})
}

func TestParseBadFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), ParseFormat(format.AutoFormat))
	if !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("Parse(auto) error = %v, want ErrBadFormat", err)
	}
}

func TestWellFormed(t *testing.T) {
	if err := WellFormed([]byte(sample.MustPerson(format.XMLFormat))); err != nil {
		t.Errorf("WellFormed(person) = %v", err)
	}
	if err := WellFormed([]byte("<a></b>")); !errors.Is(err, ErrParse) {
		t.Errorf("WellFormed(<a></b>) = %v", err)
	}
}
