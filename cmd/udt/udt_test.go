package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ssajaia/universal-data-translator/format"
	"github.com/Ssajaia/universal-data-translator/ir"
	"github.com/Ssajaia/universal-data-translator/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func mustJSON(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.JSON([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func compact(t *testing.T, node *ir.Node) string {
	t.Helper()
	d, err := node.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	for _, a := range []string{"a=hi", "b.c=x", "b.d=[p, q]", "e=true"} {
		if err := envFunc(env, a); err != nil {
			t.Fatalf("envFunc(%q): %v", a, err)
		}
	}
	want := map[string]any{
		"a": "hi",
		"b": map[string]any{"c": "x", "d": []any{"p", "q"}},
		"e": true,
	}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("env mismatch (-want +got):\n%s", diff)
	}
	if err := envFunc(env, "novalue"); err == nil {
		t.Error("envFunc without = should fail")
	}
	if err := envFunc(env, "a.b=1"); err == nil {
		t.Error("envFunc through a scalar should fail")
	}
}

func TestEvalExpr(t *testing.T) {
	doc := mustJSON(t, `{"name":"Al","age":28,"courses":["Math","CS"]}`)
	tests := []struct {
		src  string
		env  map[string]any
		want string
	}{
		{`age + 2`, nil, `30`},
		{`doc.name`, nil, `"Al"`},
		{`len(courses) == 2`, nil, `true`},
		{`name + suffix`, map[string]any{"suffix": "!"}, `"Al!"`},
		{`age > limit`, map[string]any{"limit": 30}, `false`},
		{`courses[0]`, nil, `"Math"`},
	}
	for _, tt := range tests {
		res, err := evalExpr(tt.src, doc, tt.env)
		if err != nil {
			t.Errorf("evalExpr(%q): %v", tt.src, err)
			continue
		}
		if got := compact(t, res); got != tt.want {
			t.Errorf("evalExpr(%q) = %s, want %s", tt.src, got, tt.want)
		}
	}
	if _, err := evalExpr(`nosuch +`, doc, nil); err == nil {
		t.Error("evalExpr with a syntax error should fail")
	}
}

func TestApplyPatch(t *testing.T) {
	ops, err := jsonpatch.DecodePatch([]byte(`[
		{"op":"replace","path":"/age","value":29},
		{"op":"add","path":"/courses/-","value":"Art"},
		{"op":"remove","path":"/tmp"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := applyPatch(mustJSON(t, `{"age":28,"courses":["Math"],"tmp":1}`), ops)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"age": 29.0, "courses": []any{"Math", "Art"}}
	if diff := cmp.Diff(want, ir.ToAny(res)); diff != "" {
		t.Errorf("patched mismatch (-want +got):\n%s", diff)
	}

	bad, err := jsonpatch.DecodePatch([]byte(`[{"op":"test","path":"/a","value":2}]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := applyPatch(mustJSON(t, `{"a":1}`), bad); err == nil {
		t.Error("a failing test op should fail the patch")
	}
}

func TestSelectPath(t *testing.T) {
	doc := mustJSON(t, `{"name":"Al","address":{"city":"Boston"},"courses":["Math","CS"]}`)
	tests := []struct {
		path string
		want string
	}{
		{"name", `"Al"`},
		{"address.city", `"Boston"`},
		{"courses.1", `"CS"`},
		{"courses.#", `2`},
	}
	for _, tt := range tests {
		res, err := selectPath(doc, tt.path)
		if err != nil {
			t.Fatal(err)
		}
		if res.Raw != tt.want {
			t.Errorf("selectPath(%q) = %s, want %s", tt.path, res.Raw, tt.want)
		}
	}
	res, err := selectPath(doc, "nope")
	if err != nil {
		t.Fatal(err)
	}
	if res.Exists() {
		t.Error("selectPath(nope) exists")
	}
}

func TestLineDiff(t *testing.T) {
	a := "{\n  \"a\": 1,\n  \"b\": 2\n}"
	b := "{\n  \"a\": 1,\n  \"b\": 3\n}"
	if differs(lineDiff(a, a)) {
		t.Error("identical documents differ")
	}
	diffs := lineDiff(a, b)
	if !differs(diffs) {
		t.Fatal("different documents do not differ")
	}
	cfg := &DiffConfig{MainConfig: &MainConfig{}}
	buf := &strings.Builder{}
	if err := cfg.writeDiff(buf, diffs); err != nil {
		t.Fatal(err)
	}
	want := " {\n   \"a\": 1,\n-  \"b\": 2\n+  \"b\": 3\n }\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("diff output mismatch (-want +got):\n%s", diff)
	}
}

func TestFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "udt.yaml")
	err := os.WriteFile(path, []byte("input: yaml\noutput: toml\ncolor: false\nstrict: true\nxmlRoot: doc\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	fc, err := loadFileConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &MainConfig{}
	if err := cfg.applyFile(fc); err != nil {
		t.Fatal(err)
	}
	if got := cfg.inFormat("x.json"); got != format.YAMLFormat {
		t.Errorf("inFormat = %s, want yaml", got)
	}
	if got := cfg.outFormat(); got != format.TOMLFormat {
		t.Errorf("outFormat = %s, want toml", got)
	}
	if !cfg.Strict || cfg.XMLRoot != "doc" {
		t.Errorf("strict=%v root=%q", cfg.Strict, cfg.XMLRoot)
	}
	if cfg.colorOn(os.Stdout) {
		t.Error("config color=false ignored")
	}

	// flags win over the file
	json := format.JSONFormat
	cfg = &MainConfig{InFormat: &json, XMLRoot: "flag"}
	if err := cfg.applyFile(fc); err != nil {
		t.Fatal(err)
	}
	if got := cfg.inFormat("x.yaml"); got != format.JSONFormat {
		t.Errorf("inFormat = %s, want json", got)
	}
	if cfg.XMLRoot != "flag" {
		t.Errorf("root = %q, want flag", cfg.XMLRoot)
	}

	if err := (&MainConfig{}).applyFile(&FileConfig{Input: "csv"}); err == nil {
		t.Error("bad input format in config should fail")
	}
}

func TestInFormat(t *testing.T) {
	cfg := &MainConfig{}
	tests := map[string]format.Format{
		"-":           format.AutoFormat,
		"a.json":      format.JSONFormat,
		"a.yml":       format.YAMLFormat,
		"dir/b.XML":   format.XMLFormat,
		"c.toml":      format.TOMLFormat,
		"notes.txt":   format.AutoFormat,
		"no-suffixes": format.AutoFormat,
	}
	for path, want := range tests {
		if got := cfg.inFormat(path); got != want {
			t.Errorf("inFormat(%q) = %s, want %s", path, got, want)
		}
	}
	if got := cfg.outFormat(); got != format.JSONFormat {
		t.Errorf("default outFormat = %s", got)
	}
}

type bufCloser struct {
	strings.Builder
}

func (*bufCloser) Close() error { return nil }

func TestUsageErrorClosesOutput(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	closed := 0
	cfg := &MainConfig{CloseOut: func() error {
		closed++
		return nil
	}}
	errOut := &bufCloser{}
	cc := &cli.Context{Out: &bufCloser{}, Err: errOut, In: io.NopCloser(strings.NewReader("")), Go: context.Background()}
	err := mainCommand(cfg).Run(cc, []string{"example"})
	var code cli.ExitCodeErr
	if !errors.As(err, &code) || code != 1 {
		t.Errorf("Run(example) = %v, want exit 1", err)
	}
	if closed != 1 {
		t.Errorf("output closed %d times, want 1", closed)
	}
	if !strings.Contains(errOut.String(), "synopsis: example") {
		t.Errorf("no usage on stderr:\n%s", errOut.String())
	}
}

func TestFinish(t *testing.T) {
	closeErr := errors.New("close failed")
	runErr := errors.New("run failed")
	tests := []struct {
		name    string
		run     error
		closing error
		want    error
	}{
		{"clean", nil, nil, nil},
		{"close error surfaces", nil, closeErr, closeErr},
		{"run error wins", runErr, closeErr, runErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &MainConfig{CloseOut: func() error { return tt.closing }}
			if got := cfg.finish(tt.run); got != tt.want {
				t.Errorf("finish = %v, want %v", got, tt.want)
			}
			if cfg.CloseOut != nil {
				t.Error("CloseOut still set after finish")
			}
			if got := cfg.finish(nil); got != nil {
				t.Errorf("second finish = %v", got)
			}
		})
	}
}
