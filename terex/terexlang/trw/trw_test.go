package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLexCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trewrite.terex")
	defer teardown()
	//
	out, err := execute(t, "lex", "f(a, b)")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[0], `"f"`)
	assert.Contains(t, lines[5], `")"`)
	//
	_, err = execute(t, "lex", "f(a + b)")
	assert.Error(t, err)
}

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trewrite.terex")
	defer teardown()
	//
	out, err := execute(t, "parse", "foo( pair(a,b) ,c )")
	require.NoError(t, err)
	assert.Equal(t, "foo(pair(a, b), c)\n", out)
	//
	_, err = execute(t, "parse", "foo(a")
	assert.Error(t, err)
}

func TestParseFormats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trewrite.terex")
	defer teardown()
	//
	for _, format := range []string{"tree", "ascii"} {
		out, err := execute(t, "parse", "--format", format, "foo(pair(a, b), c)")
		require.NoError(t, err, format)
		for _, label := range []string{"foo", "pair", "a", "b", "c"} {
			assert.Contains(t, out, label, format)
		}
		assert.NotContains(t, out, "(", format)
	}
	_, err := execute(t, "parse", "--format", "xml", "a")
	assert.Error(t, err)
}

func TestMatchCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trewrite.terex")
	defer teardown()
	//
	out, err := execute(t, "match", "pair(X, Y)", "foo(pair(a, b), pair(c, d))")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "{X: a, Y: b}")
	assert.True(t, strings.HasPrefix(lines[1], "1 "))
	//
	out, err = execute(t, "match", "--bottom-up", "swap(X)", "swap(pair(swap(pair(a, b)), c))")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "0.0 "))
	assert.Contains(t, lines[0], "{X: pair(a, b)}")
	assert.True(t, strings.HasPrefix(lines[1], ". "))
	//
	out, err = execute(t, "match", "pair(X, X)", "foo(pair(a, b))")
	require.NoError(t, err)
	assert.Equal(t, "no match\n", out)
}

func TestApplyCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trewrite.terex")
	defer teardown()
	//
	out, err := execute(t, "apply", "pair(X, Y) = pair(Y, X)", "foo(pair(f(a), g(b)), pair(q(c), z(d)))")
	require.NoError(t, err)
	assert.Equal(t, "foo(pair(g(b), f(a)), pair(z(d), q(c)))\n", out)
	//
	_, err = execute(t, "apply", "f(X) = X(a)", "f(g(b))")
	assert.Error(t, err)
	_, err = execute(t, "apply", "f(X)", "f(a)")
	assert.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trewrite.terex")
	defer teardown()
	//
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
name: swap
rule: "swap(pair(X, Y)) = pair(Y, X)"
expressions:
  - "swap(pair(a, b))"
  - "swap(pair(swap(pair(a, b)), c))"
`), 0o644))
	out, err := execute(t, "run", good)
	require.NoError(t, err)
	assert.Equal(t, "swap(pair(a, b)) => pair(b, a)\n"+
		"swap(pair(swap(pair(a, b)), c)) => pair(c, swap(pair(a, b)))\n", out)
	//
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
rule: "f(X) = g(X)"
expressions: ["f(a)", "f(#)"]
`), 0o644))
	out, err = execute(t, "run", bad)
	assert.Error(t, err)
	assert.Contains(t, out, "f(a) => g(a)")
}
