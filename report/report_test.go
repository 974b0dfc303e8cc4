package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, name, text string) *ll.TableGenerator {
	g, err := ll.ParseString(name, text)
	require.NoError(t, err)
	ga, err := ll.Analysis(g)
	require.NoError(t, err)
	gen := ll.NewTableGenerator(ga)
	gen.CreateTable()
	return gen
}

func TestTextBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	gen := generate(t, "expr", "E -> TX\nX -> +TX | ε\nT -> n")
	expected := `=== expr ===
***** FIRST *****
E : {n}
X : {ε, +}
T : {n}

***** FOLLOW *****
E : {$}
X : {$}
T : {$, +}

***** PREDICTIVE TABLE *****
(E, n) : TX
(T, n) : n
(X, $) : ε
(X, +) : +TX
`
	assert.Equal(t, expected, String(gen))
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, gen))
	assert.Equal(t, expected, buf.String())
}

func TestTextConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	out := String(generate(t, "lrec", "E -> E+T | T\nT -> n"))
	if !strings.Contains(out, "***** CONFLICTS *****\n(E, n) : E+T | T\n") {
		t.Errorf("conflict section missing or wrong:\n%s", out)
	}
	if !strings.Contains(out, "***** LEFT RECURSION *****\nE ➞ …\n") {
		t.Errorf("left recursion section missing or wrong:\n%s", out)
	}
}

func TestHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	gen := generate(t, "html", "A -> aB | aC | <\nB -> b\nC -> c")
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, gen))
	out := buf.String()
	assert.Contains(t, out, "<td bgcolor=#ffcccc>aB / aC</td>")
	assert.Contains(t, out, "<td>&lt;</td>")
	assert.True(t, strings.HasPrefix(out, "<html>"))
}

func TestHTMLWithoutTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, err := ll.ParseString("none", "S -> a")
	require.NoError(t, err)
	ga, err := ll.Analysis(g)
	require.NoError(t, err)
	var buf bytes.Buffer
	assert.Error(t, HTML(&buf, ll.NewTableGenerator(ga)))
}
