package domdbg_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/cssom"
	"github.com/npillmayer/cssom/domdbg"
	"github.com/npillmayer/cssom/douceuradapter"
	"github.com/npillmayer/cssom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestToText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.dom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><head></head><body>
	  <p>The quick brown fox</p>
	</body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	om := cssom.NewCSSOM(nil)
	sheet, err := douceuradapter.Parse(`p { color: green } p::before { color: purple }`)
	if err != nil {
		t.Fatal(err)
	}
	om.AddStyles(sheet)
	root, err := styledtree.Build(doc, om, nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := domdbg.ToText(root, &buf); err != nil {
		t.Fatal(err)
	}
	diagram := buf.String()
	t.Logf("styled tree:\n%s", diagram)
	for _, part := range []string{"<html>", "<body>", "<p> color=green", "::before color=purple"} {
		if !strings.Contains(diagram, part) {
			t.Errorf("expected diagram to contain %q", part)
		}
	}
}

func TestToTextNilTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.dom")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := domdbg.ToText(nil, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty output for a nil tree, have %q", buf.String())
	}
}
