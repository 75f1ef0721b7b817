package styledtree_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/cssom"
	"github.com/npillmayer/cssom/douceuradapter"
	"github.com/npillmayer/cssom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

const myhtml = `<html><head>
  <style>
    p          { color: green }
    #lead      { margin-top: 10pt }
    p::before  { color: purple }
  </style>
</head><body>
  <p id="lead" style="color: red">The quick brown fox</p>
  <div>jumps over</div>
</body></html>`

func TestBuildStyledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.dom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(myhtml))
	if err != nil {
		t.Fatal(err)
	}
	om := cssom.NewCSSOM(nil)
	for _, sheet := range douceuradapter.ExtractStyleElements(doc) {
		if err := om.AddStyles(sheet); err != nil {
			t.Fatal(err)
		}
	}
	root, err := styledtree.Build(doc, om, douceuradapter.InlineStyles)
	if err != nil {
		t.Fatal(err)
	}
	if root.HTMLNode().Data != "html" {
		t.Fatalf("expected styled tree to be rooted at <html>, is at <%s>", root.HTMLNode().Data)
	}
	if root.ChildCount() != 2 { // head and body
		t.Fatalf("expected 2 children of <html>, have %d", root.ChildCount())
	}
	body := root.Child(1)
	p := findStyledNode(root, "p")
	if p == nil {
		t.Fatal("styled tree contains no node for <p>")
	}
	if p.Parent() != body {
		t.Error("expected parent of <p> to be <body>")
	}
	styles := p.Styles()
	if styles == nil {
		t.Fatal("expected styles for <p>, got none")
	}
	if color, _ := styles.Property("color"); color != "red" {
		t.Errorf("expected inline color red for <p>, is %q", color)
	}
	if margin, _ := styles.Property("margin-top"); margin != "10pt" {
		t.Errorf("expected margin-top 10pt for <p>, is %q", margin)
	}
	if !p.HasPseudoStyles() {
		t.Fatal("expected pseudo-element styles for <p>")
	}
	before := p.PseudoStyles(":before") // single-colon form is accepted, too
	if before == nil {
		t.Fatal("expected ::before styles for <p>")
	}
	if color, _ := before.Property("color"); color != "purple" {
		t.Errorf("expected ::before color purple, is %q", color)
	}
	div := findStyledNode(root, "div")
	if div == nil {
		t.Fatal("styled tree contains no node for <div>")
	}
	if div.Styles() != nil {
		t.Error("expected no styles for <div>")
	}
	if div.HasPseudoStyles() || div.PseudoStyles("before") != nil {
		t.Error("expected no pseudo-element styles for <div>")
	}
}

func TestBuildRequiresElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.dom")
	defer teardown()
	//
	om := cssom.NewCSSOM(nil)
	empty := &html.Node{Type: html.DocumentNode}
	if _, err := styledtree.Build(empty, om, nil); err == nil {
		t.Error("expected an error for a parse tree without elements")
	}
}

func findStyledNode(sn *styledtree.StyNode, tag string) *styledtree.StyNode {
	if sn.HTMLNode().Data == tag {
		return sn
	}
	for _, ch := range sn.Children() {
		if found := findStyledNode(ch, tag); found != nil {
			return found
		}
	}
	return nil
}
