package styledtree

import (
	"errors"

	"github.com/npillmayer/cssom"
	"golang.org/x/net/html"
)

// InlineStylesReader reads the inline declaration block of an element,
// usually from its "style" attribute. Implementations are provided by
// stylesheet adapters (see package douceuradapter); nil signals that the
// element carries no inline styles.
type InlineStylesReader func(*html.Node) cssom.DeclarationBlock

// ErrNoDocumentElement is returned by Build for an HTML parse tree
// without any element node.
var ErrNoDocumentElement = errors.New("styledtree: parse tree contains no element node")

// Build creates a styled tree from an HTML parse tree and a CSSOM.
//
// The rule set is flattened and specificity-sorted once and then applied
// to every element node of the parse tree, which is sound because
// environment conditions cannot change within a single resolution call.
// Non-element nodes (text, comments, …) carry no styles of their own and
// are not represented in the styled tree.
//
// inline may be nil if inline style attributes are to be ignored.
func Build(htmldoc *html.Node, om *cssom.CSSOM, inline InlineStylesReader) (*StyNode, error) {
	root := documentElement(htmldoc)
	if root == nil {
		return nil, ErrNoDocumentElement
	}
	rules := om.FlatRules()
	tracer().Debugf("dom: styling tree below <%s> with %d rules", root.Data, len(rules))
	return buildSubtree(root, om, rules, inline), nil
}

func buildSubtree(n *html.Node, om *cssom.CSSOM, rules []cssom.StyleRule, inline InlineStylesReader) *StyNode {
	sn := NewNodeForHTMLNode(n)
	var inlineBlock cssom.DeclarationBlock
	if inline != nil {
		inlineBlock = inline(n)
	}
	sn.SetStyles(om.StylesFor(n, rules, inlineBlock))
	if pseudos, ok := om.PseudoStylesFor(n, rules).Value(); ok {
		sn.SetPseudoStyles(pseudos)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			sn.AddChild(buildSubtree(ch, om, rules, inline))
		}
	}
	return sn
}

// documentElement finds the topmost element node of a parse tree.
func documentElement(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if el := documentElement(ch); el != nil {
			return el
		}
	}
	return nil
}
