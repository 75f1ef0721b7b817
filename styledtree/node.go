package styledtree

import (
	"strings"

	"github.com/npillmayer/cssom"
	"github.com/npillmayer/cssom/style"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
// Every styled node links to an element node of the underlying HTML
// parse tree.
type StyNode struct {
	parent         *StyNode
	children       []*StyNode
	htmlNode       *html.Node
	computedStyles *style.PropertyMap
	pseudoStyles   cssom.PseudoStyles
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node) *StyNode {
	sn := &StyNode{}
	sn.htmlNode = html
	return sn
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// Styles returns the resolved style properties of a styled node.
// It may be nil for nodes no style rule applied to.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.computedStyles = styles
}

// SetPseudoStyles sets the pseudo-element styling of a styled node.
func (sn *StyNode) SetPseudoStyles(pseudos cssom.PseudoStyles) {
	sn.pseudoStyles = pseudos
}

// HasPseudoStyles is a predicate wether any pseudo-element styling
// applied to this node.
func (sn *StyNode) HasPseudoStyles() bool {
	return len(sn.pseudoStyles) > 0
}

// PseudoStyles returns the resolved style properties for one of the
// node's pseudo-elements. The name is accepted in any of the forms
// "before", ":before" or "::before". It returns nil if no styling for
// this pseudo-element is present.
func (sn *StyNode) PseudoStyles(name string) *style.PropertyMap {
	if sn.pseudoStyles == nil {
		return nil
	}
	key := "::" + strings.ToLower(strings.TrimLeft(name, ":"))
	return sn.pseudoStyles[key]
}

// Parent returns the parent node or nil (for the root of the tree).
func (sn *StyNode) Parent() *StyNode {
	return sn.parent
}

// AddChild appends a child node; the child is connected to this node as
// its parent. It returns the parent node to allow for chaining.
func (sn *StyNode) AddChild(ch *StyNode) *StyNode {
	if ch != nil {
		ch.parent = sn
		sn.children = append(sn.children, ch)
	}
	return sn
}

// ChildCount returns the number of children-nodes for a node.
func (sn *StyNode) ChildCount() int {
	return len(sn.children)
}

// Child returns the child node at position i, or nil if out of range.
func (sn *StyNode) Child(i int) *StyNode {
	if i < 0 || i >= len(sn.children) {
		return nil
	}
	return sn.children[i]
}

// Children returns the children of a node.
func (sn *StyNode) Children() []*StyNode {
	return sn.children
}
