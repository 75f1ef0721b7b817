/*
Package domdbg implements helpers to debug a styled tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cssom"
	"github.com/npillmayer/cssom/style"
	"github.com/npillmayer/cssom/styledtree"
	"github.com/xlab/treeprint"
)

// defaultProperties are annotated if the client does not select any.
var defaultProperties = []string{
	"display",
	"color",
	"background-color",
	"width",
	"height",
}

// ToText writes a text diagram of a styled tree to w. Each node is
// rendered with its element name and the resolved values for a selection
// of style properties. Clients may pass the property keys they are
// interested in; if they pass none, the following default will be used:
//
//     - display
//     - color
//     - background-color
//     - width
//     - height
//
func ToText(root *styledtree.StyNode, w io.Writer, properties ...string) error {
	if root == nil {
		return nil
	}
	if len(properties) == 0 {
		properties = defaultProperties
	}
	tree := treeprint.New()
	tree.SetValue(label(root, properties))
	appendChildren(tree, root, properties)
	_, err := io.WriteString(w, tree.String())
	return err
}

func appendChildren(branch treeprint.Tree, sn *styledtree.StyNode, properties []string) {
	for _, ch := range sn.Children() {
		if ch.ChildCount() == 0 {
			branch.AddNode(label(ch, properties))
			continue
		}
		appendChildren(branch.AddBranch(label(ch, properties)), ch, properties)
	}
}

func label(sn *styledtree.StyNode, properties []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<%s>", sn.HTMLNode().Data)
	b.WriteString(styleAnnotations(sn.Styles(), properties))
	for _, name := range pseudoElementLabels(sn, properties) {
		b.WriteString(name)
	}
	return b.String()
}

func pseudoElementLabels(sn *styledtree.StyNode, properties []string) []string {
	if !sn.HasPseudoStyles() {
		return nil
	}
	var labels []string
	for _, name := range cssom.PseudoElementNames {
		if pmap := sn.PseudoStyles(name); pmap != nil {
			labels = append(labels, "  ::"+name+styleAnnotations(pmap, properties))
		}
	}
	return labels
}

func styleAnnotations(pmap *style.PropertyMap, properties []string) string {
	if pmap == nil {
		return ""
	}
	var b strings.Builder
	for _, key := range properties {
		if p, ok := pmap.Property(key); ok && !p.IsEmpty() {
			fmt.Fprintf(&b, " %s=%s", key, p)
		}
	}
	return b.String()
}
