/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cssom"
	"github.com/npillmayer/cssom/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse a CSS string into a wrapped stylesheet.
func Parse(csstext string) (*CSSStyles, error) {
	sheet, err := parser.Parse(csstext)
	if err != nil {
		return nil, err
	}
	return Wrap(sheet), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss := other.(*CSSStyles)
	for _, r := range othercss.css.Rules { // append every rule from other
		sheet.css.Rules = append(sheet.css.Rules, r)
	}
}

// Rules returns all the top-level rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return wrapRules(sheet.css.Rules)
}

var _ cssom.StyleSheet = &CSSStyles{}

func wrapRules(rules []*css.Rule) []cssom.Rule {
	wrapped := make([]cssom.Rule, len(rules))
	for i, r := range rules {
		wrapped[i] = Rule{r}
	}
	return wrapped
}

// Rule is an adapter for interfaces cssom.Rule and cssom.GroupRule.
type Rule struct {
	rule *css.Rule
}

// Kind returns the rule variant: style rule, media or supports group,
// or other at-rule.
func (r Rule) Kind() cssom.RuleKind {
	if r.rule.Kind == css.QualifiedRule {
		return cssom.KindStyle
	}
	switch strings.ToLower(r.rule.Name) {
	case "@media":
		return cssom.KindMedia
	case "@supports":
		return cssom.KindSupports
	}
	return cssom.KindOther
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.rule.Prelude
}

// Condition returns the condition text of a conditional rule group,
// e.g. "screen and (min-width: 600px)" for a media rule.
func (r Rule) Condition() string {
	return r.rule.Prelude
}

// Rules returns the nested rules of a conditional rule group.
func (r Rule) Rules() []cssom.Rule {
	return wrapRules(r.rule.Rules)
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.rule.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key within this rule, e.g. "15px"
func (r Rule) Value(key string) style.Property {
	decl := r.rule.Declarations
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.rule.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = Rule{}
var _ cssom.GroupRule = Rule{}

// --- Inline styles ---------------------------------------------------------

// InlineStyles reads the inline declaration block of an element, i.e. the
// contents of its "style" attribute. It returns nil if the element has no
// parsable inline declarations.
func InlineStyles(n *html.Node) cssom.DeclarationBlock {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	for _, attr := range n.Attr {
		if attr.Key != "style" {
			continue
		}
		decls, err := parser.ParseDeclarations(attr.Val)
		if err != nil || len(decls) == 0 {
			return nil
		}
		return declBlock(decls)
	}
	return nil
}

// declBlock makes a slice of douceur declarations a cssom.DeclarationBlock.
type declBlock []*css.Declaration

func (b declBlock) Properties() []string {
	props := make([]string, 0, len(b))
	for _, d := range b {
		props = append(props, d.Property)
	}
	return props
}

func (b declBlock) Value(key string) style.Property {
	for _, d := range b {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

func (b declBlock) IsImportant(key string) bool {
	for _, d := range b {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.DeclarationBlock = declBlock{}

// --- Style element extraction ----------------------------------------------

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css2 := extractStyles(body)
	for _, c := range css2 {
		css = append(css, c)
	}
	return css
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	ch := h.FirstChild
	for ch != nil {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			c, err := parser.Parse(ch.FirstChild.Data)
			if err != nil {
				break
			}
			css = append(css, Wrap(c))
		}
		ch = ch.NextSibling
	}
	return css
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
