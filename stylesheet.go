package cssom

import "github.com/npillmayer/cssom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// cascade resolution, we introduce an interface for CSS stylesheets.
// Clients for the styling engine will have to provide a concrete
// implementation of this interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the top-level rules of a stylesheet
}

// RuleKind discriminates the variants of rules a stylesheet tree may
// contain. The cascade cares about style rules and the two conditional
// group kinds; everything else (keyframes, font-face, page, …) is
// KindOther and will be ignored.
type RuleKind int8

const (
	KindStyle    RuleKind = iota // a selector with a declaration block
	KindMedia                    // @media conditional rule group
	KindSupports                 // @supports conditional rule group
	KindOther                    // any other at-rule
)

func (k RuleKind) String() string {
	switch k {
	case KindStyle:
		return "style"
	case KindMedia:
		return "media"
	case KindSupports:
		return "supports"
	}
	return "other"
}

// DeclarationBlock is a read-only view onto the properties of a single
// rule or of an element's inline style. Property keys are unique within
// one block.
//
// Blocks are a structural view, not a merged result; merging is the
// resolver's job.
type DeclarationBlock interface {
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// Rule is the type stylesheets consist of.
//
// Rules form a tagged variant, discriminated by Kind: conditional rule
// groups additionally implement GroupRule.
//
// See interface StyleSheet.
type Rule interface {
	DeclarationBlock
	Kind() RuleKind   // rule variant discriminator
	Selector() string // the prelude / selectors of the rule
}

// GroupRule is a conditional rule group: an at-rule wrapping nested rules
// which apply only when its condition holds. Rules of kind KindMedia and
// KindSupports must implement this interface.
type GroupRule interface {
	Rule
	Condition() string // the raw condition text, e.g. "screen and (min-width: 600px)"
	Rules() []Rule     // the nested rules
}

// Conditions is a capability to evaluate whether a media condition or a
// support-feature condition currently holds. Evaluators are supplied by
// the environment; the cascade trusts them to encapsulate malformed
// condition text (treating it as not holding).
type Conditions interface {
	Media(query string) bool        // does the media query hold?
	Supports(condition string) bool // does the feature query hold?
}
