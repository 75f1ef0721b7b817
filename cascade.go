package cssom

import (
	"errors"

	"github.com/npillmayer/cssom/maybe"
	"github.com/npillmayer/cssom/style"
	"golang.org/x/net/html"
)

// ResolveStyles merges an ordered sequence of declaration blocks into a
// single property map. Blocks must be pre-ordered highest-priority-first:
// the inline block, if present, first, then decreasing specificity.
//
// A later block's value for a property overwrites the currently resolved
// value iff either no value is resolved yet, or the new declaration is
// marked important and the resolved one is not. Once a property has been
// fixed by an important declaration, no later declaration replaces it.
//
// Importance is consumed here: resolved values carry no "!important"
// marker. ResolveStyles returns nil for an empty block sequence.
func ResolveStyles(blocks []DeclarationBlock) *style.PropertyMap {
	if len(blocks) == 0 {
		return nil
	}
	styles := style.NewPropertyMap()
	important := make(map[string]bool) // importance is tracked out-of-band per key
	resolved := make(map[string]bool)
	for _, block := range blocks {
		for _, key := range block.Properties() {
			imp := block.IsImportant(key)
			if resolved[key] && (important[key] || !imp) {
				continue
			}
			value := block.Value(key)
			if imp {
				tracer().Debugf("cascade: resolved %s = %s !important", key, value)
			}
			styles.Add(key, value)
			resolved[key] = true
			important[key] = imp
		}
	}
	return styles
}

// PseudoStyles maps pseudo-element names, in double-colon form
// ("::before"), to their resolved style maps. A name is present iff at
// least one rule contributed to it, so a present map is never empty.
type PseudoStyles map[string]*style.PropertyMap

// CSSOM is the combination of a set of stylesheets and the environment
// capabilities needed to evaluate conditional rule groups. It is the
// facade over the cascade pipeline
//
//    CollectRules → SortBySpecificity → MatchingDeclarations/SplitPseudos
//        → ResolveStyles
//
// CSSOM holds no per-element state; resolution calls are independent and
// may run concurrently.
type CSSOM struct {
	sheets []StyleSheet
	cond   Conditions
}

// NewCSSOM creates an instance of a CSS object model. Clients may pass
// nil for cond, which defaults to screen-type media conditions with an
// unknown viewport.
func NewCSSOM(cond Conditions) *CSSOM {
	if cond == nil {
		cond = MediaConditions{Type: "screen"}
	}
	return &CSSOM{cond: cond}
}

// AddStyles adds a stylesheet to the CSSOM. Sheets added later take
// precedence over earlier ones for rules of equal specificity.
func (om *CSSOM) AddStyles(sheet StyleSheet) error {
	if sheet == nil {
		return errors.New("cssom: cannot add nil stylesheet")
	}
	om.sheets = append(om.sheets, sheet)
	return nil
}

// FlatRules produces the specificity-ordered flat rule list for all
// stylesheets of the CSSOM, with conditional rule groups resolved against
// the current environment conditions. The list is computed fresh on every
// call; conditions are assumed not to change within a single resolution.
func (om *CSSOM) FlatRules() []StyleRule {
	var flat []StyleRule
	for i := len(om.sheets) - 1; i >= 0; i-- { // discovery order is reverse declaration order
		flat = append(flat, CollectRules(om.sheets[i], om.cond)...)
	}
	tracer().Debugf("cascade: collected %d style rules", len(flat))
	return SortBySpecificity(flat)
}

// StylesFor resolves the base styles of an element against a flat rule
// list (as produced by FlatRules). inline is the element's inline
// declaration block and may be nil. StylesFor returns nil if no styling
// applies to the element at all.
func (om *CSSOM) StylesFor(n *html.Node, rules []StyleRule, inline DeclarationBlock) *style.PropertyMap {
	return ResolveStyles(MatchingDeclarations(rules, n, inline))
}

// PseudoStylesFor resolves the pseudo-element styles of an element
// against a flat rule list. It returns Nothing if no pseudo-element rule
// matched the element anywhere, distinguishing "no pseudo-element styling
// present" from an empty style map.
func (om *CSSOM) PseudoStylesFor(n *html.Node, rules []StyleRule) maybe.Maybe[PseudoStyles] {
	groups := SplitPseudos(rules, n)
	if groups == nil {
		return maybe.Nothing[PseudoStyles]()
	}
	pseudos := make(PseudoStyles, len(groups))
	for name, blocks := range groups {
		pseudos[name] = ResolveStyles(blocks)
	}
	return maybe.Just(pseudos)
}
