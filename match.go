package cssom

import (
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// PseudoElementNames is the closed set of recognized pseudo-element
// names. Selector components referencing this set, in single- or
// double-colon form and case-insensitively, are the only pseudo-elements
// the splitter will detect.
var PseudoElementNames = []string{
	"before", "after", "first-letter", "first-line", "selection",
	"backdrop", "placeholder", "marker", "spelling-error", "grammar-error",
}

var pseudoElementPattern = regexp.MustCompile(
	`(?i)::?(` + strings.Join(PseudoElementNames, "|") + `)\b`)

// pseudoSpan is one pseudo-element token occurrence within a selector text.
type pseudoSpan struct {
	name     string // lower-cased name, without colons
	from, to int    // byte span of the token, colons included
}

// pseudoSpans returns all non-overlapping pseudo-element token spans of a
// selector text, in scan order. It is a pure function over the full text;
// no matcher state survives between calls.
func pseudoSpans(selector string) []pseudoSpan {
	m := pseudoElementPattern.FindAllStringSubmatchIndex(selector, -1)
	if m == nil {
		return nil
	}
	spans := make([]pseudoSpan, len(m))
	for i, idx := range m {
		spans[i] = pseudoSpan{
			name: strings.ToLower(selector[idx[2]:idx[3]]),
			from: idx[0],
			to:   idx[1],
		}
	}
	return spans
}

// baseSelector removes the span of the last pseudo-element occurrence
// from a selector text. A base selector that comes out empty (a pure
// pseudo-element selector like "::before") is widened to "*".
func baseSelector(selector string, spans []pseudoSpan) string {
	last := spans[len(spans)-1]
	base := strings.TrimSpace(selector[:last.from] + selector[last.to:])
	if base == "" {
		return "*"
	}
	return base
}

// matches is the selector-matching primitive, mapped onto cascadia.
// A selector list matches if any of its entries matches. Entries naming a
// pseudo-element never match an element directly, mirroring standard
// `matches()` semantics. A selector cascadia cannot parse is treated as
// non-matching.
func matches(selector string, n *html.Node) bool {
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		tracer().Debugf("cascade: un-matchable selector %q: %v", selector, err)
		return false
	}
	for _, sel := range group {
		if sel.PseudoElement() != "" {
			continue
		}
		if sel.Match(n) {
			return true
		}
	}
	return false
}

// MatchingDeclarations filters a specificity-ordered rule sequence down
// to the declaration blocks applying directly to an element, preserving
// order. The element's inline declaration block, if any, is prepended as
// the highest-priority block: inline style outranks all sheet rules by
// construction.
func MatchingDeclarations(rules []StyleRule, n *html.Node, inline DeclarationBlock) []DeclarationBlock {
	var blocks []DeclarationBlock
	if inline != nil {
		blocks = append(blocks, inline)
	}
	for _, r := range rules {
		if matches(r.Selector(), n) {
			blocks = append(blocks, r.Declarations())
		}
	}
	return blocks
}

// SplitPseudos extracts pseudo-element styling from a specificity-ordered
// rule sequence. Each rule's selector is scanned for pseudo-element
// tokens; if the element matches the rule's base selector (the selector
// text with the last-scanned occurrence removed), the rule's declaration
// block is appended to the group of every distinct pseudo-element name
// the selector references. Group keys are canonicalized to double-colon
// form ("::before").
//
// Relative specificity order within each group is preserved from the
// input. The result is nil (not an empty map) when no pseudo-element
// rule matched at all.
func SplitPseudos(rules []StyleRule, n *html.Node) map[string][]DeclarationBlock {
	var groups map[string][]DeclarationBlock
	for _, r := range rules {
		spans := pseudoSpans(r.Selector())
		if spans == nil {
			continue
		}
		if !matches(baseSelector(r.Selector(), spans), n) {
			continue
		}
		for i, span := range spans {
			if seenBefore(spans[:i], span.name) {
				continue
			}
			if groups == nil {
				groups = make(map[string][]DeclarationBlock)
			}
			key := "::" + span.name
			groups[key] = append(groups[key], r.Declarations())
		}
	}
	return groups
}

func seenBefore(spans []pseudoSpan, name string) bool {
	for _, span := range spans {
		if span.name == name {
			return true
		}
	}
	return false
}
