package cssom

import (
	"sort"

	"github.com/andybalholm/cascadia"
)

// SortBySpecificity totally orders a flat rule sequence by selector
// specificity, highest first. The sort is stable: rules of equal
// specificity keep their relative discovery order (reverse declaration
// order, see CollectRules). The input is not mutated; a new ordered
// slice is returned.
func SortBySpecificity(rules []StyleRule) []StyleRule {
	ranked := make([]rankedRule, len(rules))
	for i, r := range rules {
		ranked[i] = rankedRule{rule: r, spec: selectorSpecificity(r.Selector())}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return lessSpecific(ranked[j].spec, ranked[i].spec)
	})
	sorted := make([]StyleRule, len(ranked))
	for i, r := range ranked {
		sorted[i] = r.rule
	}
	return sorted
}

type rankedRule struct {
	rule StyleRule
	spec cascadia.Specificity
}

// selectorSpecificity returns the specificity of a selector text. For a
// selector list this is the maximum specificity over the list, following
// the cascadia convention. A selector that cannot be parsed is ranked
// with the lowest possible specificity rather than raising an error.
func selectorSpecificity(selector string) cascadia.Specificity {
	var spec cascadia.Specificity
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		tracer().Debugf("cascade: un-rankable selector %q: %v", selector, err)
		return spec
	}
	for _, sel := range group {
		s := sel.Specificity()
		if lessSpecific(spec, s) {
			spec = s
		}
	}
	return spec
}

// lessSpecific compares two specificities component-wise (IDs, then
// classes/attributes/pseudo-classes, then element types).
func lessSpecific(a, b cascadia.Specificity) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
