package cssom

// StyleRule is an immutable pair of a selector text and the declaration
// block it carries. It is the leaf currency of rule collection; style
// rules are never mutated after collection.
type StyleRule struct {
	selector string
	block    DeclarationBlock
}

// Selector returns the full selector text of the rule.
func (r StyleRule) Selector() string {
	return r.selector
}

// Declarations returns the rule's declaration block.
func (r StyleRule) Declarations() DeclarationBlock {
	return r.block
}

// CollectRules walks the rule tree of a stylesheet and returns a flat
// sequence of style rules. Conditional rule groups are descended into
// only when their condition currently evaluates true; a false condition
// skips the entire subtree. Rules of any other kind are dropped silently.
//
// Discovery order is reverse declaration order: every rule list is
// walked from its end backward. Downstream tie-breaking for rules of
// equal specificity relies on this, so the order must not be changed.
//
// CollectRules is a pure traversal; it performs no I/O and retains no
// state.
func CollectRules(sheet StyleSheet, cond Conditions) []StyleRule {
	if sheet == nil || sheet.Empty() {
		return nil
	}
	return collect(nil, sheet.Rules(), cond)
}

func collect(flat []StyleRule, rules []Rule, cond Conditions) []StyleRule {
	for i := len(rules) - 1; i >= 0; i-- {
		r := rules[i]
		switch r.Kind() {
		case KindStyle:
			flat = append(flat, StyleRule{selector: r.Selector(), block: r})
		case KindMedia:
			if group, ok := r.(GroupRule); ok {
				if cond != nil && cond.Media(group.Condition()) {
					flat = collect(flat, group.Rules(), cond)
				} else {
					tracer().Debugf("cascade: skipping @media %q", group.Condition())
				}
			}
		case KindSupports:
			if group, ok := r.(GroupRule); ok {
				if cond != nil && cond.Supports(group.Condition()) {
					flat = collect(flat, group.Rules(), cond)
				} else {
					tracer().Debugf("cascade: skipping @supports %q", group.Condition())
				}
			}
		}
		// KindOther: neither emit nor recurse
	}
	return flat
}
