package style

import (
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	. "github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0100
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
//
// A resolved style property value is just an opaque string. DimenT offers
// a typed view onto dimension-valued properties (widths, margins, …),
// without performing any unit arithmetic of its own.
type DimenT struct {
	d       dimen.DU
	percent Percent
	flags   uint32
}

/*
type DimenT
	= None
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
*/

// Auto creates a CSS dimension of value "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension of value "inherit".
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension of value "initial".
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// Dimen interprets a property value as a CSS dimension. Recognized are the
// keywords "auto", "inherit" and "initial", absolute values with units
// "pt" and "px", and percentage values. Anything else yields the zero
// (none) dimension.
func (p Property) Dimen() DimenT {
	v := strings.TrimSpace(strings.ToLower(string(p)))
	switch v {
	case "auto":
		return Auto()
	case "inherit":
		return Inherit()
	case "initial":
		return Initial()
	}
	switch {
	case strings.HasSuffix(v, "%"):
		if n, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64); err == nil {
			return Percentage(FromInt(int(n + 0.5)))
		}
	case strings.HasSuffix(v, "pt"):
		if n, err := strconv.ParseFloat(strings.TrimSuffix(v, "pt"), 64); err == nil {
			return JustDimen(dimen.DU(n * float64(dimen.PT)))
		}
	case strings.HasSuffix(v, "px"):
		// CSS reference pixel: 1px = 3/4pt
		if n, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64); err == nil {
			return JustDimen(dimen.DU(n * 0.75 * float64(dimen.PT)))
		}
	}
	return DimenT{}
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *DimenMatcher {
	return &DimenMatcher{dimen: d}
}

type DimenMatcher struct {
	dimen DimenT
}

func (m *DimenMatcher) IsKind(d DimenT) *DimenMatcher {
	if (m.dimen.flags & kindMask) != (d.flags & kindMask) {
		return nil
	}
	if (m.dimen.flags & relativeMask) != (d.flags & relativeMask) {
		return nil
	}
	return m
}

func (m *DimenMatcher) Just(du *dimen.DU) *DimenMatcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *DimenMatcher) Percentage(p *Percent) *DimenMatcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}
