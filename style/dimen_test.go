package style_test

import (
	"testing"

	"github.com/npillmayer/cssom/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

func TestDimenBasic(t *testing.T) {
	ten := style.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := style.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(style.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}
	switch m := auto.Match(); m {
	case m.IsKind(style.Inherit()):
		t.Errorf("expected dimen auto not to match inherit")
	default:
		t.Logf("dimen auto is not inherit")
	}

	pcnt := style.Percentage(percent.FromInt(80))
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %s", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
}

func TestDimenFromProperty(t *testing.T) {
	var du dimen.DU
	switch m := style.Property("10pt").Dimen().Match(); m {
	case m.Just(&du):
		if du != 10*dimen.PT {
			t.Errorf("expected 10pt, have %s", du)
		}
	default:
		t.Error("expected \"10pt\" to be a fixed dimension")
	}

	switch m := style.Property("8px").Dimen().Match(); m {
	case m.Just(&du):
		if du != 6*dimen.PT { // 1px = 3/4pt
			t.Errorf("expected 8px = 6pt, have %s", du)
		}
	default:
		t.Error("expected \"8px\" to be a fixed dimension")
	}

	var p percent.Percent
	switch m := style.Property("80%").Dimen().Match(); m {
	case m.Percentage(&p):
		if p != percent.FromInt(80) {
			t.Errorf("expected 80%%, have %s", p)
		}
	default:
		t.Error("expected \"80%\" to be a percentage dimension")
	}

	switch m := style.Property("inherit").Dimen().Match(); m {
	case m.IsKind(style.Inherit()):
		t.Logf("dimen is inherit")
	default:
		t.Error("expected \"inherit\" to be the inherit dimension")
	}

	none := style.Property("thick").Dimen() // not a dimension value
	switch m := none.Match(); m {
	case m.Just(&du), m.Percentage(&p):
		t.Errorf("expected \"thick\" to yield no dimension, has: %#v", none)
	default:
		t.Logf("no dimension, as expected")
	}
}
