package maybe_test

import (
	"testing"

	. "github.com/npillmayer/cssom/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	v, ok := x.Value()
	if !ok || v != 7 {
		t.Errorf("expected Just(7) to carry 7, has %#v", v)
	}
	if !y.IsNothing() {
		t.Error("expected Nothing to be nothing, isn't")
	}
	var zero Maybe[int]
	if !zero.IsNothing() {
		t.Error("expected zero Maybe to be Nothing, isn't")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	xx := x.WithDefault(100)
	if xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}

	y := Nothing[int]()
	yy := y.WithDefault(100)
	if yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	if v := xx.WithDefault(0); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}

	s := Map(func(n int) string {
		if n > 0 {
			return "positive"
		}
		return "negative"
	}, Just(10))
	if v := s.WithDefault("?"); v != "positive" {
		t.Logf("s = %s", v)
		t.Error("expected Map(…, Just 10) to return \"positive\", didn't")
	}

	y := Nothing[int]()
	yy := y.Map(func(n int) int {
		return n * 2
	})
	if !yy.IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	if isGreater, ok := gt.Value(); !ok || !isGreater {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if !AndThen(gt0, Nothing[int]()).IsNothing() {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
}
