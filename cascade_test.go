package cssom

import (
	"testing"

	"github.com/npillmayer/cssom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// --- Test fakes ------------------------------------------------------------

type fakeDecl struct {
	key       string
	value     string
	important bool
}

// fakeBlock implements DeclarationBlock for tests.
type fakeBlock []fakeDecl

func (b fakeBlock) Properties() []string {
	props := make([]string, len(b))
	for i, d := range b {
		props[i] = d.key
	}
	return props
}

func (b fakeBlock) Value(key string) style.Property {
	for _, d := range b {
		if d.key == key {
			return style.Property(d.value)
		}
	}
	return ""
}

func (b fakeBlock) IsImportant(key string) bool {
	for _, d := range b {
		if d.key == key {
			return d.important
		}
	}
	return false
}

// --- Tests -----------------------------------------------------------------

func TestResolveEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.cascade")
	defer teardown()
	//
	if styles := ResolveStyles(nil); styles != nil {
		t.Errorf("expected nil style map for empty input, have %v", styles)
	}
}

func TestResolveSimpleOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.cascade")
	defer teardown()
	//
	// highest priority block first; lower-priority blocks must not win
	styles := ResolveStyles([]DeclarationBlock{
		fakeBlock{{"color", "red", false}},
		fakeBlock{{"color", "blue", false}, {"width", "50%", false}},
	})
	if p, _ := styles.Property("color"); p != "red" {
		t.Errorf("expected color=red, is %q", p)
	}
	if p, _ := styles.Property("width"); p != "50%" {
		t.Errorf("expected width=50%%, is %q", p)
	}
}

func TestResolveImportantOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.cascade")
	defer teardown()
	//
	styles := ResolveStyles([]DeclarationBlock{
		fakeBlock{{"color", "red", false}},
		fakeBlock{{"color", "blue", true}},
		fakeBlock{{"color", "green", false}},
	})
	if p, _ := styles.Property("color"); p != "blue" {
		t.Errorf("expected important blue to win, have %q", p)
	}
}

func TestResolveImportantChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.cascade")
	defer teardown()
	//
	// the first important declaration wins over later important ones
	styles := ResolveStyles([]DeclarationBlock{
		fakeBlock{{"color", "red", true}},
		fakeBlock{{"color", "blue", true}},
	})
	if p, _ := styles.Property("color"); p != "red" {
		t.Errorf("expected first important declaration to win, have %q", p)
	}
}

func TestResolveValuesAreClean(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.cascade")
	defer teardown()
	//
	// importance is consumed during resolution, not part of the value
	styles := ResolveStyles([]DeclarationBlock{
		fakeBlock{{"color", "blue", true}},
	})
	if p, _ := styles.Property("color"); p != "blue" {
		t.Errorf("expected resolved value without important marker, have %q", p)
	}
}
