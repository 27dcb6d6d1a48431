package selector

import (
	"reflect"
	"testing"
)

func TestNormalizeRawString(t *testing.T) {
	sel := Normalize("abc")
	if len(sel) != 1 {
		t.Fatalf("expected a single part, got %d fragments", len(sel))
	}
	part, ok := sel[0].(Part)
	if !ok || part.Raw != "abc" {
		t.Errorf("expected raw part 'abc', isn't: %#v", sel[0])
	}
}

func TestNormalizeDropsEmptyInput(t *testing.T) {
	if sel := Normalize(); len(sel) != 0 {
		t.Errorf("expected empty input to normalize to empty selector, isn't: %#v", sel)
	}
	if sel := Normalize("", Part{}, Part{Classes: []string{""}}); len(sel) != 0 {
		t.Errorf("expected empty fragments to be stripped, aren't: %#v", sel)
	}
}

func TestNormalizeStripsDanglingCombinators(t *testing.T) {
	sel := Normalize("abc", ">", "+", "~", Part{Element: "def"})
	want := Selector{Part{Raw: "abc"}, Child, Part{Element: "def"}}
	if !reflect.DeepEqual(sel, want) {
		t.Errorf("expected consecutive combinators to collapse to the first, got %#v", sel)
	}
	sel = Normalize("abc", ">")
	want = Selector{Part{Raw: "abc"}}
	if !reflect.DeepEqual(sel, want) {
		t.Errorf("expected trailing combinator to be dropped, got %#v", sel)
	}
}

func TestNormalizeKeepsLeadingCombinator(t *testing.T) {
	// a leading combinator relates the selector to the enclosing rule
	sel := Normalize(Child, Part{Classes: []string{"custom"}})
	if len(sel) != 2 {
		t.Fatalf("expected leading combinator to survive, got %#v", sel)
	}
	if c, ok := sel[0].(Combinator); !ok || c != Child {
		t.Errorf("expected first fragment to be '>', isn't: %#v", sel[0])
	}
}

func TestNormalizeSortsClasses(t *testing.T) {
	sel := Normalize(Part{Classes: []string{"b", "a", "b", ""}})
	part := sel[0].(Part)
	if !reflect.DeepEqual(part.Classes, []string{"a", "b"}) {
		t.Errorf("expected classes sorted and deduplicated, aren't: %#v", part.Classes)
	}
}

func TestNormalizeExposesQualifiers(t *testing.T) {
	sel := Normalize(Part{Qualifiers: []string{"foo:def", "foo:z", "bar:abc=vvv:xxx"}})
	part := sel[0].(Part)
	want := []string{"bar", "bar:abc", "bar:abc=vvv:xxx", "foo", "foo:def", "foo:z"}
	if !reflect.DeepEqual(part.Qualifiers, want) {
		t.Errorf("expected exposed qualifier set %v, got %v", want, part.Qualifiers)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := [][]any{
		{"abc", ">", Part{Element: "def", Classes: []string{"z", "a"}}},
		{Part{Qualifiers: []string{"bar:abc=vvv:xxx"}}},
		{Child, Part{ID: "id"}, "+", Part{Raw: "[x=y]"}},
	}
	for _, in := range inputs {
		once := Normalize(in...)
		twice := Normalize(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("expected normalization to be idempotent for %#v, got %#v then %#v",
				in, once, twice)
		}
	}
}

func TestSelectorText(t *testing.T) {
	cases := []struct {
		sel  Selector
		want string
	}{
		{Normalize(Part{Element: "span"}), "span"},
		{Normalize(Part{Namespace: "svg", Element: "circle"}), "svg|circle"},
		{Normalize(Part{Namespace: "svg"}), "svg|*"},
		{Normalize(Part{ID: "my-id", Classes: []string{"b", "a"}}), "#my-id.a.b"},
		{Normalize("abc", ">", Part{Element: "def"}), "abc>def"},
		{Normalize(Part{Element: "ul"}, Part{Element: "li"}), "ul li"},
		{Normalize(Part{Element: "a", Raw: ":hover"}), "a:hover"},
		{Normalize(Part{Qualifiers: []string{"q"}}), "*"},
	}
	for _, c := range cases {
		if got := c.sel.Text(); got != c.want {
			t.Errorf("expected text %q, got %q", c.want, got)
		}
	}
}

func TestSelectorDisplayText(t *testing.T) {
	sel := Normalize(Part{Classes: []string{"custom"}, Qualifiers: []string{"foo:def"}})
	got := sel.DisplayText(nil)
	if got != `.custom@foo@foo\:def` {
		t.Errorf("expected display text with sorted qualifiers, got %q", got)
	}
	got = sel.DisplayText(func(q string) string { return "<" + q + ">" })
	if got != ".custom<foo><foo:def>" {
		t.Errorf("expected custom qualifier format to apply, got %q", got)
	}
}

func TestEscape(t *testing.T) {
	cases := []struct{ in, want string }{
		{"simple", "simple"},
		{"with space", "with\\ space"},
		{"1digit", "\\31 digit"},
		{"-", "\\-"},
		{"-x", "-x"},
		{"a.b", "a\\.b"},
	}
	for _, c := range cases {
		if got := Escape(c.in); got != c.want {
			t.Errorf("expected Escape(%q) to be %q, is %q", c.in, c.want, got)
		}
	}
}

func TestMatchesSuffix(t *testing.T) {
	sel := Normalize(Part{Element: "ul"}, Child, Part{Element: "li", Classes: []string{"item", "odd"}})
	if !Matches(sel, Normalize(Part{Element: "li"})) {
		t.Error("expected element query to match tail part, doesn't")
	}
	if !Matches(sel, Normalize(Part{Element: "ul"}, Child, Part{Classes: []string{"item"}})) {
		t.Error("expected class subset query to match, doesn't")
	}
	if Matches(sel, Normalize(Part{Element: "ol"}, Child, Part{Element: "li"})) {
		t.Error("expected mismatching element to fail, doesn't")
	}
	if Matches(sel, Normalize(Part{Classes: []string{"item", "even"}})) {
		t.Error("expected superset class query to fail, doesn't")
	}
}

func TestMatchesQualifierGranularity(t *testing.T) {
	sel := Normalize(Part{Element: "div", Qualifiers: []string{"bar:abc=vvv:xxx"}})
	for _, q := range []string{"bar", "bar:abc", "bar:abc=vvv:xxx"} {
		if !Matches(sel, Normalize(Part{Qualifiers: []string{q}})) {
			t.Errorf("expected qualifier query %q to match exposed set, doesn't", q)
		}
	}
	if Matches(sel, Normalize(Part{Qualifiers: []string{"bar:xyz"}})) {
		t.Error("expected unrelated qualifier query to fail, doesn't")
	}
}
