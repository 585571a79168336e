package attrs_test

import (
	"testing"

	"catdiff/internal/attrs"
)

const sep = "§"

func TestParseBasicPairs(t *testing.T) {
	m := attrs.Parse("size=M"+sep+"color=red", sep)

	if m.Len() != 2 {
		t.Fatalf("expected 2 attributes, got %d", m.Len())
	}
	if got := m.Value("size"); got != "M" {
		t.Errorf("size = %q, want M", got)
	}
	if got := m.Value("color"); got != "red" {
		t.Errorf("color = %q, want red", got)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if m := attrs.Parse("", sep); m.Len() != 0 {
		t.Fatalf("expected empty map, got %d entries", m.Len())
	}
}

func TestParseValueWithEquals(t *testing.T) {
	m := attrs.Parse("formula=a=b+c", sep)
	if got := m.Value("formula"); got != "a=b+c" {
		t.Errorf("formula = %q, want a=b+c (split on first equals only)", got)
	}
}

func TestParseFlagWithoutEquals(t *testing.T) {
	m := attrs.Parse("size=M"+sep+" featured ", sep)

	value, ok := m.Get("featured")
	if !ok {
		t.Fatal("expected flag sub-key to be present")
	}
	if value != "" {
		t.Errorf("flag value = %q, want empty", value)
	}
}

func TestParseTrimsAndUnescapes(t *testing.T) {
	m := attrs.Parse(" name = Tom &amp; Jerry ", sep)
	if got := m.Value("name"); got != "Tom & Jerry" {
		t.Errorf("name = %q, want %q", got, "Tom & Jerry")
	}
}

func TestParseStripsSurroundingQuotes(t *testing.T) {
	tests := []struct {
		in   string
		key  string
		want string
	}{
		{`note="hello, world"`, "note", "hello, world"},
		{`note='single'`, "note", "single"},
		{`note="mismatched'`, "note", `"mismatched'`},
	}
	for _, tt := range tests {
		m := attrs.Parse(tt.in, sep)
		if got := m.Value(tt.key); got != tt.want {
			t.Errorf("Parse(%q): %s = %q, want %q", tt.in, tt.key, got, tt.want)
		}
	}
}

func TestParseDuplicateKeyLastWins(t *testing.T) {
	m := attrs.Parse("size=M"+sep+"size=L", sep)
	if m.Len() != 1 {
		t.Fatalf("expected 1 attribute, got %d", m.Len())
	}
	if got := m.Value("size"); got != "L" {
		t.Errorf("size = %q, want L", got)
	}
}

func TestParsePreservesKeyOrder(t *testing.T) {
	m := attrs.Parse("c=3"+sep+"a=1"+sep+"b=2", sep)
	want := []string{"c", "a", "b"}
	keys := m.Keys()
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestParseEmptyValueDistinctFromAbsent(t *testing.T) {
	m := attrs.Parse("size="+sep+"color=red", sep)

	if value, ok := m.Get("size"); !ok || value != "" {
		t.Errorf("size = (%q, %v), want present with empty value", value, ok)
	}
	if _, ok := m.Get("weight"); ok {
		t.Error("weight should be absent")
	}
}
