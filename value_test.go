package yini

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_StructOrder(t *testing.T) {
	s := NewStruct()
	s.Set("c", Int(1))
	s.Set("a", Int(2))
	s.Set("b", Int(3))
	s.Set("a", Int(4))

	if diff := cmp.Diff([]string{"c", "a", "b"}, s.Keys()); diff != "" {
		t.Errorf("unexpected key order (-expected +actual):\n%s", diff)
	}

	if i, _ := AsInt(s.Get("a")); i != 4 {
		t.Errorf("unexpected a, expected=4, got=%d\n", i)
	}

	var seen []string

	for k := range s.All() {
		if k == "a" {
			break
		}
		seen = append(seen, k)
	}

	if diff := cmp.Diff([]string{"c"}, seen); diff != "" {
		t.Errorf("unexpected iteration (-expected +actual):\n%s", diff)
	}
}

func Test_StructZeroValue(t *testing.T) {
	var s Struct

	s.Set("k", String("v"))

	if v, ok := AsString(s.Get("k")); !ok || v != "v" {
		t.Errorf("unexpected k, expected=%q, got=%q\n", "v", v)
	}

	var nilStruct *Struct

	if nilStruct.Len() != 0 || nilStruct.Get("k") != nil {
		t.Errorf("expected nil struct to be empty\n")
	}
}

func Test_Accessors(t *testing.T) {
	tests := []struct {
		v    Value
		kind Kind
	}{
		{String("s"), StringKind},
		{Int(1), IntKind},
		{Float(1.5), FloatKind},
		{Bool(true), BoolKind},
		{Variant{Name: "v"}, VariantKind},
		{NewStruct(), StructKind},
		{Array{}, ArrayKind},
		{Tuple{}, TupleKind},
	}

	for _, test := range tests {
		if k := test.v.Kind(); k != test.kind {
			t.Errorf("unexpected kind, expected=%s, got=%s\n", test.kind, k)
		}

		checks := map[Kind]bool{}

		_, checks[StringKind] = AsString(test.v)
		_, checks[IntKind] = AsInt(test.v)
		_, checks[FloatKind] = AsFloat(test.v)
		_, checks[BoolKind] = AsBool(test.v)
		_, checks[VariantKind] = AsVariant(test.v)
		_, checks[StructKind] = AsStruct(test.v)
		_, checks[ArrayKind] = AsArray(test.v)
		_, checks[TupleKind] = AsTuple(test.v)

		for k, ok := range checks {
			if ok != (k == test.kind) {
				t.Errorf("%s - accessor for %s returned %v\n", test.kind, k, ok)
			}
		}
	}

	// Accessors never coerce between kinds.
	if _, ok := AsFloat(Int(1)); ok {
		t.Errorf("expected integer not to be read as float\n")
	}
	if _, ok := AsString(Variant{Name: "x"}); ok {
		t.Errorf("expected variant not to be read as string\n")
	}
	if _, ok := AsString(nil); ok {
		t.Errorf("expected nil not to be read as string\n")
	}
}

func Test_AsPair(t *testing.T) {
	tests := []struct {
		v  Value
		ok bool
	}{
		{Tuple{Int(1), Int(2)}, true},
		{Tuple{Int(1)}, false},
		{Tuple{Int(1), Int(2), Int(3)}, false},
		{Array{Int(1), Int(2)}, false},
		{String("x"), false},
	}

	for i, test := range tests {
		if _, _, ok := AsPair(test.v); ok != test.ok {
			t.Errorf("tests[%d] - unexpected pair result, expected=%v, got=%v\n", i, test.ok, ok)
		}
	}
}

func Test_Path(t *testing.T) {
	s := parseOK(t, `
		server {
			listen: [
				{ port: 80
				}
				(:tls 443)
			]
		}
		mode: :windowed(768 1024)
		player: :player{
			name: "Alice"
		}
	`)

	tests := []struct {
		path     string
		expected Value
		ok       bool
	}{
		{"server.listen.0.port", Int(80), true},
		{"server.listen.1.1", Int(443), true},
		{"server.listen.1.0", Variant{Name: "tls"}, true},
		{"mode.0", Int(768), true},
		{"player.name", String("Alice"), true},
		{"server.listen.2", nil, false},
		{"server.listen.x", nil, false},
		{"server.missing", nil, false},
		{"mode.0.1", nil, false},
	}

	for _, test := range tests {
		v, ok := s.Path(test.path)

		if ok != test.ok {
			t.Errorf("%s - unexpected result, expected=%v, got=%v\n", test.path, test.ok, ok)
			continue
		}

		if diff := cmp.Diff(test.expected, v, treeOpts...); diff != "" {
			t.Errorf("%s - unexpected value (-expected +actual):\n%s", test.path, diff)
		}
	}

	if v, ok := s.Path(""); !ok || v != Value(s) {
		t.Errorf("expected empty path to resolve to the struct itself\n")
	}
}
