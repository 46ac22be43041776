// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"fmt"
	"testing"

	"github.com/creachadair/jline/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{nil, "null"},

		{false, "false"},
		{true, "true"},

		{"", `""`},
		{"a \t b", `"a \t b"`},

		{-0.00239, `-0.00239`},

		{0, `0`},
		{15, `15`},
		{int64(-25), `-25`},

		{[]any{}, `Array(len=0)`},
		{[]any{true, 199}, `Array(len=2)`},

		{map[string]any{}, `Object(len=0)`},
		{map[string]any{"xs": nil}, `Object(len=1)`},
	}
	for _, test := range tests {
		got := fmt.Sprint(ast.ToValue(test.input))
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestToValue(t *testing.T) {
	t.Run("ObjectOrder", func(t *testing.T) {
		obj, ok := ast.ToValue(map[string]any{"m": 1, "z": 2, "a": 3}).(*ast.Object)
		if !ok {
			t.Fatal("Result is not an object")
		}
		var keys []string
		for _, m := range obj.Members {
			keys = append(keys, m.Key)
		}
		if diff := cmp.Diff([]string{"a", "m", "z"}, keys); diff != "" {
			t.Errorf("Keys: (-want, +got)\n%s", diff)
		}
	})

	t.Run("Passthrough", func(t *testing.T) {
		in := ast.ToValue("hello")
		if got := ast.ToValue(in); got != in {
			t.Errorf("ToValue(%v): got %v, want the input itself", in, got)
		}
	})

	t.Run("NoLine", func(t *testing.T) {
		if got := ast.ToValue(25).Line(); got != 0 {
			t.Errorf("Line: got %d, want 0", got)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue(uint32(1)) })
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
	})
}

func TestFind(t *testing.T) {
	v, err := ast.ParseString(`{"alpha": 1, "bravo": 2}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	obj := v.(*ast.Object)
	if m := obj.Find("bravo"); m == nil {
		t.Error(`Key "bravo" not found`)
	}
	if m := obj.Find("charlie"); m != nil {
		t.Errorf(`Find "charlie": got %v, want nil`, m)
	}
}

func TestPath(t *testing.T) {
	v, err := ast.ParseString(testJSON)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	lenFunc := func(v ast.Value) (ast.Value, error) {
		if ln, ok := v.(interface{ Len() int }); ok {
			return ast.ToValue(ln.Len()), nil
		}
		return nil, fmt.Errorf("%T has no length", v)
	}

	t.Run("NilPath", func(t *testing.T) {
		got, err := ast.Path(v)
		if err != nil {
			t.Fatalf("Path: unexpected error: %v", err)
		}
		if got != v {
			t.Errorf("Path: got %v, want the root", got)
		}
	})
	t.Run("ArrayPos", func(t *testing.T) {
		got, err := ast.Path(v, "episodes", 1)
		if err != nil {
			t.Fatalf("Path: unexpected error: %v", err)
		}
		if z := got.(*ast.Integer); z.Int64() != 2 {
			t.Errorf("Path: got %v, want 2", got)
		}
	})
	t.Run("ArrayNeg", func(t *testing.T) {
		got, err := ast.Path(v, "episodes", -1)
		if err != nil {
			t.Fatalf("Path: unexpected error: %v", err)
		}
		if z := got.(*ast.Integer); z.Int64() != 3 {
			t.Errorf("Path: got %v, want 3", got)
		}
	})
	t.Run("ObjPath", func(t *testing.T) {
		got, err := ast.Path(v, "extra", "rate")
		if err != nil {
			t.Fatalf("Path: unexpected error: %v", err)
		}
		n := got.(*ast.Number)
		if n.Float64() != 3.5 {
			t.Errorf("Path: got %v, want 3.5", got)
		}
		if n.Line() != 6 {
			t.Errorf("Line: got %d, want 6", n.Line())
		}
	})
	t.Run("Func", func(t *testing.T) {
		got, err := ast.Path(v, "episodes", lenFunc)
		if err != nil {
			t.Fatalf("Path: unexpected error: %v", err)
		}
		if z := got.(*ast.Integer); z.Int64() != 3 {
			t.Errorf("Path: got %v, want 3", got)
		}
	})

	bad := []struct {
		name string
		path []any
	}{
		{"NoMatch", []any{"nonesuch"}},
		{"WrongType", []any{"name", 0}},
		{"Range", []any{"episodes", 25}},
		{"FuncErr", []any{"name", lenFunc}},
		{"BadElement", []any{3.5}},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ast.Path(v, tc.path...)
			if err == nil {
				t.Fatalf("Path: got %v, want error", got)
			}
			t.Logf("Got expected error: %v", err)
			if got != v {
				t.Errorf("Path: got %v, want the input back", got)
			}
		})
	}
}
