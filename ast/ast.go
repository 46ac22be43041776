// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the syntax tree for line-attributed JSON values, and a
// parser that constructs trees from JSON source.
package ast

import (
	"fmt"
	"sort"
	"strconv"
)

// A Value is a single parsed JSON value. The concrete type is one of
// *Object, *Array, *String, *Integer, *Number, *Bool, or *Null.
type Value interface {
	// Line reports the 1-based source line on which the value began.
	Line() int
}

type node struct{ line int }

// Line reports the 1-based source line on which the value began.
// Values constructed by hand rather than by the parser report line 0.
func (n node) Line() int { return n.line }

// An Object is an ordered collection of key-value members. Keys are unique
// by construction: when the parser encounters a repeated key, the first
// occurrence keeps its value and the recurrence is noted on the member's
// DupLines list.
type Object struct {
	node
	Members []*Member
}

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.Members) }

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o.Members)) }

// A Member is a single key-value pair belonging to an Object. Its line is
// the line on which the key's first occurrence began.
type Member struct {
	node
	Key   string
	Value Value

	// DupLines records, in input order, the line of every occurrence of Key
	// after the first. The values of those occurrences are discarded.
	DupLines []int
}

func (m *Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// An Array is an ordered sequence of values.
type Array struct {
	node
	Values []Value
}

// Len reports the number of elements of a.
func (a *Array) Len() int { return len(a.Values) }

func (a *Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a.Values)) }

// A String is a string value with its escape sequences already decoded.
type String struct {
	node
	value string
}

// Value reports the decoded text of s.
func (s *String) Value() string { return s.value }

func (s *String) String() string { return strconv.Quote(s.value) }

// An Integer is a numeric value whose literal had no fractional or exponent
// part and fits in an int64.
type Integer struct {
	node
	value int64
}

// Int64 reports the value of z.
func (z *Integer) Int64() int64 { return z.value }

func (z *Integer) String() string { return strconv.FormatInt(z.value, 10) }

// A Number is a numeric value with a fractional or exponent part, or one too
// large for an int64.
type Number struct {
	node
	value float64
}

// Float64 reports the value of n.
func (n *Number) Float64() float64 { return n.value }

func (n *Number) String() string { return strconv.FormatFloat(n.value, 'g', -1, 64) }

// A Bool is a Boolean constant, true or false.
type Bool struct {
	node
	value bool
}

// Value reports the truth value of b.
func (b *Bool) Value() bool { return b.value }

func (b *Bool) String() string { return strconv.FormatBool(b.value) }

// A Null represents the null constant.
type Null struct{ node }

func (*Null) String() string { return "null" }

// ToValue converts a plain Go value into an ast.Value. It panics if v does
// not have one of the supported types:
//
//	nil            Null
//	bool           Bool
//	string         String
//	int, int64     Integer
//	float64        Number
//	[]any          Array
//	map[string]any Object, members ordered by key
//
// A v that is already an ast.Value is returned unmodified. Values built by
// ToValue carry no source line.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return new(Null)
	case Value:
		return t
	case bool:
		return &Bool{value: t}
	case string:
		return &String{value: t}
	case int:
		return &Integer{value: int64(t)}
	case int64:
		return &Integer{value: t}
	case float64:
		return &Number{value: t}
	case []any:
		out := &Array{Values: make([]Value, len(t))}
		for i, elt := range t {
			out.Values[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := &Object{Members: make([]*Member, len(keys))}
		for i, key := range keys {
			out.Members[i] = &Member{Key: key, Value: ToValue(t[key])}
		}
		return out
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
