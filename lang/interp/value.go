// Package interp implements the tree-walking evaluator of the language: the
// runtime value model, the scope chain, the statement executor and the
// native function surface, along with the Interpret entry point.
package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"
)

// Value is the interface implemented by any value manipulated by the
// evaluator.
type Value interface {
	// Type returns a short string describing the value's type.
	Type() string

	// String returns the display form of the value. Scalars render bare
	// (42, 44.5, abc); other values render the same as GoString.
	String() string

	// GoString returns the debug form of the value, e.g. Int(42),
	// Str("abc"), List[Int(1), None]. Use Sprintf("%#v", v) to render it.
	GoString() string

	// clone returns a copy of the value. Containers are deep-copied so that
	// a value read out of a scope never aliases the stored one.
	clone() Value
}

type (
	// None is the absent value, the result of any failed operation.
	None struct{}

	// Bool is a boolean value.
	Bool bool

	// Int is a signed 64-bit integer value.
	Int int64

	// Real is an IEEE-754 double value.
	Real float64

	// Str is a string value.
	Str string

	// List is an ordered sequence of values.
	List []Value

	// Dict maps string keys to values. Key order is not preserved.
	Dict struct {
		m *swiss.Map[string, Value]
	}
)

func (None) Type() string     { return "none" }
func (None) String() string   { return "None" }
func (None) GoString() string { return "None" }
func (v None) clone() Value   { return v }

func (v Bool) Type() string     { return "bool" }
func (v Bool) String() string   { return strconv.FormatBool(bool(v)) }
func (v Bool) GoString() string { return fmt.Sprintf("Bool(%t)", bool(v)) }
func (v Bool) clone() Value     { return v }

func (v Int) Type() string     { return "int" }
func (v Int) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Int) GoString() string { return fmt.Sprintf("Int(%d)", int64(v)) }
func (v Int) clone() Value     { return v }

func (v Real) Type() string     { return "real" }
func (v Real) String() string   { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Real) GoString() string { return "Real(" + v.String() + ")" }
func (v Real) clone() Value     { return v }

func (v Str) Type() string     { return "str" }
func (v Str) String() string   { return string(v) }
func (v Str) GoString() string { return "Str(" + strconv.Quote(string(v)) + ")" }
func (v Str) clone() Value     { return v }

func (v List) Type() string   { return "list" }
func (v List) String() string { return v.GoString() }
func (v List) GoString() string {
	var sb strings.Builder
	sb.WriteString("List[")
	for i, e := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.GoString())
	}
	sb.WriteString("]")
	return sb.String()
}
func (v List) clone() Value {
	res := make(List, len(v))
	for i, e := range v {
		res[i] = e.clone()
	}
	return res
}

// NewDict returns a dict with initial capacity for at least size entries.
func NewDict(size int) *Dict {
	return &Dict{m: swiss.NewMap[string, Value](uint32(size))}
}

func (v *Dict) Type() string   { return "dict" }
func (v *Dict) String() string { return v.GoString() }

// GoString renders the entries in sorted key order so that the debug form
// is deterministic regardless of the backing map's iteration order.
func (v *Dict) GoString() string {
	keys := v.Keys()
	slices.Sort(keys)

	var sb strings.Builder
	sb.WriteString("Dict{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		e, _ := v.Get(k)
		sb.WriteString(strconv.Quote(k))
		sb.WriteString(": ")
		sb.WriteString(e.GoString())
	}
	sb.WriteString("}")
	return sb.String()
}

func (v *Dict) clone() Value {
	res := NewDict(v.Len())
	v.m.Iter(func(k string, e Value) bool {
		res.m.Put(k, e.clone())
		return false
	})
	return res
}

// Get returns the value for key k, or !found if the dict does not contain
// the key.
func (v *Dict) Get(k string) (Value, bool) {
	return v.m.Get(k)
}

// Put inserts or replaces the value for key k.
func (v *Dict) Put(k string, e Value) {
	v.m.Put(k, e)
}

// Len returns the number of entries in the dict.
func (v *Dict) Len() int {
	return v.m.Count()
}

// Keys returns the dict keys in unspecified order.
func (v *Dict) Keys() []string {
	keys := make([]string, 0, v.m.Count())
	v.m.Iter(func(k string, _ Value) bool {
		keys = append(keys, k)
		return false
	})
	return keys
}
