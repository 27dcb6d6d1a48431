package value

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"reflect"
	"strings"
)

// Value is an arbitrary CSS property value: a string, a number, a boolean,
// or a structured Numeric value.
type Value interface{}

// Priority qualifies a CSS property value.
type Priority uint8

// The two CSS declaration priorities.
const (
	Usual Priority = iota
	Important
)

// ImportantSuffix marks important priority in textual property values.
const ImportantSuffix = " !important"

// Suffix returns the textual marker of the priority: ImportantSuffix for
// Important and the empty string otherwise.
func (p Priority) Suffix() string {
	if p == Important {
		return ImportantSuffix
	}
	return ""
}

func (p Priority) String() string {
	if p == Important {
		return "!important"
	}
	return ""
}

// SplitPriority decomposes a property value into the value without its
// priority and the priority itself. A string value ending in the literal
// suffix " !important" carries important priority; a Numeric value carries
// its own priority flag; every other value is usual.
func SplitPriority(v Value) (Value, Priority) {
	switch x := v.(type) {
	case string:
		if strings.HasSuffix(x, ImportantSuffix) {
			return strings.TrimSuffix(x, ImportantSuffix), Important
		}
		return x, Usual
	case Numeric:
		return x.Prioritize(Usual), x.Priority()
	}
	return v, Usual
}

// Equal compares two arbitrary property values. Structured numeric values
// compare structurally; other values compare by primitive equality.
func Equal(a, b Value) bool {
	if an, ok := a.(Numeric); ok {
		bn, ok := b.(Numeric)
		return ok && an.Is(bn)
	}
	if _, ok := b.(Numeric); ok {
		return false
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
