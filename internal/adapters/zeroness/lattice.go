// Package zeroness provides a finite abstract domain tracking whether integer
// variables are zero, together with a scope-based block reducer.
package zeroness

import (
	"strings"

	"go.trai.ch/zerr"
)

// Value models the zero-ness lattice: Bottom ⊑ Zero, NonZero ⊑ Top.
type Value int

const (
	// Bottom is the value of no integer; a state holding it is unreachable.
	Bottom Value = iota
	// Zero is exactly 0.
	Zero
	// NonZero is any integer other than 0.
	NonZero
	// Top is any integer.
	Top
)

var errUnknownValue = zerr.New("unknown zero-ness value")

func (v Value) String() string {
	switch v {
	case Bottom:
		return "bottom"
	case Zero:
		return "zero"
	case NonZero:
		return "nonzero"
	case Top:
		return "top"
	default:
		return "unknown"
	}
}

// ParseValue parses a value name. "0" and "*" are accepted for zero and top.
func ParseValue(s string) (Value, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bottom":
		return Bottom, nil
	case "zero", "0":
		return Zero, nil
	case "nonzero":
		return NonZero, nil
	case "top", "*", "":
		return Top, nil
	default:
		return Bottom, zerr.With(errUnknownValue, "value", s)
	}
}

// Leq reports whether a ⊑ b.
func Leq(a, b Value) bool {
	return a == Bottom || b == Top || a == b
}

// Join returns the least upper bound of a and b.
func Join(a, b Value) Value {
	switch {
	case a == Bottom:
		return b
	case b == Bottom:
		return a
	case a == b:
		return a
	default:
		return Top
	}
}

// Meet returns the greatest lower bound of a and b.
func Meet(a, b Value) Value {
	switch {
	case a == Top:
		return b
	case b == Top:
		return a
	case a == b:
		return a
	default:
		return Bottom
	}
}
