package domain

import "io"

// State is an abstract state of the wrapped domain, bound to a location.
//
// Fingerprint writes a canonical encoding of the state. States that the
// domain considers equal must write identical bytes; unequal states may
// collide, so the encoding only narrows candidates before a domain equality
// test.
type State interface {
	Location() Location
	Fingerprint(w io.Writer)
	String() string
}

// Precision controls the granularity of the abstraction for a State.
type Precision interface {
	Fingerprint(w io.Writer)
	String() string
}
