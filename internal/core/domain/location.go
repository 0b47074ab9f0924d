package domain

import "unique"

// Location is a control-flow location of the analysed program.
// Locations are interned, so comparing two of them is a pointer comparison
// and they can be used directly as map keys.
type Location struct {
	h unique.Handle[string]
}

// NewLocation interns name as a Location.
func NewLocation(name string) Location {
	return Location{h: unique.Make(name)}
}

// NewLocations interns every name in names.
func NewLocations(names ...string) []Location {
	res := make([]Location, len(names))
	for i, n := range names {
		res[i] = NewLocation(n)
	}
	return res
}

// String returns the location name.
func (l Location) String() string {
	var zero unique.Handle[string]
	if l.h == zero {
		return ""
	}
	return l.h.Value()
}

// IsZero reports whether l was never assigned.
func (l Location) IsZero() bool {
	var zero unique.Handle[string]
	return l.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Location) UnmarshalText(text []byte) error {
	l.h = unique.Make(string(text))
	return nil
}
