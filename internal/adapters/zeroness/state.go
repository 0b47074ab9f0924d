package zeroness

import (
	"io"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/bam/internal/core/domain"
)

// State maps variables to their zero-ness at a location. Variables without an
// entry are Top. The call stack holds the return sites of pending calls.
// States are immutable once built.
type State struct {
	loc   domain.Location
	vals  map[string]Value
	stack []domain.Location
}

// NewState creates a state at loc. Top entries of vals are dropped.
func NewState(loc domain.Location, vals map[string]Value, stack ...domain.Location) *State {
	s := &State{loc: loc, vals: make(map[string]Value, len(vals)), stack: slices.Clone(stack)}
	for k, v := range vals {
		if v != Top {
			s.vals[k] = v
		}
	}
	return s
}

// Location returns the location of s.
func (s *State) Location() domain.Location {
	return s.loc
}

// Get returns the value of v.
func (s *State) Get(v string) Value {
	if val, ok := s.vals[v]; ok {
		return val
	}
	return Top
}

// Stack returns the pending return sites, innermost last.
func (s *State) Stack() []domain.Location {
	return slices.Clone(s.stack)
}

// Vars returns the variables with a value other than Top, sorted.
func (s *State) Vars() []string {
	return slices.Sorted(maps.Keys(s.vals))
}

// assign returns a copy of s at loc with v set to val. Untracked variables stay Top.
func (s *State) assign(loc domain.Location, v string, val Value, p *Precision) *State {
	out := &State{loc: loc, vals: maps.Clone(s.vals), stack: s.stack}
	if val == Top || !p.Tracks(v) {
		delete(out.vals, v)
	} else {
		out.vals[v] = val
	}
	return out
}

// Fingerprint writes the canonical encoding of s.
func (s *State) Fingerprint(w io.Writer) {
	_, _ = io.WriteString(w, s.String())
}

func (s *State) String() string {
	var b strings.Builder
	b.WriteString(s.loc.String())
	b.WriteString("{")
	for i, k := range s.Vars() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(s.vals[k].String())
	}
	b.WriteString("}")
	if len(s.stack) > 0 {
		b.WriteString("[")
		for i, l := range s.stack {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(l.String())
		}
		b.WriteString("]")
	}
	return b.String()
}

func (s *State) equal(o *State) bool {
	return s.loc == o.loc && maps.Equal(s.vals, o.vals) && slices.Equal(s.stack, o.stack)
}

// leq reports whether s is subsumed by o.
func (s *State) leq(o *State) bool {
	if s.loc != o.loc || !slices.Equal(s.stack, o.stack) {
		return false
	}
	for k, ov := range o.vals {
		if !Leq(s.Get(k), ov) {
			return false
		}
	}
	return true
}

// Precision is the set of tracked variables. Untracked variables are always Top.
type Precision struct {
	all     bool
	tracked []string
}

// TrackAll returns the precision tracking every variable.
func TrackAll() *Precision {
	return &Precision{all: true}
}

// Track returns the precision tracking exactly vars.
func Track(vars ...string) *Precision {
	t := slices.Clone(vars)
	slices.Sort(t)
	return &Precision{tracked: slices.Compact(t)}
}

// Tracks reports whether v is tracked.
func (p *Precision) Tracks(v string) bool {
	if p.all {
		return true
	}
	_, ok := slices.BinarySearch(p.tracked, v)
	return ok
}

// Fingerprint writes the canonical encoding of p.
func (p *Precision) Fingerprint(w io.Writer) {
	_, _ = io.WriteString(w, p.String())
}

func (p *Precision) String() string {
	if p.all {
		return "*"
	}
	return "{" + strings.Join(p.tracked, ",") + "}"
}

func (p *Precision) equal(o *Precision) bool {
	return p.all == o.all && slices.Equal(p.tracked, o.tracked)
}
