package zeroness

import (
	"maps"
	"slices"

	"go.trai.ch/bam/internal/core/domain"
)

// ScopeReducer reduces states to the variable scope of a block.
type ScopeReducer struct {
	blocks *domain.Partitioning
}

// NewScopeReducer creates a reducer for the blocks of one program.
func NewScopeReducer(blocks *domain.Partitioning) *ScopeReducer {
	return &ScopeReducer{blocks: blocks}
}

// Reduce keeps the variables in scope of b and drops the pending calls.
func (r *ScopeReducer) Reduce(s domain.State, p domain.Precision, b *domain.Block, entry domain.Location) (domain.State, domain.Precision) {
	st := s.(*State)
	vals := make(map[string]Value)
	for k, v := range st.vals {
		if b.InScope(k) {
			vals[k] = v
		}
	}

	prec := p.(*Precision)
	var tracked []string
	for _, v := range b.Variables {
		if prec.Tracks(v) {
			tracked = append(tracked, v)
		}
	}
	return &State{loc: entry, vals: vals}, Track(tracked...)
}

// Expand takes in-scope variables from the exit state and everything else,
// including pending calls, from the caller.
func (r *ScopeReducer) Expand(caller domain.State, b *domain.Block, reducedExit domain.State) domain.State {
	c, x := caller.(*State), reducedExit.(*State)
	vals := make(map[string]Value, len(c.vals))
	for k, v := range c.vals {
		if !b.InScope(k) {
			vals[k] = v
		}
	}
	for k, v := range x.vals {
		vals[k] = v
	}
	return &State{loc: x.loc, vals: vals, stack: slices.Concat(c.stack, x.stack)}
}

// ExpandPrecision returns the caller precision; reduced precisions only
// restrict it.
func (r *ScopeReducer) ExpandPrecision(caller domain.Precision, _ *domain.Block, _ domain.Precision) domain.Precision {
	return caller
}

// Rebuild restores the frame-local variables of the returning function from
// the call site.
func (r *ScopeReducer) Rebuild(root, _ domain.State, expanded domain.State) domain.State {
	rs, xs := root.(*State), expanded.(*State)
	b := r.blocks.BlockForReturnLocation(xs.loc)
	if b == nil {
		return expanded
	}
	vals := maps.Clone(xs.vals)
	for _, v := range b.Locals {
		if val, ok := rs.vals[v]; ok {
			vals[v] = val
		} else {
			delete(vals, v)
		}
	}
	return &State{loc: xs.loc, vals: vals, stack: xs.stack}
}
