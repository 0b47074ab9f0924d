package zeroness

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/zerr"
)

var errUnknownEdge = zerr.New("edge has no parsed statement")

// Domain is the zero-ness abstract domain of one program.
type Domain struct {
	statements map[*domain.Edge]statement
	targets    mapset.Set[domain.Location]
}

// NewDomain parses the statement of every edge of cfa.
func NewDomain(cfa *domain.CFA, targets []domain.Location) (*Domain, error) {
	d := &Domain{
		statements: make(map[*domain.Edge]statement),
		targets:    mapset.NewThreadUnsafeSet(targets...),
	}
	for l := range cfa.Locations() {
		for _, e := range cfa.Leaving(l) {
			st, err := parseStatement(e.Statement)
			if err != nil {
				return nil, zerr.With(err, "edge", e.String())
			}
			d.statements[e] = st
		}
	}
	return d, nil
}

// Successors applies the statement of e to s. A nil edge yields s itself.
func (d *Domain) Successors(ctx context.Context, s domain.State, p domain.Precision, e *domain.Edge) ([]domain.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.Cancelled(err)
	}
	if e == nil {
		return []domain.State{s}, nil
	}
	st, ok := d.statements[e]
	if !ok {
		return nil, zerr.With(errUnknownEdge, "edge", e.String())
	}
	next := st.apply(s.(*State), p.(*Precision), e.To)
	if next == nil {
		return nil, nil
	}
	return []domain.State{next}, nil
}

// Covers reports whether a is subsumed by b.
func (d *Domain) Covers(a, b domain.State) bool {
	return a.(*State).leq(b.(*State))
}

// Equal reports whether a and b are the same state.
func (d *Domain) Equal(a, b domain.State) bool {
	return a.(*State).equal(b.(*State))
}

// EqualPrecision reports whether a and b track the same variables.
func (d *Domain) EqualPrecision(a, b domain.Precision) bool {
	return a.(*Precision).equal(b.(*Precision))
}

// IsTarget reports whether s is at an error location.
func (d *Domain) IsTarget(s domain.State) bool {
	return d.targets.Contains(s.Location())
}

// CheckSuccessors reports whether every successor of s along e is covered by
// one of claimed.
func (d *Domain) CheckSuccessors(ctx context.Context, s domain.State, p domain.Precision, e *domain.Edge,
	claimed []domain.State,
) (bool, error) {
	succ, err := d.Successors(ctx, s, p, e)
	if err != nil {
		return false, err
	}
	for _, n := range succ {
		covered := false
		for _, c := range claimed {
			if d.Covers(n, c) {
				covered = true
				break
			}
		}
		if !covered {
			return false, nil
		}
	}
	return true, nil
}
