package domain_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/zerr"
)

type stubState struct {
	loc  domain.Location
	name string
}

func st(loc, name string) stubState {
	return stubState{loc: domain.NewLocation(loc), name: name}
}

func (s stubState) Location() domain.Location { return s.loc }
func (s stubState) Fingerprint(w io.Writer)   { _, _ = io.WriteString(w, s.loc.String()+"/"+s.name) }
func (s stubState) String() string            { return s.loc.String() + ":" + s.name }

type stubPrecision struct{}

func (stubPrecision) Fingerprint(io.Writer) {}
func (stubPrecision) String() string        { return "*" }

func TestGraph_AddChildAndWaitlist(t *testing.T) {
	g := domain.NewGraph(st("l0", "a"), stubPrecision{})
	root := g.Root()

	id, ok := g.Pop()
	require.True(t, ok)
	assert.Equal(t, root, id)

	c1 := g.AddChild(root, st("l1", "b"), stubPrecision{}, &domain.Edge{
		From: domain.NewLocation("l0"), To: domain.NewLocation("l1"), Statement: "x = 0",
	})
	c2 := g.AddChild(root, st("l1", "c"), stubPrecision{}, nil)
	g.Push(c1)
	g.Push(c2)
	g.Push(c2)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []domain.NodeID{root}, g.Parents(c1))
	assert.Len(t, g.Children(root), 2)
	assert.Equal(t, "x = 0", g.IncomingEdge(c1).Statement)
	assert.Nil(t, g.IncomingEdge(c2))
	assert.Equal(t, c2, g.Peek())

	got, _ := g.Pop()
	assert.Equal(t, c2, got, "waitlist is LIFO")
	got, _ = g.Pop()
	assert.Equal(t, c1, got)
	_, ok = g.Pop()
	assert.False(t, ok, "duplicate pushes are ignored")

	var atL1 []domain.NodeID
	for n := range g.NodesAt(domain.NewLocation("l1")) {
		atL1 = append(atL1, n)
	}
	assert.Equal(t, []domain.NodeID{c1, c2}, atL1)
}

func TestGraph_Replace(t *testing.T) {
	g := domain.NewGraph(st("l0", "a"), stubPrecision{})
	call := g.AddChild(g.Root(), st("f", "entry"), stubPrecision{}, nil)
	expanded := g.AddChild(call, st("f.ret", "x"), stubPrecision{}, nil)
	g.MarkTarget(expanded)

	rebuilt, err := g.Replace(expanded, st("f.ret", "y"), stubPrecision{})
	require.NoError(t, err)

	assert.False(t, g.Contains(expanded))
	assert.Equal(t, []domain.NodeID{call}, g.Parents(rebuilt))
	assert.Equal(t, "f.ret:y", g.State(rebuilt).String())
	assert.True(t, g.IsTarget(rebuilt))
	require.Len(t, g.Children(call), 1)
	assert.Equal(t, rebuilt, g.Children(call)[0].ID)
}

func TestGraph_Replace_Malformed(t *testing.T) {
	g := domain.NewGraph(st("l0", "a"), stubPrecision{})
	mid := g.AddChild(g.Root(), st("l1", "b"), stubPrecision{}, nil)
	g.AddChild(mid, st("l2", "c"), stubPrecision{}, nil)

	_, err := g.Replace(mid, st("l1", "z"), stubPrecision{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedExpansion))
	assert.True(t, domain.IsFatal(err))

	_, err = g.Replace(g.Root(), st("l0", "z"), stubPrecision{})
	assert.True(t, errors.Is(err, domain.ErrMalformedExpansion), "root has no parent")
}

func TestGraph_RemoveSubtree(t *testing.T) {
	g := domain.NewGraph(st("l0", "a"), stubPrecision{})
	_, _ = g.Pop()
	left := g.AddChild(g.Root(), st("l1", "left"), stubPrecision{}, nil)
	leftChild := g.AddChild(left, st("l2", "leaf"), stubPrecision{}, nil)
	right := g.AddChild(g.Root(), st("l2", "right"), stubPrecision{}, nil)
	g.Cover(right, leftChild)

	removed := g.RemoveSubtree(left)

	assert.ElementsMatch(t, []domain.NodeID{left, leftChild}, removed)
	assert.False(t, g.Contains(left))
	assert.False(t, g.Contains(leftChild))
	assert.True(t, g.Contains(right))
	assert.False(t, g.IsCovered(right), "covering by a removed node is dropped")
	assert.Equal(t, 2, g.Len())

	var requeued []domain.NodeID
	for {
		id, ok := g.Pop()
		if !ok {
			break
		}
		requeued = append(requeued, id)
	}
	assert.ElementsMatch(t, []domain.NodeID{g.Root(), right}, requeued)
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := domain.NewGraph(st("l0", "a"), stubPrecision{})
	c := g.AddChild(g.Root(), st("l1", "b"), stubPrecision{}, nil)

	clone := g.Clone()
	g.AddChild(c, st("l2", "c"), stubPrecision{}, nil)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 2, clone.Len())
	assert.Empty(t, clone.Children(c))
	assert.Equal(t, []domain.NodeID{g.Root(), c}, clone.PathToRoot(c))
}

func TestGraph_Validate_Cycle(t *testing.T) {
	g := domain.NewGraph(st("l0", "a"), stubPrecision{})
	b := g.AddChild(g.Root(), st("l1", "b"), stubPrecision{}, nil)
	require.NoError(t, g.Validate())

	g.AddChild(b, st("l2", "c"), stubPrecision{}, nil)
	g.Cover(b, g.Root())
	require.NoError(t, g.Validate(), "covering links are not child links")

	other := domain.NewGraph(st("l0", "a"), stubPrecision{})
	x := other.AddChild(other.Root(), st("l1", "x"), stubPrecision{}, nil)
	y := other.AddChild(x, st("l2", "y"), stubPrecision{}, nil)
	domain.LinkForTest(other, y, x)

	err := other.Validate()
	require.Error(t, err)
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	cycle, ok := zErr.Metadata()["cycle"].(string)
	require.True(t, ok)
	assert.Contains(t, cycle, "l1:x")
}

func TestGraph_CheckUnknownNode(t *testing.T) {
	g := domain.NewGraph(st("l0", "a"), stubPrecision{})
	err := g.Check(domain.NodeID(42))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownNode))
}
