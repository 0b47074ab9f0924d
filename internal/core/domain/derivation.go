package domain

import "strings"

// DerivationNode is one step of a reconstructed derivation. Edge is the
// control-flow edge that produced State from its parent; it is nil for the
// root.
type DerivationNode struct {
	State    State
	Edge     *Edge
	Children []*DerivationNode
}

// DerivationTree is a derivation rooted at the program entry that no longer
// refers to any cached block summary.
type DerivationTree struct {
	Root *DerivationNode
}

// NewDerivationPath links steps into a single-branch tree.
func NewDerivationPath(steps []*DerivationNode) *DerivationTree {
	if len(steps) == 0 {
		return &DerivationTree{}
	}
	for i := 0; i+1 < len(steps); i++ {
		steps[i].Children = []*DerivationNode{steps[i+1]}
	}
	return &DerivationTree{Root: steps[0]}
}

// Path returns the nodes along the first branch of the tree.
func (t *DerivationTree) Path() []*DerivationNode {
	var out []*DerivationNode
	for n := t.Root; n != nil; {
		out = append(out, n)
		if len(n.Children) == 0 {
			break
		}
		n = n.Children[0]
	}
	return out
}

// Len returns the number of nodes on the first branch.
func (t *DerivationTree) Len() int {
	return len(t.Path())
}

// String renders the first branch one step per line.
func (t *DerivationTree) String() string {
	var b strings.Builder
	for i, n := range t.Path() {
		if i > 0 {
			b.WriteString("  via ")
			b.WriteString(n.Edge.String())
			b.WriteString("\n")
		}
		b.WriteString(n.State.String())
		b.WriteString("\n")
	}
	return b.String()
}
