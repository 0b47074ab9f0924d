package domain

import (
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"go.trai.ch/zerr"
)

// BlockKind distinguishes function bodies from loop bodies.
type BlockKind string

const (
	// BlockFunction is a function body entered through its call locations.
	BlockFunction BlockKind = "function"
	// BlockLoop is a loop body entered through its loop head.
	BlockLoop BlockKind = "loop"
)

// Block is an immutable sub-region of the CFA with designated entry (call)
// and exit (return) locations.
type Block struct {
	ID        string
	Kind      BlockKind
	Recursive bool

	calls     mapset.Set[Location]
	returns   mapset.Set[Location]
	locations mapset.Set[Location]

	// Variables is the variable scope of the block; reduction keeps exactly these.
	Variables []string
	// Locals are the frame-local variables restored after a recursive call.
	Locals []string
}

// BlockSpec describes a block before it is frozen by NewBlock.
type BlockSpec struct {
	ID        string
	Kind      BlockKind
	Recursive bool
	Calls     []Location
	Returns   []Location
	Locations []Location
	Variables []string
	Locals    []string
}

// NewBlock validates spec and creates the block.
// Entry and exit locations are implicitly part of the block.
func NewBlock(spec BlockSpec) (*Block, error) {
	if spec.ID == "" {
		return nil, zerr.With(ErrInvalidBlock, "reason", "empty id")
	}
	if len(spec.Calls) == 0 {
		return nil, zerr.With(zerr.With(ErrInvalidBlock, "reason", "no entry location"), "block", spec.ID)
	}
	kind := spec.Kind
	if kind == "" {
		kind = BlockFunction
	}
	if kind != BlockFunction && kind != BlockLoop {
		return nil, zerr.With(zerr.With(ErrInvalidBlock, "reason", "unknown kind "+string(kind)), "block", spec.ID)
	}

	b := &Block{
		ID:        spec.ID,
		Kind:      kind,
		Recursive: spec.Recursive,
		calls:     mapset.NewThreadUnsafeSet(spec.Calls...),
		returns:   mapset.NewThreadUnsafeSet(spec.Returns...),
		locations: mapset.NewThreadUnsafeSet(spec.Locations...),
		Variables: sortedCopy(spec.Variables),
		Locals:    sortedCopy(spec.Locals),
	}
	b.locations = b.locations.Union(b.calls).Union(b.returns)
	return b, nil
}

func sortedCopy(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}

// IsCallLocation reports whether l is an entry of the block.
func (b *Block) IsCallLocation(l Location) bool {
	return b.calls.Contains(l)
}

// IsReturnLocation reports whether l is an exit of the block.
func (b *Block) IsReturnLocation(l Location) bool {
	return b.returns.Contains(l)
}

// Contains reports whether l belongs to the block.
func (b *Block) Contains(l Location) bool {
	return b.locations.Contains(l)
}

// IsFunction reports whether the block is a function body.
func (b *Block) IsFunction() bool {
	return b.Kind == BlockFunction
}

// NeedsRebuild reports whether expanded exits of the block must be rebuilt
// against the call site, i.e. the block is a recursive function body.
func (b *Block) NeedsRebuild() bool {
	return b.IsFunction() && b.Recursive
}

// NestedIn reports whether every location of b also belongs to outer.
// A nil outer stands for the whole program.
func (b *Block) NestedIn(outer *Block) bool {
	if outer == nil {
		return true
	}
	return b.locations.IsSubset(outer.locations)
}

// CallLocations returns the entry locations sorted by name.
func (b *Block) CallLocations() []Location {
	return sortedLocations(b.calls)
}

// ReturnLocations returns the exit locations sorted by name.
func (b *Block) ReturnLocations() []Location {
	return sortedLocations(b.returns)
}

// Size returns the number of locations in the block.
func (b *Block) Size() int {
	return b.locations.Cardinality()
}

// InScope reports whether variable v is part of the block scope.
func (b *Block) InScope(v string) bool {
	_, ok := slices.BinarySearch(b.Variables, v)
	return ok
}

// IsLocal reports whether v is a frame-local variable of the block.
func (b *Block) IsLocal(v string) bool {
	_, ok := slices.BinarySearch(b.Locals, v)
	return ok
}

func sortedLocations(s mapset.Set[Location]) []Location {
	out := s.ToSlice()
	slices.SortFunc(out, func(a, b Location) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}
