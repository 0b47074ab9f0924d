package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Partitioning is the precomputed block structure of a program.
type Partitioning struct {
	blocks   []*Block
	byID     map[string]*Block
	byCall   map[Location]*Block
	byReturn map[Location]*Block
}

// NewPartitioning indexes blocks by id, entry and exit location.
// A location may be the entry of at most one block and the exit of at most one block.
func NewPartitioning(blocks ...*Block) (*Partitioning, error) {
	p := &Partitioning{
		byID:     make(map[string]*Block, len(blocks)),
		byCall:   make(map[Location]*Block),
		byReturn: make(map[Location]*Block),
	}
	for _, b := range blocks {
		if _, exists := p.byID[b.ID]; exists {
			return nil, zerr.With(ErrDuplicateBlock, "block", b.ID)
		}
		p.byID[b.ID] = b
		p.blocks = append(p.blocks, b)

		for _, l := range b.CallLocations() {
			if other, exists := p.byCall[l]; exists {
				return nil, zerr.With(zerr.With(ErrAmbiguousCallLocation, "location", l.String()),
					"blocks", other.ID+","+b.ID)
			}
			p.byCall[l] = b
		}
		for _, l := range b.ReturnLocations() {
			if other, exists := p.byReturn[l]; exists {
				return nil, zerr.With(zerr.With(ErrAmbiguousReturnLocation, "location", l.String()),
					"blocks", other.ID+","+b.ID)
			}
			p.byReturn[l] = b
		}
	}
	return p, nil
}

// IsCallLocation reports whether l is the entry of some block.
func (p *Partitioning) IsCallLocation(l Location) bool {
	_, ok := p.byCall[l]
	return ok
}

// BlockForCallLocation returns the block entered at l, or nil.
func (p *Partitioning) BlockForCallLocation(l Location) *Block {
	return p.byCall[l]
}

// BlockForReturnLocation returns the block left at l, or nil.
func (p *Partitioning) BlockForReturnLocation(l Location) *Block {
	return p.byReturn[l]
}

// Block returns the block with the given id, or nil.
func (p *Partitioning) Block(id string) *Block {
	return p.byID[id]
}

// Blocks yields the blocks in declaration order.
func (p *Partitioning) Blocks() iter.Seq[*Block] {
	return slices.Values(p.blocks)
}

// Len returns the number of blocks.
func (p *Partitioning) Len() int {
	return len(p.blocks)
}

// InNestedInterior reports whether l lies strictly inside a block nested in
// current (other than current itself) without being one of its entries.
// Such locations may only be reached through that block's own analysis.
func (p *Partitioning) InNestedInterior(current *Block, l Location) bool {
	for _, b := range p.blocks {
		if b == current || !b.Contains(l) || b.IsCallLocation(l) {
			continue
		}
		if b.NestedIn(current) {
			return true
		}
	}
	return false
}
