package bam

import (
	"fmt"
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/bam/internal/core/ports"
)

// CacheKey identifies a block summary: a reduced entry state and precision
// for one block. Keys are compared with the abstract domain's equality.
type CacheKey struct {
	State     domain.State
	Precision domain.Precision
	Block     *domain.Block
}

func (k CacheKey) String() string {
	return k.Block.ID + "@" + k.State.String() + "/" + k.Precision.String()
}

// CacheEntry is the memoized analysis of one block under one key.
//
// An entry is created when the key is first entered and mutated in place:
// partial while its graph has not converged, complete once exit states are
// known. A run that reaches a target leaves the entry partial with Target set.
type CacheEntry struct {
	Key     CacheKey
	Reached *domain.Graph
	// Target is the target node of Reached, or NoNode.
	Target domain.NodeID
	// Proof is the block-local derivation retained in proof-producing mode.
	Proof *Proof

	exits    []domain.NodeID
	complete bool
	running  bool
	evicted  bool
	hash     uint64
	users    mapset.Set[domain.NodeRef]
}

// Complete reports whether the entry holds converged exit states.
func (e *CacheEntry) Complete() bool {
	return e.complete
}

// Exits returns the reduced exit nodes of a complete entry.
func (e *CacheEntry) Exits() []domain.NodeID {
	return slices.Clone(e.exits)
}

// ExitStates returns the reduced exit states of a complete entry.
func (e *CacheEntry) ExitStates() []domain.State {
	out := make([]domain.State, len(e.exits))
	for i, x := range e.exits {
		out[i] = e.Reached.State(x)
	}
	return out
}

// Cache is the block summary cache. Entries are bucketed by a fingerprint of
// their key and told apart within a bucket by domain equality.
type Cache struct {
	domain  ports.AbstractDomain
	buckets map[uint64][]*CacheEntry
	size    int
}

// NewCache creates an empty cache comparing keys with d.
func NewCache(d ports.AbstractDomain) *Cache {
	return &Cache{
		domain:  d,
		buckets: make(map[uint64][]*CacheEntry),
	}
}

func fingerprint(k CacheKey) uint64 {
	h := xxhash.New()
	k.State.Fingerprint(h)
	_, _ = h.WriteString("\x00")
	k.Precision.Fingerprint(h)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(k.Block.ID)
	return h.Sum64()
}

// Digest returns the hex fingerprint of k.
func Digest(k CacheKey) string {
	return fmt.Sprintf("%016x", fingerprint(k))
}

func (c *Cache) matches(e *CacheEntry, k CacheKey) bool {
	return e.Key.Block == k.Block &&
		c.domain.EqualPrecision(e.Key.Precision, k.Precision) &&
		c.domain.Equal(e.Key.State, k.State)
}

// Lookup returns the entry for k, or nil.
func (c *Cache) Lookup(k CacheKey) *CacheEntry {
	for _, e := range c.buckets[fingerprint(k)] {
		if c.matches(e, k) {
			return e
		}
	}
	return nil
}

// Seed registers a new partial entry for k whose graph holds only the
// reduced entry state.
func (c *Cache) Seed(k CacheKey) *CacheEntry {
	e := &CacheEntry{
		Key:     k,
		Reached: domain.NewGraph(k.State, k.Precision),
		Target:  domain.NoNode,
		hash:    fingerprint(k),
		users:   mapset.NewThreadUnsafeSet[domain.NodeRef](),
	}
	c.buckets[e.hash] = append(c.buckets[e.hash], e)
	c.size++
	return e
}

// Evict removes e. It reports whether e was present.
func (c *Cache) Evict(e *CacheEntry) bool {
	if e.evicted {
		return false
	}
	bucket := c.buckets[e.hash]
	i := slices.Index(bucket, e)
	if i < 0 {
		return false
	}
	bucket = slices.Delete(bucket, i, i+1)
	if len(bucket) == 0 {
		delete(c.buckets, e.hash)
	} else {
		c.buckets[e.hash] = bucket
	}
	e.evicted = true
	c.size--
	return true
}

// Contains reports whether e is still cached.
func (c *Cache) Contains(e *CacheEntry) bool {
	return e != nil && !e.evicted
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.size
}

// Entries yields every cached entry.
func (c *Cache) Entries() iter.Seq[*CacheEntry] {
	return func(yield func(*CacheEntry) bool) {
		for _, bucket := range c.buckets {
			for _, e := range bucket {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Clear evicts every entry.
func (c *Cache) Clear() {
	for _, bucket := range c.buckets {
		for _, e := range bucket {
			e.evicted = true
		}
	}
	c.buckets = make(map[uint64][]*CacheEntry)
	c.size = 0
}
