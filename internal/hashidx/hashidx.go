// Package hashidx provides the seeded chained hash table used by argparse
// to look up argument names once a parser grows past its linear-scan threshold.
// The table maps a name to a stable position in the caller's registry; it never
// owns the registered arguments themselves.
package hashidx

import (
	"errors"
	"strings"
)

const (
	// DefaultCapacity is the initial bucket count. Always a power of two.
	DefaultCapacity = 256

	// maxLoadNum/maxLoadDen express the 0.75 load factor without floats.
	maxLoadNum = 3
	maxLoadDen = 4
)

// ErrCapacityOverflow is returned when doubling the bucket array would overflow.
var ErrCapacityOverflow = errors.New("hashidx: capacity overflow")

// entry is a collision chain node.
type entry struct {
	key  string
	ref  int
	next *entry
}

// Table is a chained hash table keyed by argument name.
// It is not safe for concurrent use.
type Table struct {
	buckets []*entry
	size    int
	seed    uint32

	// OnResize, when set, is called after every successful resize with the
	// old and new capacities.
	OnResize func(oldCap, newCap int)
}

// New creates a table with DefaultCapacity buckets and a fresh random seed.
func New() *Table {
	t := &Table{buckets: make([]*entry, DefaultCapacity)}
	t.seed = newSeed(t)
	return t
}

// NewWithSeed creates a table with the given bucket count (rounded up to a
// power of two) and a fixed seed. Intended for tests and benchmarks.
func NewWithSeed(capacity int, seed uint32) *Table {
	c := 1
	for c < capacity {
		c <<= 1
	}
	return &Table{buckets: make([]*entry, c), seed: seed}
}

// Len returns the number of stored keys.
func (t *Table) Len() int { return t.size }

// Cap returns the current bucket count.
func (t *Table) Cap() int { return len(t.buckets) }

// Seed returns the per-table hash seed.
func (t *Table) Seed() uint32 { return t.seed }

// Insert binds key to ref. An existing binding for key is overwritten.
func (t *Table) Insert(key string, ref int) error {
	if t.size*maxLoadDen > len(t.buckets)*maxLoadNum {
		if err := t.resize(); err != nil {
			return err
		}
	}

	idx := Sum(key, t.seed) & uint32(len(t.buckets)-1)
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			e.ref = ref
			return nil
		}
	}

	// The table keeps its own copy so callers may reuse their buffers.
	t.buckets[idx] = &entry{key: strings.Clone(key), ref: ref, next: t.buckets[idx]}
	t.size++
	return nil
}

// Lookup returns the ref bound to key.
func (t *Table) Lookup(key string) (int, bool) {
	if t == nil || len(t.buckets) == 0 {
		return 0, false
	}
	idx := Sum(key, t.seed) & uint32(len(t.buckets)-1)
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			return e.ref, true
		}
	}
	return 0, false
}

// Remove unbinds key and reports whether it was present.
func (t *Table) Remove(key string) bool {
	if t == nil || len(t.buckets) == 0 {
		return false
	}
	idx := Sum(key, t.seed) & uint32(len(t.buckets)-1)
	for link := &t.buckets[idx]; *link != nil; link = &(*link).next {
		if (*link).key == key {
			*link = (*link).next
			t.size--
			return true
		}
	}
	return false
}

// Contains reports whether key is bound.
func (t *Table) Contains(key string) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Keys returns every stored key in bucket order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, t.size)
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// resize doubles the bucket array and rehashes every entry into it.
func (t *Table) resize() error {
	oldCap := len(t.buckets)
	newCap, err := grow(oldCap)
	if err != nil {
		return err
	}

	buckets := make([]*entry, newCap)
	mask := uint32(newCap - 1)
	for _, head := range t.buckets {
		for e := head; e != nil; {
			next := e.next
			idx := Sum(e.key, t.seed) & mask
			e.next = buckets[idx]
			buckets[idx] = e
			e = next
		}
	}

	t.buckets = buckets
	if t.OnResize != nil {
		t.OnResize(oldCap, newCap)
	}
	return nil
}

// grow returns the doubled capacity. Bucket indexes are masked from a 32-bit
// hash, so capacities beyond 1<<32 are rejected as well.
func grow(capacity int) (int, error) {
	next := capacity << 1
	if next <= capacity || uint64(next-1) > uint64(^uint32(0)) {
		return 0, ErrCapacityOverflow
	}
	return next, nil
}

// Sum is seeded FNV-1a over key followed by a murmur3 finalizer.
func Sum(key string, seed uint32) uint32 {
	const (
		prime  = 16777619
		offset = 2166136261
	)

	h := uint32(offset) ^ seed
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= prime
	}
	return fmix32(h)
}

// fmix32 is the murmur3 32-bit avalanche step.
func fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}
