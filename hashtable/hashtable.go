// Package hashtable provides a generic hash table with chained buckets,
// keyed by the xxhash 64-bit digest of the key. Collisions land in a
// per-bucket chain that is scanned linearly; the table doubles its bucket
// count and rehashes every entry once the load factor passes 0.75.
//
// A Table must not be shared across concurrent mutators.
package hashtable

import "github.com/weirdgiraffe/wxstats/xxhash"

const (
	initialCapacity     = 16
	loadFactorThreshold = 0.75
)

type entry[K ~string, V any] struct {
	key   K
	value V
}

// Table maps keys of any string kind to values. The zero value is not
// usable; construct with New or NewWithCapacity.
type Table[K ~string, V any] struct {
	buckets [][]entry[K, V]
	size    int
}

// New returns an empty table with the default capacity.
func New[K ~string, V any]() *Table[K, V] {
	return NewWithCapacity[K, V](initialCapacity)
}

// NewWithCapacity returns an empty table with capacity buckets.
func NewWithCapacity[K ~string, V any](capacity int) *Table[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Table[K, V]{
		buckets: make([][]entry[K, V], capacity),
	}
}

func (t *Table[K, V]) bucketIndex(key K) int {
	return int(xxhash.Sum64String(string(key)) % uint64(len(t.buckets)))
}

func (t *Table[K, V]) loadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// resize doubles the bucket count and redistributes every entry.
func (t *Table[K, V]) resize() {
	old := t.buckets
	t.buckets = make([][]entry[K, V], 2*len(old))
	t.size = 0
	for _, bucket := range old {
		for _, e := range bucket {
			t.Set(e.key, e.value)
		}
	}
}

// Set stores value under key. If the key was already present its previous
// value is returned with replaced=true and the size does not change.
func (t *Table[K, V]) Set(key K, value V) (prev V, replaced bool) {
	if t.loadFactor() > loadFactorThreshold {
		t.resize()
	}

	i := t.bucketIndex(key)
	bucket := t.buckets[i]
	for j := range bucket {
		if bucket[j].key == key {
			prev = bucket[j].value
			bucket[j].value = value
			return prev, true
		}
	}

	t.buckets[i] = append(bucket, entry[K, V]{key: key, value: value})
	t.size++
	return prev, false
}

// Get returns the value stored under key.
func (t *Table[K, V]) Get(key K) (V, bool) {
	bucket := t.buckets[t.bucketIndex(key)]
	for j := range bucket {
		if bucket[j].key == key {
			return bucket[j].value, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Delete removes key and returns its value. The table never shrinks.
func (t *Table[K, V]) Delete(key K) (V, bool) {
	i := t.bucketIndex(key)
	bucket := t.buckets[i]
	for j := range bucket {
		if bucket[j].key == key {
			value := bucket[j].value
			t.buckets[i] = append(bucket[:j], bucket[j+1:]...)
			t.size--
			return value, true
		}
	}
	var zero V
	return zero, false
}

// Len returns the number of stored entries.
func (t *Table[K, V]) Len() int { return t.size }

// Empty reports whether the table has no entries.
func (t *Table[K, V]) Empty() bool { return t.size == 0 }

// Range calls fn for every entry in bucket-then-chain order until fn
// returns false. The order is not sorted and not stable across resizes.
// The table must not be mutated during Range.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) {
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns all keys in Range order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.Range(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values returns all values in Range order.
func (t *Table[K, V]) Values() []V {
	values := make([]V, 0, t.size)
	t.Range(func(_ K, value V) bool {
		values = append(values, value)
		return true
	})
	return values
}
