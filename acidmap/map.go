package acidmap

import (
	"github.com/acidmap/acidmap/cmp"
	"github.com/acidmap/acidmap/container"
)

var _ container.OrderedMap[int, int] = (*Map[int, int])(nil)

// Map is the public, ordered associative container: a sorted map from
// keys to values backed by Tree. It is the "Map Facade" of spec.md §4.4.
//
// A Map is not safe for concurrent use by multiple goroutines; its
// iterator-stability guarantee is specifically about single-threaded
// interleaving of mutation and iteration (spec.md §5), not about
// synchronizing concurrent writers.
type Map[K comparable, V any] struct {
	tree Tree[K, V]
}

// New creates an empty Map using the natural order of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewWith[K, V](cmp.GenericComparator[K])
}

// NewWith creates an empty Map ordered by the given comparator.
func NewWith[K comparable, V any](comparator cmp.Comparator[K]) *Map[K, V] {
	return &Map[K, V]{
		tree: Tree[K, V]{
			comparator: comparator,
			alloc:      defaultAllocator[K, V]{},
		},
	}
}

// NewWithAllocator creates an empty Map ordered by comparator, using the
// given Allocator to construct and free nodes instead of the default
// heap-backed one (spec.md §6).
func NewWithAllocator[K comparable, V any](comparator cmp.Comparator[K], alloc Allocator[K, V]) *Map[K, V] {
	return &Map[K, V]{
		tree: Tree[K, V]{
			comparator: comparator,
			alloc:      alloc,
		},
	}
}

// Comparator returns the comparator used to order keys.
func (m *Map[K, V]) Comparator() cmp.Comparator[K] {
	return m.tree.comparator
}

// Root returns the root of the live tree, or nil if the map is empty.
// Exposed for structural verification; ordinary callers should reach
// entries through Find, Begin, or All instead.
func (m *Map[K, V]) Root() *Node[K, V] {
	return m.tree.root
}

// Len returns the number of live entries in the map.
// Time complexity: O(1).
func (m *Map[K, V]) Len() int {
	return m.tree.size
}

// Size is an alias for Len, satisfying container.Container[V].
func (m *Map[K, V]) Size() int {
	return m.tree.size
}

// Empty reports whether the map has no live entries.
func (m *Map[K, V]) Empty() bool {
	return m.tree.size == 0
}

// IsEmpty is a synonym for Empty, matching the teacher container
// convention of an `Empty`/`IsEmpty` pair across sibling types.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.size == 0
}

// Find reports whether key is present and, if so, its value.
// Time complexity: O(log n).
func (m *Map[K, V]) Find(key K) (value V, found bool) {
	_, n := m.tree.find(key)
	if n == nil {
		var zero V

		return zero, false
	}

	return n.value, true
}

// FindIter returns an Iterator at key's entry, or the end iterator if
// key is absent.
// Time complexity: O(log n).
func (m *Map[K, V]) FindIter(key K) *Iterator[K, V] {
	_, n := m.tree.find(key)

	return m.tree.newIterator(n)
}

// Contains reports whether key is present.
// Time complexity: O(log n).
func (m *Map[K, V]) Contains(key K) bool {
	_, n := m.tree.find(key)

	return n != nil
}

// Count returns 1 if key is present, 0 otherwise. Present for symmetry
// with multi-key associative containers; this map never stores duplicate
// keys (spec.md §8 "Uniqueness").
// Time complexity: O(log n).
func (m *Map[K, V]) Count(key K) int {
	if m.Contains(key) {
		return 1
	}

	return 0
}

// At returns the value for key, or ErrNotFound if key is absent.
// Time complexity: O(log n).
func (m *Map[K, V]) At(key K) (V, error) {
	v, ok := m.Find(key)
	if !ok {
		var zero V

		return zero, ErrNotFound
	}

	return v, nil
}

// Ref returns a pointer to key's value, inserting a zero-valued entry
// first if key is absent. This is the operator[]-equivalent described in
// spec.md §4.4: the returned pointer aliases the map's own storage, so
// writes through it are visible to subsequent Find/At calls.
// Time complexity: O(log n).
func (m *Map[K, V]) Ref(key K) *V {
	parent, n := m.tree.find(key)
	if n == nil {
		var zero V

		n = m.tree.alloc.New(key, zero)
		m.tree.attach(parent, n)
	}

	return &n.value
}

// Insert inserts the given (key, value) pair. If a live entry for key
// already exists, nothing is inserted and the existing entry's value is
// left unchanged; the returned Iterator references whichever entry
// (pre-existing or new) now occupies key, and inserted reports which case
// occurred.
// Time complexity: O(log n).
func (m *Map[K, V]) Insert(key K, value V) (it *Iterator[K, V], inserted bool) {
	parent, existing := m.tree.find(key)
	if existing != nil {
		return m.tree.newIterator(existing), false
	}

	n := m.tree.alloc.New(key, value)
	m.tree.attach(parent, n)

	return m.tree.newIterator(n), true
}

// Emplace constructs a candidate (key, value) pair by calling build, then
// checks for a duplicate. This is the eager-construction insertion mode
// of spec.md §4.2: build runs unconditionally, because in general the key
// cannot be known without running it, so the duplicate check can only
// happen afterward. If a live entry for the constructed key already
// exists, the candidate value is discarded and the returned Iterator
// references the existing entry.
//
// Prefer TryEmplace when the key is already known before building the
// value: it avoids constructing a value that might be thrown away.
// Time complexity: O(log n).
func (m *Map[K, V]) Emplace(build func() (K, V)) (it *Iterator[K, V], inserted bool) {
	key, value := build()
	n := m.tree.alloc.New(key, value)

	parent, existing := m.tree.find(key)
	if existing != nil {
		m.tree.alloc.Free(n)

		return m.tree.newIterator(existing), false
	}

	m.tree.attach(parent, n)

	return m.tree.newIterator(n), true
}

// TryEmplace checks for a duplicate of key first, and only calls build to
// construct the value if key is actually absent. This is the efficient
// insertion mode of spec.md §4.2 for values that are expensive to
// construct: a duplicate key never runs build at all.
// Time complexity: O(log n).
func (m *Map[K, V]) TryEmplace(key K, build func() V) (it *Iterator[K, V], inserted bool) {
	parent, existing := m.tree.find(key)
	if existing != nil {
		return m.tree.newIterator(existing), false
	}

	n := m.tree.alloc.New(key, build())
	m.tree.attach(parent, n)

	return m.tree.newIterator(n), true
}

// Erase removes key if present and reports how many entries were removed
// (0 or 1), per spec.md §4.4 and the Open Question resolution in
// DESIGN.md (erase-by-key returns a count, never a raw node).
// Time complexity: O(log n).
func (m *Map[K, V]) Erase(key K) int {
	_, n := m.tree.find(key)
	if n == nil {
		return 0
	}

	m.tree.eraseNode(n)

	return 1
}

// EraseIter erases the entry it references and returns a fresh Iterator
// at the in-order successor captured while the entry was still live, or
// the end iterator if none. it itself is left referencing the
// now-tombstoned entry and remains safe to dereference; callers that no
// longer need it should discard it (or call Close).
//
// Calling EraseIter on the end iterator, or on an iterator already
// pointing at a tombstone, is a no-op that returns the end iterator.
// Time complexity: O(log n).
func (m *Map[K, V]) EraseIter(it *Iterator[K, V]) *Iterator[K, V] {
	if it.node == nil || it.node.deleted {
		return m.tree.newIterator(nil)
	}

	n := it.node
	m.tree.eraseNode(n)

	return m.tree.newIterator(n.tombNext)
}

// Begin returns an Iterator at the minimum key, or the end iterator if
// the map is empty.
// Time complexity: O(log n).
func (m *Map[K, V]) Begin() *Iterator[K, V] {
	return m.tree.newIterator(minNode(m.tree.root))
}

// End returns the past-the-last iterator.
// Time complexity: O(1).
func (m *Map[K, V]) End() *Iterator[K, V] {
	return m.tree.newIterator(nil)
}

// Floor returns an Iterator at the largest live key less than or equal to
// key, or the end iterator if no such key exists.
// Time complexity: O(log n).
func (m *Map[K, V]) Floor(key K) *Iterator[K, V] {
	var floor *Node[K, V]

	n := m.tree.root
	for n != nil {
		switch c := m.tree.comparator(key, n.key); {
		case c == 0:
			return m.tree.newIterator(n)
		case c > 0:
			floor = n
			n = n.right
		default:
			n = n.left
		}
	}

	return m.tree.newIterator(floor)
}

// Ceiling returns an Iterator at the smallest live key greater than or
// equal to key, or the end iterator if no such key exists.
// Time complexity: O(log n).
func (m *Map[K, V]) Ceiling(key K) *Iterator[K, V] {
	var ceil *Node[K, V]

	n := m.tree.root
	for n != nil {
		switch c := m.tree.comparator(key, n.key); {
		case c == 0:
			return m.tree.newIterator(n)
		case c < 0:
			ceil = n
			n = n.left
		default:
			n = n.right
		}
	}

	return m.tree.newIterator(ceil)
}

// PopFirst removes and returns the minimum entry, if any.
// Time complexity: O(log n).
func (m *Map[K, V]) PopFirst() (key K, value V, removed bool) {
	n := minNode(m.tree.root)
	if n == nil {
		var zeroK K

		var zeroV V

		return zeroK, zeroV, false
	}

	key, value = n.key, n.value
	m.tree.eraseNode(n)

	return key, value, true
}

// PopLast removes and returns the maximum entry, if any.
// Time complexity: O(log n).
func (m *Map[K, V]) PopLast() (key K, value V, removed bool) {
	n := maxNode(m.tree.root)
	if n == nil {
		var zeroK K

		var zeroV V

		return zeroK, zeroV, false
	}

	key, value = n.key, n.value
	m.tree.eraseNode(n)

	return key, value, true
}

// Clear erases every live entry by repeatedly erasing the current root,
// reusing the same tombstoning path as Erase. Per spec.md §4.4, this is safe to call while
// an Iterator from before the Clear is still held in the same goroutine:
// the root is only ever reassigned as a byproduct of each individual
// erase, and a tombstoned node survives for as long as something still
// references it.
// Time complexity: O(n log n).
func (m *Map[K, V]) Clear() {
	for m.tree.root != nil {
		m.tree.eraseNode(m.tree.root)
	}
}

// Keys returns all live keys in ascending order.
// Time complexity: O(n).
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.size)
	for k := range m.All() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns all live values in ascending key order.
// Time complexity: O(n).
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.tree.size)
	for _, v := range m.All() {
		values = append(values, v)
	}

	return values
}

// Entries returns all live keys and values in ascending key order. More
// efficient than calling Keys and Values separately, since it walks the
// tree only once.
// Time complexity: O(n).
func (m *Map[K, V]) Entries() ([]K, []V) {
	keys := make([]K, 0, m.tree.size)
	values := make([]V, 0, m.tree.size)

	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v)
	}

	return keys, values
}
