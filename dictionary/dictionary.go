// Package dictionary implements the insertion-order dictionary engine (C10)
// shared by the Dict integer and float codecs.
//
// The insertion-order map plus ordered value list mirrors
// internal/collision/tracker.go's hash -> name / ordered-list pairing. The
// Dict codecs frame the dictionary's values behind a u32 LE cardinality.
package dictionary

// Engine maintains a value -> u32 index mapping in insertion order, a
// parallel value list, and a last-pushed index for the null shortcut.
//
// A dictionary instance is stateless across pages: a codec constructs one
// per compress call and discards it once its indices and values are taken.
type Engine[T comparable] struct {
	index     map[T]uint32
	sets      []T
	indices   []uint32
	lastIndex uint32
	hasLast   bool
}

// New creates an empty dictionary engine.
func New[T comparable]() *Engine[T] {
	return &Engine[T]{index: make(map[T]uint32)}
}

// Push inserts v if new (fixing its index at the first occurrence) and
// appends its index to the emission order. Returns the index used.
func (e *Engine[T]) Push(v T) uint32 {
	idx, ok := e.index[v]
	if !ok {
		idx = uint32(len(e.sets))
		e.index[v] = idx
		e.sets = append(e.sets, v)
	}

	e.indices = append(e.indices, idx)
	e.lastIndex = idx
	e.hasLast = true

	return idx
}

// PushLastIndex re-emits the previously pushed index without touching the
// dictionary itself. Used for null positions so the index stream stays
// dense: a null doesn't get its own dictionary entry, it just repeats
// whatever index preceded it. Returns false if nothing has been pushed yet
// (dictionary still empty).
func (e *Engine[T]) PushLastIndex() bool {
	if !e.hasLast {
		return false
	}

	e.indices = append(e.indices, e.lastIndex)

	return true
}

// TakeIndices returns the accumulated u32 index vector and clears it.
// len(returned) == L at the end of a full encode pass.
func (e *Engine[T]) TakeIndices() []uint32 {
	out := e.indices
	e.indices = nil

	return out
}

// GetSets returns the dictionary's value vector in insertion order.
// max(indices) < len(GetSets()) is the engine's core invariant.
func (e *Engine[T]) GetSets() []T {
	return e.sets
}

// Cardinality returns the number of distinct values pushed so far.
func (e *Engine[T]) Cardinality() int {
	return len(e.sets)
}

// Len returns the number of indices emitted so far.
func (e *Engine[T]) Len() int {
	return len(e.indices)
}
