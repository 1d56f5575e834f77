// Package core implements an in-memory directed hypergraph: vertices carry a
// unique payload V, hyperedges carry an ordered sequence of vertex references
// (length >= 1, repetition allowed) plus a unique payload HE.
//
// The graph is non-simple: two hyperedges may share an identical vertex
// sequence as long as their payloads differ. Self-loops (a vertex repeated
// within one hyperedge) and unaries (hyperedge of length 1) are both legal.
//
// Storage is a pair of insertion-ordered containers (vertexStore,
// hyperedgeStore) addressed by internal slot positions, plus a translation
// that maps slot positions to stable indices handed out to callers.
// Removing an entity uses swap-remove on the underlying slice and then
// rebinds the translation so the stable index space never shifts: an index
// returned by AddVertex/AddHyperedge stays valid, and never gets reused,
// until the entity it names is itself removed.
//
// Concurrency: a single Hypergraph must not be mutated from more than one
// goroutine at a time. Read-only queries are safe to run concurrently with
// each other against an otherwise-idle instance; a sync.RWMutex enforces
// this (see types.go).
//
// Errors are sentinel values (errors.go) paired with typed wrappers carrying
// the offending payload; branch on them with errors.Is.
package core
