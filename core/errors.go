package core

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers should branch with errors.Is against these values;
// for most kinds the concrete error returned is one of the typed wrappers
// below, each of which Unwraps to its sentinel. ErrHyperedgesInvalidIntersections,
// ErrHyperedgesInvalidJoin and ErrNegativeHyperedgeCost have no wrapper and
// are returned as the bare sentinel.
var (
	// ErrVertexIndexNotFound indicates a stable VertexIndex absent from the
	// vertex translation.
	ErrVertexIndexNotFound = errors.New("core: vertex index not found")

	// ErrHyperedgeIndexNotFound indicates a stable HyperedgeIndex absent from
	// the hyperedge translation.
	ErrHyperedgeIndexNotFound = errors.New("core: hyperedge index not found")

	// ErrInternalVertexIndexNotFound signals a broken invariant: an internal
	// vertex slot referenced by a back-reference or translation entry does
	// not exist. Always a bug, never a user error.
	ErrInternalVertexIndexNotFound = errors.New("core: internal vertex index not found")

	// ErrInternalHyperedgeIndexNotFound signals a broken invariant: an
	// internal hyperedge slot referenced elsewhere does not exist.
	ErrInternalHyperedgeIndexNotFound = errors.New("core: internal hyperedge index not found")

	// ErrVertexWeightAlreadyAssigned indicates the payload is already held
	// by another vertex.
	ErrVertexWeightAlreadyAssigned = errors.New("core: vertex weight already assigned")

	// ErrHyperedgeWeightAlreadyAssigned indicates the payload is already
	// held by another hyperedge.
	ErrHyperedgeWeightAlreadyAssigned = errors.New("core: hyperedge weight already assigned")

	// ErrVertexWeightUnchanged indicates an update was requested with the
	// vertex's current payload.
	ErrVertexWeightUnchanged = errors.New("core: vertex weight unchanged")

	// ErrHyperedgeWeightUnchanged indicates an update was requested with the
	// hyperedge's current payload.
	ErrHyperedgeWeightUnchanged = errors.New("core: hyperedge weight unchanged")

	// ErrHyperedgeVerticesUnchanged indicates the requested vertex sequence
	// equals the current one.
	ErrHyperedgeVerticesUnchanged = errors.New("core: hyperedge vertices unchanged")

	// ErrHyperedgeCreationNoVertices indicates an empty sequence on add.
	ErrHyperedgeCreationNoVertices = errors.New("core: hyperedge creation requires at least one vertex")

	// ErrHyperedgeUpdateNoVertices indicates an empty sequence on update.
	ErrHyperedgeUpdateNoVertices = errors.New("core: hyperedge update requires at least one vertex")

	// ErrHyperedgesInvalidIntersections indicates fewer than two hyperedges
	// were supplied to GetHyperedgesIntersections.
	ErrHyperedgesInvalidIntersections = errors.New("core: intersections require at least two hyperedges")

	// ErrHyperedgesInvalidJoin indicates fewer than two hyperedges were
	// supplied to JoinHyperedges.
	ErrHyperedgesInvalidJoin = errors.New("core: join requires at least two hyperedges")

	// ErrHyperedgeInvalidContraction indicates the contraction target was
	// not among the supplied vertices.
	ErrHyperedgeInvalidContraction = errors.New("core: contraction target not among supplied vertices")

	// ErrHyperedgeVerticesIndexesNotFound indicates one or more contraction
	// inputs are not present in the target hyperedge's sequence.
	ErrHyperedgeVerticesIndexesNotFound = errors.New("core: contraction vertices not found in hyperedge")

	// ErrNegativeHyperedgeCost indicates a hyperedge exposed a negative cost
	// to Dijkstra. Costs must be non-negative; Dijkstra's relaxation step
	// is undefined otherwise, so this fails fast instead of misbehaving
	// silently.
	ErrNegativeHyperedgeCost = errors.New("core: hyperedge cost must be non-negative")
)

// VertexIndexNotFoundError wraps ErrVertexIndexNotFound with the offending
// stable index.
type VertexIndexNotFoundError struct{ Index VertexIndex }

func (e *VertexIndexNotFoundError) Error() string {
	return fmt.Sprintf("%s: %d", ErrVertexIndexNotFound, e.Index)
}
func (e *VertexIndexNotFoundError) Unwrap() error { return ErrVertexIndexNotFound }

// HyperedgeIndexNotFoundError wraps ErrHyperedgeIndexNotFound with the
// offending stable index.
type HyperedgeIndexNotFoundError struct{ Index HyperedgeIndex }

func (e *HyperedgeIndexNotFoundError) Error() string {
	return fmt.Sprintf("%s: %d", ErrHyperedgeIndexNotFound, e.Index)
}
func (e *HyperedgeIndexNotFoundError) Unwrap() error { return ErrHyperedgeIndexNotFound }

// InternalVertexIndexNotFoundError wraps ErrInternalVertexIndexNotFound with
// the offending internal slot.
type InternalVertexIndexNotFoundError struct{ Slot int }

func (e *InternalVertexIndexNotFoundError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInternalVertexIndexNotFound, e.Slot)
}
func (e *InternalVertexIndexNotFoundError) Unwrap() error { return ErrInternalVertexIndexNotFound }

// InternalHyperedgeIndexNotFoundError wraps ErrInternalHyperedgeIndexNotFound
// with the offending internal slot.
type InternalHyperedgeIndexNotFoundError struct{ Slot int }

func (e *InternalHyperedgeIndexNotFoundError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInternalHyperedgeIndexNotFound, e.Slot)
}
func (e *InternalHyperedgeIndexNotFoundError) Unwrap() error {
	return ErrInternalHyperedgeIndexNotFound
}

// VertexWeightAlreadyAssignedError wraps ErrVertexWeightAlreadyAssigned with
// the conflicting payload.
type VertexWeightAlreadyAssignedError[V any] struct{ Weight V }

func (e *VertexWeightAlreadyAssignedError[V]) Error() string {
	return fmt.Sprintf("%s: %v", ErrVertexWeightAlreadyAssigned, e.Weight)
}
func (e *VertexWeightAlreadyAssignedError[V]) Unwrap() error { return ErrVertexWeightAlreadyAssigned }

// HyperedgeWeightAlreadyAssignedError wraps ErrHyperedgeWeightAlreadyAssigned
// with the conflicting payload.
type HyperedgeWeightAlreadyAssignedError[HE any] struct{ Weight HE }

func (e *HyperedgeWeightAlreadyAssignedError[HE]) Error() string {
	return fmt.Sprintf("%s: %v", ErrHyperedgeWeightAlreadyAssigned, e.Weight)
}
func (e *HyperedgeWeightAlreadyAssignedError[HE]) Unwrap() error {
	return ErrHyperedgeWeightAlreadyAssigned
}

// VertexWeightUnchangedError wraps ErrVertexWeightUnchanged with the index
// and the repeated payload.
type VertexWeightUnchangedError[V any] struct {
	Index  VertexIndex
	Weight V
}

func (e *VertexWeightUnchangedError[V]) Error() string {
	return fmt.Sprintf("%s: %d, %v", ErrVertexWeightUnchanged, e.Index, e.Weight)
}
func (e *VertexWeightUnchangedError[V]) Unwrap() error { return ErrVertexWeightUnchanged }

// HyperedgeWeightUnchangedError wraps ErrHyperedgeWeightUnchanged with the
// index and the repeated payload.
type HyperedgeWeightUnchangedError[HE any] struct {
	Index  HyperedgeIndex
	Weight HE
}

func (e *HyperedgeWeightUnchangedError[HE]) Error() string {
	return fmt.Sprintf("%s: %d, %v", ErrHyperedgeWeightUnchanged, e.Index, e.Weight)
}
func (e *HyperedgeWeightUnchangedError[HE]) Unwrap() error { return ErrHyperedgeWeightUnchanged }

// HyperedgeVerticesUnchangedError wraps ErrHyperedgeVerticesUnchanged with
// the offending index.
type HyperedgeVerticesUnchangedError struct{ Index HyperedgeIndex }

func (e *HyperedgeVerticesUnchangedError) Error() string {
	return fmt.Sprintf("%s: %d", ErrHyperedgeVerticesUnchanged, e.Index)
}
func (e *HyperedgeVerticesUnchangedError) Unwrap() error { return ErrHyperedgeVerticesUnchanged }

// HyperedgeCreationNoVerticesError wraps ErrHyperedgeCreationNoVertices with
// the payload that would have been assigned.
type HyperedgeCreationNoVerticesError[HE any] struct{ Weight HE }

func (e *HyperedgeCreationNoVerticesError[HE]) Error() string {
	return fmt.Sprintf("%s: %v", ErrHyperedgeCreationNoVertices, e.Weight)
}
func (e *HyperedgeCreationNoVerticesError[HE]) Unwrap() error {
	return ErrHyperedgeCreationNoVertices
}

// HyperedgeUpdateNoVerticesError wraps ErrHyperedgeUpdateNoVertices with the
// offending index.
type HyperedgeUpdateNoVerticesError struct{ Index HyperedgeIndex }

func (e *HyperedgeUpdateNoVerticesError) Error() string {
	return fmt.Sprintf("%s: %d", ErrHyperedgeUpdateNoVertices, e.Index)
}
func (e *HyperedgeUpdateNoVerticesError) Unwrap() error { return ErrHyperedgeUpdateNoVertices }

// HyperedgeInvalidContractionError wraps ErrHyperedgeInvalidContraction with
// the full contraction request.
type HyperedgeInvalidContractionError struct {
	Index    HyperedgeIndex
	Target   VertexIndex
	Vertices []VertexIndex
}

func (e *HyperedgeInvalidContractionError) Error() string {
	return fmt.Sprintf("%s: hyperedge %d, target %d, vertices %v",
		ErrHyperedgeInvalidContraction, e.Index, e.Target, e.Vertices)
}
func (e *HyperedgeInvalidContractionError) Unwrap() error { return ErrHyperedgeInvalidContraction }

// HyperedgeVerticesIndexesNotFoundError wraps
// ErrHyperedgeVerticesIndexesNotFound with the hyperedge index and the
// vertices that were not found in its sequence.
type HyperedgeVerticesIndexesNotFoundError struct {
	Index    HyperedgeIndex
	Vertices []VertexIndex
}

func (e *HyperedgeVerticesIndexesNotFoundError) Error() string {
	return fmt.Sprintf("%s: hyperedge %d, vertices %v",
		ErrHyperedgeVerticesIndexesNotFound, e.Index, e.Vertices)
}
func (e *HyperedgeVerticesIndexesNotFoundError) Unwrap() error {
	return ErrHyperedgeVerticesIndexesNotFound
}
