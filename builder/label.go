// SPDX-License-Identifier: MIT
// Package: hyperdag/builder

package builder

import (
	"fmt"
	"math"
)

// HyperedgeLabel is the hyperedge payload type every constructor in this
// package emits. A hypergraph's hyperedge payload must be globally unique
// (core.Hypergraph enforces this), so ID alone carries uniqueness; Weight
// rides alongside it as ordinary numeric metadata, produced by a WeightFn
// the same way edge weights are produced throughout this package.
type HyperedgeLabel struct {
	ID     string
	Weight float64
}

// String renders a label as "ID(Weight)", used by callers that want a quick
// human-readable tag without reaching into the struct fields.
func (l HyperedgeLabel) String() string {
	return fmt.Sprintf("%s(%g)", l.ID, l.Weight)
}

// Cost rounds Weight to the nearest int64, satisfying core.Weigher so a
// hypergraph built by this package can feed directly into
// core.GetDijkstraConnections.
func (l HyperedgeLabel) Cost() int64 {
	return int64(math.Round(l.Weight))
}
