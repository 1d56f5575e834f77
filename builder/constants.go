// SPDX-License-Identifier: MIT
// Package: hyperdag/builder
//
// constants.go - shared constants used by hyperedge topology constructors,
// ensuring consistent defaults and validation across all of them.

package builder

// Canonical constructor names, used to prefix errors with method context.
const (
	methodPath   = "Path"
	methodStar   = "Star"
	methodClique = "Clique"
)

// Minimum node counts per topology.
const (
	// minPathNodes is the smallest path with at least one directed step.
	minPathNodes = 2
	// minStarNodes is one hub plus at least one leaf.
	minStarNodes = 2
	// minCliqueNodes is the smallest clique with at least one pair.
	minCliqueNodes = 2
)

// centerVertexID is the fixed hub vertex ID used by Star.
const centerVertexID = "center"
