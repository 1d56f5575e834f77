// Package hyperdag is an in-memory, directed hypergraph library for Go.
//
// A hyperdag.Hypergraph generalizes a directed graph by letting each
// hyperedge span an ordered sequence of vertices of any length — not just
// two — while still exposing the familiar adjacency, degree, and
// shortest-path queries a directed graph would.
//
// Everything is organized under two subpackages:
//
//	core/    — the Hypergraph type, its mutation protocol, and its query
//	           and traversal suite (connections, adjacency, intersections,
//	           Dijkstra, contraction, join, reverse, iteration).
//	builder/ — deterministic hyperedge topology constructors (Path, Star,
//	           Clique) for assembling small hypergraphs in tests and tools.
//
// cmd/hgctl is a small CLI that builds a Hypergraph from a JSON document
// and answers adjacency/degree and shortest-path queries against it,
// consuming only core's public API.
package hyperdag
