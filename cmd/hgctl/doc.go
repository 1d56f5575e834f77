// Command hgctl loads a hypergraph from a JSON document and answers
// adjacency/degree and shortest-path queries against it, using only
// core's public API.
//
// Document shape:
//
//	{
//	  "vertices": ["a", "b", "c"],
//	  "hyperedges": [
//	    {"id": "e0", "weight": 1, "vertices": ["a", "b"]},
//	    {"id": "e1", "weight": 2, "vertices": ["b", "c", "a"]}
//	  ]
//	}
package main
