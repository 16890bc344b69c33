// Package dataflow solves gen/kill bit-vector problems over a graph with a
// worklist fixpoint iteration.
//
// Facts are indexical.IndexSets over one fact domain. Forward problems
// join over predecessors, backward problems over successors:
//
//	before(n) = ∪ after(m) for each flow input m
//	after(n)  = gen(n) ∪ (before(n) \ kill(n))
//
// Liveness is the canonical backward example: gen is the set of variables
// used, kill the set defined.
package dataflow
