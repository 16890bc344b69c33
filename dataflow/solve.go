package dataflow

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/indexical"
	"github.com/hupe1980/indexical/bitset"
	"github.com/hupe1980/indexical/internal/queue"
)

// Direction selects which neighbours a node joins over.
type Direction uint8

const (
	// Forward joins over predecessors.
	Forward Direction = iota
	// Backward joins over successors.
	Backward
)

// Problem describes a gen/kill problem. Gen and Kill must share one fact
// domain; nodes without a row have empty gen or kill sets.
type Problem[N, T comparable, S bitset.BitSet[S]] struct {
	Nodes     []N
	Edges     map[N][]N
	Direction Direction

	Gen  *indexical.IndexMatrix[N, T, S]
	Kill *indexical.IndexMatrix[N, T, S]

	// Empty builds fact sets for the solution.
	Empty bitset.EmptyFunc[S]
}

// Result holds the fixpoint. Both matrices have a row for every node.
type Result[N, T comparable, S bitset.BitSet[S]] struct {
	In  *indexical.IndexMatrix[N, T, S]
	Out *indexical.IndexMatrix[N, T, S]

	// Iterations counts node visits.
	Iterations int
}

// graph is the problem's edge list resolved to node indices.
type graph struct {
	inputs     [][]int
	dependents [][]int
	priority   []int
}

// Solve runs the worklist iteration to a fixpoint.
//
// It returns an error wrapping indexical.ErrInvalidProblem for malformed
// problems, or the context's error if ctx is done before convergence.
func Solve[N, T comparable, S bitset.BitSet[S]](ctx context.Context, p Problem[N, T, S], opts ...Option) (*Result[N, T, S], error) {
	o := options{
		logger:  indexical.NoopLogger(),
		metrics: indexical.NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	res, err := solve(ctx, p)

	iterations := 0
	if res != nil {
		iterations = res.Iterations
	}
	o.logger.LogSolve(ctx, len(p.Nodes), iterations, err)
	o.metrics.RecordSolve(len(p.Nodes), iterations, time.Since(start), err)
	return res, err
}

func solve[N, T comparable, S bitset.BitSet[S]](ctx context.Context, p Problem[N, T, S]) (*Result[N, T, S], error) {
	if p.Gen == nil || p.Kill == nil || p.Empty == nil {
		return nil, fmt.Errorf("%w: gen, kill and empty are required", indexical.ErrInvalidProblem)
	}
	facts := p.Gen.ColDomain()
	if p.Kill.ColDomain() != facts {
		return nil, fmt.Errorf("%w: gen and kill range over different fact domains", indexical.ErrInvalidProblem)
	}

	nodes := indexical.NewDomain[N](indexical.WithCapacity(len(p.Nodes)))
	for _, n := range p.Nodes {
		if nodes.Contains(n) {
			return nil, fmt.Errorf("%w: duplicate node %v", indexical.ErrInvalidProblem, n)
		}
		nodes.Insert(n)
		for _, m := range []*indexical.IndexMatrix[N, T, S]{p.Gen, p.Kill} {
			if c := m.RowSet(n).Capacity(); c != facts.Len() {
				return nil, fmt.Errorf("%w: row %v has capacity %d, fact domain has %d", indexical.ErrInvalidProblem, n, c, facts.Len())
			}
		}
	}

	g, err := buildGraph(p, nodes)
	if err != nil {
		return nil, err
	}

	col := indexical.Borrow(facts)
	before := indexical.NewIndexMatrix[N, T, S](col, p.Empty, indexical.WithCapacity(len(p.Nodes)))
	after := indexical.NewIndexMatrix[N, T, S](col, p.Empty, indexical.WithCapacity(len(p.Nodes)))
	for _, n := range p.Nodes {
		before.EnsureRow(n)
		after.EnsureRow(n)
	}
	scratch := indexical.NewIndexSet(col, p.Empty)

	w := queue.NewWorklist(g.priority)
	w.PushAll()

	iterations := 0
	for {
		i, ok := w.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++

		n := nodes.Value(indexical.Index(i))
		in := before.EnsureRow(n)
		in.Clear()
		for _, j := range g.inputs[i] {
			in.Union(after.RowSet(nodes.Value(indexical.Index(j))))
		}

		scratch.CopyFrom(in)
		scratch.Subtract(p.Kill.RowSet(n))
		scratch.Union(p.Gen.RowSet(n))

		// Gen/kill transfer is monotone and every fact starts empty, so
		// the new value is a superset of the old one.
		if after.EnsureRow(n).UnionChanged(scratch) {
			for _, j := range g.dependents[i] {
				w.Push(j)
			}
		}
	}

	res := &Result[N, T, S]{In: before, Out: after, Iterations: iterations}
	if p.Direction == Backward {
		res.In, res.Out = after, before
	}
	return res, nil
}

func buildGraph[N, T comparable, S bitset.BitSet[S]](p Problem[N, T, S], nodes *indexical.IndexedDomain[N]) (*graph, error) {
	n := nodes.Len()
	succ := make([][]int, n)
	pred := make([][]int, n)
	for from, tos := range p.Edges {
		i, ok := nodes.Lookup(from)
		if !ok {
			return nil, fmt.Errorf("%w: edge from unknown node %v", indexical.ErrInvalidProblem, from)
		}
		for _, to := range tos {
			j, ok := nodes.Lookup(to)
			if !ok {
				return nil, fmt.Errorf("%w: edge to unknown node %v", indexical.ErrInvalidProblem, to)
			}
			succ[i] = append(succ[i], int(j))
			pred[j] = append(pred[j], int(i))
		}
	}

	g := &graph{priority: make([]int, n)}
	switch p.Direction {
	case Forward:
		g.inputs, g.dependents = pred, succ
		for i := range n {
			g.priority[i] = i
		}
	case Backward:
		g.inputs, g.dependents = succ, pred
		for i := range n {
			g.priority[i] = n - 1 - i
		}
	default:
		return nil, fmt.Errorf("%w: unknown direction %d", indexical.ErrInvalidProblem, p.Direction)
	}
	return g, nil
}
