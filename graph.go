package hierarchy

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is an undirected graph with indexed edges. Vertices are
// 0..NumVertices()-1 and edges 0..NumEdges()-1; edge-weight arrays are
// indexed by edge index.
type Graph interface {
	NumVertices() int
	NumEdges() int
	// Edge returns the two endpoints of edge i.
	Edge(i int) (source, target int)
	// OutEdges returns the indices of the edges incident to v, in
	// insertion order. The slice must not be modified.
	OutEdges(v int) []int
}

// UndirectedGraph is an adjacency-list Graph that edges can be added to.
// Parallel edges and self-loops are allowed.
type UndirectedGraph struct {
	sources []int
	targets []int
	out     [][]int
}

var _ Graph = (*UndirectedGraph)(nil)

// NewUndirectedGraph returns a graph with numVertices vertices and no edges.
func NewUndirectedGraph(numVertices int) *UndirectedGraph {
	return &UndirectedGraph{out: make([][]int, numVertices)}
}

// NumVertices returns the number of vertices.
func (g *UndirectedGraph) NumVertices() int { return len(g.out) }

// NumEdges returns the number of edges.
func (g *UndirectedGraph) NumEdges() int { return len(g.sources) }

// Edge returns the endpoints of edge i in the order they were added.
func (g *UndirectedGraph) Edge(i int) (source, target int) {
	return g.sources[i], g.targets[i]
}

// OutEdges returns the indices of the edges incident to v.
func (g *UndirectedGraph) OutEdges(v int) []int { return g.out[v] }

// Degree returns the number of edges incident to v.
func (g *UndirectedGraph) Degree(v int) int { return len(g.out[v]) }

// AddVertex adds a vertex and returns its index.
func (g *UndirectedGraph) AddVertex() int {
	g.out = append(g.out, nil)
	return len(g.out) - 1
}

// AddEdge adds an edge between s and t and returns its index.
func (g *UndirectedGraph) AddEdge(s, t int) (int, error) {
	n := len(g.out)
	if s < 0 || s >= n || t < 0 || t >= n {
		return 0, fmt.Errorf("%w: edge (%d, %d) in a graph of %d vertices", ErrOutOfRange, s, t, n)
	}
	e := len(g.sources)
	g.sources = append(g.sources, s)
	g.targets = append(g.targets, t)
	g.out[s] = append(g.out[s], e)
	if t != s {
		g.out[t] = append(g.out[t], e)
	}
	return e, nil
}

// OtherVertex returns the endpoint of edge e that is not v.
func OtherVertex(g Graph, e, v int) int {
	s, t := g.Edge(e)
	if s == v {
		return t
	}
	return s
}

// FourAdjacencyGraph returns the 4-adjacency graph of a rows x cols image.
// Vertex r*cols+c is pixel (r, c). Each vertex is linked to its right and
// bottom neighbours, in raster order.
func FourAdjacencyGraph(rows, cols int) *UndirectedGraph {
	g := NewUndirectedGraph(rows * cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*cols + c
			if c+1 < cols {
				_, _ = g.AddEdge(v, v+1)
			}
			if r+1 < rows {
				_, _ = g.AddEdge(v, v+cols)
			}
		}
	}
	return g
}

// FromGonum copies a gonum undirected graph. Nodes are renumbered
// 0..n-1 by increasing gonum ID; ids[i] is the gonum ID of vertex i. Edges
// are numbered by increasing (source, target) vertex pair.
func FromGonum(src graph.Undirected) (g *UndirectedGraph, ids []int64) {
	nodes := graph.NodesOf(src.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	index := make(map[int64]int, len(nodes))
	ids = make([]int64, len(nodes))
	for i, n := range nodes {
		index[n.ID()] = i
		ids[i] = n.ID()
	}

	g = NewUndirectedGraph(len(nodes))
	for u, n := range nodes {
		var neighbours []int
		for _, m := range graph.NodesOf(src.From(n.ID())) {
			if v := index[m.ID()]; v > u {
				neighbours = append(neighbours, v)
			}
		}
		sort.Ints(neighbours)
		for _, v := range neighbours {
			_, _ = g.AddEdge(u, v)
		}
	}
	tracer().Debugf("graph: imported %d vertices, %d edges from gonum", g.NumVertices(), g.NumEdges())
	return g, ids
}

// ToGonum returns a gonum graph over the vertices of g holding the edges
// for which keep returns true; a nil keep keeps every edge. Self-loops are
// dropped and parallel edges collapse, as gonum simple graphs require.
func ToGonum(g Graph, keep func(edge int) bool) *simple.UndirectedGraph {
	dst := simple.NewUndirectedGraph()
	for v := 0; v < g.NumVertices(); v++ {
		dst.AddNode(simple.Node(v))
	}
	for e := 0; e < g.NumEdges(); e++ {
		if keep != nil && !keep(e) {
			continue
		}
		s, t := g.Edge(e)
		if s == t {
			continue
		}
		dst.SetEdge(simple.Edge{F: simple.Node(s), T: simple.Node(t)})
	}
	return dst
}
