package hierarchy

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/graph/simple"
)

func TestUndirectedGraph_AddEdge(t *testing.T) {
	g := NewUndirectedGraph(3)
	e0, _ := g.AddEdge(0, 1)
	e1, _ := g.AddEdge(2, 1)
	e2, _ := g.AddEdge(2, 2)
	if e0 != 0 || e1 != 1 || e2 != 2 {
		t.Fatalf("edge indices = %d, %d, %d; want 0, 1, 2", e0, e1, e2)
	}
	if g.NumVertices() != 3 || g.NumEdges() != 3 {
		t.Errorf("got %d vertices and %d edges, want 3 and 3", g.NumVertices(), g.NumEdges())
	}
	if s, tt := g.Edge(1); s != 2 || tt != 1 {
		t.Errorf("Edge(1) = (%d, %d), want (2, 1)", s, tt)
	}
	if got := g.OutEdges(1); !equalSlices(got, []int{0, 1}) {
		t.Errorf("OutEdges(1) = %v, want [0 1]", got)
	}
	if got := g.OutEdges(2); !equalSlices(got, []int{1, 2}) {
		t.Errorf("OutEdges(2) = %v, want [1 2]", got)
	}
	if g.Degree(0) != 1 {
		t.Errorf("Degree(0) = %d, want 1", g.Degree(0))
	}
	if OtherVertex(g, 1, 2) != 1 || OtherVertex(g, 1, 1) != 2 || OtherVertex(g, 2, 2) != 2 {
		t.Errorf("OtherVertex gives wrong endpoints")
	}

	if _, err := g.AddEdge(0, 3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("AddEdge(0, 3) error = %v, want ErrOutOfRange", err)
	}
	if v := g.AddVertex(); v != 3 {
		t.Errorf("AddVertex() = %d, want 3", v)
	}
	if _, err := g.AddEdge(0, 3); err != nil {
		t.Errorf("AddEdge(0, 3) after AddVertex: %v", err)
	}
}

func TestFourAdjacencyGraph(t *testing.T) {
	g := FourAdjacencyGraph(2, 3)
	if g.NumVertices() != 6 || g.NumEdges() != 7 {
		t.Fatalf("got %d vertices and %d edges, want 6 and 7", g.NumVertices(), g.NumEdges())
	}
	want := [][2]int{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}}
	for e, w := range want {
		if s, tt := g.Edge(e); s != w[0] || tt != w[1] {
			t.Errorf("Edge(%d) = (%d, %d), want (%d, %d)", e, s, tt, w[0], w[1])
		}
	}
}

func TestFromGonum(t *testing.T) {
	src := simple.NewUndirectedGraph()
	for _, id := range []int64{30, 10, 20, 40} {
		src.AddNode(simple.Node(id))
	}
	src.SetEdge(simple.Edge{F: simple.Node(30), T: simple.Node(10)})
	src.SetEdge(simple.Edge{F: simple.Node(20), T: simple.Node(40)})
	src.SetEdge(simple.Edge{F: simple.Node(10), T: simple.Node(20)})

	g, ids := FromGonum(src)
	if want := []int64{10, 20, 30, 40}; !equalSlices(ids, want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	want := [][2]int{{0, 1}, {0, 2}, {1, 3}}
	if g.NumEdges() != len(want) {
		t.Fatalf("NumEdges() = %d, want %d", g.NumEdges(), len(want))
	}
	for e, w := range want {
		if s, tt := g.Edge(e); s != w[0] || tt != w[1] {
			t.Errorf("Edge(%d) = (%d, %d), want (%d, %d)", e, s, tt, w[0], w[1])
		}
	}
}

func TestToGonum(t *testing.T) {
	g := NewUndirectedGraph(4)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 1)
	_, _ = g.AddEdge(2, 3)
	_, _ = g.AddEdge(1, 2)

	dst := ToGonum(g, func(e int) bool { return e != 3 })
	if n := dst.Nodes().Len(); n != 4 {
		t.Errorf("%d nodes, want 4", n)
	}
	if n := dst.Edges().Len(); n != 2 {
		t.Errorf("%d edges, want 2", n)
	}
	if !dst.HasEdgeBetween(0, 1) || !dst.HasEdgeBetween(2, 3) || dst.HasEdgeBetween(1, 2) {
		t.Errorf("unexpected edge set")
	}

	back, _ := FromGonum(ToGonum(g, nil))
	if back.NumEdges() != 3 {
		t.Errorf("round trip has %d edges, want 3 (self-loop dropped)", back.NumEdges())
	}
}
