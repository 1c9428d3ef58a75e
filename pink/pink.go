/*
Package pink reads and writes weighted graphs in the Pink text format.

A file starts with an optional image shape header "#rs <cols> cs <rows>",
followed by a "<numVertices> <numEdges>" line, a "val sommets" section
with one "<vertex> <weight>" line per vertex, and an "arcs values" section
with one "<source> <target> <weight>" line per edge, in edge index order:

	#rs 5 cs 3
	15 14
	val sommets
	0 1
	...
	arcs values
	0 1 3
	...
*/
package pink

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/TrevorS/hierarchy"
)

// tracer writes to trace with key 'hierarchy'
func tracer() tracing.Trace {
	return tracing.Select("hierarchy")
}

// ErrSyntax signals malformed Pink graph text.
var ErrSyntax = errors.New("pink: syntax error")

// Graph is a weighted graph read from Pink text.
type Graph struct {
	Graph         *hierarchy.UndirectedGraph
	VertexWeights []float64
	EdgeWeights   []float64
	// Shape is (rows, cols) when the text carries a "#rs" header and
	// (numVertices) otherwise.
	Shape []int
}

type lineReader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next non-empty line, skipping "#" comments; header
// lines starting with "#rs" are returned.
func (r *lineReader) next() (string, error) {
	for r.sc.Scan() {
		r.line++
		s := strings.TrimSpace(r.sc.Text())
		if s == "" || (strings.HasPrefix(s, "#") && !strings.HasPrefix(s, "#rs")) {
			continue
		}
		return s, nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%w: unexpected end of input after line %d", ErrSyntax, r.line)
}

func (r *lineReader) fields(s string, n int) ([]string, error) {
	f := strings.Fields(s)
	if len(f) != n {
		return nil, fmt.Errorf("%w: line %d: %q has %d fields, want %d", ErrSyntax, r.line, s, len(f), n)
	}
	return f, nil
}

func (r *lineReader) ints(fields ...string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, r.line, err)
		}
		out[i] = v
	}
	return out, nil
}

func (r *lineReader) float(field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %v", ErrSyntax, r.line, err)
	}
	return v, nil
}

// Read parses a Pink graph.
func Read(in io.Reader) (*Graph, error) {
	r := &lineReader{sc: bufio.NewScanner(in)}

	s, err := r.next()
	if err != nil {
		return nil, err
	}
	var shape []int
	if strings.HasPrefix(s, "#rs") {
		f, err := r.fields(s, 4)
		if err != nil {
			return nil, err
		}
		if f[0] != "#rs" || f[2] != "cs" {
			return nil, fmt.Errorf("%w: line %d: malformed shape header %q", ErrSyntax, r.line, s)
		}
		dims, err := r.ints(f[1], f[3])
		if err != nil {
			return nil, err
		}
		shape = []int{dims[1], dims[0]}
		if s, err = r.next(); err != nil {
			return nil, err
		}
	}

	f, err := r.fields(s, 2)
	if err != nil {
		return nil, err
	}
	counts, err := r.ints(f...)
	if err != nil {
		return nil, err
	}
	numVertices, numEdges := counts[0], counts[1]
	if numVertices < 0 || numEdges < 0 {
		return nil, fmt.Errorf("%w: line %d: negative counts %q", ErrSyntax, r.line, s)
	}
	if shape == nil {
		shape = []int{numVertices}
	}

	res := &Graph{
		Graph:         hierarchy.NewUndirectedGraph(numVertices),
		VertexWeights: make([]float64, numVertices),
		EdgeWeights:   make([]float64, numEdges),
		Shape:         shape,
	}

	if err := r.section("val sommets"); err != nil {
		return nil, err
	}
	// numVertices distinct ids in [0, numVertices) cover every vertex.
	seen := make([]bool, numVertices)
	for i := 0; i < numVertices; i++ {
		if err := r.vertex(res, seen); err != nil {
			return nil, err
		}
	}

	if err := r.section("arcs values", "edges values"); err != nil {
		return nil, err
	}
	for i := 0; i < numEdges; i++ {
		if err := r.edge(res, i); err != nil {
			return nil, err
		}
	}

	tracer().Debugf("pink: read %d vertices, %d edges, shape %v", numVertices, numEdges, shape)
	return res, nil
}

func (r *lineReader) section(names ...string) error {
	s, err := r.next()
	if err != nil {
		return err
	}
	for _, name := range names {
		if s == name {
			return nil
		}
	}
	return fmt.Errorf("%w: line %d: got %q, want section %q", ErrSyntax, r.line, s, names[0])
}

func (r *lineReader) vertex(res *Graph, seen []bool) error {
	s, err := r.next()
	if err != nil {
		return err
	}
	f, err := r.fields(s, 2)
	if err != nil {
		return err
	}
	id, err := r.ints(f[0])
	if err != nil {
		return err
	}
	if id[0] < 0 || id[0] >= len(res.VertexWeights) {
		return fmt.Errorf("%w: line %d: vertex %d not in [0, %d)", ErrSyntax, r.line, id[0], len(res.VertexWeights))
	}
	if seen[id[0]] {
		return fmt.Errorf("%w: line %d: vertex %d listed twice", ErrSyntax, r.line, id[0])
	}
	seen[id[0]] = true
	w, err := r.float(f[1])
	if err != nil {
		return err
	}
	res.VertexWeights[id[0]] = w
	return nil
}

func (r *lineReader) edge(res *Graph, i int) error {
	s, err := r.next()
	if err != nil {
		return err
	}
	f, err := r.fields(s, 3)
	if err != nil {
		return err
	}
	ends, err := r.ints(f[0], f[1])
	if err != nil {
		return err
	}
	w, err := r.float(f[2])
	if err != nil {
		return err
	}
	if _, err := res.Graph.AddEdge(ends[0], ends[1]); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrSyntax, r.line, err)
	}
	res.EdgeWeights[i] = w
	return nil
}

// ReadFile parses the Pink graph stored in the named file.
func ReadFile(name string) (*Graph, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Write encodes g with its vertex and edge weights as Pink text. shape is
// (rows, cols) of the underlying image; with any other length the shape
// is taken as a single row of g.NumVertices() pixels.
func Write(out io.Writer, g hierarchy.Graph, vertexWeights, edgeWeights []float64, shape []int) error {
	if len(vertexWeights) != g.NumVertices() {
		return fmt.Errorf("%w: %d vertex weights for %d vertices", hierarchy.ErrShapeMismatch, len(vertexWeights), g.NumVertices())
	}
	if len(edgeWeights) != g.NumEdges() {
		return fmt.Errorf("%w: %d edge weights for %d edges", hierarchy.ErrShapeMismatch, len(edgeWeights), g.NumEdges())
	}
	rows, cols := 1, g.NumVertices()
	if len(shape) == 2 {
		rows, cols = shape[0], shape[1]
	}
	if rows*cols != g.NumVertices() {
		return fmt.Errorf("%w: shape %v does not hold %d vertices", hierarchy.ErrShapeMismatch, shape, g.NumVertices())
	}

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "#rs %d cs %d\n", cols, rows)
	fmt.Fprintf(w, "%d %d\n", g.NumVertices(), g.NumEdges())
	fmt.Fprintln(w, "val sommets")
	for v, x := range vertexWeights {
		fmt.Fprintf(w, "%d %s\n", v, formatFloat(x))
	}
	fmt.Fprintln(w, "arcs values")
	for e, x := range edgeWeights {
		s, t := g.Edge(e)
		fmt.Fprintf(w, "%d %d %s\n", s, t, formatFloat(x))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	tracer().Debugf("pink: wrote %d vertices, %d edges", g.NumVertices(), g.NumEdges())
	return nil
}

// WriteFile encodes g as Pink text into the named file, creating or
// truncating it.
func WriteFile(name string, g hierarchy.Graph, vertexWeights, edgeWeights []float64, shape []int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Write(f, g, vertexWeights, edgeWeights, shape); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
