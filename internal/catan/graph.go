package catan

import (
	"math"
	"slices"
)

// cornerPrecision quantizes corner coordinates so that the same physical
// corner computed from different hexes maps to one key.
const cornerPrecision = 1e4

type cornerKey struct{ x, y int64 }

func keyOf(x, y float64) cornerKey {
	return cornerKey{
		x: int64(math.Round(x * cornerPrecision)),
		y: int64(math.Round(y * cornerPrecision)),
	}
}

// Vertex is a hex corner where settlements and cities stand.
type Vertex struct {
	ID        int     `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Tiles     []int   `json:"tiles"`
	Neighbors []int   `json:"neighbors"`
}

// Edge is a hex side where roads are built. A < B.
type Edge struct {
	ID int `json:"id"`
	A  int `json:"a"`
	B  int `json:"b"`
}

// Other returns the endpoint of e opposite v.
func (e Edge) Other(v int) int {
	if e.A == v {
		return e.B
	}
	return e.A
}

// Touches reports whether v is an endpoint of e.
func (e Edge) Touches(v int) bool {
	return e.A == v || e.B == v
}

// Graph is the settlement/road topology derived from a map. It is never
// mutated after construction.
type Graph struct {
	Vertices []Vertex `json:"vertices"`
	Edges    []Edge   `json:"edges"`

	byKey        map[cornerKey]int
	byPair       map[[2]int]int
	vertexEdges  [][]int
	tileVertices [][]int
	portVertices [][]int
}

// BuildGraph derives vertices and edges from every land tile of m.
func BuildGraph(m *Map) *Graph {
	g := &Graph{
		byKey:        make(map[cornerKey]int),
		byPair:       make(map[[2]int]int),
		tileVertices: make([][]int, len(m.Tiles)),
	}

	for ti, t := range m.Tiles {
		if !t.Kind.IsLand() {
			continue
		}
		var corners [6]int
		for i := 0; i < 6; i++ {
			x, y := t.Coord.Corner(i)
			corners[i] = g.vertexFor(x, y)
			v := &g.Vertices[corners[i]]
			v.Tiles = append(v.Tiles, ti)
		}
		g.tileVertices[ti] = corners[:]
		for i := 0; i < 6; i++ {
			g.edgeFor(corners[i], corners[(i+1)%6])
		}
	}

	g.vertexEdges = make([][]int, len(g.Vertices))
	for _, e := range g.Edges {
		g.vertexEdges[e.A] = append(g.vertexEdges[e.A], e.ID)
		g.vertexEdges[e.B] = append(g.vertexEdges[e.B], e.ID)
		g.Vertices[e.A].Neighbors = append(g.Vertices[e.A].Neighbors, e.B)
		g.Vertices[e.B].Neighbors = append(g.Vertices[e.B].Neighbors, e.A)
	}
	for i := range g.Vertices {
		v := &g.Vertices[i]
		slices.Sort(v.Tiles)
		v.Tiles = slices.Compact(v.Tiles)
		slices.Sort(v.Neighbors)
		v.Neighbors = slices.Compact(v.Neighbors)
	}

	g.portVertices = make([][]int, len(m.Ports))
	for pi, p := range m.Ports {
		for i := 0; i < 6; i++ {
			if id, ok := g.byKey[keyOf(p.Coord.Corner(i))]; ok {
				g.portVertices[pi] = append(g.portVertices[pi], id)
			}
		}
	}
	return g
}

func (g *Graph) vertexFor(x, y float64) int {
	k := keyOf(x, y)
	if id, ok := g.byKey[k]; ok {
		return id
	}
	id := len(g.Vertices)
	g.Vertices = append(g.Vertices, Vertex{ID: id, X: x, Y: y})
	g.byKey[k] = id
	return id
}

func (g *Graph) edgeFor(a, b int) int {
	if a > b {
		a, b = b, a
	}
	pair := [2]int{a, b}
	if id, ok := g.byPair[pair]; ok {
		return id
	}
	id := len(g.Edges)
	g.Edges = append(g.Edges, Edge{ID: id, A: a, B: b})
	g.byPair[pair] = id
	return id
}

// VertexAt returns the vertex whose quantized position matches (x, y).
func (g *Graph) VertexAt(x, y float64) (int, bool) {
	id, ok := g.byKey[keyOf(x, y)]
	return id, ok
}

// EdgeBetween returns the edge joining two vertices.
func (g *Graph) EdgeBetween(a, b int) (int, bool) {
	if a > b {
		a, b = b, a
	}
	id, ok := g.byPair[[2]int{a, b}]
	return id, ok
}

// VertexEdges returns the edges incident to v.
func (g *Graph) VertexEdges(v int) []int {
	return g.vertexEdges[v]
}

// TileVertices returns the six corners of a land tile, or nil for water.
func (g *Graph) TileVertices(tile int) []int {
	if tile < 0 || tile >= len(g.tileVertices) {
		return nil
	}
	return g.tileVertices[tile]
}

// PortVertices returns the land corners shared with port p.
func (g *Graph) PortVertices(p int) []int {
	return g.portVertices[p]
}

func (g *Graph) validVertex(v int) bool { return v >= 0 && v < len(g.Vertices) }
func (g *Graph) validEdge(e int) bool   { return e >= 0 && e < len(g.Edges) }
