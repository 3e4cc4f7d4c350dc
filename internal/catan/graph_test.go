package catan_test

import (
	"slices"
	"testing"

	"settlers/internal/catan"
)

func TestGraphSingleHex(t *testing.T) {
	m := catan.NewMap([]catan.Tile{{Coord: h0, Kind: catan.TileWood, Number: 6}}, nil)
	g := catan.BuildGraph(m)
	if len(g.Vertices) != 6 || len(g.Edges) != 6 {
		t.Fatalf("got %d vertices, %d edges, want 6 and 6", len(g.Vertices), len(g.Edges))
	}
	for _, v := range g.Vertices {
		if len(v.Neighbors) != 2 {
			t.Errorf("vertex %d has %d neighbors, want 2", v.ID, len(v.Neighbors))
		}
	}
}

func TestGraphSharedSide(t *testing.T) {
	m := catan.NewMap([]catan.Tile{
		{Coord: h0, Kind: catan.TileWood, Number: 6},
		{Coord: h1, Kind: catan.TileOre, Number: 8},
	}, nil)
	g := catan.BuildGraph(m)
	if len(g.Vertices) != 10 || len(g.Edges) != 11 {
		t.Fatalf("got %d vertices, %d edges, want 10 and 11", len(g.Vertices), len(g.Edges))
	}
	shared := 0
	for _, v := range g.Vertices {
		if len(v.Tiles) == 2 {
			shared++
		}
	}
	if shared != 2 {
		t.Errorf("%d vertices touch both tiles, want 2", shared)
	}
}

func TestGraphIgnoresWater(t *testing.T) {
	m := catan.NewMap([]catan.Tile{
		{Coord: h0, Kind: catan.TileWood, Number: 6},
		{Coord: h1, Kind: catan.TileWater},
	}, nil)
	g := catan.BuildGraph(m)
	if len(g.Vertices) != 6 {
		t.Errorf("got %d vertices, want 6", len(g.Vertices))
	}
	if g.TileVertices(1) != nil {
		t.Error("water tile should have no vertices")
	}
}

func TestGraphBaseBoard(t *testing.T) {
	m := catan.GenerateProfile(catan.ProfileBase, newRNG(3))
	g := catan.BuildGraph(m)
	// 19 land hexes
	if len(g.Vertices) != 54 || len(g.Edges) != 72 {
		t.Fatalf("got %d vertices, %d edges, want 54 and 72", len(g.Vertices), len(g.Edges))
	}

	for _, e := range g.Edges {
		if e.A == e.B {
			t.Errorf("edge %d is a loop", e.ID)
		}
		if e.A < 0 || e.B >= len(g.Vertices) || e.A > e.B {
			t.Errorf("edge %d has endpoints %d, %d", e.ID, e.A, e.B)
		}
		if id, ok := g.EdgeBetween(e.B, e.A); !ok || id != e.ID {
			t.Errorf("EdgeBetween(%d, %d) = %d, %v", e.B, e.A, id, ok)
		}
	}
	for _, v := range g.Vertices {
		if len(v.Tiles) < 1 || len(v.Tiles) > 3 {
			t.Errorf("vertex %d touches %d tiles", v.ID, len(v.Tiles))
		}
		if len(v.Neighbors) < 2 || len(v.Neighbors) > 3 {
			t.Errorf("vertex %d has %d neighbors", v.ID, len(v.Neighbors))
		}
		if !slices.IsSorted(v.Tiles) || !slices.IsSorted(v.Neighbors) {
			t.Errorf("vertex %d lists are not sorted", v.ID)
		}
		if len(slices.Compact(slices.Clone(v.Neighbors))) != len(v.Neighbors) {
			t.Errorf("vertex %d has duplicate neighbors", v.ID)
		}
	}
}

func TestVertexAtTolerance(t *testing.T) {
	m := catan.NewMap([]catan.Tile{
		{Coord: h0, Kind: catan.TileWood, Number: 6},
		{Coord: h1, Kind: catan.TileOre, Number: 8},
	}, nil)
	g := catan.BuildGraph(m)

	// Corner 0 of h0 is corner 4 of h1.
	ax, ay := h0.Corner(0)
	bx, by := h1.Corner(4)
	a, okA := g.VertexAt(ax, ay)
	b, okB := g.VertexAt(bx+1e-9, by-1e-9)
	if !okA || !okB || a != b {
		t.Errorf("shared corner resolved to %d (%v) and %d (%v)", a, okA, b, okB)
	}
	if _, ok := g.VertexAt(ax+0.5, ay); ok {
		t.Error("point far from any corner resolved to a vertex")
	}
}
