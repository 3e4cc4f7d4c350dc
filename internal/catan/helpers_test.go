package catan_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"settlers/internal/catan"
	"settlers/internal/engine"
)

var (
	h0 = catan.HexCoord{Q: 0, R: 0}
	h1 = catan.HexCoord{Q: 1, R: 0}
	h2 = catan.HexCoord{Q: 2, R: 0}
	h3 = catan.HexCoord{Q: 3, R: 0}
)

// Tile indices of rowMap.
const (
	tileWood = iota
	tileBrick
	tileSheep
	tileWheat
	tileDesert
	tileGold
	tileWaterAny
	tileWaterOre
)

// rowMap is five land hexes in a row with a gold hex below the second
// and third, an any-port above the first and an ore port above the
// second and third.
func rowMap() *catan.Map {
	tiles := []catan.Tile{
		{Coord: h0, Kind: catan.TileWood, Number: 6},
		{Coord: h1, Kind: catan.TileBrick, Number: 8},
		{Coord: h2, Kind: catan.TileSheep, Number: 5},
		{Coord: h3, Kind: catan.TileWheat, Number: 9},
		{Coord: catan.HexCoord{Q: 4, R: 0}, Kind: catan.TileDesert},
		{Coord: catan.HexCoord{Q: 1, R: 1}, Kind: catan.TileGold, Number: 8},
		{Coord: catan.HexCoord{Q: 0, R: -1}, Kind: catan.TileWater},
		{Coord: catan.HexCoord{Q: 2, R: -1}, Kind: catan.TileWater},
	}
	ports := []catan.Port{
		{Coord: catan.HexCoord{Q: 0, R: -1}, Kind: catan.PortAny},
		{Coord: catan.HexCoord{Q: 2, R: -1}, Kind: catan.PortOre},
	}
	return catan.NewMap(tiles, ports)
}

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// newRowGame starts a game on rowMap and skips the draft: seat 0 is in
// the main phase of turn 1 and has not rolled.
func newRowGame(t *testing.T, seats int) *catan.Game {
	t.Helper()
	cfg := catan.DefaultConfig()
	cfg.Map = rowMap()
	g := catan.New(newRNG(1), cfg)
	ids := make([]int, seats)
	for i := range ids {
		ids[i] = i
	}
	if _, err := g.StartGame(ids); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	g.Phase = catan.PhaseMain
	g.Turn = 1
	g.SetCurrent(0)
	return g
}

// vertex returns the id of corner i of h.
func vertex(t *testing.T, g *catan.Game, h catan.HexCoord, i int) int {
	t.Helper()
	x, y := h.Corner(i)
	v, ok := g.Graph.VertexAt(x, y)
	if !ok {
		t.Fatalf("no vertex at corner %d of %v", i, h)
	}
	return v
}

// edge returns the id of the side of h running from corner i to i+1.
func edge(t *testing.T, g *catan.Game, h catan.HexCoord, i int) int {
	t.Helper()
	e, ok := g.Graph.EdgeBetween(vertex(t, g, h, i), vertex(t, g, h, (i+1)%6))
	if !ok {
		t.Fatalf("no edge at side %d of %v", i, h)
	}
	return e
}

func settle(g *catan.Game, seat, v int) {
	g.Buildings[v] = catan.Building{Owner: seat, Kind: catan.Settlement}
	g.Player(seat).Settlements++
}

func city(g *catan.Game, seat, v int) {
	g.Buildings[v] = catan.Building{Owner: seat, Kind: catan.City}
	g.Player(seat).Cities++
}

func road(g *catan.Game, seat, e int) {
	g.Roads[e] = seat
	g.Player(seat).Roads++
}

// fund moves hand from the bank to seat.
func fund(g *catan.Game, seat int, hand catan.Hand) {
	g.Bank.Sub(hand)
	g.Player(seat).Resources.Add(hand)
}

func mustApply(t *testing.T, g *catan.Game, seat int, a catan.Action) []engine.Event {
	t.Helper()
	events, err := g.Apply(seat, a)
	if err != nil {
		t.Fatalf("%s by seat %d: %v", a.Type, seat, err)
	}
	return events
}

func expectErr(t *testing.T, g *catan.Game, seat int, a catan.Action, want error) {
	t.Helper()
	if _, err := g.Apply(seat, a); !errors.Is(err, want) {
		t.Fatalf("%s by seat %d: expected %v, got %v", a.Type, seat, want, err)
	}
}

func hasEvent(events []engine.Event, typ engine.EventType) bool {
	for _, e := range events {
		if e.Type == typ {
			return true
		}
	}
	return false
}
