package catan_test

import (
	"errors"
	"reflect"
	"testing"

	"settlers/internal/catan"
)

var tokenSet = []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

func TestProfileFor(t *testing.T) {
	tests := []struct {
		players int
		want    string
	}{
		{2, "base"}, {3, "base"}, {4, "base"},
		{5, "extended"}, {6, "extended"},
		{7, "seafarers"}, {8, "mega"},
	}
	for _, tt := range tests {
		p, err := catan.ProfileFor(tt.players)
		if err != nil {
			t.Fatalf("ProfileFor(%d): %v", tt.players, err)
		}
		if p.Name != tt.want {
			t.Errorf("ProfileFor(%d) = %s, want %s", tt.players, p.Name, tt.want)
		}
	}
	for _, n := range []int{0, 1, 9} {
		if _, err := catan.ProfileFor(n); !errors.Is(err, catan.ErrBadSeat) {
			t.Errorf("ProfileFor(%d): expected ErrBadSeat, got %v", n, err)
		}
	}
}

func TestGenerateMapShape(t *testing.T) {
	for players := 2; players <= 8; players++ {
		m, err := catan.GenerateMap(players, newRNG(uint64(players)))
		if err != nil {
			t.Fatalf("GenerateMap(%d): %v", players, err)
		}
		r := m.Profile.Radius
		if want := catan.HexCount(r); len(m.Tiles) != want {
			t.Errorf("%d players: %d tiles, want %d", players, len(m.Tiles), want)
		}

		deserts, gold := 0, 0
		var numbers []int
		for _, tile := range m.Tiles {
			switch tile.Kind {
			case catan.TileDesert:
				deserts++
			case catan.TileGold:
				gold++
				switch tile.Number {
				case 2, 3, 11, 12:
				default:
					t.Errorf("%d players: gold tile numbered %d", players, tile.Number)
				}
				continue
			}
			if _, ok := tile.Kind.Produces(); ok {
				numbers = append(numbers, tile.Number)
			} else if tile.Number != 0 {
				t.Errorf("%d players: %s tile numbered %d", players, tile.Kind, tile.Number)
			}
		}
		if deserts != 1 {
			t.Errorf("%d players: %d deserts, want 1", players, deserts)
		}
		if gold != m.Profile.Gold {
			t.Errorf("%d players: %d gold tiles, want %d", players, gold, m.Profile.Gold)
		}
		if got, want := countNumbers(numbers), expectedNumbers(len(numbers)); !reflect.DeepEqual(got, want) {
			t.Errorf("%d players: numbers %v, want %v", players, got, want)
		}

		if len(m.Ports) == 0 || len(m.Ports) > m.Profile.Ports {
			t.Errorf("%d players: %d ports, profile allows %d", players, len(m.Ports), m.Profile.Ports)
		}
		for _, p := range m.Ports {
			idx, ok := m.TileAt(p.Coord)
			if !ok || m.Tiles[idx].Kind != catan.TileWater {
				t.Errorf("%d players: port %v not on water", players, p.Coord)
			}
			if !touchesLand(m, p.Coord) {
				t.Errorf("%d players: port %v not next to land", players, p.Coord)
			}
		}
	}
}

func TestGenerateMapIslands(t *testing.T) {
	for _, players := range []int{7, 8} {
		m, err := catan.GenerateMap(players, newRNG(42))
		if err != nil {
			t.Fatal(err)
		}
		offshore := 0
		for _, tile := range m.Tiles {
			d := catan.HexDistance(tile.Coord, catan.HexCoord{})
			if tile.Kind.IsLand() && d > m.Profile.InnerRadius {
				offshore++
			}
		}
		if offshore == 0 {
			t.Errorf("%d players: no island tiles beyond the mainland", players)
		}
	}
}

func TestGenerateMapDeterministic(t *testing.T) {
	for players := 2; players <= 8; players++ {
		a, _ := catan.GenerateMap(players, newRNG(99))
		b, _ := catan.GenerateMap(players, newRNG(99))
		if !reflect.DeepEqual(a.Tiles, b.Tiles) || !reflect.DeepEqual(a.Ports, b.Ports) {
			t.Errorf("%d players: same seed produced different maps", players)
		}
	}
}

func TestHexDistance(t *testing.T) {
	origin := catan.HexCoord{}
	for _, n := range origin.Neighbors() {
		if d := catan.HexDistance(origin, n); d != 1 {
			t.Errorf("neighbor %v at distance %d", n, d)
		}
	}
	if d := catan.HexDistance(catan.HexCoord{Q: 2, R: -1}, catan.HexCoord{Q: -1, R: 2}); d != 3 {
		t.Errorf("distance = %d, want 3", d)
	}
}

func countNumbers(numbers []int) map[int]int {
	out := make(map[int]int)
	for _, n := range numbers {
		out[n]++
	}
	return out
}

func expectedNumbers(n int) map[int]int {
	out := make(map[int]int)
	for i := 0; i < n; i++ {
		out[tokenSet[i%len(tokenSet)]]++
	}
	return out
}

func touchesLand(m *catan.Map, c catan.HexCoord) bool {
	for _, n := range c.Neighbors() {
		if idx, ok := m.TileAt(n); ok && m.Tiles[idx].Kind.IsLand() {
			return true
		}
	}
	return false
}

func TestHexCount(t *testing.T) {
	for radius, want := range []int{1, 7, 19, 37, 61} {
		if got := catan.HexCount(radius); got != want {
			t.Errorf("HexCount(%d) = %d, want %d", radius, got, want)
		}
	}
}
