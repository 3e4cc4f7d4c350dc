package catan_test

import (
	"testing"

	"settlers/internal/catan"
)

// topChain builds the five roads along the tops of h0, h1 and h2.
func topChain(t *testing.T, g *catan.Game, seat int) {
	t.Helper()
	road(g, seat, edge(t, g, h0, 4))
	road(g, seat, edge(t, g, h0, 5))
	road(g, seat, edge(t, g, h1, 4))
	road(g, seat, edge(t, g, h1, 5))
	road(g, seat, edge(t, g, h2, 4))
}

func TestLongestRoad(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T, g *catan.Game)
		want  int
	}{
		{"no roads", func(t *testing.T, g *catan.Game) {}, 0},
		{"chain of five", func(t *testing.T, g *catan.Game) {
			topChain(t, g, 0)
		}, 5},
		{"fork counts one branch", func(t *testing.T, g *catan.Game) {
			road(g, 0, edge(t, g, h0, 4))
			road(g, 0, edge(t, g, h0, 5))
			road(g, 0, edge(t, g, h1, 4))
			road(g, 0, edge(t, g, h1, 5))
			road(g, 0, edge(t, g, h0, 0))
		}, 4},
		{"ring of six", func(t *testing.T, g *catan.Game) {
			for i := 0; i < 6; i++ {
				road(g, 0, edge(t, g, h0, i))
			}
		}, 6},
		{"ring with tail", func(t *testing.T, g *catan.Game) {
			for i := 0; i < 6; i++ {
				road(g, 0, edge(t, g, h0, i))
			}
			road(g, 0, edge(t, g, h1, 4))
			road(g, 0, edge(t, g, h1, 5))
		}, 8},
		{"opponent splits chain", func(t *testing.T, g *catan.Game) {
			topChain(t, g, 0)
			settle(g, 1, vertex(t, g, h0, 0))
		}, 3},
		{"opponent at chain end", func(t *testing.T, g *catan.Game) {
			topChain(t, g, 0)
			settle(g, 1, vertex(t, g, h0, 4))
		}, 5},
		{"own building does not block", func(t *testing.T, g *catan.Game) {
			topChain(t, g, 0)
			settle(g, 0, vertex(t, g, h0, 0))
		}, 5},
		{"path may return through its blocked start", func(t *testing.T, g *catan.Game) {
			for i := 0; i < 6; i++ {
				road(g, 0, edge(t, g, h0, i))
			}
			road(g, 0, edge(t, g, h1, 4))
			road(g, 0, edge(t, g, h1, 5))
			settle(g, 1, vertex(t, g, h0, 0))
		}, 8},
		{"opponent roads are not counted", func(t *testing.T, g *catan.Game) {
			road(g, 0, edge(t, g, h0, 4))
			road(g, 0, edge(t, g, h0, 5))
			road(g, 1, edge(t, g, h1, 4))
			road(g, 1, edge(t, g, h1, 5))
		}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newRowGame(t, 2)
			tt.build(t, g)
			if got := g.LongestRoad(0); got != tt.want {
				t.Errorf("LongestRoad = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLongestRoadAward(t *testing.T) {
	g := newRowGame(t, 3)

	road(g, 0, edge(t, g, h0, 4))
	road(g, 0, edge(t, g, h0, 5))
	road(g, 0, edge(t, g, h1, 4))
	road(g, 0, edge(t, g, h1, 5))
	g.RefreshAwards()
	if g.LongestRoad != catan.NoSeat {
		t.Fatalf("four roads should not earn the award, holder %d", g.LongestRoad)
	}

	road(g, 0, edge(t, g, h2, 4))
	g.RefreshAwards()
	if g.LongestRoad != 0 {
		t.Fatalf("expected seat 0 to hold longest road, got %d", g.LongestRoad)
	}
	if got := g.VictoryPoints(0); got != 2 {
		t.Errorf("expected 2 points from the award, got %d", got)
	}

	// Seat 1 ties with five roads: holder keeps it.
	for i := 0; i < 5; i++ {
		road(g, 1, edge(t, g, h3, i))
	}
	g.RefreshAwards()
	if g.LongestRoad != 0 {
		t.Fatalf("tie should keep holder 0, got %d", g.LongestRoad)
	}

	road(g, 1, edge(t, g, h3, 5))
	g.RefreshAwards()
	if g.LongestRoad != 1 {
		t.Fatalf("seat 1 with six roads should take the award, got %d", g.LongestRoad)
	}
}

func TestLargestArmy(t *testing.T) {
	tests := []struct {
		name    string
		knights []int
		holder  int
		want    int
	}{
		{"below minimum", []int{2, 0, 0}, catan.NoSeat, catan.NoSeat},
		{"first to three", []int{3, 0, 0}, catan.NoSeat, 0},
		{"simultaneous tie stays unclaimed", []int{3, 3, 0}, catan.NoSeat, catan.NoSeat},
		{"tie keeps holder", []int{3, 3, 0}, 0, 0},
		{"strictly more takes it", []int{3, 4, 0}, 0, 1},
		{"two challengers tied above holder", []int{3, 4, 4}, 0, 0},
		{"clear leader among many", []int{3, 4, 5}, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newRowGame(t, 3)
			g.LargestArmy = tt.holder
			for seat, k := range tt.knights {
				g.Player(seat).KnightsPlayed = k
			}
			g.RefreshAwards()
			if g.LargestArmy != tt.want {
				t.Errorf("LargestArmy = %d, want %d", g.LargestArmy, tt.want)
			}
		})
	}
}
