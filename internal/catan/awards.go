package catan

import "settlers/internal/engine"

// LongestRoad returns the longest simple path, counted in edges, through
// seat's roads. A path may not continue through a vertex holding an
// opponent's building, except the vertex the path started from.
func (g *Game) LongestRoad(seat int) int {
	used := make(map[int]bool)
	best := 0
	for e, owner := range g.Roads {
		if owner != seat {
			continue
		}
		edge := g.Graph.Edges[e]
		for _, dir := range [2][2]int{{edge.A, edge.B}, {edge.B, edge.A}} {
			used[e] = true
			best = max(best, g.extendRoad(seat, dir[0], dir[1], used, 1))
			delete(used, e)
		}
	}
	return best
}

// extendRoad continues a path that has just reached v, having used the
// edges in used, and returns the best total length.
func (g *Game) extendRoad(seat, start, v int, used map[int]bool, length int) int {
	if v != start {
		if b, ok := g.Buildings[v]; ok && b.Owner != seat {
			return length
		}
	}
	best := length
	for _, e := range g.Graph.VertexEdges(v) {
		if used[e] {
			continue
		}
		if owner, ok := g.Roads[e]; !ok || owner != seat {
			continue
		}
		used[e] = true
		best = max(best, g.extendRoad(seat, start, g.Graph.Edges[e].Other(v), used, length+1))
		delete(used, e)
	}
	return best
}

// RoadLength returns the cached longest road of seat as of the last action.
func (g *Game) RoadLength(seat int) int {
	return g.roadLengths[seat]
}

// updateAwards recomputes both awards. The holder keeps an award until
// another seat strictly exceeds them. Without a holder, the award goes to
// the single seat with the highest qualifying score; a tie at the top
// leaves it unclaimed.
func (g *Game) updateAwards() []engine.Event {
	var events []engine.Event

	knights := make(map[int]int, len(g.Players))
	for _, p := range g.Players {
		knights[p.Seat] = p.KnightsPlayed
		g.roadLengths[p.Seat] = g.LongestRoad(p.Seat)
	}

	if h := g.awardHolder(g.LargestArmy, knights, g.Config.LargestArmyMin); h != g.LargestArmy {
		g.LargestArmy = h
		events = append(events, engine.Event{Type: EventLargestArmy, Seat: h, Data: map[string]interface{}{
			"knights": knights[h],
		}})
	}
	if h := g.awardHolder(g.LongestRoad, g.roadLengths, g.Config.LongestRoadMin); h != g.LongestRoad {
		g.LongestRoad = h
		data := map[string]interface{}{}
		if h != NoSeat {
			data["length"] = g.roadLengths[h]
		}
		events = append(events, engine.Event{Type: EventLongestRoad, Seat: h, Data: data})
	}
	return events
}

// awardHolder applies the holder rule to one award. A holder whose score
// falls below the minimum loses the award.
func (g *Game) awardHolder(holder int, score map[int]int, minimum int) int {
	if holder != NoSeat && score[holder] < minimum {
		holder = NoSeat
	}

	floor := minimum - 1
	if holder != NoSeat {
		floor = score[holder]
	}
	top, leader, tied := floor, NoSeat, false
	for _, p := range g.Players {
		s := score[p.Seat]
		switch {
		case s > top:
			top, leader, tied = s, p.Seat, false
		case s == top && leader != NoSeat:
			tied = true
		}
	}
	if leader == NoSeat || tied {
		return holder
	}
	return leader
}

// VictoryPoints counts settlements, cities, hidden point cards and awards.
func (g *Game) VictoryPoints(seat int) int {
	p := g.bySeat[seat]
	if p == nil {
		return 0
	}
	return g.PublicPoints(seat) + p.CardCount(DevVictoryPoint)
}

// PublicPoints is VictoryPoints without hidden point cards.
func (g *Game) PublicPoints(seat int) int {
	p := g.bySeat[seat]
	if p == nil {
		return 0
	}
	vp := p.Settlements + 2*p.Cities
	if g.LargestArmy == seat {
		vp += 2
	}
	if g.LongestRoad == seat {
		vp += 2
	}
	return vp
}

// checkVictory ends the game when a seat reaches the target. Seats are
// checked starting with the current seat, in play order.
func (g *Game) checkVictory() []engine.Event {
	if g.Phase == PhaseGameOver {
		return nil
	}
	n := len(g.Players)
	for i := 0; i < n; i++ {
		p := g.Players[(g.current+i)%n]
		vp := g.VictoryPoints(p.Seat)
		if vp < g.Config.VictoryPoints {
			continue
		}
		g.Winner = p.Seat
		g.enter(PhaseGameOver)
		return []engine.Event{
			{Type: EventGameOver, Seat: p.Seat, Data: map[string]interface{}{"points": vp}},
		}
	}
	return nil
}
