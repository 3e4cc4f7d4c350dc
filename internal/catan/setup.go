package catan

import (
	"fmt"

	"settlers/internal/engine"
)

// Initial placement runs as a snake draft: every seat places a settlement
// and an attached road going forward, then again in reverse. The second
// settlement pays out one card per adjacent producing tile.

func (g *Game) placeInitialSettlement(p *Player, v int) ([]engine.Event, error) {
	if !g.Graph.validVertex(v) {
		return nil, fmt.Errorf("%w: vertex %d", ErrBadIndex, v)
	}
	if err := g.checkSettlementSite(p.Seat, v, true); err != nil {
		return nil, err
	}

	g.Buildings[v] = Building{Owner: p.Seat, Kind: Settlement}
	p.Settlements++
	g.lastSettlement = v

	events := []engine.Event{
		{Type: EventSettlementBuilt, Seat: p.Seat, Data: map[string]interface{}{
			"vertex": v, "initial": true,
		}},
	}

	if g.draftPos >= len(g.Players) {
		var got Hand
		for _, t := range g.Graph.Vertices[v].Tiles {
			r, ok := g.Map.Tiles[t].Kind.Produces()
			if !ok {
				continue
			}
			got[r] += g.give(p, r, 1)
		}
		events = append(events, engine.Event{Type: EventStartingGoods, Seat: p.Seat, Data: map[string]interface{}{
			"resources": got,
		}})
	}

	g.enter(PhaseInitialRoad)
	return events, nil
}

func (g *Game) placeInitialRoad(p *Player, e int) ([]engine.Event, error) {
	if !g.Graph.validEdge(e) {
		return nil, fmt.Errorf("%w: edge %d", ErrBadIndex, e)
	}
	if _, taken := g.Roads[e]; taken {
		return nil, fmt.Errorf("%w: edge %d is taken", ErrIllegalPlacement, e)
	}
	if !g.Graph.Edges[e].Touches(g.lastSettlement) {
		return nil, fmt.Errorf("%w: road must touch the settlement just placed", ErrIllegalPlacement)
	}

	g.Roads[e] = p.Seat
	p.Roads++
	events := []engine.Event{
		{Type: EventRoadBuilt, Seat: p.Seat, Data: map[string]interface{}{"edge": e, "initial": true}},
	}

	g.draftPos++
	g.lastSettlement = -1
	if g.draftPos == len(g.draft) {
		g.current = 0
		g.Turn = 1
		g.Rolled = false
		g.enter(PhaseMain)
		return events, nil
	}
	g.current = g.draft[g.draftPos]
	g.enter(PhaseInitialSettlement)
	return events, nil
}
