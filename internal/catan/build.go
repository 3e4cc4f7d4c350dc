package catan

import (
	"fmt"

	"settlers/internal/engine"
)

// checkSettlementSite applies the distance rule, and outside the initial
// draft requires one of seat's roads to touch v.
func (g *Game) checkSettlementSite(seat, v int, initial bool) error {
	if _, taken := g.Buildings[v]; taken {
		return fmt.Errorf("%w: vertex %d is occupied", ErrIllegalPlacement, v)
	}
	for _, n := range g.Graph.Vertices[v].Neighbors {
		if _, taken := g.Buildings[n]; taken {
			return fmt.Errorf("%w: vertex %d is next to a building", ErrIllegalPlacement, v)
		}
	}
	if initial {
		return nil
	}
	for _, e := range g.Graph.VertexEdges(v) {
		if owner, ok := g.Roads[e]; ok && owner == seat {
			return nil
		}
	}
	return fmt.Errorf("%w: vertex %d is not on your road", ErrIllegalPlacement, v)
}

// checkRoadSite requires an unclaimed edge that touches one of seat's
// buildings or roads.
func (g *Game) checkRoadSite(seat, e int) error {
	if _, taken := g.Roads[e]; taken {
		return fmt.Errorf("%w: edge %d is taken", ErrIllegalPlacement, e)
	}
	edge := g.Graph.Edges[e]
	for _, v := range []int{edge.A, edge.B} {
		if b, ok := g.Buildings[v]; ok && b.Owner == seat {
			return nil
		}
		for _, other := range g.Graph.VertexEdges(v) {
			if other == e {
				continue
			}
			if owner, ok := g.Roads[other]; ok && owner == seat {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: edge %d is not connected to your network", ErrIllegalPlacement, e)
}

func (g *Game) applyBuildSettlement(seat, v int) ([]engine.Event, error) {
	p := g.bySeat[seat]
	if g.Phase == PhaseInitialSettlement {
		if err := g.requireTurn(seat, PhaseInitialSettlement); err != nil {
			return nil, err
		}
		return g.placeInitialSettlement(p, v)
	}
	if err := g.requireTurn(seat, PhaseMain); err != nil {
		return nil, err
	}
	if !g.Rolled {
		return nil, ErrNotRolled
	}
	if !g.Graph.validVertex(v) {
		return nil, fmt.Errorf("%w: vertex %d", ErrBadIndex, v)
	}
	if p.Settlements >= g.Config.MaxSettlements {
		return nil, fmt.Errorf("%w: settlements", ErrNoPieces)
	}
	if !p.Resources.Covers(CostSettlement) {
		return nil, ErrNotEnoughResources
	}
	if err := g.checkSettlementSite(seat, v, false); err != nil {
		return nil, err
	}

	g.take(p, CostSettlement)
	g.Buildings[v] = Building{Owner: seat, Kind: Settlement}
	p.Settlements++
	return []engine.Event{
		{Type: EventSettlementBuilt, Seat: seat, Data: map[string]interface{}{"vertex": v}},
	}, nil
}

func (g *Game) applyBuildRoad(seat, e int) ([]engine.Event, error) {
	p := g.bySeat[seat]
	if g.Phase == PhaseInitialRoad {
		if err := g.requireTurn(seat, PhaseInitialRoad); err != nil {
			return nil, err
		}
		return g.placeInitialRoad(p, e)
	}
	if err := g.requireTurn(seat, PhaseMain, PhaseRoadBuilding); err != nil {
		return nil, err
	}
	free := g.Phase == PhaseRoadBuilding
	if !free && !g.Rolled {
		return nil, ErrNotRolled
	}
	if !g.Graph.validEdge(e) {
		return nil, fmt.Errorf("%w: edge %d", ErrBadIndex, e)
	}
	if p.Roads >= g.Config.MaxRoads {
		return nil, fmt.Errorf("%w: roads", ErrNoPieces)
	}
	if !free && !p.Resources.Covers(CostRoad) {
		return nil, ErrNotEnoughResources
	}
	if err := g.checkRoadSite(seat, e); err != nil {
		return nil, err
	}

	if free {
		g.FreeRoads--
	} else {
		g.take(p, CostRoad)
	}
	g.Roads[e] = seat
	p.Roads++

	events := []engine.Event{
		{Type: EventRoadBuilt, Seat: seat, Data: map[string]interface{}{"edge": e, "free": free}},
	}
	if free && (g.FreeRoads == 0 || p.Roads >= g.Config.MaxRoads) {
		g.FreeRoads = 0
		g.enter(PhaseMain)
	}
	return events, nil
}

func (g *Game) applyBuildCity(seat, v int) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseMain); err != nil {
		return nil, err
	}
	if !g.Rolled {
		return nil, ErrNotRolled
	}
	if !g.Graph.validVertex(v) {
		return nil, fmt.Errorf("%w: vertex %d", ErrBadIndex, v)
	}
	p := g.bySeat[seat]
	b, ok := g.Buildings[v]
	if !ok || b.Owner != seat || b.Kind != Settlement {
		return nil, fmt.Errorf("%w: vertex %d holds none of your settlements", ErrIllegalPlacement, v)
	}
	if p.Cities >= g.Config.MaxCities {
		return nil, fmt.Errorf("%w: cities", ErrNoPieces)
	}
	if !p.Resources.Covers(CostCity) {
		return nil, ErrNotEnoughResources
	}

	g.take(p, CostCity)
	g.Buildings[v] = Building{Owner: seat, Kind: City}
	p.Settlements--
	p.Cities++
	return []engine.Event{
		{Type: EventCityBuilt, Seat: seat, Data: map[string]interface{}{"vertex": v}},
	}, nil
}

// LegalSettlements lists vertices where seat may place a settlement now,
// ignoring cost.
func (g *Game) LegalSettlements(seat int) []int {
	initial := g.Phase == PhaseInitialSettlement
	var out []int
	for v := range g.Graph.Vertices {
		if g.checkSettlementSite(seat, v, initial) == nil {
			out = append(out, v)
		}
	}
	return out
}

// LegalRoads lists edges where seat may place a road now, ignoring cost.
func (g *Game) LegalRoads(seat int) []int {
	var out []int
	for e, edge := range g.Graph.Edges {
		if g.Phase == PhaseInitialRoad {
			if _, taken := g.Roads[e]; !taken && edge.Touches(g.lastSettlement) {
				out = append(out, e)
			}
			continue
		}
		if g.checkRoadSite(seat, e) == nil {
			out = append(out, e)
		}
	}
	return out
}

// LegalCities lists seat's settlements.
func (g *Game) LegalCities(seat int) []int {
	var out []int
	for v := range g.Graph.Vertices {
		if b, ok := g.Buildings[v]; ok && b.Owner == seat && b.Kind == Settlement {
			out = append(out, v)
		}
	}
	return out
}
