package catan

import (
	"fmt"
	"slices"

	"settlers/internal/engine"
)

func (g *Game) applyRoll(seat int) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseMain); err != nil {
		return nil, err
	}
	if g.Rolled {
		return nil, ErrAlreadyRolled
	}

	g.Dice = g.throwDice()
	g.Rolled = true
	g.rollShown = g.Config.RollDisplay
	sum := g.Dice[0] + g.Dice[1]

	events := []engine.Event{
		{Type: EventDiceRolled, Seat: seat, Data: map[string]interface{}{
			"dice": g.Dice, "sum": sum,
		}},
	}
	if sum != 7 {
		return append(events, g.distribute(sum)...), nil
	}

	owing := false
	for _, p := range g.Players {
		total := p.Resources.Total()
		if total > g.Config.DiscardLimit {
			p.DiscardOwed = total / 2
			owing = true
			events = append(events, engine.Event{Type: EventDiscardRequired, Seat: p.Seat, Data: map[string]interface{}{
				"count": p.DiscardOwed,
			}})
		}
	}
	if owing {
		g.enter(PhaseDiscard)
	} else {
		g.enter(PhaseRobberMove)
	}
	return events, nil
}

func (g *Game) throwDice() [2]int {
	if len(g.loaded) > 0 {
		d := g.loaded[0]
		g.loaded = g.loaded[1:]
		return d
	}
	return [2]int{g.rng.IntN(6) + 1, g.rng.IntN(6) + 1}
}

// distribute pays out every unrobbed tile bearing number. Tiles and
// corners are processed in index order; a claim the bank cannot cover in
// full receives what is left.
func (g *Game) distribute(number int) []engine.Event {
	gains := make(map[int]*Hand)
	for ti, t := range g.Map.Tiles {
		if t.Number != number || ti == g.Robber {
			continue
		}
		r, ok := t.Kind.Produces()
		if !ok {
			continue
		}
		for _, v := range g.Graph.TileVertices(ti) {
			b, ok := g.Buildings[v]
			if !ok {
				continue
			}
			want := 1
			if b.Kind == City {
				want = 2
			}
			p := g.bySeat[b.Owner]
			got := g.give(p, r, want)
			if got == 0 {
				continue
			}
			if gains[b.Owner] == nil {
				gains[b.Owner] = &Hand{}
			}
			gains[b.Owner][r] += got
		}
	}

	var events []engine.Event
	for _, p := range g.Players {
		if h := gains[p.Seat]; h != nil {
			events = append(events, engine.Event{Type: EventProduced, Seat: p.Seat, Data: map[string]interface{}{
				"resources": *h,
			}})
		}
	}
	return events
}

// applyDiscard lets any seat that owes cards drop one of them.
func (g *Game) applyDiscard(seat int, r Resource) ([]engine.Event, error) {
	if g.Phase != PhaseDiscard {
		return nil, ErrWrongPhase
	}
	if !r.Valid() {
		return nil, ErrInvalidAction
	}
	p := g.bySeat[seat]
	if p.DiscardOwed == 0 {
		return nil, fmt.Errorf("%w: nothing to discard", ErrInvalidAction)
	}
	if p.Resources[r] == 0 {
		return nil, ErrNotEnoughResources
	}

	g.take(p, single(r, 1))
	p.DiscardOwed--
	events := []engine.Event{
		{Type: EventDiscarded, Seat: seat, Data: map[string]interface{}{
			"resource": r, "remaining": p.DiscardOwed,
		}},
	}
	for _, other := range g.Players {
		if other.DiscardOwed > 0 {
			return events, nil
		}
	}
	g.enter(PhaseRobberMove)
	return events, nil
}

// robberVictims returns opposing seats with a building on tile and at
// least one card, in play order.
func (g *Game) robberVictims(seat, tile int) []int {
	var out []int
	for _, v := range g.Graph.TileVertices(tile) {
		b, ok := g.Buildings[v]
		if !ok || b.Owner == seat || slices.Contains(out, b.Owner) {
			continue
		}
		if g.bySeat[b.Owner].Resources.Total() == 0 {
			continue
		}
		out = append(out, b.Owner)
	}
	slices.SortFunc(out, func(a, b int) int { return g.order(a) - g.order(b) })
	return out
}

func (g *Game) order(seat int) int {
	for i, p := range g.Players {
		if p.Seat == seat {
			return i
		}
	}
	return len(g.Players)
}

func (g *Game) applyRobberMove(seat, tile int) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseRobberMove); err != nil {
		return nil, err
	}
	if tile < 0 || tile >= len(g.Map.Tiles) {
		return nil, fmt.Errorf("%w: tile %d", ErrBadIndex, tile)
	}
	if !g.Map.Tiles[tile].Kind.IsLand() {
		return nil, fmt.Errorf("%w: robber must stand on land", ErrIllegalPlacement)
	}
	if tile == g.Robber {
		return nil, fmt.Errorf("%w: robber must move", ErrIllegalPlacement)
	}

	g.Robber = tile
	events := []engine.Event{
		{Type: EventRobberMoved, Seat: seat, Data: map[string]interface{}{"tile": tile}},
	}

	victims := g.robberVictims(seat, tile)
	switch len(victims) {
	case 0:
		g.enter(PhaseMain)
	case 1:
		events = append(events, g.steal(seat, victims[0]))
		g.enter(PhaseMain)
	default:
		g.StealTargets = victims
		g.enter(PhaseRobberSteal)
	}
	return events, nil
}

func (g *Game) applyRobberSteal(seat, target int) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseRobberSteal); err != nil {
		return nil, err
	}
	if !slices.Contains(g.StealTargets, target) {
		return nil, fmt.Errorf("%w: seat %d cannot be robbed", ErrInvalidAction, target)
	}
	ev := g.steal(seat, target)
	g.StealTargets = nil
	g.enter(PhaseMain)
	return []engine.Event{ev}, nil
}

// steal moves one uniformly random card from victim to thief. Only the
// two seats involved learn which resource moved.
func (g *Game) steal(thief, victim int) engine.Event {
	from := g.bySeat[victim]
	to := g.bySeat[thief]
	data := map[string]interface{}{"from": victim}
	if total := from.Resources.Total(); total > 0 {
		r, _ := from.Resources.Nth(g.rng.IntN(total))
		from.Resources[r]--
		to.Resources[r]++
		data["resource"] = r
	}
	return engine.Event{Type: EventStolen, Seat: thief, Data: data, Recipients: []int{thief, victim}}
}

func (g *Game) applyEndTurn(seat int) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseMain); err != nil {
		return nil, err
	}
	if !g.Rolled {
		return nil, ErrNotRolled
	}

	events := []engine.Event{
		{Type: EventTurnEnd, Seat: seat, Data: map[string]interface{}{"turn": g.Turn}},
	}
	g.current = (g.current + 1) % len(g.Players)
	g.Turn++
	g.Rolled = false
	g.rollShown = 0
	g.devPlayed = false
	return events, nil
}
