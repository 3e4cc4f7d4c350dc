package catan

import (
	"fmt"

	"settlers/internal/engine"
)

func (g *Game) applyBuyDev(seat int) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseMain); err != nil {
		return nil, err
	}
	if !g.Rolled {
		return nil, ErrNotRolled
	}
	p := g.bySeat[seat]
	if !p.Resources.Covers(CostDevCard) {
		return nil, ErrNotEnoughResources
	}
	kind, ok := g.Deck.Draw()
	if !ok {
		return nil, ErrDeckEmpty
	}

	g.take(p, CostDevCard)
	p.Cards = append(p.Cards, DevCard{Kind: kind, BoughtTurn: g.Turn})
	return []engine.Event{
		{Type: EventDevBought, Seat: seat, Data: map[string]interface{}{"remaining": g.Deck.Len()}},
		{Type: EventDevBought, Seat: seat, Data: map[string]interface{}{"card": kind}, Recipients: []int{seat}},
	}, nil
}

// applyPlayDev plays one card bought before this turn. Victory point
// cards are never played; at most one other card is played per turn.
func (g *Game) applyPlayDev(seat int, kind DevKind) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseMain); err != nil {
		return nil, err
	}
	if kind < DevKnight || kind > DevVictoryPoint {
		return nil, ErrInvalidAction
	}
	if kind == DevVictoryPoint {
		return nil, fmt.Errorf("%w: victory points are never played", ErrCardNotPlayable)
	}
	if g.devPlayed {
		return nil, ErrCardAlreadyPlayed
	}
	p := g.bySeat[seat]
	idx := p.playableIndex(kind, g.Turn)
	if idx < 0 {
		return nil, ErrCardNotPlayable
	}

	next := PhaseMain
	switch kind {
	case DevKnight:
		next = PhaseRobberMove
	case DevRoadBuilding:
		if free := min(2, g.Config.MaxRoads-p.Roads); free > 0 {
			g.FreeRoads = free
			next = PhaseRoadBuilding
		}
	case DevYearOfPlenty:
		if g.Bank.Total() == 0 {
			return nil, ErrBankShort
		}
		g.PlentyLeft = 2
		next = PhaseYearOfPlenty
	case DevMonopoly:
		next = PhaseMonopoly
	}

	p.removeCard(idx)
	p.Played[kind]++
	if kind == DevKnight {
		p.KnightsPlayed++
	}
	g.devPlayed = true
	if next != PhaseMain {
		g.enter(next)
	}
	return []engine.Event{
		{Type: EventDevPlayed, Seat: seat, Data: map[string]interface{}{"card": kind}},
	}, nil
}

func (g *Game) applyYearOfPlentyPick(seat int, r Resource) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseYearOfPlenty); err != nil {
		return nil, err
	}
	if !r.Valid() {
		return nil, ErrInvalidAction
	}
	if g.Bank[r] == 0 {
		return nil, ErrBankShort
	}

	p := g.bySeat[seat]
	g.give(p, r, 1)
	g.PlentyLeft--
	if g.PlentyLeft == 0 || g.Bank.Total() == 0 {
		g.PlentyLeft = 0
		g.enter(PhaseMain)
	}
	return []engine.Event{
		{Type: EventPlentyPicked, Seat: seat, Data: map[string]interface{}{"resource": r}},
	}, nil
}

func (g *Game) applyMonopolyPick(seat int, r Resource) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseMonopoly); err != nil {
		return nil, err
	}
	if !r.Valid() {
		return nil, ErrInvalidAction
	}

	p := g.bySeat[seat]
	taken := 0
	for _, other := range g.Players {
		if other.Seat == seat {
			continue
		}
		taken += other.Resources[r]
		p.Resources[r] += other.Resources[r]
		other.Resources[r] = 0
	}
	g.enter(PhaseMain)
	return []engine.Event{
		{Type: EventMonopolized, Seat: seat, Data: map[string]interface{}{
			"resource": r, "count": taken,
		}},
	}, nil
}
