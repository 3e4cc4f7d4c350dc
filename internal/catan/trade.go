package catan

import (
	"fmt"

	"settlers/internal/engine"
)

// TradeRatio returns how many of give seat must hand the bank for one
// card: 2 at a matching port, 3 at an any-port, 4 otherwise.
func (g *Game) TradeRatio(seat int, give Resource) int {
	ratio := 4
	for pi, port := range g.Map.Ports {
		if !g.ownsAny(seat, g.Graph.PortVertices(pi)) {
			continue
		}
		if r, ok := port.Kind.Resource(); ok && r == give {
			return 2
		}
		if port.Kind == PortAny {
			ratio = 3
		}
	}
	return ratio
}

func (g *Game) ownsAny(seat int, vertices []int) bool {
	for _, v := range vertices {
		if b, ok := g.Buildings[v]; ok && b.Owner == seat {
			return true
		}
	}
	return false
}

func (g *Game) applyTradeBankOpen(seat int) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseMain); err != nil {
		return nil, err
	}
	if !g.Rolled {
		return nil, ErrNotRolled
	}
	g.enter(PhaseTradeBank)
	return nil, nil
}

func (g *Game) applyTradeBank(seat int, give, get Resource) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseMain, PhaseTradeBank); err != nil {
		return nil, err
	}
	if !g.Rolled {
		return nil, ErrNotRolled
	}
	if !give.Valid() || !get.Valid() || give == get {
		return nil, fmt.Errorf("%w: bad trade %s for %s", ErrInvalidAction, give, get)
	}
	p := g.bySeat[seat]
	ratio := g.TradeRatio(seat, give)
	if p.Resources[give] < ratio {
		return nil, ErrNotEnoughResources
	}
	if g.Bank[get] == 0 {
		return nil, ErrBankShort
	}

	g.take(p, single(give, ratio))
	g.give(p, get, 1)
	if g.Phase == PhaseTradeBank {
		g.enter(PhaseMain)
	}
	return []engine.Event{
		{Type: EventBankTrade, Seat: seat, Data: map[string]interface{}{
			"give": give, "count": ratio, "get": get,
		}},
	}, nil
}

func (g *Game) applyTradePlayerOpen(seat int) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseMain); err != nil {
		return nil, err
	}
	if !g.Rolled {
		return nil, ErrNotRolled
	}
	g.tradePartner = NoSeat
	g.enter(PhaseTradePlayerSelect)
	return nil, nil
}

func (g *Game) applyTradePlayerSelect(seat, target int) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseTradePlayerSelect); err != nil {
		return nil, err
	}
	if err := g.checkPartner(seat, target); err != nil {
		return nil, err
	}
	g.tradePartner = target
	g.enter(PhaseTradePlayerOffer)
	return nil, nil
}

func (g *Game) checkPartner(seat, target int) error {
	if target == seat {
		return ErrSelfTrade
	}
	if g.bySeat[target] == nil {
		return fmt.Errorf("%w: trade partner %d", ErrBadSeat, target)
	}
	return nil
}

// applyTradePlayerPropose offers one give for one get. From main the
// partner is target; after trade_player_select it is the chosen seat.
func (g *Game) applyTradePlayerPropose(seat, target int, give, get Resource) ([]engine.Event, error) {
	if err := g.requireTurn(seat, PhaseMain, PhaseTradePlayerOffer); err != nil {
		return nil, err
	}
	if !g.Rolled {
		return nil, ErrNotRolled
	}
	if g.Phase == PhaseTradePlayerOffer {
		target = g.tradePartner
	} else if target == NoSeat {
		return nil, fmt.Errorf("%w: offer needs a target seat", ErrInvalidAction)
	}
	if err := g.checkPartner(seat, target); err != nil {
		return nil, err
	}
	if !give.Valid() || !get.Valid() || give == get {
		return nil, fmt.Errorf("%w: bad trade %s for %s", ErrInvalidAction, give, get)
	}
	if g.bySeat[seat].Resources[give] == 0 {
		return nil, ErrNotEnoughResources
	}

	g.Trade = &TradeOffer{From: seat, To: target, Give: give, Get: get}
	g.tradePartner = NoSeat
	g.enter(PhaseTradePlayerWait)
	return []engine.Event{
		{Type: EventTradeOffered, Seat: seat, Data: map[string]interface{}{
			"to": target, "give": give, "get": get,
		}},
	}, nil
}

// applyTradePlayerAnswer resolves the pending offer. Only the addressed
// partner may answer; accepting swaps one card each way.
func (g *Game) applyTradePlayerAnswer(seat int, accept bool) ([]engine.Event, error) {
	if g.Phase != PhaseTradePlayerWait || g.Trade == nil {
		return nil, ErrWrongPhase
	}
	t := *g.Trade
	if seat != t.To {
		return nil, ErrNotYourTurn
	}

	if !accept {
		g.Trade = nil
		g.enter(PhaseMain)
		return []engine.Event{
			{Type: EventTradeDeclined, Seat: seat, Data: map[string]interface{}{"from": t.From}},
		}, nil
	}

	from, to := g.bySeat[t.From], g.bySeat[t.To]
	if from.Resources[t.Give] == 0 || to.Resources[t.Get] == 0 {
		return nil, ErrNotEnoughResources
	}
	from.Resources[t.Give]--
	to.Resources[t.Give]++
	to.Resources[t.Get]--
	from.Resources[t.Get]++
	g.Trade = nil
	g.enter(PhaseMain)
	return []engine.Event{
		{Type: EventTradeAccepted, Seat: seat, Data: map[string]interface{}{
			"from": t.From, "give": t.Give, "get": t.Get,
		}},
	}, nil
}

// applyCancel backs out of a trade sub-phase or ends road building early.
func (g *Game) applyCancel(seat int) ([]engine.Event, error) {
	switch g.Phase {
	case PhaseTradeBank, PhaseTradePlayerSelect, PhaseTradePlayerOffer, PhaseTradePlayerWait, PhaseRoadBuilding:
	default:
		return nil, ErrWrongPhase
	}
	if g.CurrentSeat() != seat {
		return nil, ErrNotYourTurn
	}
	from := g.Phase
	g.Trade = nil
	g.tradePartner = NoSeat
	g.FreeRoads = 0
	g.enter(PhaseMain)
	return []engine.Event{
		{Type: EventCancelled, Seat: seat, Data: map[string]interface{}{"phase": from.String()}},
	}, nil
}
