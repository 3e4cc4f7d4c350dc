package catan_test

import (
	"encoding/json"
	"errors"
	"testing"

	"settlers/internal/catan"
)

func offer(target int, give, get catan.Resource) catan.Action {
	return catan.Action{Type: catan.ActionTradePlayerPropose, Target: target, Give: give, Get: get}
}

func newTradeGame(t *testing.T) *catan.Game {
	t.Helper()
	g := newRowGame(t, 3)
	g.Rolled = true
	fund(g, 0, catan.Hand{catan.Wood: 1})
	fund(g, 1, catan.Hand{catan.Brick: 1})
	return g
}

func TestPlayerTradeAccept(t *testing.T) {
	g := newTradeGame(t)

	mustApply(t, g, 0, offer(1, catan.Wood, catan.Brick))
	if g.Phase != catan.PhaseTradePlayerWait || g.Trade == nil || g.Trade.To != 1 {
		t.Fatalf("phase %s, trade %+v", g.Phase, g.Trade)
	}
	if g.View(1).Me.IncomingOffer == nil || g.View(2).Me.IncomingOffer != nil {
		t.Error("offer shown to the wrong seats")
	}

	expectErr(t, g, 2, catan.Action{Type: catan.ActionTradePlayerAccept}, catan.ErrNotYourTurn)
	expectErr(t, g, 0, catan.Action{Type: catan.ActionRoll}, catan.ErrWrongPhase)

	events := mustApply(t, g, 1, catan.Action{Type: catan.ActionTradePlayerAccept})
	if !hasEvent(events, catan.EventTradeAccepted) {
		t.Error("expected trade_accepted")
	}
	if g.Phase != catan.PhaseMain || g.Trade != nil {
		t.Errorf("phase %s, trade %+v", g.Phase, g.Trade)
	}
	p0, p1 := g.Player(0).Resources, g.Player(1).Resources
	if p0[catan.Brick] != 1 || p0[catan.Wood] != 0 || p1[catan.Wood] != 1 || p1[catan.Brick] != 0 {
		t.Errorf("after swap: %v / %v", p0, p1)
	}
}

func TestPlayerTradeDecline(t *testing.T) {
	g := newTradeGame(t)
	mustApply(t, g, 0, offer(1, catan.Wood, catan.Brick))
	mustApply(t, g, 1, catan.Action{Type: catan.ActionTradePlayerDecline})
	if g.Phase != catan.PhaseMain || g.Trade != nil {
		t.Errorf("phase %s, trade %+v", g.Phase, g.Trade)
	}
	if g.Player(0).Resources[catan.Wood] != 1 {
		t.Error("declined trade moved cards")
	}
}

func TestPlayerTradePartnerShort(t *testing.T) {
	g := newTradeGame(t)
	mustApply(t, g, 0, offer(2, catan.Wood, catan.Brick))
	expectErr(t, g, 2, catan.Action{Type: catan.ActionTradePlayerAccept}, catan.ErrNotEnoughResources)
	if g.Phase != catan.PhaseTradePlayerWait || g.Trade == nil {
		t.Errorf("failed accept changed state: phase %s", g.Phase)
	}
}

func TestPlayerTradeSelectFlow(t *testing.T) {
	g := newTradeGame(t)

	mustApply(t, g, 0, catan.Action{Type: catan.ActionTradePlayerOpen})
	if g.Phase != catan.PhaseTradePlayerSelect {
		t.Fatalf("expected trade_player_select, got %s", g.Phase)
	}
	expectErr(t, g, 0, catan.Action{Type: catan.ActionTradePlayerSelect, Target: 0}, catan.ErrSelfTrade)
	expectErr(t, g, 0, catan.Action{Type: catan.ActionTradePlayerSelect, Target: 6}, catan.ErrBadSeat)
	mustApply(t, g, 0, catan.Action{Type: catan.ActionTradePlayerSelect, Target: 1})
	if g.Phase != catan.PhaseTradePlayerOffer {
		t.Fatalf("expected trade_player_offer, got %s", g.Phase)
	}

	// The chosen partner wins over any target in the offer.
	mustApply(t, g, 0, offer(2, catan.Wood, catan.Brick))
	if g.Trade == nil || g.Trade.To != 1 {
		t.Fatalf("trade = %+v", g.Trade)
	}

	expectErr(t, g, 1, catan.Action{Type: catan.ActionCancel}, catan.ErrNotYourTurn)
	mustApply(t, g, 0, catan.Action{Type: catan.ActionCancel})
	if g.Phase != catan.PhaseMain || g.Trade != nil {
		t.Errorf("phase %s, trade %+v", g.Phase, g.Trade)
	}
}

func TestPlayerTradeRejects(t *testing.T) {
	g := newTradeGame(t)
	expectErr(t, g, 0, offer(0, catan.Wood, catan.Brick), catan.ErrSelfTrade)
	expectErr(t, g, 0, offer(1, catan.Ore, catan.Brick), catan.ErrNotEnoughResources)
	expectErr(t, g, 0, offer(1, catan.Wood, catan.Wood), catan.ErrInvalidAction)
	expectErr(t, g, 1, offer(0, catan.Brick, catan.Wood), catan.ErrNotYourTurn)
	expectErr(t, g, 0, catan.Action{Type: catan.ActionCancel}, catan.ErrWrongPhase)

	g.Rolled = false
	expectErr(t, g, 0, offer(1, catan.Wood, catan.Brick), catan.ErrNotRolled)
}

func TestPlayerTradeOfferNeedsTarget(t *testing.T) {
	g := newTradeGame(t)
	g.SetCurrent(1)

	params := json.RawMessage(`{"give":"brick","get":"wood"}`)
	if _, err := g.HandleAction(1, "trade_player_propose", params); !errors.Is(err, catan.ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
	if g.Phase != catan.PhaseMain || g.Trade != nil {
		t.Errorf("rejected offer changed state: phase %s, trade %+v", g.Phase, g.Trade)
	}

	// After trade_player_select the chosen partner stands in for target.
	mustApply(t, g, 1, catan.Action{Type: catan.ActionTradePlayerOpen})
	mustApply(t, g, 1, catan.Action{Type: catan.ActionTradePlayerSelect, Target: 0})
	if _, err := g.HandleAction(1, "trade_player_propose", params); err != nil {
		t.Fatal(err)
	}
	if g.Trade == nil || g.Trade.From != 1 || g.Trade.To != 0 {
		t.Errorf("trade = %+v", g.Trade)
	}
}
