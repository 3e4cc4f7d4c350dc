package catan

import (
	"encoding/json"
	"fmt"
)

// ActionType identifies player actions sent to Game.Apply.
type ActionType string

const (
	ActionRoll               ActionType = "roll"
	ActionEndTurn            ActionType = "end_turn"
	ActionBuildSettlement    ActionType = "build_settlement"
	ActionBuildRoad          ActionType = "build_road"
	ActionBuildCity          ActionType = "build_city"
	ActionBuyDev             ActionType = "buy_dev"
	ActionPlayDev            ActionType = "play_dev"
	ActionTradeBankOpen      ActionType = "trade_bank_open"
	ActionTradeBank          ActionType = "trade_bank"
	ActionTradePlayerOpen    ActionType = "trade_player_open"
	ActionTradePlayerSelect  ActionType = "trade_player_select"
	ActionTradePlayerPropose ActionType = "trade_player_propose"
	ActionTradePlayerAccept  ActionType = "trade_player_accept"
	ActionTradePlayerDecline ActionType = "trade_player_decline"
	ActionCancel             ActionType = "cancel"
	ActionDiscard            ActionType = "discard"
	ActionRobberMove         ActionType = "robber_move"
	ActionRobberSteal        ActionType = "robber_steal"
	ActionYearOfPlentyPick   ActionType = "year_of_plenty_pick"
	ActionMonopolyPick       ActionType = "monopoly_pick"
)

// Action is a player's action input.
type Action struct {
	Type ActionType `json:"type"`
	// Params depend on Type:
	// build_settlement, build_city: Vertex
	// build_road: Edge
	// robber_move: Tile
	// robber_steal, trade_player_select: Target
	// trade_player_propose: Target (from main, NoSeat when absent), Give, Get
	// trade_bank: Give, Get
	// discard, year_of_plenty_pick, monopoly_pick: Resource
	// play_dev: Card
	Vertex   int      `json:"vertex"`
	Edge     int      `json:"edge"`
	Tile     int      `json:"tile"`
	Target   int      `json:"target"`
	Give     Resource `json:"give"`
	Get      Resource `json:"get"`
	Resource Resource `json:"resource"`
	Card     DevKind  `json:"card"`
}

// requiredParams lists the keys each action must carry. Absent keys would
// otherwise decode to index 0, which is a real vertex, edge, or seat.
var requiredParams = map[ActionType][]string{
	ActionRoll:               nil,
	ActionEndTurn:            nil,
	ActionBuildSettlement:    {"vertex"},
	ActionBuildRoad:          {"edge"},
	ActionBuildCity:          {"vertex"},
	ActionBuyDev:             nil,
	ActionPlayDev:            {"card"},
	ActionTradeBankOpen:      nil,
	ActionTradeBank:          {"give", "get"},
	ActionTradePlayerOpen:    nil,
	ActionTradePlayerSelect:  {"target"},
	ActionTradePlayerPropose: {"give", "get"},
	ActionTradePlayerAccept:  nil,
	ActionTradePlayerDecline: nil,
	ActionCancel:             nil,
	ActionDiscard:            {"resource"},
	ActionRobberMove:         {"tile"},
	ActionRobberSteal:        {"target"},
	ActionYearOfPlentyPick:   {"resource"},
	ActionMonopolyPick:       {"resource"},
}

// ParseAction decodes an action name and its JSON params.
func ParseAction(name string, params json.RawMessage) (Action, error) {
	typ := ActionType(name)
	required, ok := requiredParams[typ]
	if !ok {
		return Action{}, fmt.Errorf("%w: unknown action %q", ErrInvalidAction, name)
	}

	raw := map[string]json.RawMessage{}
	if len(params) > 0 && string(params) != "null" {
		if err := json.Unmarshal(params, &raw); err != nil {
			return Action{}, fmt.Errorf("%w: params must be an object", ErrInvalidAction)
		}
	}
	for _, key := range required {
		if _, ok := raw[key]; !ok {
			return Action{}, fmt.Errorf("%w: %s requires %q", ErrInvalidAction, name, key)
		}
	}

	action := Action{Type: typ}
	if _, ok := raw["target"]; !ok && typ == ActionTradePlayerPropose {
		action.Target = NoSeat
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(params, &action); err != nil {
			return Action{}, fmt.Errorf("%w: %v", ErrInvalidAction, err)
		}
		action.Type = typ
	}
	return action, nil
}
