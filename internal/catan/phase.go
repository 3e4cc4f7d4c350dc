package catan

import "fmt"

// Phase is a state of the turn state machine.
type Phase int

const (
	PhaseLobby             Phase = iota // waiting for StartGame
	PhaseInitialSettlement              // snake draft: place a settlement
	PhaseInitialRoad                    // snake draft: place the attached road
	PhaseMain                           // roll, build, trade, play cards
	PhaseDiscard                        // seats over the limit discard half
	PhaseRobberMove                     // current seat moves the robber
	PhaseRobberSteal                    // current seat picks a victim
	PhaseTradeBank                      // composing a bank/port trade
	PhaseTradePlayerSelect              // choosing a trade partner
	PhaseTradePlayerOffer               // composing a 1-for-1 offer
	PhaseTradePlayerWait                // partner accepts or declines
	PhaseRoadBuilding                   // placing free roads
	PhaseYearOfPlenty                   // picking resources from the bank
	PhaseMonopoly                       // naming the monopolized resource
	PhaseGameOver                       // winner recorded, no more actions
)

var phaseNames = map[Phase]string{
	PhaseLobby:             "lobby",
	PhaseInitialSettlement: "initial_settlement",
	PhaseInitialRoad:       "initial_road",
	PhaseMain:              "main",
	PhaseDiscard:           "discard",
	PhaseRobberMove:        "robber_move",
	PhaseRobberSteal:       "robber_steal",
	PhaseTradeBank:         "trade_bank",
	PhaseTradePlayerSelect: "trade_player_select",
	PhaseTradePlayerOffer:  "trade_player_offer",
	PhaseTradePlayerWait:   "trade_player_wait",
	PhaseRoadBuilding:      "road_building",
	PhaseYearOfPlenty:      "year_of_plenty",
	PhaseMonopoly:          "monopoly",
	PhaseGameOver:          "game_over",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "unknown"
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// transitions lists the phases each phase may move to. Any phase after
// the lobby may also end the game.
var transitions = map[Phase][]Phase{
	PhaseLobby:             {PhaseInitialSettlement},
	PhaseInitialSettlement: {PhaseInitialRoad},
	PhaseInitialRoad:       {PhaseInitialSettlement, PhaseMain},
	PhaseMain: {
		PhaseDiscard, PhaseRobberMove, PhaseTradeBank,
		PhaseTradePlayerSelect, PhaseTradePlayerWait, PhaseRoadBuilding,
		PhaseYearOfPlenty, PhaseMonopoly,
	},
	PhaseDiscard:           {PhaseRobberMove},
	PhaseRobberMove:        {PhaseRobberSteal, PhaseMain},
	PhaseRobberSteal:       {PhaseMain},
	PhaseTradeBank:         {PhaseMain},
	PhaseTradePlayerSelect: {PhaseTradePlayerOffer, PhaseMain},
	PhaseTradePlayerOffer:  {PhaseTradePlayerWait, PhaseMain},
	PhaseTradePlayerWait:   {PhaseMain},
	PhaseRoadBuilding:      {PhaseMain},
	PhaseYearOfPlenty:      {PhaseMain},
	PhaseMonopoly:          {PhaseMain},
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to Phase) bool {
	if to == PhaseGameOver {
		return from != PhaseLobby && from != PhaseGameOver
	}
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// enter moves the game to phase p. Callers validate the action first, so
// a rejected transition is a bug in the engine.
func (g *Game) enter(p Phase) {
	if !CanTransition(g.Phase, p) {
		panic(fmt.Sprintf("catan: illegal transition %s -> %s", g.Phase, p))
	}
	g.Phase = p
}
