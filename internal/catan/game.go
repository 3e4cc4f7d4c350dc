package catan

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"settlers/internal/engine"
)

var (
	ErrNotYourTurn        = errors.New("not your turn")
	ErrInvalidAction      = errors.New("invalid action")
	ErrWrongPhase         = errors.New("wrong phase for this action")
	ErrBadSeat            = errors.New("seat not in game")
	ErrBadIndex           = errors.New("index out of range")
	ErrIllegalPlacement   = errors.New("illegal placement")
	ErrNotEnoughResources = errors.New("not enough resources")
	ErrBankShort          = errors.New("bank cannot cover this")
	ErrNoPieces           = errors.New("no pieces left")
	ErrNotRolled          = errors.New("dice not rolled yet")
	ErrAlreadyRolled      = errors.New("dice already rolled")
	ErrCardNotPlayable    = errors.New("no playable card of that kind")
	ErrCardAlreadyPlayed  = errors.New("already played a development card this turn")
	ErrDeckEmpty          = errors.New("development deck is empty")
	ErrSelfTrade          = errors.New("cannot trade with yourself")
	ErrGameOver           = errors.New("the game is over")
	ErrAlreadyStarted     = errors.New("game already started")
)

// NoSeat marks an unset award holder, winner, or trade partner.
const NoSeat = -1

// Name is the registry key of this game.
const Name = "catan"

// BuildingKind distinguishes settlements from cities.
type BuildingKind int

const (
	Settlement BuildingKind = iota + 1
	City
)

func (k BuildingKind) String() string {
	switch k {
	case Settlement:
		return "settlement"
	case City:
		return "city"
	default:
		return "unknown"
	}
}

func (k BuildingKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Building stands on a vertex.
type Building struct {
	Owner int          `json:"owner"`
	Kind  BuildingKind `json:"kind"`
}

// TradeOffer is a pending 1-for-1 trade between two seats.
type TradeOffer struct {
	From int      `json:"from"`
	To   int      `json:"to"`
	Give Resource `json:"give"`
	Get  Resource `json:"get"`
}

// Game holds the entire game state. It is not safe for concurrent use;
// the host serializes calls.
type Game struct {
	Config Config `json:"-"`
	Map    *Map   `json:"map"`
	Graph  *Graph `json:"graph"`

	rng *rand.Rand

	Players []*Player `json:"players"` // play order
	bySeat  map[int]*Player

	Phase   Phase `json:"phase"`
	Turn    int   `json:"turn"`
	current int   // index into Players

	draft          []int // snake order of player indices
	draftPos       int
	lastSettlement int

	Dice      [2]int        `json:"dice"`
	Rolled    bool          `json:"rolled"`
	rollShown time.Duration // remaining dice display time
	loaded    [][2]int      // queued rolls used before rng

	Bank Hand     `json:"bank"`
	Deck *DevDeck `json:"-"`

	Buildings map[int]Building `json:"buildings"` // vertex -> building
	Roads     map[int]int      `json:"roads"`     // edge -> owner seat

	Robber       int   `json:"robber"`
	StealTargets []int `json:"steal_targets,omitempty"`

	Trade        *TradeOffer `json:"trade,omitempty"`
	tradePartner int

	FreeRoads  int `json:"free_roads"`
	PlentyLeft int `json:"plenty_left"`
	devPlayed  bool

	LargestArmy int         `json:"largest_army"`
	LongestRoad int         `json:"longest_road"`
	roadLengths map[int]int // seat -> longest road

	Winner int `json:"winner"`
}

// New creates a game in the lobby phase. Every random choice the game
// makes is drawn from rng.
func New(rng *rand.Rand, config Config) *Game {
	return &Game{
		Config:      config,
		rng:         rng,
		Phase:       PhaseLobby,
		LargestArmy: NoSeat,
		LongestRoad: NoSeat,
		Winner:      NoSeat,
	}
}

// Factory adapts New to the host registry with the standard rules.
func Factory(rng *rand.Rand) engine.Game {
	return New(rng, DefaultConfig())
}

// FactoryWith is Factory with custom rules.
func FactoryWith(config Config) engine.Factory {
	return func(rng *rand.Rand) engine.Game {
		return New(rng, config)
	}
}

// Name implements engine.Game.
func (g *Game) Name() string { return Name }

// StartGame generates the board, resets the economy, shuffles the
// development deck and begins the snake draft. seats are the seat ids in
// play order.
func (g *Game) StartGame(seats []int) ([]engine.Event, error) {
	if g.Phase != PhaseLobby {
		return nil, ErrAlreadyStarted
	}
	if len(seats) < 2 || len(seats) > 8 {
		return nil, fmt.Errorf("%w: need 2-8 seats, got %d", ErrBadSeat, len(seats))
	}
	seen := make(map[int]bool, len(seats))
	for _, s := range seats {
		if s < 0 || s > 7 || seen[s] {
			return nil, fmt.Errorf("%w: seat %d", ErrBadSeat, s)
		}
		seen[s] = true
	}

	switch {
	case g.Config.Map != nil:
		g.Map = g.Config.Map
	case g.Config.Profile != nil:
		g.Map = GenerateProfile(*g.Config.Profile, g.rng)
	default:
		m, err := GenerateMap(len(seats), g.rng)
		if err != nil {
			return nil, err
		}
		g.Map = m
	}
	g.Graph = BuildGraph(g.Map)

	g.Players = make([]*Player, len(seats))
	g.bySeat = make(map[int]*Player, len(seats))
	for i, s := range seats {
		g.Players[i] = newPlayer(s)
		g.bySeat[s] = g.Players[i]
	}
	for _, r := range AllResources() {
		g.Bank[r] = g.Config.BankStock
	}
	g.Deck = NewDevDeck(g.rng)
	g.Buildings = make(map[int]Building)
	g.Roads = make(map[int]int)
	g.roadLengths = make(map[int]int)
	g.Robber = g.Map.Desert()
	g.tradePartner = NoSeat

	n := len(seats)
	g.draft = make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		g.draft = append(g.draft, i)
	}
	for i := n - 1; i >= 0; i-- {
		g.draft = append(g.draft, i)
	}
	g.draftPos = 0
	g.current = g.draft[0]
	g.lastSettlement = -1
	g.enter(PhaseInitialSettlement)

	return []engine.Event{
		{Type: EventGameStarted, Seat: engine.NoSeat, Data: map[string]interface{}{
			"seats":   seats,
			"profile": g.Map.Profile.Name,
			"tiles":   len(g.Map.Tiles),
		}},
		g.phaseEvent(),
	}, nil
}

// HandleAction implements engine.Game by decoding params and applying
// the action.
func (g *Game) HandleAction(seat int, action string, params json.RawMessage) ([]engine.Event, error) {
	if g.Phase == PhaseGameOver {
		return nil, ErrGameOver
	}
	a, err := ParseAction(action, params)
	if err != nil {
		return nil, err
	}
	return g.Apply(seat, a)
}

// Apply is the single entry point for player actions. A returned error
// leaves the game unchanged.
func (g *Game) Apply(seat int, action Action) ([]engine.Event, error) {
	switch g.Phase {
	case PhaseGameOver:
		return nil, ErrGameOver
	case PhaseLobby:
		return nil, ErrWrongPhase
	}
	if g.bySeat[seat] == nil {
		return nil, ErrBadSeat
	}

	before := g.Phase
	events, err := g.dispatch(seat, action)
	if err != nil {
		return nil, err
	}

	events = append(events, g.updateAwards()...)
	events = append(events, g.checkVictory()...)
	if g.Phase != before {
		events = append(events, g.phaseEvent())
	}
	return events, nil
}

func (g *Game) dispatch(seat int, action Action) ([]engine.Event, error) {
	switch action.Type {
	case ActionRoll:
		return g.applyRoll(seat)
	case ActionEndTurn:
		return g.applyEndTurn(seat)
	case ActionBuildSettlement:
		return g.applyBuildSettlement(seat, action.Vertex)
	case ActionBuildRoad:
		return g.applyBuildRoad(seat, action.Edge)
	case ActionBuildCity:
		return g.applyBuildCity(seat, action.Vertex)
	case ActionBuyDev:
		return g.applyBuyDev(seat)
	case ActionPlayDev:
		return g.applyPlayDev(seat, action.Card)
	case ActionTradeBankOpen:
		return g.applyTradeBankOpen(seat)
	case ActionTradeBank:
		return g.applyTradeBank(seat, action.Give, action.Get)
	case ActionTradePlayerOpen:
		return g.applyTradePlayerOpen(seat)
	case ActionTradePlayerSelect:
		return g.applyTradePlayerSelect(seat, action.Target)
	case ActionTradePlayerPropose:
		return g.applyTradePlayerPropose(seat, action.Target, action.Give, action.Get)
	case ActionTradePlayerAccept:
		return g.applyTradePlayerAnswer(seat, true)
	case ActionTradePlayerDecline:
		return g.applyTradePlayerAnswer(seat, false)
	case ActionCancel:
		return g.applyCancel(seat)
	case ActionDiscard:
		return g.applyDiscard(seat, action.Resource)
	case ActionRobberMove:
		return g.applyRobberMove(seat, action.Tile)
	case ActionRobberSteal:
		return g.applyRobberSteal(seat, action.Target)
	case ActionYearOfPlentyPick:
		return g.applyYearOfPlentyPick(seat, action.Resource)
	case ActionMonopolyPick:
		return g.applyMonopolyPick(seat, action.Resource)
	default:
		return nil, ErrInvalidAction
	}
}

// Update implements engine.Game. Dice results are committed by roll; the
// host only uses Update to stop showing the dice as rolling.
func (g *Game) Update(dt time.Duration) []engine.Event {
	if g.rollShown <= 0 {
		return nil
	}
	g.rollShown -= dt
	if g.rollShown > 0 {
		return nil
	}
	g.rollShown = 0
	return []engine.Event{{Type: EventDiceSettled, Seat: g.CurrentSeat(), Data: map[string]interface{}{
		"dice": g.Dice,
	}}}
}

// CurrentSeat returns the seat whose turn it is.
func (g *Game) CurrentSeat() int {
	if len(g.Players) == 0 {
		return NoSeat
	}
	return g.Players[g.current].Seat
}

// Player returns the ledger of seat, or nil.
func (g *Game) Player(seat int) *Player {
	return g.bySeat[seat]
}

// Seats returns the seat ids in play order.
func (g *Game) Seats() []int {
	out := make([]int, len(g.Players))
	for i, p := range g.Players {
		out[i] = p.Seat
	}
	return out
}

// requireTurn checks that seat is acting in its own turn during phase.
func (g *Game) requireTurn(seat int, phases ...Phase) error {
	ok := false
	for _, p := range phases {
		if g.Phase == p {
			ok = true
			break
		}
	}
	if !ok {
		return ErrWrongPhase
	}
	if g.CurrentSeat() != seat {
		return ErrNotYourTurn
	}
	return nil
}

// take moves cost from seat to the bank.
func (g *Game) take(p *Player, cost Hand) {
	p.Resources.Sub(cost)
	g.Bank.Add(cost)
}

// give moves up to want of r from the bank to p and returns the amount.
func (g *Game) give(p *Player, r Resource, want int) int {
	n := min(want, g.Bank[r])
	g.Bank[r] -= n
	p.Resources[r] += n
	return n
}

func (g *Game) phaseEvent() engine.Event {
	return engine.Event{Type: EventPhaseChange, Seat: g.CurrentSeat(), Data: map[string]interface{}{
		"phase": g.Phase.String(),
	}}
}
