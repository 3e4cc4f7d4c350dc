package catan

import "sort"

// Snapshot is everything a host needs to render one seat's view. Seat -1
// is the public board display.
type Snapshot struct {
	Phase       string         `json:"phase"`
	Turn        int            `json:"turn"`
	CurrentSeat int            `json:"current_seat"`
	Dice        [2]int         `json:"dice"`
	Rolled      bool           `json:"rolled"`
	DiceRolling bool           `json:"dice_rolling"`
	Tiles       []Tile         `json:"tiles"`
	Ports       []Port         `json:"ports"`
	Vertices    []Vertex       `json:"vertices"`
	Edges       []Edge         `json:"edges"`
	Buildings   []PlacedPiece  `json:"buildings"`
	Roads       []PlacedPiece  `json:"roads"`
	Robber      int            `json:"robber"`
	Bank        Hand           `json:"bank"`
	DeckSize    int            `json:"deck_size"`
	Players     []PublicPlayer `json:"players"`
	LargestArmy int            `json:"largest_army"`
	LongestRoad int            `json:"longest_road"`
	Winner      int            `json:"winner"`
	Trade       *TradeOffer    `json:"trade,omitempty"`
	Discarding  map[int]int    `json:"discarding,omitempty"`
	Me          *PrivateView   `json:"me,omitempty"`
}

// PlacedPiece is a building (Index is a vertex) or road (Index is an edge).
type PlacedPiece struct {
	Index int          `json:"index"`
	Owner int          `json:"owner"`
	Kind  BuildingKind `json:"kind,omitempty"`
}

// PublicPlayer is what every seat may see about a seat.
type PublicPlayer struct {
	Seat          int  `json:"seat"`
	CardCount     int  `json:"card_count"`
	DevCardCount  int  `json:"dev_card_count"`
	KnightsPlayed int  `json:"knights_played"`
	RoadLength    int  `json:"road_length"`
	Points        int  `json:"points"`
	Settlements   int  `json:"settlements"`
	Cities        int  `json:"cities"`
	Roads         int  `json:"roads"`
	IsCurrent     bool `json:"is_current"`
}

// PrivateView is only sent to the seat it describes.
type PrivateView struct {
	Seat          int              `json:"seat"`
	Resources     Hand             `json:"resources"`
	DevCards      map[DevKind]int  `json:"dev_cards"`
	Playable      []DevKind        `json:"playable"`
	Points        int              `json:"points"`
	DiscardOwed   int              `json:"discard_owed"`
	TradeRatios   map[Resource]int `json:"trade_ratios"`
	Settlements   []int            `json:"legal_settlements,omitempty"`
	Roads         []int            `json:"legal_roads,omitempty"`
	Cities        []int            `json:"legal_cities,omitempty"`
	RobberTiles   []int            `json:"robber_tiles,omitempty"`
	StealTargets  []int            `json:"steal_targets,omitempty"`
	FreeRoads     int              `json:"free_roads,omitempty"`
	PlentyLeft    int              `json:"plenty_left,omitempty"`
	IncomingOffer *TradeOffer      `json:"incoming_offer,omitempty"`
}

// Snapshot implements engine.Game.
func (g *Game) Snapshot(seat int) any {
	return g.View(seat)
}

// View builds the typed snapshot for seat.
func (g *Game) View(seat int) Snapshot {
	s := Snapshot{
		Phase:       g.Phase.String(),
		Turn:        g.Turn,
		CurrentSeat: g.CurrentSeat(),
		Dice:        g.Dice,
		Rolled:      g.Rolled,
		DiceRolling: g.rollShown > 0,
		Robber:      g.Robber,
		Bank:        g.Bank,
		LargestArmy: g.LargestArmy,
		LongestRoad: g.LongestRoad,
		Winner:      g.Winner,
		Trade:       g.Trade,
	}
	if g.Phase == PhaseLobby {
		return s
	}

	s.Tiles = g.Map.Tiles
	s.Ports = g.Map.Ports
	s.Vertices = g.Graph.Vertices
	s.Edges = g.Graph.Edges
	s.DeckSize = g.Deck.Len()

	for v, b := range g.Buildings {
		s.Buildings = append(s.Buildings, PlacedPiece{Index: v, Owner: b.Owner, Kind: b.Kind})
	}
	sort.Slice(s.Buildings, func(i, j int) bool { return s.Buildings[i].Index < s.Buildings[j].Index })
	for e, owner := range g.Roads {
		s.Roads = append(s.Roads, PlacedPiece{Index: e, Owner: owner})
	}
	sort.Slice(s.Roads, func(i, j int) bool { return s.Roads[i].Index < s.Roads[j].Index })

	for i, p := range g.Players {
		pp := PublicPlayer{
			Seat:          p.Seat,
			CardCount:     p.Resources.Total(),
			DevCardCount:  len(p.Cards),
			KnightsPlayed: p.KnightsPlayed,
			RoadLength:    g.roadLengths[p.Seat],
			Points:        g.PublicPoints(p.Seat),
			Settlements:   p.Settlements,
			Cities:        p.Cities,
			Roads:         p.Roads,
			IsCurrent:     i == g.current,
		}
		// Hidden points are revealed once the game is decided.
		if g.Phase == PhaseGameOver {
			pp.Points = g.VictoryPoints(p.Seat)
		}
		s.Players = append(s.Players, pp)
		if p.DiscardOwed > 0 {
			if s.Discarding == nil {
				s.Discarding = make(map[int]int)
			}
			s.Discarding[p.Seat] = p.DiscardOwed
		}
	}

	if p := g.bySeat[seat]; p != nil {
		s.Me = g.privateView(p)
	}
	return s
}

func (g *Game) privateView(p *Player) *PrivateView {
	me := &PrivateView{
		Seat:        p.Seat,
		Resources:   p.Resources,
		DevCards:    make(map[DevKind]int),
		Points:      g.VictoryPoints(p.Seat),
		DiscardOwed: p.DiscardOwed,
		TradeRatios: make(map[Resource]int, NumResources),
	}
	for kind, n := range p.CardCounts() {
		if n > 0 {
			me.DevCards[DevKind(kind)] = n
		}
	}
	for _, r := range AllResources() {
		me.TradeRatios[r] = g.TradeRatio(p.Seat, r)
	}
	if g.Trade != nil && g.Trade.To == p.Seat {
		me.IncomingOffer = g.Trade
	}
	if g.CurrentSeat() != p.Seat {
		return me
	}

	if g.Phase == PhaseMain && !g.devPlayed {
		for _, kind := range []DevKind{DevKnight, DevRoadBuilding, DevYearOfPlenty, DevMonopoly} {
			if p.playableIndex(kind, g.Turn) >= 0 {
				me.Playable = append(me.Playable, kind)
			}
		}
	}

	switch g.Phase {
	case PhaseInitialSettlement:
		me.Settlements = g.LegalSettlements(p.Seat)
	case PhaseInitialRoad, PhaseRoadBuilding:
		me.Roads = g.LegalRoads(p.Seat)
		me.FreeRoads = g.FreeRoads
	case PhaseMain:
		if g.Rolled {
			me.Settlements = g.LegalSettlements(p.Seat)
			me.Roads = g.LegalRoads(p.Seat)
			me.Cities = g.LegalCities(p.Seat)
		}
	case PhaseRobberMove:
		for i, t := range g.Map.Tiles {
			if t.Kind.IsLand() && i != g.Robber {
				me.RobberTiles = append(me.RobberTiles, i)
			}
		}
	case PhaseRobberSteal:
		me.StealTargets = g.StealTargets
	case PhaseYearOfPlenty:
		me.PlentyLeft = g.PlentyLeft
	}
	return me
}
