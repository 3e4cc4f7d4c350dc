package catan

// Player is one seat's ledger.
type Player struct {
	Seat      int       `json:"seat"`
	Resources Hand      `json:"resources"`
	Cards     []DevCard `json:"cards"`

	Played        [NumDevKinds]int `json:"played"`
	KnightsPlayed int              `json:"knights_played"`

	Settlements int `json:"settlements"`
	Cities      int `json:"cities"`
	Roads       int `json:"roads"`

	// Per-turn state
	DiscardOwed int `json:"-"`
}

func newPlayer(seat int) *Player {
	return &Player{Seat: seat}
}

// CardCount returns how many cards of kind the seat holds.
func (p *Player) CardCount(kind DevKind) int {
	n := 0
	for _, c := range p.Cards {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// CardCounts returns held cards grouped by kind.
func (p *Player) CardCounts() [NumDevKinds]int {
	var out [NumDevKinds]int
	for _, c := range p.Cards {
		out[c.Kind]++
	}
	return out
}

// playableIndex returns the index of a card of kind bought before turn.
func (p *Player) playableIndex(kind DevKind, turn int) int {
	for i, c := range p.Cards {
		if c.Kind == kind && c.BoughtTurn < turn {
			return i
		}
	}
	return -1
}

func (p *Player) removeCard(i int) DevCard {
	c := p.Cards[i]
	p.Cards = append(p.Cards[:i], p.Cards[i+1:]...)
	return c
}
