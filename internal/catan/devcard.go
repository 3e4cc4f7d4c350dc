package catan

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
)

// DevKind is a development card type.
type DevKind int

const (
	DevKnight DevKind = iota
	DevRoadBuilding
	DevYearOfPlenty
	DevMonopoly
	DevVictoryPoint
)

// NumDevKinds is the number of development card types.
const NumDevKinds = 5

var devNames = map[DevKind]string{
	DevKnight:       "knight",
	DevRoadBuilding: "road_building",
	DevYearOfPlenty: "year_of_plenty",
	DevMonopoly:     "monopoly",
	DevVictoryPoint: "victory_point",
}

func (k DevKind) String() string {
	if s, ok := devNames[k]; ok {
		return s
	}
	return "unknown"
}

func (k DevKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *DevKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: card must be a string", ErrInvalidAction)
	}
	for kind, name := range devNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: unknown card %q", ErrInvalidAction, s)
}

// deckComposition is the number of each card in a fresh deck.
var deckComposition = [NumDevKinds]int{
	DevKnight:       14,
	DevRoadBuilding: 2,
	DevYearOfPlenty: 2,
	DevMonopoly:     2,
	DevVictoryPoint: 5,
}

// DeckSize is the number of cards in a fresh deck.
const DeckSize = 25

// DevDeck is a shuffled stack drawn from the end. It is never reshuffled.
type DevDeck struct {
	cards []DevKind
}

// NewDevDeck builds and shuffles a full deck with rng.
func NewDevDeck(rng *rand.Rand) *DevDeck {
	d := &DevDeck{cards: make([]DevKind, 0, DeckSize)}
	for kind, n := range deckComposition {
		for i := 0; i < n; i++ {
			d.cards = append(d.cards, DevKind(kind))
		}
	}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Draw removes the last card.
func (d *DevDeck) Draw() (DevKind, bool) {
	if len(d.cards) == 0 {
		return 0, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// Len returns the number of cards left.
func (d *DevDeck) Len() int {
	return len(d.cards)
}

// DevCard is a card in a seat's hand.
type DevCard struct {
	Kind       DevKind `json:"kind"`
	BoughtTurn int     `json:"bought_turn"`
}
