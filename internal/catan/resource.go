package catan

import (
	"encoding/json"
	"fmt"
)

// Resource is one of the five tradeable goods.
type Resource int

const (
	Wood Resource = iota
	Brick
	Sheep
	Wheat
	Ore
)

// NumResources is the number of resource kinds.
const NumResources = 5

var resourceNames = map[Resource]string{
	Wood:  "wood",
	Brick: "brick",
	Sheep: "sheep",
	Wheat: "wheat",
	Ore:   "ore",
}

func (r Resource) String() string {
	if s, ok := resourceNames[r]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether r names one of the five resources.
func (r Resource) Valid() bool {
	return r >= Wood && r <= Ore
}

// ParseResource maps a resource name to its value.
func ParseResource(s string) (Resource, error) {
	for r, name := range resourceNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown resource %q", ErrInvalidAction, s)
}

func (r Resource) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Resource) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: resource must be a string", ErrInvalidAction)
	}
	parsed, err := ParseResource(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// AllResources returns the resources in canonical order.
func AllResources() []Resource {
	return []Resource{Wood, Brick, Sheep, Wheat, Ore}
}

// Hand is a count per resource. Counts never go negative.
type Hand [NumResources]int

// Total returns the number of cards in the hand.
func (h Hand) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Covers reports whether h holds at least cost of every resource.
func (h Hand) Covers(cost Hand) bool {
	for i := range h {
		if h[i] < cost[i] {
			return false
		}
	}
	return true
}

// Add adds other into h.
func (h *Hand) Add(other Hand) {
	for i := range h {
		h[i] += other[i]
	}
}

// Sub removes other from h. Callers check Covers first.
func (h *Hand) Sub(other Hand) {
	for i := range h {
		h[i] -= other[i]
	}
}

// Nth returns the resource of the n-th card when the hand is laid out in
// canonical order. Used to pick a uniformly random card.
func (h Hand) Nth(n int) (Resource, bool) {
	for _, r := range AllResources() {
		if n < h[r] {
			return r, true
		}
		n -= h[r]
	}
	return 0, false
}

// MarshalJSON renders the hand keyed by resource name.
func (h Hand) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, NumResources)
	for _, r := range AllResources() {
		m[r.String()] = h[r]
	}
	return json.Marshal(m)
}

// Building costs.
var (
	CostRoad       = Hand{Wood: 1, Brick: 1}
	CostSettlement = Hand{Wood: 1, Brick: 1, Sheep: 1, Wheat: 1}
	CostCity       = Hand{Wheat: 2, Ore: 3}
	CostDevCard    = Hand{Sheep: 1, Wheat: 1, Ore: 1}
)

// single returns a hand holding n of one resource.
func single(r Resource, n int) Hand {
	var h Hand
	h[r] = n
	return h
}
