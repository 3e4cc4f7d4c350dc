package catan

import "time"

// Config holds rule knobs for one game.
type Config struct {
	VictoryPoints  int           // points needed to win
	DiscardLimit   int           // hands above this discard on a 7
	BankStock      int           // starting count of each resource
	MaxSettlements int           // settlement pieces per seat
	MaxCities      int           // city pieces per seat
	MaxRoads       int           // road pieces per seat
	LongestRoadMin int           // shortest road that earns the award
	LargestArmyMin int           // fewest knights that earn the award
	RollDisplay    time.Duration // how long snapshots report the dice as rolling
	Profile        *Profile      // overrides the player-count profile
	Map            *Map          // fixed layout, skips generation
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		VictoryPoints:  10,
		DiscardLimit:   7,
		BankStock:      19,
		MaxSettlements: 5,
		MaxCities:      4,
		MaxRoads:       15,
		LongestRoadMin: 5,
		LargestArmyMin: 3,
		RollDisplay:    1500 * time.Millisecond,
	}
}
