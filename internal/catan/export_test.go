package catan

// LoadDice queues rolls that are used before the random source.
func (g *Game) LoadDice(rolls ...[2]int) {
	g.loaded = append(g.loaded, rolls...)
}

// SetCurrent hands the turn to seat.
func (g *Game) SetCurrent(seat int) {
	g.current = g.order(seat)
}

// RefreshAwards recomputes both awards outside an action.
func (g *Game) RefreshAwards() {
	g.updateAwards()
}
