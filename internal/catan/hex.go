package catan

import "math"

// HexCoord is an axial hex position. The third cube coordinate is -q-r.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// hexDirections are the six axial neighbor offsets.
var hexDirections = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent coordinates.
func (h HexCoord) Neighbors() [6]HexCoord {
	var out [6]HexCoord
	for i, d := range hexDirections {
		out[i] = HexCoord{Q: h.Q + d.Q, R: h.R + d.R}
	}
	return out
}

// HexDistance is the number of steps between two hexes.
func HexDistance(a, b HexCoord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return max(dq, dr, ds)
}

// hexesWithin enumerates every coordinate at distance <= radius from the
// origin, row by row.
func hexesWithin(radius int) []HexCoord {
	out := make([]HexCoord, 0, HexCount(radius))
	for r := -radius; r <= radius; r++ {
		for q := -radius; q <= radius; q++ {
			c := HexCoord{Q: q, R: r}
			if HexDistance(c, HexCoord{}) <= radius {
				out = append(out, c)
			}
		}
	}
	return out
}

// HexCount is the number of hexes in a hexagon of the given radius.
func HexCount(radius int) int {
	return 3*radius*(radius+1) + 1
}

// Center returns the pixel center of a pointy-top hex with unit size.
func (h HexCoord) Center() (x, y float64) {
	x = math.Sqrt(3) * (float64(h.Q) + float64(h.R)/2)
	y = 1.5 * float64(h.R)
	return x, y
}

// Corner returns corner i (0..5) of a pointy-top hex with unit size.
// Corner 0 is at -30 degrees; corners proceed clockwise in screen space.
func (h HexCoord) Corner(i int) (x, y float64) {
	cx, cy := h.Center()
	angle := math.Pi / 180 * float64(60*i-30)
	return cx + math.Cos(angle), cy + math.Sin(angle)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
