package catan

import (
	"fmt"
	"math/rand/v2"
)

// TileKind is the terrain printed on a hex.
type TileKind int

const (
	TileWood TileKind = iota
	TileBrick
	TileSheep
	TileWheat
	TileOre
	TileDesert
	TileWater
	TileGold
	TileVolcano
)

var tileKindNames = map[TileKind]string{
	TileWood:    "wood",
	TileBrick:   "brick",
	TileSheep:   "sheep",
	TileWheat:   "wheat",
	TileOre:     "ore",
	TileDesert:  "desert",
	TileWater:   "water",
	TileGold:    "gold",
	TileVolcano: "volcano",
}

func (k TileKind) String() string {
	if s, ok := tileKindNames[k]; ok {
		return s
	}
	return "unknown"
}

func (k TileKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Produces returns the resource a tile yields when its number is rolled.
// Gold yields wheat.
func (k TileKind) Produces() (Resource, bool) {
	switch k {
	case TileWood:
		return Wood, true
	case TileBrick:
		return Brick, true
	case TileSheep:
		return Sheep, true
	case TileWheat, TileGold:
		return Wheat, true
	case TileOre:
		return Ore, true
	default:
		return 0, false
	}
}

// IsLand reports whether buildings can touch the tile.
func (k TileKind) IsLand() bool {
	return k != TileWater
}

// Tile is one generated hex. Number is 0 when the tile has no token.
type Tile struct {
	Coord  HexCoord `json:"coord"`
	Kind   TileKind `json:"kind"`
	Number int      `json:"number,omitempty"`
}

// PortKind is the good a harbor discounts, or PortAny for 3:1.
type PortKind int

const (
	PortAny PortKind = iota
	PortWood
	PortBrick
	PortSheep
	PortWheat
	PortOre
)

func (k PortKind) String() string {
	if k == PortAny {
		return "any"
	}
	if r, ok := k.Resource(); ok {
		return r.String()
	}
	return "unknown"
}

func (k PortKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Resource returns the discounted resource of a 2:1 port.
func (k PortKind) Resource() (Resource, bool) {
	if k < PortWood || k > PortOre {
		return 0, false
	}
	return Resource(k - PortWood), true
}

// Port sits on a water tile next to land.
type Port struct {
	Coord HexCoord `json:"coord"`
	Kind  PortKind `json:"kind"`
}

// Profile controls the shape of a generated map.
type Profile struct {
	Name             string
	Radius           int     // board radius, water included
	InnerRadius      int     // mainland radius when WaterRing is set
	WaterRing        bool    // tiles beyond InnerRadius start as water
	Islands          int     // islands carved out of the water ring
	IslandRadius     int     // radius of each island
	Ports            int     // harbors placed on coastal water
	ExtraWaterChance float64 // chance a mainland edge tile becomes water
	Gold             int
	Volcano          int
}

// Expansion profiles.
var (
	ProfileBase = Profile{
		Name: "base", Radius: 3, InnerRadius: 2, WaterRing: true, Ports: 9,
	}
	ProfileExtended = Profile{
		Name: "extended", Radius: 4, InnerRadius: 3, WaterRing: true, Ports: 11,
		ExtraWaterChance: 0.08,
	}
	ProfileSeafarers = Profile{
		Name: "seafarers", Radius: 6, InnerRadius: 3, WaterRing: true,
		Islands: 2, IslandRadius: 1, Ports: 12, ExtraWaterChance: 0.08, Gold: 2,
	}
	ProfileMega = Profile{
		Name: "mega", Radius: 7, InnerRadius: 4, WaterRing: true,
		Islands: 3, IslandRadius: 1, Ports: 15, ExtraWaterChance: 0.1, Gold: 2, Volcano: 1,
	}
)

// ProfileFor picks the expansion profile for a player count.
func ProfileFor(players int) (Profile, error) {
	switch {
	case players >= 2 && players <= 4:
		return ProfileBase, nil
	case players == 5 || players == 6:
		return ProfileExtended, nil
	case players == 7:
		return ProfileSeafarers, nil
	case players == 8:
		return ProfileMega, nil
	default:
		return Profile{}, fmt.Errorf("%w: %d players", ErrBadSeat, players)
	}
}

// baseNumbers is one full set of production tokens.
var baseNumbers = []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

// goldNumbers is cycled over gold tiles.
var goldNumbers = []int{2, 12, 3, 11}

// portPool is sampled with replacement; any is overrepresented.
var portPool = []PortKind{PortAny, PortAny, PortAny, PortAny, PortWood, PortBrick, PortSheep, PortWheat, PortOre}

// Map is a generated board layout.
type Map struct {
	Profile Profile `json:"-"`
	Tiles   []Tile  `json:"tiles"`
	Ports   []Port  `json:"ports"`

	index map[HexCoord]int
}

// NewMap wraps a fixed tile and port layout.
func NewMap(tiles []Tile, ports []Port) *Map {
	m := &Map{Tiles: tiles, Ports: ports}
	m.reindex()
	return m
}

func (m *Map) reindex() {
	m.index = make(map[HexCoord]int, len(m.Tiles))
	for i, t := range m.Tiles {
		m.index[t.Coord] = i
	}
}

// TileAt returns the index of the tile at c.
func (m *Map) TileAt(c HexCoord) (int, bool) {
	i, ok := m.index[c]
	return i, ok
}

// Desert returns the index of the first desert tile, or -1.
func (m *Map) Desert() int {
	for i, t := range m.Tiles {
		if t.Kind == TileDesert {
			return i
		}
	}
	return -1
}

// GenerateMap builds a map for the given player count using only rng.
func GenerateMap(players int, rng *rand.Rand) (*Map, error) {
	p, err := ProfileFor(players)
	if err != nil {
		return nil, err
	}
	return GenerateProfile(p, rng), nil
}

// GenerateProfile builds a map with an explicit profile.
func GenerateProfile(p Profile, rng *rand.Rand) *Map {
	coords := hexesWithin(p.Radius)
	m := &Map{Profile: p, Tiles: make([]Tile, len(coords))}
	origin := HexCoord{}

	for i, c := range coords {
		kind := TileWood
		d := HexDistance(c, origin)
		if p.WaterRing && d > p.InnerRadius {
			kind = TileWater
		} else if p.ExtraWaterChance > 0 && d == p.InnerRadius && d > 0 && rng.Float64() < p.ExtraWaterChance {
			kind = TileWater
		}
		m.Tiles[i] = Tile{Coord: c, Kind: kind}
	}
	m.reindex()

	m.carveIslands(rng)

	var land []int
	for i, t := range m.Tiles {
		if t.Kind.IsLand() {
			land = append(land, i)
		}
	}
	m.assignKinds(land, rng)
	m.assignNumbers(land, rng)
	m.placePorts(rng)
	return m
}

// carveIslands turns disks of water into land around mutually distant
// centers. Candidate centers lie far enough out that islands stay
// separated from the mainland by at least one water ring.
func (m *Map) carveIslands(rng *rand.Rand) {
	p := m.Profile
	if p.Islands <= 0 || !p.WaterRing {
		return
	}
	var candidates []HexCoord
	for _, t := range m.Tiles {
		d := HexDistance(t.Coord, HexCoord{})
		if t.Kind == TileWater && d >= p.InnerRadius+p.IslandRadius+2 {
			candidates = append(candidates, t.Coord)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var centers []HexCoord
	for _, c := range candidates {
		if len(centers) == p.Islands {
			break
		}
		far := true
		for _, other := range centers {
			if HexDistance(c, other) < 2*p.IslandRadius+2 {
				far = false
				break
			}
		}
		if far {
			centers = append(centers, c)
		}
	}

	for _, center := range centers {
		for i := range m.Tiles {
			if HexDistance(m.Tiles[i].Coord, center) <= p.IslandRadius {
				m.Tiles[i].Kind = TileWood
			}
		}
	}
}

func (m *Map) assignKinds(land []int, rng *rand.Rand) {
	if len(land) == 0 {
		return
	}
	order := append([]int(nil), land...)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	hasDesert := false
	for _, idx := range order {
		m.Tiles[idx].Kind = TileKind(rng.IntN(NumResources))
		if m.Tiles[idx].Kind == TileDesert {
			hasDesert = true
		}
	}
	// The robber needs a starting tile.
	if !hasDesert {
		m.Tiles[order[0]].Kind = TileDesert
	}

	next := 1
	for n := 0; n < m.Profile.Gold && next < len(order); n++ {
		m.Tiles[order[next]].Kind = TileGold
		next++
	}
	for n := 0; n < m.Profile.Volcano && next < len(order); n++ {
		m.Tiles[order[next]].Kind = TileVolcano
		next++
	}
}

// numberPool repeats the base token set until it covers n tiles and
// truncates it to exactly n.
func numberPool(n int) []int {
	pool := make([]int, 0, n+len(baseNumbers))
	for len(pool) < n {
		pool = append(pool, baseNumbers...)
	}
	return pool[:n]
}

func (m *Map) assignNumbers(land []int, rng *rand.Rand) {
	var eligible []int
	for _, idx := range land {
		if _, ok := m.Tiles[idx].Kind.Produces(); ok && m.Tiles[idx].Kind != TileGold {
			eligible = append(eligible, idx)
		}
	}
	pool := numberPool(len(eligible))
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	for i, idx := range eligible {
		m.Tiles[idx].Number = pool[i]
	}

	g := 0
	for _, idx := range land {
		if m.Tiles[idx].Kind == TileGold {
			m.Tiles[idx].Number = goldNumbers[g%len(goldNumbers)]
			g++
		}
	}
}

func (m *Map) placePorts(rng *rand.Rand) {
	var coastal []HexCoord
	for _, t := range m.Tiles {
		if t.Kind != TileWater {
			continue
		}
		for _, n := range t.Coord.Neighbors() {
			if idx, ok := m.index[n]; ok && m.Tiles[idx].Kind.IsLand() {
				coastal = append(coastal, t.Coord)
				break
			}
		}
	}
	rng.Shuffle(len(coastal), func(i, j int) { coastal[i], coastal[j] = coastal[j], coastal[i] })

	n := min(m.Profile.Ports, len(coastal))
	m.Ports = make([]Port, 0, n)
	for _, c := range coastal[:n] {
		m.Ports = append(m.Ports, Port{Coord: c, Kind: portPool[rng.IntN(len(portPool))]})
	}
}
