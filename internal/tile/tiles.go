package tile

import (
	"sort"
	"strings"
)

// Tiles is an ordered run of tiles: a deck, a wall or a hand.
type Tiles []Tile

func (ts Tiles) Len() int           { return len(ts) }
func (ts Tiles) Swap(i, j int)      { ts[i], ts[j] = ts[j], ts[i] }
func (ts Tiles) Less(i, j int) bool { return ts[i].Index() < ts[j].Index() }

// Sort orders tiles by index. Dealing never sorts; this is for display.
func (ts Tiles) Sort() {
	sort.Stable(ts)
}

func (ts Tiles) Clone() Tiles {
	c := make(Tiles, len(ts))
	copy(c, ts)
	return c
}

func (ts Tiles) Labels() []string {
	res := make([]string, len(ts))
	for i := range ts {
		res[i] = ts[i].String()
	}
	return res
}

func (ts Tiles) Indexes() []int {
	idx := make([]int, len(ts))
	for i, t := range ts {
		idx[i] = t.Index()
	}
	return idx
}

func (ts Tiles) String() string {
	return strings.Join(ts.Labels(), ", ")
}
