package deal

import (
	"github.com/lonng/mjdeal/internal/errutil"
	"github.com/lonng/mjdeal/internal/tile"
	"github.com/pkg/errors"
)

// Wall is the shuffled deck seen as a ring. Drawing starts at the cut
// and wraps past the last position back to 0.
type Wall struct {
	tiles tile.Tiles
	cut   int
	pos   int
	drawn int
}

func NewWall(tiles tile.Tiles, cut int) *Wall {
	if n := len(tiles); n > 0 {
		cut %= n
		if cut < 0 {
			cut += n
		}
	} else {
		cut = 0
	}
	return &Wall{tiles: tiles, cut: cut, pos: cut}
}

func (w *Wall) Cut() int      { return w.cut }
func (w *Wall) Position() int { return w.pos }
func (w *Wall) Drawn() int    { return w.drawn }
func (w *Wall) Remaining() int {
	return len(w.tiles) - w.drawn
}

// Draw takes the tile at the current position. Every position is drawn
// at most once; drawing from an exhausted wall panics.
func (w *Wall) Draw() tile.Tile {
	if w.Remaining() <= 0 {
		panic(errors.Wrapf(errutil.ErrWallExhausted, "%d tiles drawn", w.drawn))
	}
	t := w.tiles[w.pos]
	w.pos = (w.pos + 1) % len(w.tiles)
	w.drawn++
	return t
}

func (w *Wall) DrawN(n int) tile.Tiles {
	ts := make(tile.Tiles, n)
	for i := range ts {
		ts[i] = w.Draw()
	}
	return ts
}

// Rest returns the undrawn tiles in draw order.
func (w *Wall) Rest() tile.Tiles {
	rest := make(tile.Tiles, 0, w.Remaining())
	for i, p := 0, w.pos; i < w.Remaining(); i++ {
		rest = append(rest, w.tiles[p])
		p = (p + 1) % len(w.tiles)
	}
	return rest
}
