package tile

import (
	"github.com/lonng/mjdeal/internal/errutil"
	"github.com/pkg/errors"
)

// 1-9:   Dots
// 11-19: Bamboo
// 21-29: Characters
// 31-34: Winds
// 41-43: Dragons
// 51-54: Flowers
// 61-64: Seasons
const MaxIndex = 64

const IllegalIndex = -1

const (
	suitedCopies = 4
	honorCopies  = 4
	bonusCopies  = 1
)

// Index returns the compact index of the tile, IllegalIndex for the zero Tile.
func (t Tile) Index() int {
	if !t.IsValid() {
		return IllegalIndex
	}
	base := (int(t.kind) - 1) * 10
	if t.IsSuited() {
		return base + int(t.value)
	}
	return base + int(t.value) + 1
}

// FromIndex is the inverse of Tile.Index.
func FromIndex(idx int) (Tile, error) {
	if idx <= 0 || idx > MaxIndex || idx%10 == 0 {
		return Tile{}, errors.Wrapf(errutil.ErrInvalidTileValue, "illegal tile index: %d", idx)
	}

	kind, v := Kind(idx/10+1), idx%10
	switch kind {
	case Dots, Bamboo, Characters:
		return NewSuited(kind, v)
	case KindWind:
		if v <= len(windNames) {
			return NewWind(Wind(v - 1)), nil
		}
	case KindDragon:
		if v <= len(dragonNames) {
			return NewDragon(Dragon(v - 1)), nil
		}
	case KindFlower:
		if v <= len(flowerNames) {
			return NewFlower(Flower(v - 1)), nil
		}
	case KindSeason:
		if v <= len(seasonNames) {
			return NewSeason(Season(v - 1)), nil
		}
	}
	return Tile{}, errors.Wrapf(errutil.ErrInvalidTileValue, "illegal tile index: %d", idx)
}

// Copies returns how many copies of t a full set holds.
func Copies(t Tile) int {
	switch {
	case !t.IsValid():
		return 0
	case t.IsSuited():
		return suitedCopies
	case t.IsHonor():
		return honorCopies
	case t.IsBonus():
		return bonusCopies
	}
	return 0
}

// All returns one of every distinct tile: suits rank-ascending, then
// winds, dragons, flowers and seasons.
func All() Tiles {
	all := make(Tiles, 0, 42)
	for _, kind := range []Kind{Dots, Bamboo, Characters} {
		for rank := MinRank; rank <= MaxRank; rank++ {
			all = append(all, MustSuited(kind, rank))
		}
	}
	for w := East; w <= North; w++ {
		all = append(all, NewWind(w))
	}
	for d := Red; d <= White; d++ {
		all = append(all, NewDragon(d))
	}
	for f := Plum; f <= BambooFlower; f++ {
		all = append(all, NewFlower(f))
	}
	for s := Spring; s <= Winter; s++ {
		all = append(all, NewSeason(s))
	}
	return all
}
