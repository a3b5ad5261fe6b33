package deal

import (
	"github.com/lonng/mjdeal/internal/errutil"
	"github.com/lonng/mjdeal/internal/tile"
	"github.com/lonng/mjdeal/pkg/constant"
	"github.com/pkg/errors"
)

// NewDeck builds the 144 tiles in generation order: each numbered suit
// rank-ascending with the four copies of a rank together, then four
// rounds of winds, four rounds of dragons, the flowers and the seasons.
func NewDeck() tile.Tiles {
	deck := make(tile.Tiles, 0, constant.WallSize)

	for _, kind := range []tile.Kind{tile.Dots, tile.Bamboo, tile.Characters} {
		for rank := tile.MinRank; rank <= tile.MaxRank; rank++ {
			t := tile.MustSuited(kind, rank)
			for i := 0; i < tile.Copies(t); i++ {
				deck = append(deck, t)
			}
		}
	}

	for i := 0; i < tile.Copies(tile.NewWind(tile.East)); i++ {
		for w := tile.East; w <= tile.North; w++ {
			deck = append(deck, tile.NewWind(w))
		}
	}
	for i := 0; i < tile.Copies(tile.NewDragon(tile.Red)); i++ {
		for d := tile.Red; d <= tile.White; d++ {
			deck = append(deck, tile.NewDragon(d))
		}
	}
	for f := tile.Plum; f <= tile.BambooFlower; f++ {
		deck = append(deck, tile.NewFlower(f))
	}
	for s := tile.Spring; s <= tile.Winter; s++ {
		deck = append(deck, tile.NewSeason(s))
	}

	if err := VerifyDeck(deck); err != nil {
		panic(err)
	}
	return deck
}

// VerifyDeck checks that tiles hold exactly one full set.
func VerifyDeck(tiles tile.Tiles) error {
	if len(tiles) != constant.WallSize {
		return errors.Wrapf(errutil.ErrDeckComposition, "expect %d tiles, got %d", constant.WallSize, len(tiles))
	}

	ms := tile.NewStats(tiles)
	if ms.Total() != len(tiles) {
		return errors.Wrapf(errutil.ErrDeckComposition, "%d illegal tiles", len(tiles)-ms.Total())
	}
	for _, t := range tile.All() {
		if got, want := ms.Count(t), tile.Copies(t); got != want {
			return errors.Wrapf(errutil.ErrDeckComposition, "%v: expect %d copies, got %d", t, want, got)
		}
	}
	return nil
}
