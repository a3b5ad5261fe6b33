package dice

import (
	"fmt"

	"github.com/lonng/mjdeal/pkg/constant"
)

// Source is the randomness the dice draw from. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Dice holds the three die faces of one roll.
type Dice [constant.DiceCount]int

func Roll(src Source) Dice {
	var d Dice
	for i := range d {
		d[i] = src.Intn(constant.DiceFaces) + 1
	}
	return d
}

// Sum is in [3,18] for a legal roll.
func (d Dice) Sum() int {
	sum := 0
	for _, v := range d {
		sum += v
	}
	return sum
}

// Dealer maps the roll to the dealer seat, seat 0 being East.
func (d Dice) Dealer() int {
	return DealerFor(d.Sum())
}

func (d Dice) String() string {
	return fmt.Sprintf("%d, %d, %d", d[0], d[1], d[2])
}

func DealerFor(sum int) int {
	return (sum - 1) % constant.SeatCount
}

// Cut returns the wall position drawing starts from: the dealer's wall
// segment, then sum pairs of tiles into it.
func Cut(dealer, sum int) int {
	return (dealer*constant.SegmentSize + sum*2) % constant.WallSize
}
