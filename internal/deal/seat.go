package deal

import (
	"strconv"

	"github.com/lonng/mjdeal/internal/tile"
	"github.com/lonng/mjdeal/pkg/constant"
)

// Seat is an absolute table position, independent of who deals.
type Seat int

const (
	SeatEast Seat = iota
	SeatSouth
	SeatWest
	SeatNorth
)

// Wind returns the seat wind.
func (s Seat) Wind() tile.Wind {
	return tile.Wind(s)
}

func (s Seat) Valid() bool {
	return s >= SeatEast && s <= SeatNorth
}

func (s Seat) String() string {
	if !s.Valid() {
		return "Seat(" + strconv.Itoa(int(s)) + ")"
	}
	return s.Wind().String()
}

// dealOrder is the rotation relative to the dealer: the dealer first,
// then the seats at +3, +2 and +1.
var dealOrder = [constant.SeatCount]Seat{0, 3, 2, 1}

// Rotation returns the four seats in dealing order for the given dealer.
func Rotation(dealer Seat) [constant.SeatCount]Seat {
	var r [constant.SeatCount]Seat
	for i, off := range dealOrder {
		r[i] = (dealer + off) % constant.SeatCount
	}
	return r
}
