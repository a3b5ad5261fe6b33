package deal

import (
	"github.com/lonng/mjdeal/internal/dice"
	"github.com/lonng/mjdeal/internal/tile"
	"github.com/lonng/mjdeal/pkg/constant"
	"github.com/pborman/uuid"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "deal")

// Result is one finished deal.
type Result struct {
	ID     string
	Dice   dice.Dice
	Dealer Seat
	Cut    int
	Hands  [constant.SeatCount]tile.Tiles
	Wall   *Wall
}

// Hand returns the tiles held by seat.
func (r *Result) Hand(seat Seat) tile.Tiles {
	return r.Hands[seat]
}

// Engine runs the shuffle, roll, cut and deal pipeline on one source.
// An Engine is not safe for concurrent use because its Source is not.
type Engine struct {
	src   Source
	phase constant.Phase
}

func NewEngine(src Source) *Engine {
	return &Engine{src: src}
}

// Phase returns the phase the last deal reached.
func (e *Engine) Phase() constant.Phase {
	return e.phase
}

// Deal builds and shuffles a fresh deck, rolls the dice, cuts the wall
// and deals 14 tiles to the dealer and 13 to every other seat.
func (e *Engine) Deal() *Result {
	id := uuid.New()
	logger := logger.WithField("deal", id)
	setPhase := func(p constant.Phase) {
		e.phase = p
		logger.Debugf("phase=%s", p)
	}

	deck := NewDeck()
	setPhase(constant.PhaseBuilt)

	e.src.Shuffle(len(deck), deck.Swap)
	setPhase(constant.PhaseShuffled)

	d := dice.Roll(e.src)
	dealer := Seat(d.Dealer())
	cut := dice.Cut(int(dealer), d.Sum())
	setPhase(constant.PhaseCutting)
	logger.Debugf("dice=[%s] sum=%d dealer=%v cut=%d", d, d.Sum(), dealer, cut)

	wall := NewWall(deck, cut)
	hands := distribute(wall, dealer, setPhase)
	setPhase(constant.PhaseComplete)

	return &Result{
		ID:     id,
		Dice:   d,
		Dealer: dealer,
		Cut:    cut,
		Hands:  hands,
		Wall:   wall,
	}
}

// distribute deals three rounds of four tiles per seat in rotation order,
// then one more tile per seat, two for the dealer.
func distribute(wall *Wall, dealer Seat, phase func(constant.Phase)) [constant.SeatCount]tile.Tiles {
	var hands [constant.SeatCount]tile.Tiles
	for i := range hands {
		hands[i] = make(tile.Tiles, 0, constant.HandSize+constant.DealerBonus)
	}

	rotation := Rotation(dealer)

	phase(constant.PhaseDealing)
	for r := 0; r < constant.DealRounds; r++ {
		for _, seat := range rotation {
			hands[seat] = append(hands[seat], wall.DrawN(constant.TilesPerGrab)...)
		}
	}

	phase(constant.PhaseFinalPass)
	for _, seat := range rotation {
		n := 1
		if seat == dealer {
			n += constant.DealerBonus
		}
		hands[seat] = append(hands[seat], wall.DrawN(n)...)
	}

	return hands
}

// DealHands runs one deal on src and returns the dealer, the dice and the
// four hands indexed by seat.
func DealHands(src Source) (Seat, dice.Dice, [constant.SeatCount]tile.Tiles) {
	r := NewEngine(src).Deal()
	return r.Dealer, r.Dice, r.Hands
}
