package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lonng/mjdeal/internal/deal"
	"github.com/lonng/mjdeal/internal/tile"
	"github.com/pkg/errors"
)

type textRenderer struct {
	opts Options
}

func (r *textRenderer) Render(w io.Writer, results []*deal.Result) error {
	bw := bufio.NewWriter(w)
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(bw, "----")
		}
		r.deal(bw, res)
	}
	return errors.Wrap(bw.Flush(), "render text")
}

func (r *textRenderer) deal(w io.Writer, res *deal.Result) {
	fmt.Fprintf(w, "Deal: %s\n", res.ID)
	fmt.Fprintf(w, "Dice rolls: %s\n", res.Dice)
	fmt.Fprintf(w, "Dice sum: %d\n\n", res.Dice.Sum())
	fmt.Fprintf(w, "Dealer: %d (%v)\n", res.Dealer, res.Dealer)
	fmt.Fprintf(w, "Cut: %d\n\n", res.Cut)

	for s := deal.SeatEast; s <= deal.SeatNorth; s++ {
		fmt.Fprintf(w, "Player %d hand:\n", s)
		for _, t := range hand(res, s, r.opts.Sort) {
			fmt.Fprintln(w, t)
		}
		fmt.Fprintln(w)
	}
}

func hand(res *deal.Result, seat deal.Seat, sorted bool) tile.Tiles {
	h := res.Hand(seat)
	if sorted {
		h = h.Clone()
		h.Sort()
	}
	return h
}
