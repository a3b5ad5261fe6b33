package render

import (
	"encoding/json"
	"io"

	"github.com/lonng/mjdeal/internal/deal"
	"github.com/lonng/mjdeal/protocol"
	"github.com/pkg/errors"
)

type jsonRenderer struct {
	opts Options
}

func (r *jsonRenderer) Render(w io.Writer, results []*deal.Result) error {
	batch := protocol.DealBatch{Seed: r.opts.Seed, Deals: make([]protocol.Deal, 0, len(results))}
	for _, res := range results {
		batch.Deals = append(batch.Deals, toProtocol(res, r.opts.Sort))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(batch), "render json")
}

func toProtocol(res *deal.Result, sorted bool) protocol.Deal {
	d := protocol.Deal{
		ID:        res.ID,
		Dice:      res.Dice[:],
		DiceSum:   res.Dice.Sum(),
		Dealer:    int(res.Dealer),
		Cut:       res.Cut,
		Remaining: res.Wall.Remaining(),
	}
	for s := deal.SeatEast; s <= deal.SeatNorth; s++ {
		h := hand(res, s, sorted)
		d.Hands = append(d.Hands, protocol.Hand{
			Seat:     int(s),
			Wind:     s.String(),
			IsDealer: s == res.Dealer,
			Tiles:    h.Labels(),
			Indexes:  h.Indexes(),
		})
	}
	return d
}
