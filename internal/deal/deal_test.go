package deal

import (
	"reflect"
	"testing"

	"github.com/lonng/mjdeal/internal/dice"
	"github.com/lonng/mjdeal/internal/tile"
	"github.com/lonng/mjdeal/pkg/constant"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// stubSource leaves the deck in generation order and rolls fixed dice.
type stubSource struct {
	rolls []int
}

func (s *stubSource) Shuffle(n int, swap func(i, j int)) {}

func (s *stubSource) Intn(n int) int {
	v := s.rolls[0]
	s.rolls = s.rolls[1:]
	return v - 1
}

func repeat(t tile.Tile, n int) tile.Tiles {
	ts := make(tile.Tiles, n)
	for i := range ts {
		ts[i] = t
	}
	return ts
}

func concat(parts ...tile.Tiles) tile.Tiles {
	var ts tile.Tiles
	for _, p := range parts {
		ts = append(ts, p...)
	}
	return ts
}

func TestEngine_DealExample(t *testing.T) {
	e := NewEngine(&stubSource{rolls: []int{3, 4, 5}})
	r := e.Deal()

	if r.Dice != (dice.Dice{3, 4, 5}) || r.Dice.Sum() != 12 {
		t.Fatalf("unexpected dice: %v", r.Dice)
	}
	if r.Dealer != SeatNorth {
		t.Fatalf("expect dealer 3, got: %d", r.Dealer)
	}
	if r.Cut != 132 || r.Wall.Cut() != 132 {
		t.Fatalf("expect cut 132, got: %d", r.Cut)
	}
	if e.Phase() != constant.PhaseComplete {
		t.Fatalf("expect complete, got: %v", e.Phase())
	}

	dots := func(rank int) tile.Tiles { return repeat(tile.MustSuited(tile.Dots, rank), 4) }
	b1 := tile.MustSuited(tile.Bamboo, 1)

	// rotation for dealer 3: seats 3, 2, 1, 0; drawing starts at 132
	// (White Dragon) and wraps after 143.
	expect := [4]tile.Tiles{
		SeatEast:  concat(dots(1), dots(5), dots(9), tile.Tiles{tile.MustSuited(tile.Bamboo, 2)}),
		SeatSouth: concat(tile.Tiles{tile.NewSeason(tile.Spring), tile.NewSeason(tile.Summer), tile.NewSeason(tile.Autumn), tile.NewSeason(tile.Winter)}, dots(4), dots(8), tile.Tiles{b1}),
		SeatWest:  concat(tile.Tiles{tile.NewFlower(tile.Plum), tile.NewFlower(tile.Orchid), tile.NewFlower(tile.Chrysanthemum), tile.NewFlower(tile.BambooFlower)}, dots(3), dots(7), tile.Tiles{b1}),
		SeatNorth: concat(tile.Tiles{tile.NewDragon(tile.White), tile.NewDragon(tile.Red), tile.NewDragon(tile.Green), tile.NewDragon(tile.White)}, dots(2), dots(6), tile.Tiles{b1, b1}),
	}
	for seat := SeatEast; seat <= SeatNorth; seat++ {
		if !reflect.DeepEqual(r.Hand(seat), expect[seat]) {
			t.Fatalf("seat %d: expect: %v, got: %v", seat, expect[seat], r.Hand(seat))
		}
	}

	if r.Wall.Drawn() != 53 || r.Wall.Remaining() != 91 || r.Wall.Position() != 41 {
		t.Fatalf("drawn=%d remaining=%d position=%d", r.Wall.Drawn(), r.Wall.Remaining(), r.Wall.Position())
	}
}

func TestEngine_DealerGetsFourteen(t *testing.T) {
	// covers every dealer seat
	for _, rolls := range [][]int{{1, 1, 2}, {1, 1, 3}, {1, 2, 3}, {2, 2, 3}, {1, 1, 1}, {6, 6, 6}} {
		r := NewEngine(&stubSource{rolls: rolls}).Deal()
		for seat, hand := range r.Hands {
			want := constant.HandSize
			if Seat(seat) == r.Dealer {
				want++
			}
			if len(hand) != want {
				t.Fatalf("rolls %v dealer %d: seat %d holds %d tiles", rolls, r.Dealer, seat, len(hand))
			}
		}
	}
}

func TestEngine_Deal(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		r := NewEngine(NewSource(seed)).Deal()

		if r.Dealer != Seat((r.Dice.Sum()-1)%4) {
			t.Fatalf("seed %d: dice %v dealer %d", seed, r.Dice, r.Dealer)
		}
		if r.Cut != dice.Cut(int(r.Dealer), r.Dice.Sum()) {
			t.Fatalf("seed %d: cut %d", seed, r.Cut)
		}

		fourteen, total := 0, 0
		for seat, hand := range r.Hands {
			total += len(hand)
			switch len(hand) {
			case 14:
				fourteen++
				if Seat(seat) != r.Dealer {
					t.Fatalf("seed %d: seat %d holds 14 but dealer is %d", seed, seat, r.Dealer)
				}
			case 13:
			default:
				t.Fatalf("seed %d: seat %d holds %d tiles", seed, seat, len(hand))
			}
		}
		if fourteen != 1 || total != 53 {
			t.Fatalf("seed %d: fourteen=%d total=%d", seed, fourteen, total)
		}

		// hands plus the rest of the wall are still one full set
		if err := VerifyDeck(concat(r.Hands[0], r.Hands[1], r.Hands[2], r.Hands[3], r.Wall.Rest())); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
	}
}

func TestEngine_DealLogsOwnID(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	level := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	defer log.SetLevel(level)

	e := NewEngine(NewSource(3))
	first := e.Deal()
	firstEntries := len(hook.AllEntries())
	second := e.Deal()

	entries := hook.AllEntries()
	if firstEntries == 0 || len(entries) != 2*firstEntries {
		t.Fatalf("expect the same entry count per deal, got: %d then %d", firstEntries, len(entries)-firstEntries)
	}
	for i, entry := range entries {
		want := first.ID
		if i >= firstEntries {
			want = second.ID
		}
		if entry.Data["deal"] != want {
			t.Fatalf("entry %d %q: expect deal %s, got: %v", i, entry.Message, want, entry.Data["deal"])
		}
	}
}

func TestEngine_Deterministic(t *testing.T) {
	a := NewEngine(NewSource(20170819)).Deal()
	b := NewEngine(NewSource(20170819)).Deal()

	if a.ID == b.ID {
		t.Fatal("two deals share an id")
	}
	if a.Dice != b.Dice || a.Dealer != b.Dealer || a.Cut != b.Cut || !reflect.DeepEqual(a.Hands, b.Hands) {
		t.Fatalf("same seed, different deals: %v/%v %v/%v", a.Dice, b.Dice, a.Hands, b.Hands)
	}

	s1, d1, h1 := DealHands(&stubSource{rolls: []int{6, 2, 1}})
	s2, d2, h2 := DealHands(&stubSource{rolls: []int{6, 2, 1}})
	if s1 != s2 || d1 != d2 || !reflect.DeepEqual(h1, h2) {
		t.Fatal("stubbed deals differ")
	}
}

func TestRotation(t *testing.T) {
	cases := map[Seat][4]Seat{
		SeatEast:  {0, 3, 2, 1},
		SeatSouth: {1, 0, 3, 2},
		SeatWest:  {2, 1, 0, 3},
		SeatNorth: {3, 2, 1, 0},
	}
	for dealer, want := range cases {
		if got := Rotation(dealer); got != want {
			t.Fatalf("dealer %d: expect: %v, got: %v", dealer, want, got)
		}
	}
}

func TestSeat_String(t *testing.T) {
	if SeatEast.String() != "East" || SeatNorth.String() != "North" || Seat(5).String() != "Seat(5)" {
		t.Fatalf("unexpected seat labels: %v %v %v", SeatEast, SeatNorth, Seat(5))
	}
}

func TestBatch(t *testing.T) {
	rs, seed := Batch(16, 42)
	if seed != 42 {
		t.Fatalf("expect seed 42, got: %d", seed)
	}
	if len(rs) != 16 {
		t.Fatalf("expect 16 results, got: %d", len(rs))
	}
	for i, r := range rs {
		if r == nil {
			t.Fatalf("deal %d missing", i)
		}
		want := NewEngine(NewSource(42 + int64(i))).Deal()
		if r.Dice != want.Dice || !reflect.DeepEqual(r.Hands, want.Hands) {
			t.Fatalf("deal %d does not match its own seed", i)
		}
	}
	if rs, _ := Batch(0, 1); rs != nil {
		t.Fatal("expect no results for count 0")
	}
}

func TestBatch_ReportsClockSeed(t *testing.T) {
	rs, seed := Batch(4, 0)
	if seed == 0 {
		t.Fatal("expect the clock seed to be reported")
	}
	again, _ := Batch(4, seed)
	for i := range rs {
		if rs[i].Dice != again[i].Dice || !reflect.DeepEqual(rs[i].Hands, again[i].Hands) {
			t.Fatalf("deal %d cannot be replayed from seed %d", i, seed)
		}
	}
}

func TestResolveSeed(t *testing.T) {
	if s := ResolveSeed(42); s != 42 {
		t.Fatalf("expect: 42, got: %d", s)
	}
	if s := ResolveSeed(0); s == 0 {
		t.Fatal("expect a non-zero seed from the clock")
	}
}

func BenchmarkEngine_Deal(b *testing.B) {
	e := NewEngine(NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Deal()
	}
}
