package tile

import (
	"fmt"
	"strconv"

	"github.com/lonng/mjdeal/internal/errutil"
	"github.com/pkg/errors"
)

// Kind is the tile category.
type Kind byte

const (
	Dots Kind = iota + 1
	Bamboo
	Characters
	KindWind
	KindDragon
	KindFlower
	KindSeason
)

var kindNames = [...]string{
	Dots:       "Dots",
	Bamboo:     "Bamboo",
	Characters: "Characters",
	KindWind:   "Wind",
	KindDragon: "Dragon",
	KindFlower: "Flower",
	KindSeason: "Season",
}

func (k Kind) String() string {
	if k < Dots || k > KindSeason {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsSuited reports whether the kind is a numbered suit.
func (k Kind) IsSuited() bool {
	return k >= Dots && k <= Characters
}

type Wind byte

const (
	East Wind = iota
	South
	West
	North
)

var windNames = [...]string{East: "East", South: "South", West: "West", North: "North"}

func (w Wind) String() string {
	if int(w) >= len(windNames) {
		panic(fmt.Sprintf("tile: unknown wind %d", w))
	}
	return windNames[w]
}

type Dragon byte

const (
	Red Dragon = iota
	Green
	White
)

var dragonNames = [...]string{Red: "Red", Green: "Green", White: "White"}

func (d Dragon) String() string {
	if int(d) >= len(dragonNames) {
		panic(fmt.Sprintf("tile: unknown dragon %d", d))
	}
	return dragonNames[d]
}

type Flower byte

const (
	Plum Flower = iota
	Orchid
	Chrysanthemum
	BambooFlower
)

var flowerNames = [...]string{Plum: "Plum", Orchid: "Orchid", Chrysanthemum: "Chrysanthemum", BambooFlower: "Bamboo"}

func (f Flower) String() string {
	if int(f) >= len(flowerNames) {
		panic(fmt.Sprintf("tile: unknown flower %d", f))
	}
	return flowerNames[f]
}

type Season byte

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

var seasonNames = [...]string{Spring: "Spring", Summer: "Summer", Autumn: "Autumn", Winter: "Winter"}

func (s Season) String() string {
	if int(s) >= len(seasonNames) {
		panic(fmt.Sprintf("tile: unknown season %d", s))
	}
	return seasonNames[s]
}

// Tile is an immutable tile value. Two tiles with the same kind and value
// are interchangeable; the zero Tile is not a legal tile.
type Tile struct {
	kind  Kind
	value byte // rank for suited tiles, enumerant for the rest
}

const (
	MinRank = 1
	MaxRank = 9
)

// NewSuited creates a Dots, Bamboo or Characters tile.
func NewSuited(kind Kind, rank int) (Tile, error) {
	if !kind.IsSuited() {
		return Tile{}, errors.Wrapf(errutil.ErrInvalidTileValue, "%v is not a numbered suit", kind)
	}
	if rank < MinRank || rank > MaxRank {
		return Tile{}, &errutil.RankError{Suit: kind.String(), Rank: rank}
	}
	return Tile{kind: kind, value: byte(rank)}, nil
}

// MustSuited is like NewSuited but panics on an illegal rank.
func MustSuited(kind Kind, rank int) Tile {
	t, err := NewSuited(kind, rank)
	if err != nil {
		panic(err)
	}
	return t
}

func NewWind(w Wind) Tile         { return Tile{kind: KindWind, value: byte(w)} }
func NewDragon(d Dragon) Tile     { return Tile{kind: KindDragon, value: byte(d)} }
func NewFlower(f Flower) Tile     { return Tile{kind: KindFlower, value: byte(f)} }
func NewSeason(s Season) Tile     { return Tile{kind: KindSeason, value: byte(s)} }
func (t Tile) Kind() Kind         { return t.kind }
func (t Tile) IsSuited() bool     { return t.kind.IsSuited() }
func (t Tile) IsHonor() bool      { return t.kind == KindWind || t.kind == KindDragon }
func (t Tile) IsBonus() bool      { return t.kind == KindFlower || t.kind == KindSeason }
func (t Tile) Wind() Wind         { return Wind(t.value) }
func (t Tile) Dragon() Dragon     { return Dragon(t.value) }
func (t Tile) Flower() Flower     { return Flower(t.value) }
func (t Tile) Season() Season     { return Season(t.value) }
func (t Tile) Equals(o Tile) bool { return t == o }

// IsValid reports whether t is a real tile: a known kind with a value in
// range for that kind.
func (t Tile) IsValid() bool {
	switch t.kind {
	case Dots, Bamboo, Characters:
		return t.value >= MinRank && t.value <= MaxRank
	case KindWind:
		return int(t.value) < len(windNames)
	case KindDragon:
		return int(t.value) < len(dragonNames)
	case KindFlower:
		return int(t.value) < len(flowerNames)
	case KindSeason:
		return int(t.value) < len(seasonNames)
	}
	return false
}

// Rank returns the rank of a suited tile, 0 otherwise.
func (t Tile) Rank() int {
	if !t.IsSuited() {
		return 0
	}
	return int(t.value)
}

// String returns the display label, e.g. "Dots 5", "Red Dragon", "Plum Flower".
func (t Tile) String() string {
	switch t.kind {
	case Dots, Bamboo, Characters:
		return t.kind.String() + " " + strconv.Itoa(int(t.value))
	case KindWind:
		return t.Wind().String() + " Wind"
	case KindDragon:
		return t.Dragon().String() + " Dragon"
	case KindFlower:
		return t.Flower().String() + " Flower"
	case KindSeason:
		return t.Season().String() + " Season"
	}
	panic(fmt.Sprintf("tile: unknown kind %d", t.kind))
}

func (t Tile) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
