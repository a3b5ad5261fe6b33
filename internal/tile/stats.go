package tile

import (
	"bytes"
	"fmt"
)

// Stats counts tiles per index.
type Stats [MaxIndex + 1]int

func NewStats(tiles ...Tiles) *Stats {
	ms := &Stats{}
	ms.From(tiles...)
	return ms
}

func (ms *Stats) From(tiles ...Tiles) {
	for _, ts := range tiles {
		for _, t := range ts {
			if idx := t.Index(); idx != IllegalIndex {
				ms[idx]++
			}
		}
	}
}

func (ms *Stats) Count(t Tile) int {
	idx := t.Index()
	if idx == IllegalIndex {
		return 0
	}
	return ms[idx]
}

func (ms *Stats) Total() int {
	total := 0
	for _, c := range ms {
		total += c
	}
	return total
}

func (ms *Stats) String() string {
	buf := &bytes.Buffer{}

	for i, count := range ms {
		if count == 0 {
			continue
		}
		t, err := FromIndex(i)
		if err != nil {
			continue
		}
		fmt.Fprintf(buf, "%s:%d ", t, count)
	}

	return buf.String()
}
