package protocol

// Hand is one seat's tiles in the order they were dealt.
type Hand struct {
	Seat     int      `json:"seat"`
	Wind     string   `json:"wind"`
	IsDealer bool     `json:"isDealer"`
	Tiles    []string `json:"tiles"`
	Indexes  []int    `json:"mjs"`
}

type Deal struct {
	ID        string `json:"id"`
	Dice      []int  `json:"dice"`
	DiceSum   int    `json:"diceSum"`
	Dealer    int    `json:"dealer"`
	Cut       int    `json:"cut"`
	Remaining int    `json:"remaining"`
	Hands     []Hand `json:"hands"`
}

type DealBatch struct {
	Seed  int64  `json:"seed,omitempty"`
	Deals []Deal `json:"deals"`
}
