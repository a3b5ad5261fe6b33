package constant

// Phase is a step of the deal pipeline. A deal only moves forward.
type Phase int32

const (
	//新牌
	PhaseBuilt Phase = iota
	//洗牌
	PhaseShuffled
	//掷骰切牌
	PhaseCutting
	//发牌
	PhaseDealing
	//补牌
	PhaseFinalPass
	PhaseComplete
)

var stringify = [...]string{
	PhaseBuilt:     "built",
	PhaseShuffled:  "shuffled",
	PhaseCutting:   "cutting",
	PhaseDealing:   "dealing",
	PhaseFinalPass: "final pass",
	PhaseComplete:  "complete",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(stringify) {
		return "unknown"
	}
	return stringify[p]
}

const (
	SeatCount   = 4
	WallSize    = 144
	SegmentSize = WallSize / SeatCount // 每家门前一段牌墙

	DealRounds   = 3
	TilesPerGrab = 4
	HandSize     = 13
	DealerBonus  = 1
	DiceCount    = 3
	DiceFaces    = 6
	DealtPerDeal = HandSize*SeatCount + DealerBonus
)
