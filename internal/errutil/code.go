package errutil

const (
	codeBase = 1000
)

const (
	Unknown = codeBase + iota
	InvalidTileValue
	DeckComposition
	WallExhausted
	IllegalParameter
	UnsupportedFormat
)

var errs = map[error]int{
	ErrInvalidTileValue:  InvalidTileValue,
	ErrDeckComposition:   DeckComposition,
	ErrWallExhausted:     WallExhausted,
	ErrIllegalParameter:  IllegalParameter,
	ErrUnsupportedFormat: UnsupportedFormat,
}
