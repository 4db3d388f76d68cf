package domain

type PlayerID int

const (
	Empty PlayerID = 0
	Black PlayerID = 1
	White PlayerID = 2
)

// Opponent returns the other color. Empty has no opponent and maps to itself.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// Symbol is the single-character board token for a cell state
func (p PlayerID) Symbol() string {
	switch p {
	case Black:
		return "B"
	case White:
		return "W"
	default:
		return "."
	}
}

func (p PlayerID) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

const (
	DefaultSize      = 9
	DefaultWinLength = 5
	DefaultRadius    = 2
)

// Move identifies one cell on the board
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove     Error = "invalid move"
	ErrGameOver        Error = "game is already finished"
	ErrNotYourTurn     Error = "not your turn"
	ErrUnknownStrategy Error = "unknown search strategy"
)
