package domain

// Rules fixes the board geometry for one game
type Rules struct {
	Size      int
	WinLength int
	Radius    int
}

func DefaultRules() Rules {
	return Rules{
		Size:      DefaultSize,
		WinLength: DefaultWinLength,
		Radius:    DefaultRadius,
	}
}

type Game struct {
	ID            string
	Board         *Board
	Rules         Rules
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	Moves         []Move
}

func NewGame(rules Rules) *Game {
	return &Game{
		Board:         NewBoardWithRules(rules.Size, rules.WinLength),
		Rules:         rules,
		CurrentPlayer: Black,
		Status:        StatusActive,
		Winner:        Empty,
	}
}

func (g *Game) MakeMove(player PlayerID, row, col int) error {
	if g.Status != StatusActive {
		return ErrGameOver
	}

	if player != g.CurrentPlayer {
		return ErrNotYourTurn
	}

	if err := g.Board.ApplyMove(row, col, player); err != nil {
		return err
	}

	g.Moves = append(g.Moves, Move{Row: row, Col: col})

	if g.Board.HasWin(player) {
		g.Status = StatusWon
		g.Winner = player
		return nil
	}

	// no candidate left and nobody won: tie
	if !g.Board.HasCandidateMoves(g.Rules.Radius) {
		g.Status = StatusDraw
		return nil
	}

	g.CurrentPlayer = player.Opponent()
	return nil
}

// DeclareDraw ends an active game as a tie
func (g *Game) DeclareDraw() {
	if g.Status == StatusActive {
		g.Status = StatusDraw
	}
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

func (g *Game) MoveCount() int {
	return len(g.Moves)
}
