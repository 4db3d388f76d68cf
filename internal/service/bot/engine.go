package bot

import (
	"fmt"
	"strings"

	"github.com/iamasit07/gomoku/internal/domain"
)

type Strategy string

const (
	StrategyMinimax   Strategy = "minimax"
	StrategyAlphaBeta Strategy = "alphabeta"
)

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimax":
		return StrategyMinimax, nil
	case "alphabeta", "alpha-beta", "ab":
		return StrategyAlphaBeta, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, name)
	}
}

// Config holds the tunables that used to be process-wide constants
type Config struct {
	Radius         int
	WindowLength   int
	OpponentFactor float64
	Weights        map[string]float64
}

func DefaultConfig() Config {
	return Config{
		Radius:         domain.DefaultRadius,
		WindowLength:   WINDOW_LENGTH,
		OpponentFactor: OPPONENT_FACTOR,
		Weights:        DefaultWeights(),
	}
}

// Engine runs searches over a caller-owned board. A search mutates the board
// while it runs and restores it before returning, so one board must never be
// shared by overlapping searches.
type Engine struct {
	radius    int
	evaluator *Evaluator
}

func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Radius < 0 {
		return nil, fmt.Errorf("candidate radius must not be negative, got %d", cfg.Radius)
	}
	evaluator, err := NewEvaluator(cfg.Weights, cfg.WindowLength, cfg.OpponentFactor)
	if err != nil {
		return nil, fmt.Errorf("failed to build evaluator: %w", err)
	}
	return &Engine{radius: cfg.Radius, evaluator: evaluator}, nil
}

var defaultEngine = mustEngine(DefaultConfig())

func mustEngine(cfg Config) *Engine {
	engine, err := NewEngine(cfg)
	if err != nil {
		panic(err)
	}
	return engine
}

func (e *Engine) Evaluator() *Evaluator {
	return e.evaluator
}

func (e *Engine) Radius() int {
	return e.radius
}

func (e *Engine) Evaluate(board *domain.Board, player domain.PlayerID) float64 {
	return e.evaluator.Evaluate(board, player)
}

// Result is the outcome of a root search. Found is false only when there was
// no candidate move, which callers treat as a tie.
type Result struct {
	Move  domain.Move
	Score float64
	Found bool
}

// Search picks the root move with the strictly greatest score. Candidates are
// tried in row-major order, so ties go to the first such move.
func (e *Engine) Search(board *domain.Board, player domain.PlayerID, depth int, strategy Strategy) (Result, error) {
	if player != domain.Black && player != domain.White {
		return Result{}, fmt.Errorf("cannot search for %v", player)
	}

	var child func() float64
	switch strategy {
	case StrategyMinimax:
		child = func() float64 {
			return e.Minimax(board, depth-1, false, player)
		}
	case StrategyAlphaBeta:
		child = func() float64 {
			return e.AlphaBeta(board, depth-1, negInf, posInf, false, player)
		}
	default:
		return Result{}, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, strategy)
	}

	result := Result{Score: negInf}
	for _, move := range board.CandidateMoves(e.radius) {
		score, ok := withMove(board, move, player, child)
		if !ok {
			continue
		}
		if !result.Found || score > result.Score {
			result = Result{Move: move, Score: score, Found: true}
		}
	}
	return result, nil
}

// BestMove returns the chosen move, or ok=false when nothing can be played
func (e *Engine) BestMove(board *domain.Board, player domain.PlayerID, depth int, strategy Strategy) (domain.Move, bool, error) {
	result, err := e.Search(board, player, depth, strategy)
	if err != nil {
		return domain.Move{}, false, err
	}
	return result.Move, result.Found, nil
}

// Evaluate scores board with the default weights
func Evaluate(board *domain.Board, player domain.PlayerID) float64 {
	return defaultEngine.Evaluate(board, player)
}

// CalculateBestMove searches with the default weights and radius
func CalculateBestMove(board *domain.Board, player domain.PlayerID, depth int, strategy Strategy) (domain.Move, bool, error) {
	return defaultEngine.BestMove(board, player, depth, strategy)
}

// withMove places player's stone on move for the duration of fn. The undo is
// deferred so the board is restored even if fn panics.
func withMove(board *domain.Board, move domain.Move, player domain.PlayerID, fn func() float64) (float64, bool) {
	if err := board.ApplyMove(move.Row, move.Col, player); err != nil {
		return 0, false
	}
	defer board.UndoMove(move.Row, move.Col)
	return fn(), true
}
