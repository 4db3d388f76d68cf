package game

import (
	"context"
	"math/rand"

	"github.com/iamasit07/gomoku/internal/domain"
	"github.com/iamasit07/gomoku/internal/service/bot"
)

// Player chooses the next move for whoever is to play in g. ok is false when
// the player has nothing to play.
type Player interface {
	NextMove(ctx context.Context, g *domain.Game) (move domain.Move, ok bool, err error)
}

// PlayerFunc adapts a function to Player
type PlayerFunc func(ctx context.Context, g *domain.Game) (domain.Move, bool, error)

func (f PlayerFunc) NextMove(ctx context.Context, g *domain.Game) (domain.Move, bool, error) {
	return f(ctx, g)
}

type BotPlayer struct {
	Engine   *bot.Engine
	Strategy bot.Strategy
	Depth    int
}

func NewBotPlayer(engine *bot.Engine, strategy bot.Strategy, depth int) *BotPlayer {
	return &BotPlayer{Engine: engine, Strategy: strategy, Depth: depth}
}

// NextMove searches a copy of the board, so the game board is never touched
// while the search runs.
func (p *BotPlayer) NextMove(ctx context.Context, g *domain.Game) (domain.Move, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Move{}, false, err
	}
	return p.Engine.BestMove(g.Board.Clone(), g.CurrentPlayer, p.Depth, p.Strategy)
}

// OpeningPlayer plays a random candidate while the board is empty and defers
// to Next afterwards.
type OpeningPlayer struct {
	Radius int
	Rng    *rand.Rand
	Next   Player
}

func (p *OpeningPlayer) NextMove(ctx context.Context, g *domain.Game) (domain.Move, bool, error) {
	if !g.Board.HasStones() {
		move, ok := bot.RandomMove(g.Board, p.Radius, p.Rng)
		return move, ok, nil
	}
	return p.Next.NextMove(ctx, g)
}
