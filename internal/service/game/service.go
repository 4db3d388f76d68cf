package game

import (
	"context"
	"fmt"
	"log"

	"github.com/iamasit07/gomoku/internal/domain"
	"github.com/iamasit07/gomoku/pkg/uid"
)

// Observer is told about every move after it has been applied
type Observer func(g *domain.Game, player domain.PlayerID, move domain.Move)

type Service struct {
	Rules domain.Rules
}

func NewService(rules domain.Rules) *Service {
	return &Service{Rules: rules}
}

func (s *Service) NewGame() *domain.Game {
	g := domain.NewGame(s.Rules)
	g.ID = uid.GenerateGameID()
	log.Printf("[GAME] Created game %s on a %dx%d board", g.ID, s.Rules.Size, s.Rules.Size)
	return g
}

// Play alternates black and white until g is finished. Cancellation is only
// noticed between turns.
func (s *Service) Play(ctx context.Context, g *domain.Game, black, white Player, observe Observer) error {
	for !g.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		current := g.CurrentPlayer
		player := black
		if current == domain.White {
			player = white
		}

		move, ok, err := player.NextMove(ctx, g)
		if err != nil {
			return fmt.Errorf("%v failed to choose a move: %w", current, err)
		}
		if !ok {
			log.Printf("[GAME] Game %s: %v has no move left, declaring a tie", g.ID, current)
			g.DeclareDraw()
			break
		}

		if err := g.MakeMove(current, move.Row, move.Col); err != nil {
			return fmt.Errorf("%v played (%d, %d): %w", current, move.Row, move.Col, err)
		}

		if observe != nil {
			observe(g, current, move)
		}
	}

	log.Printf("[GAME] Game %s finished after %d moves: status=%s winner=%v", g.ID, g.MoveCount(), g.Status, g.Winner)
	return nil
}
