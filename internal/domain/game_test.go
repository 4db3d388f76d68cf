package domain

import (
	"errors"
	"testing"
)

func TestMakeMoveTogglesTurn(t *testing.T) {
	g := NewGame(DefaultRules())
	if g.CurrentPlayer != Black {
		t.Fatalf("black moves first")
	}
	if err := g.MakeMove(Black, 4, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.CurrentPlayer != White {
		t.Fatalf("expected white to move, got %v", g.CurrentPlayer)
	}
	if g.MoveCount() != 1 || g.Moves[0] != (Move{4, 4}) {
		t.Fatalf("move history not recorded: %v", g.Moves)
	}
}

func TestMakeMoveRejects(t *testing.T) {
	g := NewGame(DefaultRules())
	if err := g.MakeMove(White, 0, 0); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}
	if err := g.MakeMove(Black, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.MakeMove(White, 0, 0); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if g.CurrentPlayer != White {
		t.Fatalf("a rejected move must not change the turn")
	}
}

func TestMakeMoveWin(t *testing.T) {
	g := NewGame(DefaultRules())
	for i := 0; i < 4; i++ {
		if err := g.MakeMove(Black, 0, i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := g.MakeMove(White, 8, i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := g.MakeMove(Black, 0, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.Status != StatusWon || g.Winner != Black || !g.IsFinished() {
		t.Fatalf("expected black win, got status=%s winner=%v", g.Status, g.Winner)
	}
	if err := g.MakeMove(White, 8, 4); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestMakeMoveDraw(t *testing.T) {
	rules := Rules{Size: 5, WinLength: 5, Radius: 2}
	g := NewGame(rules)

	var blacks, whites []Move
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if drawPattern(row, col) == Black {
				blacks = append(blacks, Move{row, col})
			} else {
				whites = append(whites, Move{row, col})
			}
		}
	}

	for i := range blacks {
		if err := g.MakeMove(Black, blacks[i].Row, blacks[i].Col); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i < len(whites) {
			if err := g.MakeMove(White, whites[i].Row, whites[i].Col); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}

	if g.Status != StatusDraw || g.Winner != Empty {
		t.Fatalf("expected draw, got status=%s winner=%v", g.Status, g.Winner)
	}
}

func TestDeclareDraw(t *testing.T) {
	g := NewGame(DefaultRules())
	g.DeclareDraw()
	if g.Status != StatusDraw {
		t.Fatalf("expected draw, got %s", g.Status)
	}
}
