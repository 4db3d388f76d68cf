package domain

import (
	"math/rand"
	"testing"
)

func TestHasWinBoundary(t *testing.T) {
	b := NewBoard(9)
	for col := 0; col < 4; col++ {
		if err := b.ApplyMove(4, col, Black); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if b.HasWin(Black) {
		t.Fatalf("four stones must not win")
	}

	if err := b.ApplyMove(4, 4, Black); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.HasWin(Black) {
		t.Fatalf("five stones in a row must win")
	}
	if b.HasWin(White) {
		t.Fatalf("white has no stones")
	}
}

func TestHasWinAllDirections(t *testing.T) {
	cases := []struct {
		name       string
		row, col   int
		dRow, dCol int
	}{
		{"horizontal", 0, 4, 0, 1},
		{"vertical", 4, 8, 1, 0},
		{"diagonal", 2, 1, 1, 1},
		{"anti-diagonal", 0, 8, 1, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(9)
			for i := 0; i < DefaultWinLength; i++ {
				if err := b.ApplyMove(tc.row+tc.dRow*i, tc.col+tc.dCol*i, White); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
			if !b.HasWin(White) {
				t.Fatalf("expected white to win")
			}
			if b.HasWin(Black) {
				t.Fatalf("black must not win")
			}
		})
	}
}

func TestHasWinBrokenRun(t *testing.T) {
	b := NewBoard(9)
	for _, col := range []int{0, 1, 2, 4, 5} {
		_ = b.ApplyMove(0, col, Black)
	}
	_ = b.ApplyMove(0, 3, White)
	if b.HasWin(Black) {
		t.Fatalf("a run interrupted by the opponent must not win")
	}
}

func TestHasWinLongerRun(t *testing.T) {
	b := NewBoard(9)
	for col := 0; col < 7; col++ {
		_ = b.ApplyMove(8, col, Black)
	}
	if !b.HasWin(Black) {
		t.Fatalf("a run longer than five still contains five")
	}
}

func TestHasWinCustomLength(t *testing.T) {
	b := NewBoardWithRules(6, 4)
	for row := 0; row < 4; row++ {
		_ = b.ApplyMove(row, 2, White)
	}
	if !b.HasWin(White) {
		t.Fatalf("expected four in a row to win with win length 4")
	}
}

func TestHasWinColorSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 300; trial++ {
		b := randomBoard(rng, 9, 30+rng.Intn(40))
		swapped := b.SwapColors()
		if b.HasWin(Black) != swapped.HasWin(White) {
			t.Fatalf("symmetry broken on board:\n%s", b)
		}
		if b.HasWin(White) != swapped.HasWin(Black) {
			t.Fatalf("symmetry broken on board:\n%s", b)
		}
	}
}

func TestCountInDirection(t *testing.T) {
	b := NewBoard(9)
	for col := 2; col < 5; col++ {
		_ = b.ApplyMove(3, col, Black)
	}
	if got := b.CountInDirection(3, 1, 0, 1, Black); got != 3 {
		t.Fatalf("expected 3 stones to the right, got %d", got)
	}
	if got := b.CountInDirection(3, 4, 0, -1, Black); got != 2 {
		t.Fatalf("expected 2 stones to the left, got %d", got)
	}
}
