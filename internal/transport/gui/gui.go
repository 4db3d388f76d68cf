package gui

import (
	"context"
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iamasit07/gomoku/internal/domain"
	"github.com/iamasit07/gomoku/internal/service/bot"
	"github.com/iamasit07/gomoku/internal/service/game"
)

const (
	statusHeight = 50
	moveDelay    = 300 * time.Millisecond
)

var (
	boardColor = color.RGBA{0xDE, 0xB8, 0x87, 0xFF}
	lineColor  = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	blackStone = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	whiteStone = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

type Mode int

const (
	ModeSelect Mode = iota
	ModeAIvsAI
	ModeHumanVsAI
)

type Options struct {
	CellSize      int
	StoneRadius   int
	Depth         int
	BlackStrategy bot.Strategy
	WhiteStrategy bot.Strategy
	HumanStrategy bot.Strategy
}

// App is the ebiten game. Searches run on their own goroutine against a
// snapshot of the game; mu guards everything Update and Draw touch.
type App struct {
	mu       sync.Mutex
	service  *game.Service
	engine   *bot.Engine
	rng      *rand.Rand
	opts     Options
	game     *domain.Game
	mode     Mode
	thinking bool
	lastMove time.Time
	err      error
	ctx      context.Context
	cancel   context.CancelFunc
}

func New(service *game.Service, engine *bot.Engine, rng *rand.Rand, opts Options) *App {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		service: service,
		engine:  engine,
		rng:     rng,
		opts:    opts,
		game:    service.NewGame(),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Run opens the window and blocks until it is closed
func (a *App) Run() error {
	defer a.cancel()
	w, h := a.screenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Gomoku")
	return ebiten.RunGame(a)
}

func (a *App) screenSize() (int, int) {
	side := a.service.Rules.Size * a.opts.CellSize
	return side, side + statusHeight
}

func (a *App) Update() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.err != nil {
		return a.err
	}

	if a.mode == ModeSelect {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.Key1):
			a.start(ModeAIvsAI)
		case inpututil.IsKeyJustPressed(ebiten.Key2):
			a.start(ModeHumanVsAI)
		}
		return nil
	}

	if a.game.IsFinished() || a.thinking || time.Since(a.lastMove) < moveDelay {
		return nil
	}

	if a.mode == ModeHumanVsAI && a.game.CurrentPlayer == domain.Black {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			row, col, ok := a.cellAt(ebiten.CursorPosition())
			if ok && a.game.Board.IsValidMove(row, col) {
				a.apply(domain.Move{Row: row, Col: col})
			}
		}
		return nil
	}

	a.startBotMove()
	return nil
}

func (a *App) start(mode Mode) {
	a.mode = mode
	a.game = a.service.NewGame()
	a.lastMove = time.Now()
	if mode == ModeAIvsAI {
		ebiten.SetWindowTitle("Gomoku AI vs AI")
		// first move is random
		if move, ok := bot.RandomMove(a.game.Board, a.engine.Radius(), a.rng); ok {
			a.apply(move)
		}
	} else {
		ebiten.SetWindowTitle("Gomoku Human vs AI")
	}
}

// startBotMove must be called with mu held
func (a *App) startBotMove() {
	strategy := a.opts.HumanStrategy
	if a.mode == ModeAIvsAI {
		strategy = a.opts.BlackStrategy
		if a.game.CurrentPlayer == domain.White {
			strategy = a.opts.WhiteStrategy
		}
	}
	player := game.NewBotPlayer(a.engine, strategy, a.opts.Depth)

	snapshot := *a.game
	snapshot.Board = a.game.Board.Clone()
	a.thinking = true

	go func() {
		move, ok, err := player.NextMove(a.ctx, &snapshot)

		a.mu.Lock()
		defer a.mu.Unlock()
		a.thinking = false
		if err != nil {
			log.Printf("[GUI] Bot search failed: %v", err)
			a.err = err
			return
		}
		if !ok {
			a.game.DeclareDraw()
			return
		}
		a.apply(move)
	}()
}

// apply must be called with mu held
func (a *App) apply(move domain.Move) {
	if err := a.game.MakeMove(a.game.CurrentPlayer, move.Row, move.Col); err != nil {
		log.Printf("[GUI] Rejected move (%d, %d): %v", move.Row, move.Col, err)
		return
	}
	a.lastMove = time.Now()
}

func (a *App) cellAt(x, y int) (int, int, bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col := y/a.opts.CellSize, x/a.opts.CellSize
	return row, col, a.game.Board.InBounds(row, col)
}

func (a *App) Draw(screen *ebiten.Image) {
	a.mu.Lock()
	defer a.mu.Unlock()

	screen.Fill(boardColor)
	a.drawGrid(screen)

	size := a.game.Board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			switch a.game.Board.At(row, col) {
			case domain.Black:
				a.drawStone(screen, row, col, blackStone)
			case domain.White:
				a.drawStone(screen, row, col, whiteStone)
			}
		}
	}

	side := size * a.opts.CellSize
	ebitenutil.DebugPrintAt(screen, a.statusText(), a.opts.CellSize/2, side+15)
}

func (a *App) drawGrid(screen *ebiten.Image) {
	half := float32(a.opts.CellSize) / 2
	size := a.game.Board.Size()
	end := float32(a.opts.CellSize*(size-1)) + half
	for i := 0; i < size; i++ {
		p := half + float32(i*a.opts.CellSize)
		vector.StrokeLine(screen, half, p, end, p, 1, lineColor, true)
		vector.StrokeLine(screen, p, half, p, end, 1, lineColor, true)
	}
}

func (a *App) drawStone(screen *ebiten.Image, row, col int, clr color.Color) {
	x := float32(col*a.opts.CellSize + a.opts.CellSize/2)
	y := float32(row*a.opts.CellSize + a.opts.CellSize/2)
	vector.DrawFilledCircle(screen, x, y, float32(a.opts.StoneRadius), clr, true)
}

func (a *App) statusText() string {
	switch a.mode {
	case ModeSelect:
		return "Press 1 for AI vs AI, 2 for Human vs AI"
	}

	switch a.game.Status {
	case domain.StatusDraw:
		return "It's a Tie!"
	case domain.StatusWon:
		if a.mode == ModeAIvsAI {
			return a.game.Winner.String() + " Wins!"
		}
		if a.game.Winner == domain.Black {
			return "You win!"
		}
		return "AI wins!"
	}

	if a.thinking {
		return "AI is thinking..."
	}
	if a.mode == ModeHumanVsAI && a.game.CurrentPlayer == domain.Black {
		return "Your turn"
	}
	return a.game.CurrentPlayer.String() + " to move"
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenSize()
}
