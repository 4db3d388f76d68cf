package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/iamasit07/gomoku/internal/domain"
	"github.com/iamasit07/gomoku/internal/service/bot"
	"github.com/iamasit07/gomoku/internal/service/game"
)

// Options configures the console front end
type Options struct {
	Depth         int
	BlackStrategy bot.Strategy
	WhiteStrategy bot.Strategy
	HumanStrategy bot.Strategy
}

type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	service *game.Service
	engine  *bot.Engine
	rng     *rand.Rand
	opts    Options
}

func New(in io.Reader, out io.Writer, service *game.Service, engine *bot.Engine, rng *rand.Rand, opts Options) *Console {
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		service: service,
		engine:  engine,
		rng:     rng,
		opts:    opts,
	}
}

// Run shows the mode menu and plays the chosen mode
func (c *Console) Run(ctx context.Context) error {
	c.println("1. Watch AI vs AI battle")
	c.println("2. Play Human vs AI")
	choice, err := c.prompt("Enter choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return c.AIvsAI(ctx)
	case "2":
		return c.HumanVsAI(ctx)
	default:
		c.println("Invalid choice.")
		return nil
	}
}

func (c *Console) AIvsAI(ctx context.Context) error {
	g := c.service.NewGame()
	c.printf("AI vs AI battle: %s (B) vs %s (W)\n", strategyLabel(c.opts.BlackStrategy), strategyLabel(c.opts.WhiteStrategy))
	c.print(g.Board.String())

	black := &game.OpeningPlayer{
		Radius: c.engine.Radius(),
		Rng:    c.rng,
		Next:   game.NewBotPlayer(c.engine, c.opts.BlackStrategy, c.opts.Depth),
	}
	white := game.NewBotPlayer(c.engine, c.opts.WhiteStrategy, c.opts.Depth)

	err := c.service.Play(ctx, g, black, white, func(g *domain.Game, player domain.PlayerID, move domain.Move) {
		if g.MoveCount() == 1 {
			c.printf("First move (%s): %d %d\n", player.Symbol(), move.Row, move.Col)
		} else {
			c.printf("%s chooses: %d %d\n", player.Symbol(), move.Row, move.Col)
		}
		c.print(g.Board.String())
	})
	if err != nil {
		return err
	}

	if g.Status == domain.StatusWon {
		c.printf("%s wins!\n", g.Winner.Symbol())
	} else {
		c.println("It's a tie!")
	}
	return nil
}

func (c *Console) HumanVsAI(ctx context.Context) error {
	g := c.service.NewGame()
	c.println("Welcome to Gomoku! You are 'B'. AI is 'W'.")
	c.print(g.Board.String())

	human := game.PlayerFunc(c.readMove)
	ai := game.NewBotPlayer(c.engine, c.opts.HumanStrategy, c.opts.Depth)
	thinking := game.PlayerFunc(func(ctx context.Context, g *domain.Game) (domain.Move, bool, error) {
		c.println("AI is thinking...")
		return ai.NextMove(ctx, g)
	})

	err := c.service.Play(ctx, g, human, thinking, func(g *domain.Game, player domain.PlayerID, move domain.Move) {
		if player == domain.White {
			c.printf("AI chooses: %d %d\n", move.Row, move.Col)
		}
		c.print(g.Board.String())
	})
	if err != nil {
		return err
	}

	switch {
	case g.Winner == domain.Black:
		c.println("You win!")
	case g.Winner == domain.White:
		c.println("AI wins!")
	default:
		c.println("It's a Tie!")
	}
	return nil
}

// readMove keeps asking until the human enters a legal "row col"
func (c *Console) readMove(ctx context.Context, g *domain.Game) (domain.Move, bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return domain.Move{}, false, err
		}
		line, err := c.prompt("Enter your move (row col): ")
		if err != nil {
			return domain.Move{}, false, err
		}
		move, err := ParseMove(line)
		if err != nil {
			c.println("Invalid format. Try again.")
			continue
		}
		if !g.Board.IsValidMove(move.Row, move.Col) {
			c.println("Invalid move. Try again.")
			continue
		}
		return move, true, nil
	}
}

// ErrInputClosed is returned when the input ends before the game does
var ErrInputClosed = errors.New("console input closed")

// ParseMove reads "row col" with any amount of whitespace between them
func ParseMove(line string) (domain.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return domain.Move{}, fmt.Errorf("expected 2 numbers, got %d fields", len(fields))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Move{}, fmt.Errorf("invalid row %q: %w", fields[0], err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return domain.Move{}, fmt.Errorf("invalid column %q: %w", fields[1], err)
	}
	return domain.Move{Row: row, Col: col}, nil
}

func (c *Console) prompt(text string) (string, error) {
	c.print(text)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func strategyLabel(s bot.Strategy) string {
	switch s {
	case bot.StrategyAlphaBeta:
		return "Alpha-Beta"
	default:
		return "Minimax"
	}
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
