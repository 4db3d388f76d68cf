package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/iamasit07/gomoku/internal/config"
	"github.com/iamasit07/gomoku/internal/service/bot"
	"github.com/iamasit07/gomoku/internal/service/game"
	"github.com/iamasit07/gomoku/internal/transport/console"
	"github.com/iamasit07/gomoku/internal/transport/gui"
	"github.com/joho/godotenv"
)

func main() {
	mode := flag.String("mode", "", "console or gui (prompt when empty)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	engine, err := bot.NewEngine(cfg.EngineConfig())
	if err != nil {
		log.Fatalf("[BOT] Failed to create engine: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	service := game.NewService(cfg.Rules())
	black, white, human := cfg.Strategies()

	in := bufio.NewReader(os.Stdin)
	choice := *mode
	if choice == "" {
		fmt.Println("1. Play in console")
		fmt.Println("2. Play in GUI")
		fmt.Print("Enter choice: ")
		line, _ := in.ReadString('\n')
		switch strings.TrimSpace(line) {
		case "1":
			choice = "console"
		case "2":
			choice = "gui"
		}
	}

	switch choice {
	case "console":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c := console.New(in, os.Stdout, service, engine, rng, console.Options{
			Depth:         cfg.Depth,
			BlackStrategy: black,
			WhiteStrategy: white,
			HumanStrategy: human,
		})
		if err := c.Run(ctx); err != nil && !errors.Is(err, console.ErrInputClosed) && !errors.Is(err, context.Canceled) {
			log.Fatalf("[GAME] %v", err)
		}
	case "gui":
		app := gui.New(service, engine, rng, gui.Options{
			CellSize:      cfg.CellSize,
			StoneRadius:   cfg.StoneRadius,
			Depth:         cfg.Depth,
			BlackStrategy: black,
			WhiteStrategy: white,
			HumanStrategy: human,
		})
		if err := app.Run(); err != nil {
			log.Fatalf("[GUI] %v", err)
		}
	default:
		fmt.Println("Invalid choice.")
	}
}
