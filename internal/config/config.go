package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/iamasit07/gomoku/internal/domain"
	"github.com/iamasit07/gomoku/internal/service/bot"
)

type Config struct {
	BoardSize     int
	WinLength     int
	Radius        int
	Depth         int
	BlackStrategy string
	WhiteStrategy string
	HumanStrategy string
	CellSize      int
	StoneRadius   int
	Seed          int64
}

func LoadConfig() *Config {
	return &Config{
		BoardSize:     GetEnvAsInt("GOMOKU_BOARD_SIZE", domain.DefaultSize),
		WinLength:     GetEnvAsInt("GOMOKU_WIN_LENGTH", domain.DefaultWinLength),
		Radius:        GetEnvAsInt("GOMOKU_RADIUS", domain.DefaultRadius),
		Depth:         GetEnvAsInt("GOMOKU_DEPTH", 2),
		BlackStrategy: GetEnv("GOMOKU_BLACK_STRATEGY", string(bot.StrategyMinimax)),
		WhiteStrategy: GetEnv("GOMOKU_WHITE_STRATEGY", string(bot.StrategyAlphaBeta)),
		HumanStrategy: GetEnv("GOMOKU_HUMAN_STRATEGY", string(bot.StrategyMinimax)),
		CellSize:      GetEnvAsInt("GOMOKU_CELL_SIZE", 50),
		StoneRadius:   GetEnvAsInt("GOMOKU_STONE_RADIUS", 14),
		Seed:          int64(GetEnvAsInt("GOMOKU_SEED", 0)),
	}
}

func (c *Config) Validate() error {
	if c.WinLength < 1 {
		return fmt.Errorf("win length must be positive, got %d", c.WinLength)
	}
	if c.BoardSize < c.WinLength {
		return fmt.Errorf("board size %d is smaller than win length %d", c.BoardSize, c.WinLength)
	}
	if c.Depth < 1 {
		return fmt.Errorf("search depth must be at least 1, got %d", c.Depth)
	}
	if c.Radius < 0 {
		return fmt.Errorf("candidate radius must not be negative, got %d", c.Radius)
	}
	for _, name := range []string{c.BlackStrategy, c.WhiteStrategy, c.HumanStrategy} {
		if _, err := bot.ParseStrategy(name); err != nil {
			return fmt.Errorf("invalid strategy config: %w", err)
		}
	}
	if c.CellSize < 1 || c.StoneRadius < 1 {
		return fmt.Errorf("cell size and stone radius must be positive")
	}
	return nil
}

func (c *Config) Rules() domain.Rules {
	return domain.Rules{
		Size:      c.BoardSize,
		WinLength: c.WinLength,
		Radius:    c.Radius,
	}
}

// EngineConfig uses the default five-cell pattern table with the configured radius
func (c *Config) EngineConfig() bot.Config {
	cfg := bot.DefaultConfig()
	cfg.Radius = c.Radius
	return cfg
}

// Strategies returns the parsed black, white and human-opponent strategies.
// Call Validate first.
func (c *Config) Strategies() (black, white, human bot.Strategy) {
	black, _ = bot.ParseStrategy(c.BlackStrategy)
	white, _ = bot.ParseStrategy(c.WhiteStrategy)
	human, _ = bot.ParseStrategy(c.HumanStrategy)
	return black, white, human
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
