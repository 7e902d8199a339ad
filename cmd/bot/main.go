package main

import (
	"context"
	"os"

	"github.com/iamasit07/anti-4-in-a-row/internal/config"
	"github.com/iamasit07/anti-4-in-a-row/internal/service/bot"
	"github.com/iamasit07/anti-4-in-a-row/internal/service/game"
	"github.com/iamasit07/anti-4-in-a-row/internal/transport/judge"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// One turn per process: the judge writes the history to stdin and reads the
// move from stdout. Logs go to stderr.
func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	config.SetupLogging(cfg, os.Stderr)

	svc := game.NewService(bot.NewEngine(), cfg.SearchDepth, nil, nil)
	if err := judge.Run(context.Background(), os.Stdin, os.Stdout, svc); err != nil {
		log.Fatal().Err(err).Msg("judge-turn-failed")
	}
}
