package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hli605/showdown-bot/internal/bot"
	"github.com/hli605/showdown-bot/internal/config"
	"github.com/hli605/showdown-bot/internal/logger"
	"github.com/hli605/showdown-bot/internal/repository"
	"github.com/hli605/showdown-bot/internal/repository/postgres"
)

func main() {
	cfg := config.Load()

	serverURL := flag.String("url", cfg.ServerURL, "simulator websocket URL")
	username := flag.String("user", cfg.Username, "account name")
	format := flag.String("format", cfg.Format, "ladder format to search")
	level := flag.String("agent", cfg.AgentLevel, "agent level (random, maxdamage, heuristic, model, v1..v6)")
	battles := flag.Int("n", 0, "stop after this many battles (0 = run until interrupted)")
	seed := flag.Int64("seed", 0, "agent random seed (0 = nondeterministic)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger.Init()
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *seed != 0 {
		bot.SeedBotRng(*seed)
	}
	bot.ModelPath = cfg.ModelPath
	agent := bot.AgentForLevel(*level)

	var ladderRepo repository.LadderRepository
	if cfg.DatabaseURL != "" {
		db, err := postgres.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Database connection failed")
		}
		defer db.Close()
		ladderRepo = postgres.NewLadderRepo(db)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("Received shutdown signal")
		cancel()
	}()

	client := bot.NewClient(*username, cfg.Password, *serverURL)
	orch := bot.NewOrchestrator(client, agent, *format, ladderRepo, *battles)
	if err := orch.Run(ctx); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("Bot run failed")
	}
	log.Info().Msg("Bot run completed")
}
