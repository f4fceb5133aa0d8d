package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hli605/showdown-bot/internal/bot"
	"github.com/hli605/showdown-bot/internal/logger"
	"github.com/hli605/showdown-bot/internal/repository"
	"github.com/hli605/showdown-bot/internal/repository/postgres"
)

func main() {
	logger.Init()

	var (
		matchup  string
		numSets  int
		battles  int
		workers  int
		dbURL    string
		maxTurns int
		seed     int64
		dryRun   bool
		jsonOut  bool
		debug    bool
	)

	flag.StringVar(&matchup, "matchup", "heuristic-vs-random", "agent matchup (e.g. v6-vs-v5, heuristic-vs-maxdamage)")
	flag.IntVar(&numSets, "n", 1, "number of match sets to run")
	flag.IntVar(&battles, "battles", 10, "battles per match set")
	flag.IntVar(&workers, "workers", 1, "concurrency (parallel match sets)")
	flag.StringVar(&dbURL, "db", "", "database URL (or use DATABASE_URL env)")
	flag.IntVar(&maxTurns, "max-turns", 200, "turn cap per battle before HP scoring")
	flag.Int64Var(&seed, "seed", 0, "base seed (0 = random)")
	flag.BoolVar(&dryRun, "dry-run", false, "skip database writes")
	flag.BoolVar(&jsonOut, "json", false, "output results as JSON")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	agentOne, agentTwo, err := parseMatchup(matchup)
	if err != nil {
		log.Fatal().Err(err).Msg("Bad matchup")
	}

	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		dryRun = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	var matchRepo repository.MatchRepository
	if !dryRun {
		db, err := postgres.Connect(dbURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Database connection failed")
		}
		defer db.Close()
		matchRepo = postgres.NewMatchRepo(db)
	}

	results := make([]*bot.ArenaResult, numSets)
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	errCount := 0

	for i := 0; i < numSets; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			setSeed := seed
			if seed != 0 {
				setSeed = seed + int64(idx)*1000
			}

			cfg := bot.ArenaConfig{
				MatchName: fmt.Sprintf("%s-%d", matchup, idx+1),
				AgentOne:  agentOne,
				AgentTwo:  agentTwo,
				Battles:   battles,
				MaxTurns:  maxTurns,
				Seed:      setSeed,
				DryRun:    dryRun,
			}

			result, err := bot.RunMatch(ctx, cfg, matchRepo)
			if err != nil {
				log.Error().Err(err).Int("set", idx+1).Msg("Match set failed")
				mu.Lock()
				errCount++
				mu.Unlock()
				return
			}

			mu.Lock()
			results[idx] = result
			mu.Unlock()

			log.Info().Int("set", idx+1).
				Int("winsOne", result.WinsOne).Int("winsTwo", result.WinsTwo).Int("draws", result.Draws).
				Msg("Match set completed")
		}(i)
	}

	wg.Wait()

	if jsonOut {
		printJSON(results, errCount)
	} else {
		printSummary(results, agentOne, agentTwo, errCount, dryRun)
	}
}

// parseMatchup splits "v6-vs-random" into the two agent levels.
func parseMatchup(s string) (string, string, error) {
	parts := strings.SplitN(s, "-vs-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected <agent>-vs-<agent>, got %q", s)
	}
	return parts[0], parts[1], nil
}

func printJSON(results []*bot.ArenaResult, errCount int) {
	out := struct {
		Results []*bot.ArenaResult `json:"results"`
		Errors  int                `json:"errors"`
	}{Results: results, Errors: errCount}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}

func printSummary(results []*bot.ArenaResult, agentOne, agentTwo string, errCount int, dryRun bool) {
	winsOne, winsTwo, draws, total := 0, 0, 0, 0
	turns := 0.0
	sets := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		sets++
		winsOne += r.WinsOne
		winsTwo += r.WinsTwo
		draws += r.Draws
		total += r.Battles
		turns += r.AvgTurns
	}

	fmt.Printf("\n=== %s vs %s ===\n", agentOne, agentTwo)
	if dryRun {
		fmt.Println("(dry run, results not persisted)")
	}
	fmt.Printf("battles: %d across %d sets\n", total, sets)
	if total > 0 {
		fmt.Printf("%-12s %4d wins (%5.1f%%)\n", agentOne, winsOne, 100*float64(winsOne)/float64(total))
		fmt.Printf("%-12s %4d wins (%5.1f%%)\n", agentTwo, winsTwo, 100*float64(winsTwo)/float64(total))
		fmt.Printf("%-12s %4d       (%5.1f%%)\n", "draws", draws, 100*float64(draws)/float64(total))
	}
	if sets > 0 {
		fmt.Printf("avg turns per battle: %.1f\n", turns/float64(sets))
	}
	if errCount > 0 {
		fmt.Printf("errors: %d\n", errCount)
	}
}
