package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/IlikeChooros/go-tictactoe/internal/cli"
	"github.com/IlikeChooros/go-tictactoe/internal/config"
	"github.com/IlikeChooros/go-tictactoe/internal/logger"
	"github.com/IlikeChooros/go-tictactoe/internal/telemetry"
	"github.com/IlikeChooros/go-tictactoe/pkg/bench"
)

/*
Self-play benchmark, the minimax agent plays a series of games against
the configured opponent on several workers, either with live progress
on the terminal or a single JSON summary (-json).
*/

type options struct {
	games    uint
	threads  uint
	opponent string
	json     bool
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "", "path to a yaml config file, only the environment is read when empty")
	opts := options{}
	flag.UintVar(&opts.games, "games", 0, "number of games to play, overrides the config when > 0")
	flag.UintVar(&opts.threads, "threads", 0, "number of arena workers, overrides the config when > 0")
	flag.StringVar(&opts.opponent, "opponent", "", "opponent of the minimax agent: minimax or random")
	flag.BoolVar(&opts.json, "json", false, "print only the summary, as JSON")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	applyOptions(conf, opts)
	if err := conf.Validate(); err != nil {
		panic(err)
	}

	log := logger.New(os.Stderr, conf.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(conf.Telemetry.Enabled, conf.Telemetry.Output, log)
	if err != nil {
		panic(err)
	}
	defer shutdown()

	summary := run(ctx, conf, log, os.Stdout, opts.json)
	if opts.json {
		if err := writeSummary(os.Stdout, summary); err != nil {
			panic(err)
		}
	}
}

func applyOptions(conf *config.Config, opts options) {
	if opts.games > 0 {
		conf.Arena.Games = opts.games
	}
	if opts.threads > 0 {
		conf.Arena.Threads = opts.threads
	}
	if opts.opponent != "" {
		conf.Arena.Opponent = opts.opponent
	}
}

func newOpponent(name string) bench.Agent {
	if name == "minimax" {
		return bench.NewMinimaxAgent()
	}
	return bench.NewRandomAgent(bench.SeedGeneratorFn())
}

func run(ctx context.Context, conf *config.Config, log *slog.Logger, out io.Writer, quiet bool) bench.VersusSummaryInfo {
	arena := bench.NewVersusArena(bench.NewMinimaxAgent(), newOpponent(conf.Arena.Opponent)).WithContext(ctx)
	arena.Setup(conf.Arena.Games, conf.Arena.Threads)

	var listener bench.ListenerLike
	if !quiet {
		renderer := cli.NewRenderer(out, cli.Symbols(conf.Symbols), !conf.NoColor)
		listener = cli.NewArenaListener(renderer, int(arena.NThreads))
	}

	log.Info("arena started",
		"games", arena.NGames,
		"threads", arena.NThreads,
		"player1", arena.Player1.Name(),
		"player2", arena.Player2.Name(),
	)
	arena.Start(listener)
	arena.Wait()

	summary := arena.Summary()
	log.Info("arena finished",
		"total", summary.TotalGames,
		"player1_wins", summary.P1Wins,
		"player2_wins", summary.P2Wins,
		"draws", summary.Draws,
		"cancelled", ctx.Err() != nil,
	)
	return summary
}

func writeSummary(w io.Writer, summary bench.VersusSummaryInfo) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}
