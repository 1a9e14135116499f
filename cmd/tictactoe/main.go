package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/IlikeChooros/go-tictactoe/internal/cli"
	"github.com/IlikeChooros/go-tictactoe/internal/config"
	"github.com/IlikeChooros/go-tictactoe/internal/logger"
	"github.com/IlikeChooros/go-tictactoe/internal/telemetry"
	"github.com/IlikeChooros/go-tictactoe/pkg/board"
)

/*
Interactive tic-tac-toe, against the unbeatable computer or hot seat.
Moves are typed with the numeric keypad layout:

	7 | 8 | 9
	4 | 5 | 6
	1 | 2 | 3
*/

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "", "path to a yaml config file, only the environment is read when empty")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	log := logger.New(os.Stderr, conf.LogLevel)

	shutdown, err := telemetry.Setup(conf.Telemetry.Enabled, conf.Telemetry.Output, log)
	if err != nil {
		panic(err)
	}
	defer shutdown()

	err = run(context.Background(), conf, log, os.Stdin, os.Stdout)
	if errors.Is(err, cli.ErrAborted) {
		fmt.Fprintln(os.Stdout, "\nBye!")
		return
	}
	if err != nil {
		panic(fmt.Errorf("game failed: %w", err))
	}
}

func run(ctx context.Context, conf *config.Config, log *slog.Logger, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	renderer := cli.NewRenderer(out, cli.Symbols(conf.Symbols), !conf.NoColor)

	humanMark := board.Cross
	if conf.HumanMark == "o" {
		humanMark = board.Circle
	}

	players := map[board.Cell]cli.Player{
		humanMark:            cli.NewHumanPlayer(scanner, renderer),
		humanMark.Opponent(): cli.NewHumanPlayer(scanner, renderer),
	}
	first := board.Cross
	if conf.Mode == config.ModeComputer {
		players[humanMark.Opponent()] = cli.NewComputerPlayer()
		first = humanMark
		if conf.ComputerFirst {
			first = humanMark.Opponent()
		}
	}

	game := cli.NewGame(players[board.Cross], players[board.Circle], renderer, log).
		SetFirst(first).
		SetStartPrompt(scanner)

	_, err := game.Play(ctx)
	return err
}
