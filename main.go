package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"klondike/config"
	"klondike/experiments"
	"klondike/snapshot"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: klondike <command> [flags]

commands:
  solve <board.yaml>  rank the moves of a board
  play                benchmark the selectors on dealt games
  throughput          measure rollouts per second per goroutine count`

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	log.Debug().Msgf("loaded config: %v", cfg.AllSettings())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("klondike failed")
		stop()
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func run(ctx context.Context, cfg *config.Config) error {
	if len(cfg.Args) == 0 {
		return errors.New(usage)
	}

	switch command := cfg.Args[0]; command {
	case "solve":
		if len(cfg.Args) != 2 {
			return errors.New("solve takes exactly one board file")
		}
		return solve(ctx, cfg, cfg.Args[1])
	case "play":
		_, err := experiments.RunBenchmark(ctx, cfg)
		return err
	case "throughput":
		_, err := experiments.RunThroughput(ctx, cfg)
		return err
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func solve(ctx context.Context, cfg *config.Config, path string) error {
	board, err := snapshot.Load(path)
	if err != nil {
		return err
	}
	log.Info().Msgf("searching %s with %s", path, cfg.GetString(config.ConfigSelector))

	result, err := cfg.NewSelector().Search(ctx, board)
	if err != nil {
		return err
	}
	return snapshot.EncodeResult(os.Stdout, result)
}
