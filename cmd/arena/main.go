package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/chessuci/internal/arena"
	"github.com/ChizhovVadim/chessuci/pkg/engine"
	"github.com/ChizhovVadim/chessuci/pkg/eval/material"
	"github.com/ChizhovVadim/chessuci/pkg/uci"
)

type Config struct {
	EngineA     string
	EngineB     string
	Concurrency int
	MoveTime    int
	Time        int
	Increment   int
	MovesToGo   int
	Nodes       int
	Depth       int
	MaxMoves    int
	Games       int
	MaxDepth    int
	Shuffle     bool
	PGN         string
	LogLevel    string
}

var config Config

func main() {
	flag.StringVar(&config.EngineA, "enginea", "", "path to external uci engine A, built-in engine if empty")
	flag.StringVar(&config.EngineB, "engineb", "", "path to external uci engine B, built-in engine if empty")
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of games played at once")
	flag.IntVar(&config.MoveTime, "movetime", 0, "fixed time per move in ms")
	flag.IntVar(&config.Time, "time", 0, "clock time per game in ms")
	flag.IntVar(&config.Increment, "inc", 0, "clock increment in ms")
	flag.IntVar(&config.MovesToGo, "movestogo", 0, "moves per time control period")
	flag.IntVar(&config.Nodes, "nodes", 0, "fixed nodes per move")
	flag.IntVar(&config.Depth, "depth", 0, "fixed depth per move")
	flag.IntVar(&config.MaxMoves, "maxmoves", 200, "adjudicate a draw after this number of moves")
	flag.IntVar(&config.Games, "games", 0, "play at most this number of games, all openings if 0")
	flag.IntVar(&config.MaxDepth, "maxdepth", 64, "max depth of the built-in engine")
	flag.BoolVar(&config.Shuffle, "shuffle", false, "shuffle openings")
	flag.StringVar(&config.PGN, "pgn", "", "write games to the PGN file")
	flag.StringVar(&config.LogLevel, "loglevel", "info", "trace|debug|info|warn|error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	var level, err = zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	if err := run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("arena failed")
	}
}

func run(ctx context.Context) error {
	log.Info().Interface("config", config).Msg("arena config")

	var openings = arena.DefaultOpenings()
	if config.Games > 0 && (config.Games+1)/2 < len(openings) {
		openings = openings[:(config.Games+1)/2]
	}

	var a = &arena.Arena{
		Concurrency: config.Concurrency,
		TimeControl: arena.TimeControl{
			FixedNodes: config.Nodes,
			FixedDepth: config.Depth,
			FixedTime:  time.Duration(config.MoveTime) * time.Millisecond,
			Time:       time.Duration(config.Time) * time.Millisecond,
			Increment:  time.Duration(config.Increment) * time.Millisecond,
			MovesToGo:  config.MovesToGo,
			MaxMoves:   config.MaxMoves,
		},
		Openings:   openings,
		Shuffle:    config.Shuffle,
		NewEngineA: engineFactory(config.EngineA),
		NewEngineB: engineFactory(config.EngineB),
	}

	if config.PGN != "" {
		var f, err = os.Create(config.PGN)
		if err != nil {
			return err
		}
		defer f.Close()
		a.PGN = f
	}

	var stat, err = a.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Score: %v - %v - %v  [%.3f] %v\n",
		stat.Wins, stat.Losses, stat.Draws, stat.WinningFraction, stat.Games())
	fmt.Printf("Elo difference: %.1f, LOS: %.1f %%\n",
		stat.EloDifference, stat.LOS*100)
	return nil
}

func engineFactory(path string) func() (arena.Engine, error) {
	if path != "" {
		return func() (arena.Engine, error) {
			return uci.NewExternalEngine(path, nil)
		}
	}
	return func() (arena.Engine, error) {
		var eng = engine.NewEngine(material.NewEvaluationService())
		eng.Options.MaxDepth = config.MaxDepth
		eng.Prepare()
		return eng, nil
	}
}
