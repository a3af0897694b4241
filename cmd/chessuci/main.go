package main

import (
	"context"
	"flag"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/chessuci/pkg/engine"
	"github.com/ChizhovVadim/chessuci/pkg/eval/material"
	"github.com/ChizhovVadim/chessuci/pkg/uci"
)

const (
	name   = "ChessUci"
	author = "Vadim Chizhov"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

var (
	flgLogLevel   string
	flgMaxDepth   int
	flgBench      bool
	flgBenchDepth int
	flgProfile    string
)

func main() {
	flag.StringVar(&flgLogLevel, "loglevel", "info", "trace|debug|info|warn|error")
	flag.IntVar(&flgMaxDepth, "maxdepth", 64, "max search depth")
	flag.BoolVar(&flgBench, "bench", false, "search the bench positions and exit")
	flag.IntVar(&flgBenchDepth, "benchdepth", 6, "depth of the bench search")
	flag.StringVar(&flgProfile, "profile", "", "write a cpu profile of the bench into the directory")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	var level, err = zerolog.ParseLevel(flgLogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	log.Info().
		Str("versionName", versionName).
		Str("buildDate", buildDate).
		Str("gitRevision", gitRevision).
		Str("runtimeVersion", runtime.Version()).
		Str("goarch", runtime.GOARCH).
		Str("goos", runtime.GOOS).
		Msg(name)

	var eng = engine.NewEngine(material.NewEvaluationService())
	eng.Options.MaxDepth = flgMaxDepth

	if flgBench {
		if err := runBench(eng, flgBenchDepth, flgProfile); err != nil {
			log.Fatal().Err(err).Msg("bench failed")
		}
		return
	}

	var ponder bool
	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "MaxDepth", Min: 1, Max: engine.MaxPly - 1, Value: &eng.Options.MaxDepth},
			&uci.IntOption{Name: "MoveOverhead", Min: 0, Max: 5000, Value: &eng.Options.MoveOverhead},
			&uci.BoolOption{Name: "Ponder", Value: &ponder},
			&uci.ButtonOption{Name: "Clear", Action: eng.Clear},
		},
	)
	if err := protocol.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("uci protocol stopped")
	}
}
