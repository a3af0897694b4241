package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/chessuci/pkg/common"
	"github.com/ChizhovVadim/chessuci/pkg/engine"
)

var benchFens = []string{
	common.InitialPositionFen,
	"3q1k2/8/8/8/8/8/8/3QK3 w - - 0 1",
	"r5k1/p1p3bp/1p2q1p1/5p2/8/P1P4P/1P2BPP1/3QR1K1 w - - 0 1",
	"r1bqkbnr/1ppp1ppp/p1n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 4",
	"r1bq1rk1/pp1nppbp/3p1np1/8/P2p1B2/4PN1P/1PP1BPP1/RN1Q1RK1 w - - 0 9",
	"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
}

// go tool pprof <dir>/cpu.pprof
func runBench(eng *engine.Engine, depth int, profileDir string) error {
	log.Info().
		Int("depth", depth).
		Str("profile", profileDir).
		Msg("bench started")
	defer log.Info().Msg("bench finished")

	if profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.Quiet).Stop()
	}

	var positions = make([]common.Position, 0, len(benchFens))
	for _, fen := range benchFens {
		var p, err = common.NewPositionFromFEN(fen)
		if err != nil {
			return err
		}
		positions = append(positions, p)
	}

	eng.Prepare()
	var ctx = context.Background()
	var start = time.Now()
	var nodes int64
	for _, p := range positions {
		eng.Clear()
		var searchInfo = eng.Search(ctx, common.SearchParams{
			Positions: []common.Position{p},
			Limits:    common.LimitsType{Depth: depth},
		})
		log.Debug().
			Str("fen", p.String()).
			Str("bestmove", searchInfo.MainLine[0].String()).
			Int64("nodes", searchInfo.Nodes).
			Msg("bench position")
		nodes += searchInfo.Nodes
	}
	var elapsed = time.Since(start)
	fmt.Println("Time", elapsed)
	fmt.Println("Nodes", nodes)
	fmt.Println("kNPS", nodes/(elapsed.Milliseconds()+1))
	return nil
}
