package uci

import (
	"context"
	"fmt"
	"time"

	"github.com/notnil/chess"
	extuci "github.com/notnil/chess/uci"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/ChizhovVadim/chessuci/pkg/common"
)

// ExternalEngine drives a UCI engine subprocess. It implements Engine, so an
// external engine can play in the arena against the built-in one.
type ExternalEngine struct {
	path string
	eng  *extuci.Engine
}

func NewExternalEngine(path string, options map[string]string) (*ExternalEngine, error) {
	eng, err := extuci.New(path)
	if err != nil {
		return nil, fmt.Errorf("start engine %v: %w", path, err)
	}
	var cmds = []extuci.Cmd{extuci.CmdUCI}
	for name, value := range options {
		cmds = append(cmds, extuci.CmdSetOption{Name: name, Value: value})
	}
	cmds = append(cmds, extuci.CmdIsReady)
	if err := eng.Run(cmds...); err != nil {
		eng.Close()
		return nil, fmt.Errorf("init engine %v: %w", path, err)
	}
	return &ExternalEngine{path: path, eng: eng}, nil
}

func (e *ExternalEngine) Prepare() {}

func (e *ExternalEngine) Clear() {
	if err := e.eng.Run(extuci.CmdUCINewGame, extuci.CmdIsReady); err != nil {
		log.Error().Err(err).Str("engine", e.path).Msg("ucinewgame failed")
	}
}

// Search blocks until the engine answers bestmove. The context is not
// forwarded, the limits must bound the search.
func (e *ExternalEngine) Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo {
	var start = time.Now()
	var p = searchParams.Positions[len(searchParams.Positions)-1]
	var cmdPos = extuci.CmdPosition{Position: p.Chess()}
	if err := e.eng.Run(cmdPos, cmdGoFromLimits(searchParams.Limits)); err != nil {
		log.Error().Err(err).Str("engine", e.path).Msg("external search failed")
		return common.SearchInfo{}
	}
	var results = e.eng.SearchResults()
	var si = common.SearchInfo{
		Depth: results.Info.Depth,
		Score: common.UciScore{
			Centipawns: results.Info.Score.CP,
			Mate:       results.Info.Score.Mate,
			LowerBound: results.Info.Score.LowerBound,
			UpperBound: results.Info.Score.UpperBound,
		},
		Nodes: int64(results.Info.Nodes),
		Time:  time.Since(start),
	}
	if results.BestMove != nil {
		si.MainLine = append(si.MainLine, common.NewMove(results.BestMove))
		if results.Ponder != nil {
			si.MainLine = append(si.MainLine, common.NewMove(results.Ponder))
		}
	}
	if searchParams.Progress != nil {
		searchParams.Progress(si)
	}
	return si
}

func (e *ExternalEngine) Close() error {
	return e.eng.Close()
}

func cmdGoFromLimits(limits common.LimitsType) extuci.CmdGo {
	return extuci.CmdGo{
		SearchMoves: lo.Map(limits.SearchMoves, func(m common.Move, _ int) *chess.Move {
			return m.Chess()
		}),
		Ponder:         limits.Ponder,
		WhiteTime:      common.Milliseconds(limits.WhiteTime),
		BlackTime:      common.Milliseconds(limits.BlackTime),
		WhiteIncrement: common.Milliseconds(limits.WhiteIncrement),
		BlackIncrement: common.Milliseconds(limits.BlackIncrement),
		MovesToGo:      limits.MovesToGo,
		Depth:          limits.Depth,
		Nodes:          limits.Nodes,
		Mate:           limits.Mate,
		MoveTime:       common.Milliseconds(limits.MoveTime),
		Infinite:       limits.Infinite,
	}
}
