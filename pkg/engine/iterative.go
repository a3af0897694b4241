package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/chessuci/pkg/common"
	"github.com/ChizhovVadim/chessuci/pkg/score"
	"github.com/ChizhovVadim/chessuci/pkg/timer"
)

type Result[T score.Value] struct {
	Pv    []common.Move
	Score T
	Depth int
}

type IterativeDeepening[T score.Value] struct {
	searcher    *Searcher[T]
	timeManager TimeManager[T]
	timer       *timer.Timer
}

func NewIterativeDeepening[T score.Value](searcher *Searcher[T], timeManager TimeManager[T], t *timer.Timer) *IterativeDeepening[T] {
	return &IterativeDeepening[T]{
		searcher:    searcher,
		timeManager: timeManager,
		timer:       t,
	}
}

// Search deepens from depth 1 to maxDepth. An iteration interrupted by the
// cancellation flag is discarded and the previous result is returned.
func (id *IterativeDeepening[T]) Search(p common.Position, maxDepth, movesMade int,
	progress func(si common.SearchInfo)) Result[T] {

	var start = time.Now()
	var result Result[T]
	id.searcher.ResetNodes()
	id.searcher.SetFirstRootMove(common.MoveEmpty)
	maxDepth = common.Min(maxDepth, MaxPly-1)

	for depth := 1; depth <= maxDepth; depth++ {
		var eval = id.searcher.Search(p, score.MinEval[T](), score.MaxEval[T](), depth)
		if eval == score.Null[T]() {
			log.Debug().Int("depth", depth).Msg("iteration cancelled")
			break
		}
		result = Result[T]{
			Pv:    id.searcher.PV().Moves(),
			Score: eval,
			Depth: depth,
		}
		if len(result.Pv) != 0 {
			id.searcher.SetFirstRootMove(result.Pv[0])
		}

		var si = common.SearchInfo{
			Depth:    depth,
			Score:    score.ToUci(eval),
			Nodes:    id.searcher.Nodes(),
			Time:     time.Since(start),
			MainLine: result.Pv,
		}
		log.Debug().
			Int("depth", depth).
			Int("score", int(eval)).
			Int64("nodes", si.Nodes).
			Dur("time", si.Time).
			Str("pv", id.searcher.PV().String()).
			Msg("iteration complete")
		if progress != nil {
			progress(si)
		}

		if !id.timeManager.ContinueID(eval, id.timer, movesMade) {
			break
		}
	}
	return result
}
