package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/chessuci/pkg/common"
	"github.com/ChizhovVadim/chessuci/pkg/score"
	"github.com/ChizhovVadim/chessuci/pkg/timer"
)

const minTimeLimit = time.Millisecond

type Engine struct {
	Options   Options
	evaluator Evaluator
	searcher  *Searcher[int32]
	pondering atomic.Bool
	mu        sync.Mutex
	onPonder  func()
}

func NewEngine(evaluator Evaluator) *Engine {
	return &Engine{
		Options:   NewOptions(),
		evaluator: evaluator,
	}
}

func (e *Engine) Prepare() {
	if e.searcher == nil {
		e.searcher = NewSearcher[int32](e.evaluator, nil)
	}
}

func (e *Engine) Clear() {
	if e.searcher != nil {
		e.searcher.ResetNodes()
		e.searcher.SetFirstRootMove(common.MoveEmpty)
	}
}

// PonderHit switches a pondering search to the normal time control.
func (e *Engine) PonderHit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pondering.Store(false)
	if e.onPonder != nil {
		e.onPonder()
		e.onPonder = nil
	}
}

func (e *Engine) Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo {
	var start = time.Now()
	e.Prepare()
	var p = searchParams.Positions[len(searchParams.Positions)-1]
	var limits = searchParams.Limits
	var ml = p.LegalMoves()
	if len(ml) == 0 {
		return common.SearchInfo{}
	}

	var cancel = &atomic.Bool{}
	e.searcher.cancel = cancel
	e.searcher.SetNodeLimit(int64(limits.Nodes))
	e.searcher.SetRootMoves(limits.SearchMoves)

	var movesMade = p.FullMoveNumber() - 1
	var t = timer.NewFromLimits(limits, p.SideToMove())
	var tm = &limitsTimeManager{limits: limits, pondering: &e.pondering}

	var done = make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			cancel.Store(true)
		case <-done:
		}
	}()

	var hardLimit, hasHardLimit = e.hardLimit(t, movesMade)
	var deadline *time.Timer
	var armDeadline = func() {
		if hasHardLimit {
			deadline = time.AfterFunc(common.Max(hardLimit-t.Elapsed(), minTimeLimit), func() {
				cancel.Store(true)
			})
		}
	}
	var ponderHit = make(chan struct{})
	e.mu.Lock()
	e.pondering.Store(limits.Ponder)
	if limits.Ponder {
		e.onPonder = func() {
			armDeadline()
			close(ponderHit)
		}
	} else if !limits.Infinite {
		armDeadline()
	}
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.onPonder = nil
		e.pondering.Store(false)
		if deadline != nil {
			deadline.Stop()
		}
		e.mu.Unlock()
	}()

	var maxDepth = e.Options.MaxDepth
	if limits.Depth > 0 {
		maxDepth = common.Min(maxDepth, limits.Depth)
	}
	var progress = func(si common.SearchInfo) {
		if searchParams.Progress != nil && si.Nodes >= int64(e.Options.ProgressMinNodes) {
			searchParams.Progress(si)
		}
	}
	var id = NewIterativeDeepening[int32](e.searcher, tm, t)
	var result = id.Search(p, maxDepth, movesMade, progress)

	// the best move is sent only after stop or ponderhit
	if limits.Infinite {
		<-ctx.Done()
	} else if limits.Ponder {
		select {
		case <-ctx.Done():
		case <-ponderHit:
		}
	}

	if len(result.Pv) == 0 {
		ml = filterRootMoves(ml, limits.SearchMoves)
		sortMoves(&p, ml)
		result.Pv = ml[:1]
	}
	var si = common.SearchInfo{
		Depth:    result.Depth,
		Score:    score.ToUci(result.Score),
		Nodes:    e.searcher.Nodes(),
		Time:     time.Since(start),
		MainLine: result.Pv,
	}
	log.Debug().
		Int("depth", si.Depth).
		Int64("nodes", si.Nodes).
		Dur("time", si.Time).
		Str("bestmove", si.MainLine[0].String()).
		Msg("search finished")
	return si
}

func (e *Engine) hardLimit(t *timer.Timer, movesMade int) (time.Duration, bool) {
	var overhead = e.Options.moveOverhead()
	if !t.HasClock(t.Player()) {
		if t.MoveTime() == 0 {
			return 0, false
		}
		return common.Max(t.MoveTime()-overhead, minTimeLimit), true
	}
	var remaining, _ = t.RemainingFor(t.Player())
	var budget, _ = DefaultTimeManager[int32]{}.Budget(t, movesMade)
	var hard = common.Min(remaining/2, 5*budget) - overhead
	return common.Max(hard, minTimeLimit), true
}

type limitsTimeManager struct {
	DefaultTimeManager[int32]
	limits    common.LimitsType
	pondering *atomic.Bool
	depth     int
}

func (tm *limitsTimeManager) ContinueID(lastEval int32, t *timer.Timer, movesMade int) bool {
	tm.depth++
	if tm.limits.Infinite || tm.pondering.Load() {
		return true
	}
	if ply, ok := score.DepthToMate(lastEval); ok {
		if tm.limits.Mate > 0 && ply > 0 && ply <= 2*tm.limits.Mate-1 {
			return false
		}
		if score.Abs(ply) <= tm.depth-5 {
			return false
		}
	}
	return tm.DefaultTimeManager.ContinueID(lastEval, t, movesMade)
}
