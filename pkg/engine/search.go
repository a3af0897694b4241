package engine

import (
	"sync/atomic"

	"github.com/ChizhovVadim/chessuci/pkg/common"
	"github.com/ChizhovVadim/chessuci/pkg/score"
)

// Evaluator returns a static evaluation of the position from White's point of view.
type Evaluator interface {
	Evaluate(p *common.Position) int
}

// Searcher runs a single threaded negamax search with principal variation
// search and quiescence. The search stops and returns score.Null once the
// cancellation flag is set.
type Searcher[T score.Value] struct {
	evaluator Evaluator
	cancel    *atomic.Bool
	nodes     int64
	nodeLimit int64
	rootMoves []common.Move
	rootFirst common.Move
	pvs       pvStack
}

func NewSearcher[T score.Value](evaluator Evaluator, cancel *atomic.Bool) *Searcher[T] {
	if cancel == nil {
		cancel = &atomic.Bool{}
	}
	return &Searcher[T]{
		evaluator: evaluator,
		cancel:    cancel,
	}
}

// SetNodeLimit sets the cancellation flag after n nodes. Zero means no limit.
func (s *Searcher[T]) SetNodeLimit(n int64) {
	s.nodeLimit = n
}

// SetRootMoves restricts the root to the given moves. Empty means all moves.
func (s *Searcher[T]) SetRootMoves(moves []common.Move) {
	s.rootMoves = moves
}

// SetFirstRootMove makes the root search m first, usually the best move
// of the previous iteration.
func (s *Searcher[T]) SetFirstRootMove(m common.Move) {
	s.rootFirst = m
}

func (s *Searcher[T]) Nodes() int64 {
	return s.nodes
}

func (s *Searcher[T]) ResetNodes() {
	s.nodes = 0
}

func (s *Searcher[T]) PV() *Pv {
	return &s.pvs[0]
}

func (s *Searcher[T]) Search(p common.Position, alpha, beta T, depth int) T {
	s.pvs[0].Clear()
	if s.cancel.Load() {
		return score.Null[T]()
	}
	var w = FullWindow[T]{
		alpha:    alpha,
		beta:     beta,
		depth:    depth,
		position: p,
		pvs:      &s.pvs,
	}
	return negamax[T, FullWindow[T]](s, w)
}

// main search method
func negamax[T score.Value, W searchWindow[T, W]](s *Searcher[T], w W) T {
	if w.Depth() <= 0 {
		return quiescence[T, W](s, w)
	}
	s.incNodes()
	var p = w.Position()
	if w.Height() >= MaxPly-1 {
		return s.evaluate(&p)
	}
	var ml = s.genMoves(&p, w.Height())
	if len(ml) == 0 {
		if p.Status() == common.Checkmate {
			return score.NewMate[T](0, common.Black)
		}
		return 0
	}

	var best = score.MinEval[T]()
	for i, move := range ml {
		var value T
		var fullSearch = i == 0
		if !fullSearch {
			value = childValue(negamax[T, NullWindow[T]](s, w.LowerDepthIntoNullWindow(move)))
			fullSearch = !s.cancel.Load() && value > w.Alpha() && value < w.Beta()
		}
		var child W
		if fullSearch {
			child = w.LowerDepth(move)
			value = childValue(negamax[T, W](s, child))
		}
		if s.cancel.Load() {
			return score.Null[T]()
		}
		if value > best {
			best = value
		}
		if value > w.Alpha() {
			if fullSearch {
				w.UpdatePV(move, child)
			}
			if value >= w.Beta() {
				return value
			}
			w = w.WithAlpha(value)
		}
	}
	return best
}

func quiescence[T score.Value, W searchWindow[T, W]](s *Searcher[T], w W) T {
	s.incNodes()
	var p = w.Position()
	var standPat = s.evaluate(&p)
	if standPat >= w.Beta() {
		return w.Beta()
	}
	if standPat > w.Alpha() {
		w = w.WithAlpha(standPat)
	}
	if w.Height() >= MaxPly-1 {
		return w.Alpha()
	}
	for _, move := range s.genCaptures(&p) {
		var child = w.LowerDepth(move)
		var value = childValue(quiescence[T, W](s, child))
		if s.cancel.Load() {
			return score.Null[T]()
		}
		if value >= w.Beta() {
			return w.Beta()
		}
		if value > w.Alpha() {
			w.UpdatePV(move, child)
			w = w.WithAlpha(value)
		}
	}
	return w.Alpha()
}

func childValue[T score.Value](v T) T {
	if v == score.Null[T]() {
		return v
	}
	return -score.AddDepth(v, 1)
}

func (s *Searcher[T]) evaluate(p *common.Position) T {
	var eval = s.evaluator.Evaluate(p)
	if !p.WhiteMove() {
		eval = -eval
	}
	return score.FromInt[T](eval)
}

func (s *Searcher[T]) incNodes() {
	s.nodes++
	if s.nodeLimit > 0 && s.nodes >= s.nodeLimit {
		s.cancel.Store(true)
	}
}

func (s *Searcher[T]) genMoves(p *common.Position, height int) []common.Move {
	var ml = p.LegalMoves()
	if height == 0 {
		ml = filterRootMoves(ml, s.rootMoves)
	}
	sortMoves(p, ml)
	if height == 0 && !s.rootFirst.IsEmpty() {
		if index := common.IndexOfMove(ml, s.rootFirst); index >= 0 {
			moveToBegin(ml, index)
		}
	}
	return ml
}

// filterRootMoves keeps the legal moves listed in searchMoves.
// All moves are kept when the filter is empty or matches nothing.
func filterRootMoves(ml, searchMoves []common.Move) []common.Move {
	if len(searchMoves) == 0 {
		return ml
	}
	var filtered []common.Move
	for _, m := range ml {
		if common.IndexOfMove(searchMoves, m) >= 0 {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == 0 {
		return ml
	}
	return filtered
}

func (s *Searcher[T]) genCaptures(p *common.Position) []common.Move {
	var ml = p.Captures()
	sortMoves(p, ml)
	return ml
}
