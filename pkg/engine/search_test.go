package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/ChizhovVadim/chessuci/pkg/common"
	"github.com/ChizhovVadim/chessuci/pkg/eval/material"
	"github.com/ChizhovVadim/chessuci/pkg/score"
	"github.com/ChizhovVadim/chessuci/pkg/timer"
)

const (
	superEasyTacticFen = "3q1k2/8/8/8/8/8/8/3QK3 w - - 0 1"
	easyTacticFen      = "r5k1/p1p3bp/1p2q1p1/5p2/8/P1P4P/1P2BPP1/3QR1K1 w - - 0 1"
	mateInOneFen       = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	checkmatedFen      = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalematedFen      = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

func newPosition(t *testing.T, fen string) common.Position {
	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func newTestSearcher[T score.Value]() *Searcher[T] {
	return NewSearcher[T](material.NewEvaluationService(), &atomic.Bool{})
}

func bestMove[T score.Value](t *testing.T, fen string, depth int) (string, T) {
	var s = newTestSearcher[T]()
	var v = s.Search(newPosition(t, fen), score.MinEval[T](), score.MaxEval[T](), depth)
	if s.PV().Len() == 0 {
		t.Fatal("empty pv", fen, depth)
	}
	return s.PV().At(0).String(), v
}

func TestSuperEasyTactic(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		if move, _ := bestMove[int32](t, superEasyTacticFen, depth); move != "d1d8" {
			t.Error(depth, move)
		}
		if move, _ := bestMove[int16](t, superEasyTacticFen, depth); move != "d1d8" {
			t.Error(depth, move)
		}
	}
}

func TestEasyTactic(t *testing.T) {
	if testing.Short() {
		t.Skip("slow")
	}
	if move, _ := bestMove[int32](t, easyTacticFen, 4); move != "e2f3" {
		t.Error(move)
	}
}

func TestMateInOne(t *testing.T) {
	var move, v = bestMove[int32](t, mateInOneFen, 2)
	if move != "a1a8" || v != score.NewMate[int32](1, common.White) {
		t.Error(move, v)
	}
	var move16, v16 = bestMove[int16](t, mateInOneFen, 3)
	if move16 != "a1a8" || v16 != score.NewMate[int16](1, common.White) {
		t.Error(move16, v16)
	}
}

func TestTerminalPositions(t *testing.T) {
	var s = newTestSearcher[int32]()
	var v = s.Search(newPosition(t, checkmatedFen), score.MinEval[int32](), score.MaxEval[int32](), 1)
	if v != score.NewMate[int32](0, common.Black) {
		t.Error("checkmate", v)
	}
	v = s.Search(newPosition(t, stalematedFen), score.MinEval[int32](), score.MaxEval[int32](), 1)
	if v != 0 {
		t.Error("stalemate", v)
	}
	if s.PV().Len() != 0 {
		t.Error("terminal position has no pv")
	}
}

func TestCancelledSearch(t *testing.T) {
	var cancel = &atomic.Bool{}
	cancel.Store(true)
	var s = NewSearcher[int16](material.NewEvaluationService(), cancel)
	var v = s.Search(newPosition(t, superEasyTacticFen), score.MinEval[int16](), score.MaxEval[int16](), 3)
	if v != score.Null[int16]() {
		t.Error(v)
	}
}

func TestNodeLimit(t *testing.T) {
	var s = newTestSearcher[int32]()
	s.SetNodeLimit(50)
	var v = s.Search(newPosition(t, common.InitialPositionFen), score.MinEval[int32](), score.MaxEval[int32](), 6)
	if v != score.Null[int32]() {
		t.Error(v)
	}
	if !s.cancel.Load() {
		t.Error("node limit must set the cancellation flag")
	}
}

func TestRootMoves(t *testing.T) {
	var p = newPosition(t, superEasyTacticFen)
	var m, err = p.ParseMove("d1d2")
	if err != nil {
		t.Fatal(err)
	}
	var s = newTestSearcher[int32]()
	s.SetRootMoves([]common.Move{m})
	s.Search(p, score.MinEval[int32](), score.MaxEval[int32](), 2)
	if s.PV().Len() == 0 || s.PV().At(0).String() != "d1d2" {
		t.Error(s.PV().String())
	}
}

// cancelAfter sets the flag once the given depth has completed.
type cancelAfter struct {
	cancel *atomic.Bool
	depth  int
	calls  int
}

func (tm *cancelAfter) ContinueID(lastEval int32, t *timer.Timer, movesMade int) bool {
	tm.calls++
	if tm.calls >= tm.depth {
		tm.cancel.Store(true)
	}
	return true
}

func TestIterativeDeepeningKeepsPreviousPv(t *testing.T) {
	var cancel = &atomic.Bool{}
	var s = NewSearcher[int32](material.NewEvaluationService(), cancel)
	var id = NewIterativeDeepening[int32](s, &cancelAfter{cancel: cancel, depth: 2}, timer.NewWithoutIncrement(time.Hour))
	var reported []common.SearchInfo
	var result = id.Search(newPosition(t, superEasyTacticFen), 10, 0, func(si common.SearchInfo) {
		reported = append(reported, si)
	})
	if result.Depth != 2 || len(reported) != 2 {
		t.Fatal(result.Depth, len(reported))
	}
	if got, want := moveNames(result.Pv), moveNames(reported[1].MainLine); len(got) == 0 || got[0] != "d1d8" || len(got) != len(want) {
		t.Error(got, want)
	}
	if result.Score == score.Null[int32]() {
		t.Error("null score must be discarded")
	}
}

func TestIterativeDeepening(t *testing.T) {
	var s = newTestSearcher[int32]()
	var id = NewIterativeDeepening[int32](s, DefaultTimeManager[int32]{}, timer.NewWithoutIncrement(100000*time.Second))
	var result = id.Search(newPosition(t, superEasyTacticFen), 3, 0, nil)
	if result.Depth != 3 || len(result.Pv) == 0 || result.Pv[0].String() != "d1d8" {
		t.Error(result.Depth, moveNames(result.Pv))
	}
}
