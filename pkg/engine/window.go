package engine

import (
	"github.com/ChizhovVadim/chessuci/pkg/common"
	"github.com/ChizhovVadim/chessuci/pkg/score"
)

// searchWindow is implemented by FullWindow and NullWindow. The search is
// instantiated once per window type, so principal variation bookkeeping
// of a NullWindow compiles to empty calls.
type searchWindow[T score.Value, W any] interface {
	Alpha() T
	Beta() T
	WithAlpha(alpha T) W
	Depth() int
	Height() int
	Position() common.Position
	LowerDepth(m common.Move) W
	LowerDepthIntoNullWindow(m common.Move) NullWindow[T]
	IsPV() bool
	UpdatePV(m common.Move, child W)
}

type pvStack [MaxPly]Pv

type FullWindow[T score.Value] struct {
	alpha    T
	beta     T
	depth    int
	height   int
	position common.Position
	pvs      *pvStack
}

func (w FullWindow[T]) Alpha() T { return w.alpha }

func (w FullWindow[T]) Beta() T { return w.beta }

func (w FullWindow[T]) WithAlpha(alpha T) FullWindow[T] {
	w.alpha = alpha
	return w
}

func (w FullWindow[T]) Depth() int { return w.depth }

func (w FullWindow[T]) Height() int { return w.height }

func (w FullWindow[T]) Position() common.Position { return w.position }

func (w FullWindow[T]) IsPV() bool { return true }

func (w FullWindow[T]) PV() *Pv { return &w.pvs[w.height] }

func (w FullWindow[T]) LowerDepth(m common.Move) FullWindow[T] {
	var child = FullWindow[T]{
		alpha:    -score.AddDepth(w.beta, -1),
		beta:     -score.AddDepth(w.alpha, -1),
		depth:    w.depth - 1,
		height:   w.height + 1,
		position: w.position.MakeMove(m),
		pvs:      w.pvs,
	}
	child.pvs[child.height].Clear()
	return child
}

func (w FullWindow[T]) LowerDepthIntoNullWindow(m common.Move) NullWindow[T] {
	return newNullWindow(-score.AddDepth(w.alpha, -1), w.depth-1, w.height+1, w.position.MakeMove(m))
}

func (w FullWindow[T]) UpdatePV(m common.Move, child FullWindow[T]) {
	w.pvs[w.height].Update(m, &w.pvs[child.height])
}

// NullWindow is the one point window (beta-1, beta).
type NullWindow[T score.Value] struct {
	beta     T
	depth    int
	height   int
	position common.Position
}

func newNullWindow[T score.Value](beta T, depth, height int, p common.Position) NullWindow[T] {
	return NullWindow[T]{
		beta:     common.Max(beta, score.MinEval[T]()+1),
		depth:    depth,
		height:   height,
		position: p,
	}
}

func (w NullWindow[T]) Alpha() T { return w.beta - 1 }

func (w NullWindow[T]) Beta() T { return w.beta }

func (w NullWindow[T]) WithAlpha(alpha T) NullWindow[T] { return w }

func (w NullWindow[T]) Depth() int { return w.depth }

func (w NullWindow[T]) Height() int { return w.height }

func (w NullWindow[T]) Position() common.Position { return w.position }

func (w NullWindow[T]) IsPV() bool { return false }

func (w NullWindow[T]) LowerDepth(m common.Move) NullWindow[T] {
	return w.LowerDepthIntoNullWindow(m)
}

func (w NullWindow[T]) LowerDepthIntoNullWindow(m common.Move) NullWindow[T] {
	return newNullWindow(-score.AddDepth(w.Alpha(), -1), w.depth-1, w.height+1, w.position.MakeMove(m))
}

func (w NullWindow[T]) UpdatePV(m common.Move, child NullWindow[T]) {}
