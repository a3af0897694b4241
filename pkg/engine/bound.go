package engine

import (
	"github.com/ChizhovVadim/chessuci/pkg/common"
	"github.com/ChizhovVadim/chessuci/pkg/score"
)

type BoundKind uint8

const (
	BoundMin BoundKind = 1 << iota
	BoundMax
	BoundExact = BoundMin | BoundMax
)

func (k BoundKind) String() string {
	switch k {
	case BoundMin:
		return "lowerbound"
	case BoundMax:
		return "upperbound"
	case BoundExact:
		return "exact"
	}
	return ""
}

// Bound is a search result: the true score is at least Value (BoundMin),
// at most Value (BoundMax) or exactly Value.
type Bound[T score.Value] struct {
	Kind  BoundKind
	Value T
}

func NewMinBound[T score.Value](v T) Bound[T] {
	return Bound[T]{Kind: BoundMin, Value: v}
}

func NewMaxBound[T score.Value](v T) Bound[T] {
	return Bound[T]{Kind: BoundMax, Value: v}
}

func NewExactBound[T score.Value](v T) Bound[T] {
	return Bound[T]{Kind: BoundExact, Value: v}
}

func (b Bound[T]) Min() T {
	if b.Kind == BoundMax {
		return score.Null[T]()
	}
	return b.Value
}

func (b Bound[T]) Max() T {
	if b.Kind == BoundMin {
		return score.MaxEval[T]()
	}
	return b.Value
}

func (b Bound[T]) SkipSearch(alpha, beta T) (T, bool) {
	switch b.Kind {
	case BoundExact:
		return b.Value, true
	case BoundMin:
		if b.Value >= beta {
			return b.Value, true
		}
	case BoundMax:
		if b.Value <= alpha {
			return b.Value, true
		}
	}
	return 0, false
}

func (b Bound[T]) UpdateAlphaBeta(alpha, beta T) (T, T) {
	switch b.Kind {
	case BoundExact:
		return b.Value, b.Value
	case BoundMin:
		if alpha > b.Value {
			return alpha, beta
		}
		if beta > b.Value {
			return b.Value, beta
		}
		return b.Value, b.Value
	case BoundMax:
		if beta < b.Value {
			return alpha, beta
		}
		if alpha < b.Value {
			return alpha, b.Value
		}
		return b.Value, b.Value
	}
	return alpha, beta
}

// BoundEntry is a cached search result. It answers queries no deeper than Depth.
type BoundEntry[T score.Value] struct {
	Bound Bound[T]
	Depth int
	Move  common.Move
}

func NewBoundEntry[T score.Value](bound Bound[T], depth int, move common.Move) BoundEntry[T] {
	return BoundEntry[T]{Bound: bound, Depth: depth, Move: move}
}

func (e BoundEntry[T]) SkipSearch(depth int, alpha, beta T) (T, bool) {
	if depth > e.Depth {
		return 0, false
	}
	return e.Bound.SkipSearch(alpha, beta)
}

func (e BoundEntry[T]) UpdateAlphaBeta(depth int, alpha, beta T) (T, T) {
	if depth > e.Depth {
		return alpha, beta
	}
	return e.Bound.UpdateAlphaBeta(alpha, beta)
}
