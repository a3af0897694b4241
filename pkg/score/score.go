// Package score implements the mate-aware search score shared by every
// width the search can be instantiated with.
//
// For a width with maximum M the number line is:
//
//	Null()                   = -M-1 (no result)
//	MinEval()                = -M
//	NewMate(ply, Black)      = -M+ply+1
//	ordinary evaluations
//	NewMate(ply, White)      =  M-ply-1
//	MaxEval()                =  M
//
// Scores are relative to the side to move. White in NewMate denotes the
// side to move delivering mate, Black the side to move being mated.
package score

import (
	"golang.org/x/exp/constraints"

	"github.com/ChizhovVadim/chessuci/pkg/common"
)

const MaxSupportedMates = 800

type Value interface {
	constraints.Signed
	~int16 | ~int32
}

func width[T Value]() int {
	var v T = 1 << 14
	if v<<2 == 0 {
		return 16
	}
	return 32
}

// Null is the sentinel returned by an aborted search. It is never a legal score.
func Null[T Value]() T {
	return T(1) << (width[T]() - 1)
}

func MaxEval[T Value]() T {
	return ^Null[T]()
}

func MinEval[T Value]() T {
	return -MaxEval[T]()
}

func NewMate[T Value](ply int, winner common.Color) T {
	ply = common.Limit(ply, 0, MaxSupportedMates)
	if winner == common.White {
		return MaxEval[T]() - T(ply) - 1
	}
	return MinEval[T]() + T(ply) + 1
}

func whiteMates[T Value](v T) bool {
	var m = MaxEval[T]()
	return v < m && v >= m-1-MaxSupportedMates
}

func blackMates[T Value](v T) bool {
	var m = MaxEval[T]()
	return v > -m && v <= -m+1+MaxSupportedMates
}

func IsMate[T Value](v T) bool {
	return whiteMates(v) || blackMates(v)
}

// DepthToMate returns the distance to mate in plies, positive when the side
// to move mates and negative when it is mated.
func DepthToMate[T Value](v T) (int, bool) {
	var m = MaxEval[T]()
	if whiteMates(v) {
		return int(m - 1 - v), true
	}
	if blackMates(v) {
		return -int(v + m - 1), true
	}
	return 0, false
}

// AddDepth moves a mate score amount plies further from the mate.
// Ordinary scores, infinities and Null are returned unchanged.
func AddDepth[T Value](v T, amount int) T {
	var m = MaxEval[T]()
	if whiteMates(v) {
		var ply = int(m-1-v) + amount
		if ply < 0 {
			return m
		}
		return NewMate[T](ply, common.White)
	}
	if blackMates(v) {
		var ply = int(v+m-1) + amount
		if ply < 0 {
			return -m
		}
		return NewMate[T](ply, common.Black)
	}
	return v
}

// Clamp maps values below MinEval (the sentinel) to MinEval.
func Clamp[T Value](v T) T {
	if v < MinEval[T]() {
		return MinEval[T]()
	}
	return v
}

// Negate converts a child score to the parent's point of view.
// Null is propagated unchanged.
func Negate[T Value](v T) T {
	if v == Null[T]() {
		return v
	}
	return -v
}

// FromInt converts a static evaluation, saturating it into the ordinary range.
func FromInt[T Value](v int) T {
	var hi = int(MaxEval[T]()) - 2 - MaxSupportedMates
	return T(common.Limit(v, -hi, hi))
}

func ToUci[T Value](v T) common.UciScore {
	if ply, ok := DepthToMate(v); ok {
		if ply >= 0 {
			return common.UciScore{Mate: (ply + 1) / 2}
		}
		return common.UciScore{Mate: -(-ply + 1) / 2}
	}
	return common.UciScore{Centipawns: int(v)}
}

func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
