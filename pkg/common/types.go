package common

import (
	"time"
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

const (
	Empty = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// LimitsType holds the parameters of the "go" command.
// Zero means the parameter was not given, except for the clocks:
// HasWhiteTime and HasBlackTime tell an exhausted clock from a missing one.
type LimitsType struct {
	Ponder         bool
	Infinite       bool
	HasWhiteTime   bool
	HasBlackTime   bool
	WhiteTime      int
	BlackTime      int
	WhiteIncrement int
	BlackIncrement int
	MoveTime       int
	MovesToGo      int
	Depth          int
	Nodes          int
	Mate           int
	SearchMoves    []Move
}

type SearchParams struct {
	Positions []Position
	Limits    LimitsType
	Progress  func(si SearchInfo)
}

type SearchInfo struct {
	Score    UciScore
	Depth    int
	Nodes    int64
	Time     time.Duration
	MainLine []Move
}

type UciScore struct {
	Centipawns int
	Mate       int
	LowerBound bool
	UpperBound bool
}
