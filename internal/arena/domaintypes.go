package arena

import (
	"context"
	"time"

	"github.com/notnil/chess"

	"github.com/ChizhovVadim/chessuci/pkg/common"
)

// Engine is a player of the arena. Both the built-in engine and an external
// UCI engine satisfy it.
type Engine interface {
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
}

// TimeControl of a game. Clock time takes precedence over FixedTime.
// Zero values are not used.
type TimeControl struct {
	FixedNodes int
	FixedDepth int
	FixedTime  time.Duration
	Time       time.Duration
	Increment  time.Duration
	MovesToGo  int
	// the game is adjudicated a draw after MaxMoves full moves
	MaxMoves int
}

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type GameResult struct {
	GameNumber     int
	EngineAIsWhite bool
	Outcome        chess.Outcome
	Comment        string
	PGN            string
}

// Points of engine A: 1 win, 0.5 draw, 0 loss.
func (r GameResult) Points() float64 {
	switch r.Outcome {
	case chess.WhiteWon:
		if r.EngineAIsWhite {
			return 1
		}
		return 0
	case chess.BlackWon:
		if r.EngineAIsWhite {
			return 0
		}
		return 1
	}
	return 0.5
}
