package arena

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/ChizhovVadim/chessuci/pkg/common"
	"github.com/ChizhovVadim/chessuci/pkg/timer"
)

var errBadTimeControl = errors.New("bad time control")

func (tc TimeControl) validate() error {
	if tc.Time == 0 && tc.FixedTime == 0 && tc.FixedNodes == 0 && tc.FixedDepth == 0 {
		return errBadTimeControl
	}
	if tc.Time < 0 || tc.FixedTime < 0 || tc.FixedNodes < 0 || tc.FixedDepth < 0 || tc.MovesToGo < 0 {
		return errBadTimeControl
	}
	return nil
}

// newClock returns nil when the game is limited by nodes or depth only.
func newClock(tc TimeControl, player common.Color) *timer.Timer {
	var config = timer.Config{Player: player, Start: time.Now()}
	if tc.Time > 0 {
		var whiteTime, blackTime = tc.Time, tc.Time
		config.WhiteTime = &whiteTime
		config.BlackTime = &blackTime
		config.WhiteIncrement = tc.Increment
		config.BlackIncrement = tc.Increment
		if tc.MovesToGo > 0 {
			config.MovesToGo = tc.MovesToGo
			config.StartMovesToGo = tc.MovesToGo
			config.PeriodicBonus = tc.Time
		}
	} else if tc.FixedTime > 0 {
		config.MoveTime = tc.FixedTime
	} else {
		return nil
	}
	return timer.NewFromDurations(config)
}

func searchLimits(tc TimeControl, clock *timer.Timer) common.LimitsType {
	var limits common.LimitsType
	if clock != nil {
		limits = clock.Limits()
	}
	limits.Nodes = tc.FixedNodes
	limits.Depth = tc.FixedDepth
	return limits
}

func chessColor(c common.Color) chess.Color {
	if c == common.White {
		return chess.White
	}
	return chess.Black
}

// playGame plays one game from the opening. chess.Game is the referee:
// it detects mate, stalemate, insufficient material and the automatic
// draws, the claimable draws are claimed as soon as possible.
func playGame(
	ctx context.Context,
	engineA, engineB Engine,
	tc TimeControl,
	info gameInfo,
) (GameResult, error) {

	log.Debug().Int("game", info.gameNumber).Msg("game started")

	engineA.Clear()
	engineB.Clear()

	var fen, err = chess.FEN(info.opening)
	if err != nil {
		return GameResult{}, err
	}
	var game = chess.NewGame(fen)
	var startPos = common.NewPosition(game.Position())
	var clock = newClock(tc, startPos.SideToMove())
	var comment string

	for game.Outcome() == chess.NoOutcome {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		if draws := lo.Without(game.EligibleDraws(), chess.DrawOffer); len(draws) != 0 {
			if err := game.Draw(draws[0]); err != nil {
				return GameResult{}, err
			}
			break
		}
		if tc.MaxMoves > 0 && len(game.Moves()) >= 2*tc.MaxMoves {
			comment = "max moves"
			break
		}

		var positions = lo.Map(game.Positions(), func(p *chess.Position, _ int) common.Position {
			return common.NewPosition(p)
		})
		var curPosition = &positions[len(positions)-1]
		var eng Engine
		if curPosition.WhiteMove() == info.engineAIsWhite {
			eng = engineA
		} else {
			eng = engineB
		}
		var searchResult = eng.Search(ctx, common.SearchParams{
			Positions: positions,
			Limits:    searchLimits(tc, clock),
		})
		if clock != nil && clock.HasClock(clock.Player()) {
			if remaining, _ := clock.RemainingFor(clock.Player()); remaining == 0 {
				game.Resign(chessColor(curPosition.SideToMove()))
				comment = "time forfeit"
				break
			}
		}
		if len(searchResult.MainLine) == 0 {
			return GameResult{}, fmt.Errorf("game %v: engine returned no move in %v", info.gameNumber, curPosition)
		}
		var bestMove, ok = curPosition.FindMove(searchResult.MainLine[0])
		if !ok {
			return GameResult{}, fmt.Errorf("game %v: illegal move %v in %v", info.gameNumber, searchResult.MainLine[0], curPosition)
		}
		if err := game.Move(bestMove.Chess()); err != nil {
			return GameResult{}, err
		}
		if clock != nil {
			clock.MadeMove()
		}
	}

	var result = GameResult{
		GameNumber:     info.gameNumber,
		EngineAIsWhite: info.engineAIsWhite,
		Outcome:        game.Outcome(),
		Comment:        comment,
	}
	if result.Outcome == chess.NoOutcome {
		result.Outcome = chess.Draw
	}
	if result.Comment == "" {
		result.Comment = fmt.Sprint(game.Method())
	}
	game.AddTagPair("Round", strconv.Itoa(info.gameNumber))
	game.AddTagPair("White", lo.Ternary(info.engineAIsWhite, "A", "B"))
	game.AddTagPair("Black", lo.Ternary(info.engineAIsWhite, "B", "A"))
	game.AddTagPair("Result", string(result.Outcome))
	game.AddTagPair("Termination", result.Comment)
	result.PGN = game.String()
	return result, nil
}
