package arena

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog/log"
)

// Statistics of engine A against engine B.
type Statistics struct {
	Wins            int
	Losses          int
	Draws           int
	WinningFraction float64
	EloDifference   float64
	LOS             float64
}

func (s Statistics) Games() int {
	return s.Wins + s.Losses + s.Draws
}

func showResults(
	ctx context.Context,
	gameResults <-chan GameResult,
	pgn io.Writer,
) (Statistics, error) {
	var wins, losses, draws int
	var stat Statistics
	for gameResult := range gameResults {
		switch gameResult.Points() {
		case 1:
			wins++
		case 0:
			losses++
		default:
			draws++
		}
		stat = computeStat(wins, losses, draws)
		log.Info().
			Int("game", gameResult.GameNumber).
			Str("result", string(gameResult.Outcome)).
			Str("comment", gameResult.Comment).
			Msg("finished game")
		log.Info().
			Int("wins", wins).
			Int("losses", losses).
			Int("draws", draws).
			Float64("winningFraction", stat.WinningFraction).
			Float64("elo", stat.EloDifference).
			Float64("los", stat.LOS).
			Msg("score")
		if pgn != nil {
			if _, err := fmt.Fprintf(pgn, "%s\n\n", gameResult.PGN); err != nil {
				return stat, err
			}
		}
	}
	return stat, ctx.Err()
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) Statistics {
	var games = wins + losses + draws
	var stat = Statistics{Wins: wins, Losses: losses, Draws: draws}
	if games == 0 {
		return stat
	}
	stat.WinningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	stat.EloDifference = -math.Log(1/stat.WinningFraction-1) * 400 / math.Ln10
	if wins+losses != 0 {
		stat.LOS = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	} else {
		stat.LOS = 0.5
	}
	return stat
}
