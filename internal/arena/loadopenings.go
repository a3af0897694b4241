package arena

import (
	"context"
	_ "embed"
	"strings"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/ChizhovVadim/chessuci/pkg/common"
)

//go:embed openings.txt
var openingsTxt string

// DefaultOpenings returns the embedded opening positions as FEN.
func DefaultOpenings() []string {
	return parseOpenings(openingsTxt)
}

func parseOpenings(text string) []string {
	var lines = lo.Map(strings.Split(text, "\n"), func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	return lo.Uniq(lo.Filter(lines, func(line string, _ int) bool {
		return !(line == "" || strings.HasPrefix(line, "//"))
	}))
}

func shuffleOpenings(openings []string) []string {
	var result = append([]string(nil), openings...)
	frand.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

// loadOpenings sends every opening twice, engine A plays it with both colors.
func loadOpenings(
	ctx context.Context,
	openings []string,
	gameInfos chan<- gameInfo,
) error {
	for i, opening := range openings {
		if _, err := common.NewPositionFromFEN(opening); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: false, gameNumber: 1 + 2*i + 1}:
		}
	}
	return nil
}
