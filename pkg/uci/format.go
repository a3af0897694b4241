package uci

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/ChizhovVadim/chessuci/pkg/common"
)

func scoreToUci(score common.UciScore) string {
	var s string
	if score.Mate != 0 {
		s = fmt.Sprintf("mate %v", score.Mate)
	} else {
		s = fmt.Sprintf("cp %v", score.Centipawns)
	}
	if score.LowerBound {
		s += " lowerbound"
	} else if score.UpperBound {
		s += " upperbound"
	}
	return s
}

func movesToUci(ml []common.Move) string {
	return strings.Join(lo.Map(ml, func(m common.Move, _ int) string {
		return m.String()
	}), " ")
}

func searchInfoToUci(si common.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v score %v", si.Depth, scoreToUci(si.Score))
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	if len(si.MainLine) != 0 {
		sb.WriteString(" pv ")
		sb.WriteString(movesToUci(si.MainLine))
	}
	return sb.String()
}

// bestMoveToUci answers "bestmove 0000" when there is no legal move.
func bestMoveToUci(si common.SearchInfo) string {
	if len(si.MainLine) == 0 {
		return "bestmove 0000"
	}
	var s = "bestmove " + si.MainLine[0].String()
	if len(si.MainLine) >= 2 {
		s += " ponder " + si.MainLine[1].String()
	}
	return s
}
