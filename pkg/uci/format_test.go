package uci

import (
	"testing"
	"time"

	"github.com/ChizhovVadim/chessuci/pkg/common"
)

func TestScoreToUci(t *testing.T) {
	var tests = []struct {
		score common.UciScore
		want  string
	}{
		{common.UciScore{Centipawns: 35}, "cp 35"},
		{common.UciScore{Centipawns: -120, LowerBound: true}, "cp -120 lowerbound"},
		{common.UciScore{Centipawns: 7, UpperBound: true}, "cp 7 upperbound"},
		{common.UciScore{Mate: 3}, "mate 3"},
		{common.UciScore{Mate: -2}, "mate -2"},
	}
	for _, test := range tests {
		if got := scoreToUci(test.score); got != test.want {
			t.Error(test.score, got, test.want)
		}
	}
}

func TestSearchInfoToUci(t *testing.T) {
	var p = startPosition(t)
	var e2e4, _ = p.ParseMove("e2e4")
	var next = p.MakeMove(e2e4)
	var e7e5, _ = next.ParseMove("e7e5")
	var si = common.SearchInfo{
		Score:    common.UciScore{Centipawns: 20},
		Depth:    4,
		Nodes:    5000,
		Time:     999 * time.Millisecond,
		MainLine: []common.Move{e2e4, e7e5},
	}
	var want = "info depth 4 score cp 20 nodes 5000 time 999 nps 5000 pv e2e4 e7e5"
	if got := searchInfoToUci(si); got != want {
		t.Error(got)
	}
	if got := bestMoveToUci(si); got != "bestmove e2e4 ponder e7e5" {
		t.Error(got)
	}
	si.MainLine = si.MainLine[:1]
	if got := bestMoveToUci(si); got != "bestmove e2e4" {
		t.Error(got)
	}
	if got := bestMoveToUci(common.SearchInfo{}); got != "bestmove 0000" {
		t.Error(got)
	}
}
