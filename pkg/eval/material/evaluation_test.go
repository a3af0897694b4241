package material

import (
	"testing"

	"github.com/ChizhovVadim/chessuci/pkg/common"
)

func TestEvaluate(t *testing.T) {
	var tests = []struct {
		fen  string
		eval int
	}{
		{common.InitialPositionFen, 0},
		{"3q1k2/8/8/8/8/8/8/3QK3 w - - 0 1", 0},
		{"3q1k2/8/8/8/8/8/8/4K3 w - - 0 1", -900},
		{"3q1k2/8/8/8/8/8/8/4K3 b - - 0 1", -900},
		{"4k3/8/8/8/8/8/PPP5/RNB1K3 w - - 0 1", 3*100 + 500 + 295 + 330},
	}
	var e = NewEvaluationService()
	for _, test := range tests {
		var p, err = common.NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := e.Evaluate(&p); got != test.eval {
			t.Error(test.fen, got, test.eval)
		}
	}
}
