package material

import (
	"github.com/ChizhovVadim/chessuci/pkg/common"
)

var pieceValues = [...]int{common.Empty: 0, common.Pawn: 100, common.Knight: 295, common.Bishop: 330, common.Rook: 500, common.Queen: 900, common.King: 0}

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate returns White's material minus Black's.
func (e *EvaluationService) Evaluate(p *common.Position) int {
	var counts = p.PieceCounts()
	var eval = 0
	for piece := common.Pawn; piece <= common.Queen; piece++ {
		eval += pieceValues[piece] * (counts[common.White][piece] - counts[common.Black][piece])
	}
	return eval
}
