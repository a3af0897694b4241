package engine

import (
	"github.com/ChizhovVadim/chessuci/pkg/common"
)

type orderedMove struct {
	move common.Move
	key  int
}

var sortPieceValues = [...]int{common.Empty: 0, common.Pawn: 1, common.Knight: 2, common.Bishop: 3, common.Rook: 4, common.Queen: 5, common.King: 6}

func mvvlva(p *common.Position, move common.Move) int {
	var captured, _ = p.PieceOn(move.To())
	var moving, _ = p.PieceOn(move.From())
	return 8*(sortPieceValues[captured]+
		sortPieceValues[move.Promotion()]) -
		sortPieceValues[moving]
}

func isCaptureOrPromotion(p *common.Position, move common.Move) bool {
	var captured, _ = p.PieceOn(move.To())
	return captured != common.Empty ||
		move.Promotion() != common.Empty
}

// sortMoves puts captures and promotions first, most valuable victim first.
// Quiet moves keep their generation order.
func sortMoves(p *common.Position, ml []common.Move) {
	var buffer = make([]orderedMove, len(ml))
	for i, m := range ml {
		var key int
		if isCaptureOrPromotion(p, m) {
			key = 1000 + mvvlva(p, m)
		}
		buffer[i] = orderedMove{move: m, key: key}
	}
	for i := 1; i < len(buffer); i++ {
		j, t := i, buffer[i]
		for ; j > 0 && buffer[j-1].key < t.key; j-- {
			buffer[j] = buffer[j-1]
		}
		buffer[j] = t
	}
	for i := range buffer {
		ml[i] = buffer[i].move
	}
}

func moveToBegin(ml []common.Move, index int) {
	if index == 0 {
		return
	}
	var m = ml[index]
	copy(ml[1:index+1], ml[:index])
	ml[0] = m
}
