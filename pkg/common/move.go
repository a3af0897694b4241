package common

import (
	"strings"

	"github.com/notnil/chess"
)

type Move struct {
	m *chess.Move
}

var MoveEmpty = Move{}

func NewMove(m *chess.Move) Move {
	return Move{m: m}
}

func (m Move) Chess() *chess.Move {
	return m.m
}

func (m Move) IsEmpty() bool {
	return m.m == nil
}

func (m Move) From() int {
	return int(m.m.S1())
}

func (m Move) To() int {
	return int(m.m.S2())
}

func (m Move) Promotion() int {
	if m.m == nil {
		return Empty
	}
	return pieceTypeOf(m.m.Promo())
}

func (m Move) Equal(other Move) bool {
	if m.m == nil || other.m == nil {
		return m.m == other.m
	}
	return m.m.S1() == other.m.S1() &&
		m.m.S2() == other.m.S2() &&
		m.m.Promo() == other.m.Promo()
}

func (m Move) String() string {
	if m.m == nil {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.m.S1().String())
	sb.WriteString(m.m.S2().String())
	switch m.m.Promo() {
	case chess.Queen:
		sb.WriteString("q")
	case chess.Rook:
		sb.WriteString("r")
	case chess.Bishop:
		sb.WriteString("b")
	case chess.Knight:
		sb.WriteString("n")
	}
	return sb.String()
}

func IndexOfMove(ml []Move, move Move) int {
	for i := range ml {
		if ml[i].Equal(move) {
			return i
		}
	}
	return -1
}
