package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

// Position is an immutable board. MakeMove returns a new position.
type Position struct {
	pos *chess.Position
}

func NewPositionFromFEN(fen string) (Position, error) {
	var opt, err = chess.FEN(strings.TrimSpace(fen))
	if err != nil {
		return Position{}, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	return Position{pos: chess.NewGame(opt).Position()}, nil
}

func NewPosition(pos *chess.Position) Position {
	return Position{pos: pos}
}

func (p *Position) Chess() *chess.Position {
	return p.pos
}

func (p *Position) WhiteMove() bool {
	return p.pos.Turn() == chess.White
}

func (p *Position) SideToMove() Color {
	if p.WhiteMove() {
		return White
	}
	return Black
}

func (p *Position) LegalMoves() []Move {
	var ml = p.pos.ValidMoves()
	var result = make([]Move, len(ml))
	for i, m := range ml {
		result[i] = Move{m: m}
	}
	return result
}

// MovesTo returns the legal moves whose destination square is in target.
func (p *Position) MovesTo(target uint64) []Move {
	var result []Move
	for _, m := range p.pos.ValidMoves() {
		if target&(uint64(1)<<uint(m.S2())) != 0 {
			result = append(result, Move{m: m})
		}
	}
	return result
}

func (p *Position) Captures() []Move {
	return p.MovesTo(p.PiecesByColor(p.SideToMove().Other()))
}

func (p *Position) PiecesByColor(side Color) uint64 {
	var result uint64
	var board = p.pos.Board()
	for sq := 0; sq < 64; sq++ {
		var piece = board.Piece(chess.Square(sq))
		if piece != chess.NoPiece && colorOf(piece.Color()) == side {
			result |= uint64(1) << uint(sq)
		}
	}
	return result
}

// PieceOn returns the piece type (Empty if none) and its color.
func (p *Position) PieceOn(sq int) (int, Color) {
	var piece = p.pos.Board().Piece(chess.Square(sq))
	if piece == chess.NoPiece {
		return Empty, White
	}
	return pieceTypeOf(piece.Type()), colorOf(piece.Color())
}

// PieceCounts returns the number of pieces of each type for both sides.
func (p *Position) PieceCounts() (counts [2][King + 1]int) {
	var board = p.pos.Board()
	for sq := 0; sq < 64; sq++ {
		var piece = board.Piece(chess.Square(sq))
		if piece == chess.NoPiece {
			continue
		}
		counts[colorOf(piece.Color())][pieceTypeOf(piece.Type())]++
	}
	return
}

func (p *Position) MakeMove(m Move) Position {
	return Position{pos: p.pos.Update(m.m)}
}

func (p *Position) MakeMoveLAN(lan string) (Position, bool) {
	var m, err = p.ParseMove(lan)
	if err != nil {
		return Position{}, false
	}
	return p.MakeMove(m), true
}

func (p *Position) ParseMove(lan string) (Move, error) {
	for _, m := range p.pos.ValidMoves() {
		var move = Move{m: m}
		if strings.EqualFold(move.String(), lan) {
			return move, nil
		}
	}
	return MoveEmpty, fmt.Errorf("illegal move %v in position %v", lan, p.String())
}

// FindMove returns the legal move with the same squares and promotion as m.
func (p *Position) FindMove(m Move) (Move, bool) {
	for _, legal := range p.pos.ValidMoves() {
		var move = Move{m: legal}
		if move.Equal(m) {
			return move, true
		}
	}
	return MoveEmpty, false
}

func (p *Position) Status() Status {
	switch p.pos.Status() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	}
	return Ongoing
}

func (p *Position) FullMoveNumber() int {
	var fields = strings.Fields(p.String())
	if len(fields) < 6 {
		return 1
	}
	var n, err = strconv.Atoi(fields[5])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (p *Position) Equal(other *Position) bool {
	return p.String() == other.String()
}

func (p *Position) String() string {
	if p.pos == nil {
		return ""
	}
	return p.pos.String()
}

func colorOf(c chess.Color) Color {
	if c == chess.Black {
		return Black
	}
	return White
}

func pieceTypeOf(pt chess.PieceType) int {
	switch pt {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	}
	return Empty
}
