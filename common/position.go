package common

import (
	"bytes"
	"fmt"
	"strconv"
	s "strings"
	"unicode"
)

const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Position is a read-only board snapshot. It carries no move history and no
// castling state: the endgame material this project recognizes cannot castle.
type Position struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings, White, Black uint64
	WhiteMove                                                   bool
	Rule50, EpSquare                                            int
}

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type coloredPiece struct {
	Type int
	Side bool
}

func createPosition(board [64]coloredPiece, wtm bool, ep, fifty int) (Position, bool) {
	var p = Position{
		WhiteMove: wtm,
		EpSquare:  ep,
		Rule50:    fifty,
	}

	for sq, piece := range board {
		if piece.Type != Empty {
			xorPiece(&p, piece.Type, piece.Side, sq)
		}
	}

	if !p.isValid() {
		return Position{}, false
	}
	return p, true
}

func NewPositionFromFEN(fen string) (Position, error) {
	var tokens = s.Split(fen, " ")
	if len(tokens) <= 3 {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}

	var board [64]coloredPiece

	var i = 0
	for _, ch := range tokens[0] {
		if unicode.IsDigit(ch) {
			var n, _ = strconv.Atoi(string(ch))
			i += n
		} else if unicode.IsLetter(ch) {
			var pt = parsePiece(ch)
			board[FlipSquare(i)] = pt
			i++
		}
	}

	var whiteMove = tokens[1] == "w"

	var epSquare = ParseSquare(tokens[3])

	var rule50 = 0
	if len(tokens) > 4 {
		rule50, _ = strconv.Atoi(tokens[4])
	}

	var pos, isValid = createPosition(board, whiteMove, epSquare, rule50)
	if !isValid {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}
	return pos, nil
}

func (p *Position) String() string {
	var sb bytes.Buffer

	var emptyCount = 0

	for i := 0; i < 64; i++ {
		var sq = FlipSquare(i)
		var piece = p.WhatPiece(sq)
		if piece == Empty {
			emptyCount++
		} else {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}

			var pieceSide = (p.White & SquareMask[sq]) != 0
			sb.WriteString(pieceToChar(piece, pieceSide))
		}

		if File(sq) == FileH {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			if Rank(sq) != Rank1 {
				sb.WriteString("/")
			}
		}
	}
	sb.WriteString(" ")

	if p.WhiteMove {
		sb.WriteString("w")
	} else {
		sb.WriteString("b")
	}
	sb.WriteString(" - ")

	if p.EpSquare == SquareNone {
		sb.WriteString("-")
	} else {
		sb.WriteString(SquareName(p.EpSquare))
	}
	sb.WriteString(" ")

	sb.WriteString(strconv.Itoa(p.Rule50))
	sb.WriteString(" ")

	sb.WriteString(strconv.Itoa(p.Rule50/2 + 1))

	return sb.String()
}

func (p *Position) WhatPiece(sq int) int {
	var bb = SquareMask[sq]
	if ((p.White | p.Black) & bb) == 0 {
		return Empty
	}
	if (p.Pawns & bb) != 0 {
		return Pawn
	}
	if (p.Knights & bb) != 0 {
		return Knight
	}
	if (p.Bishops & bb) != 0 {
		return Bishop
	}
	if (p.Rooks & bb) != 0 {
		return Rook
	}
	if (p.Queens & bb) != 0 {
		return Queen
	}
	if (p.Kings & bb) != 0 {
		return King
	}
	panic(fmt.Errorf("Wrong piece on %s", SquareName(sq)))
}

func (p *Position) GetPieceTypeAndSide(sq int) (pieceType int, side bool) {
	var bb = SquareMask[sq]
	if (p.White & bb) != 0 {
		side = true
	} else if (p.Black & bb) != 0 {
		side = false
	} else {
		pieceType = Empty
		return
	}
	pieceType = p.WhatPiece(sq)
	return
}

func (p *Position) PiecesByColor(side bool) uint64 {
	if side {
		return p.White
	}
	return p.Black
}

func (p *Position) PiecesByType(pieceType int) uint64 {
	switch pieceType {
	case Pawn:
		return p.Pawns
	case Knight:
		return p.Knights
	case Bishop:
		return p.Bishops
	case Rook:
		return p.Rooks
	case Queen:
		return p.Queens
	case King:
		return p.Kings
	}
	return 0
}

func (p *Position) Pieces(pieceType int, side bool) uint64 {
	return p.PiecesByType(pieceType) & p.PiecesByColor(side)
}

func (p *Position) Count(pieceType int, side bool) int {
	return PopCount(p.Pieces(pieceType, side))
}

// Square returns the square of the single piece of the given type and color,
// SquareNone when the side has no such piece.
func (p *Position) Square(pieceType int, side bool) int {
	var b = p.Pieces(pieceType, side)
	if b == 0 {
		return SquareNone
	}
	return FirstOne(b)
}

func (p *Position) KingSquare(side bool) int {
	return FirstOne(p.Kings & p.PiecesByColor(side))
}

// PawnPassed reports whether the pawn of the given color on sq has no enemy
// pawn in its path to promotion or on an adjacent file able to intercept it.
func (p *Position) PawnPassed(side bool, sq int) bool {
	if side {
		return (whitePassedMask[sq] & p.Pawns & p.Black) == 0
	}
	return (blackPassedMask[sq] & p.Pawns & p.White) == 0
}

func xorPiece(p *Position, piece int, side bool, square int) {
	var b = SquareMask[square]
	if side {
		p.White ^= b
	} else {
		p.Black ^= b
	}
	switch piece {
	case Pawn:
		p.Pawns ^= b
	case Knight:
		p.Knights ^= b
	case Bishop:
		p.Bishops ^= b
	case Rook:
		p.Rooks ^= b
	case Queen:
		p.Queens ^= b
	case King:
		p.Kings ^= b
	}
}

func (p *Position) isValid() bool {
	if PopCount(p.Kings&p.White) != 1 ||
		PopCount(p.Kings&p.Black) != 1 {
		return false
	}
	if SquareDistance(p.KingSquare(true), p.KingSquare(false)) <= 1 {
		return false
	}
	if (p.Pawns & (Rank1Mask | Rank8Mask)) != 0 {
		return false
	}
	return true
}

func MirrorPosition(p *Position) Position {
	var board [64]coloredPiece
	for i := range board {
		var pt, side = p.GetPieceTypeAndSide(i)
		if pt != Empty {
			board[FlipSquare(i)] = coloredPiece{pt, !side}
		}
	}
	var ep = SquareNone
	if p.EpSquare != SquareNone {
		ep = FlipSquare(p.EpSquare)
	}
	var pos, _ = createPosition(board, !p.WhiteMove, ep, p.Rule50)
	return pos
}
