// Package fen implements the FenDecoder collaborator: fromFEN(string) →
// Position. It is grounded on
// Oliverans-GooseEngine/goosemg/fen.go's ParseFEN, rewritten against
// position.Position's public API instead of reaching into goosemg's
// Board fields directly.
package fen

import (
	"errors"
	"strconv"
	"strings"

	"github.com/phaul/chess/position"
)

// StartPos is the FEN string for the standard initial position.
const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceTypeFromChar = map[rune]position.PieceType{
	'p': position.Pawn, 'n': position.Knight, 'b': position.Bishop,
	'r': position.Rook, 'q': position.Queen, 'k': position.King,
}

// Decode parses a FEN string into a Position. It validates piece
// placement, side to move, castling rights and en-passant target; the
// halfmove clock and fullmove number fields are accepted but not
// retained, since Position tracks no game-length counters and the core
// never needs them — fixed-depth iterative deepening has no use for ply
// count outside the search tree itself.
func Decode(s string) (*position.Position, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return nil, errors.New("fen: not enough fields")
	}

	pos := position.New()
	if err := decodePlacement(pos, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.SetSideToMove(position.White)
	case "b":
		pos.SetSideToMove(position.Black)
	default:
		return nil, errors.New("fen: side to move must be 'w' or 'b'")
	}

	white, black, err := decodeCastling(fields[2])
	if err != nil {
		return nil, err
	}
	pos.PushCastlingRights(position.White, white)
	pos.PushCastlingRights(position.Black, black)

	epSquare, err := decodeEnPassant(fields[3])
	if err != nil {
		return nil, err
	}
	pos.PushEnPassant(epSquare)

	return pos, nil
}

func decodePlacement(pos *position.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return errors.New("fen: expected 8 ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				pt, ok := pieceTypeFromChar[unicodeLower(ch)]
				if !ok {
					return errors.New("fen: unrecognized piece character")
				}
				if file >= 8 {
					return errors.New("fen: too many squares in rank")
				}
				color := position.Black
				if ch >= 'A' && ch <= 'Z' {
					color = position.White
				}
				pos.AddPiece(color, pt, rank*8+file)
				file++
			}
		}
		if file != 8 {
			return errors.New("fen: rank does not total 8 files")
		}
	}
	return nil
}

func unicodeLower(ch rune) rune {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

func decodeCastling(field string) (white, black position.CastleRights, err error) {
	if field == "-" {
		return 0, 0, nil
	}
	for _, ch := range field {
		switch ch {
		case 'K':
			white |= position.CastleRights(position.Short)
		case 'Q':
			white |= position.CastleRights(position.Long)
		case 'k':
			black |= position.CastleRights(position.Short)
		case 'q':
			black |= position.CastleRights(position.Long)
		default:
			return 0, 0, errors.New("fen: unrecognized castling character")
		}
	}
	return white, black, nil
}

func decodeEnPassant(field string) (int, error) {
	if field == "-" {
		return position.NoSquare, nil
	}
	if len(field) != 2 {
		return 0, errors.New("fen: malformed en-passant square")
	}
	file := int(field[0] - 'a')
	rank, err := strconv.Atoi(string(field[1]))
	if err != nil || file < 0 || file > 7 || rank < 1 || rank > 8 {
		return 0, errors.New("fen: malformed en-passant square")
	}
	return (rank-1)*8 + file, nil
}
