package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/mknight/chessengine/internal/types"
)

// FenError is a structured parse error identifying the offending FEN
// field (§7). The core never panics on user input; every failure mode
// below is reported through this type instead.
type FenError struct {
	Field   string
	Message string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("fen: invalid %s: %s", e.Field, e.Message)
}

var pieceFromFenChar = map[byte]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

var fenCharFromPiece = map[Piece]byte{}

func init() {
	for ch, pc := range pieceFromFenChar {
		fenCharFromPiece[pc] = ch
	}
}

// NewPositionFromFen parses a FEN string into a freshly hashed Position,
// per §6: six space-separated fields, piece placement ranks 8->1.
func NewPositionFromFen(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, &FenError{"fields", fmt.Sprintf("expected at least 4 space-separated fields, got %d", len(fields))}
	}
	for len(fields) < 6 {
		// halfmove clock / fullmove number are commonly omitted; default them.
		fields = append(fields, []string{"0", "1"}[len(fields)-4])
	}

	p := &Position{enPassant: SqNone}

	if err := p.parsePlacement(fields[0]); err != nil {
		return nil, err
	}
	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, &FenError{"active color", fmt.Sprintf("expected 'w' or 'b', got %q", fields[1])}
	}
	rights, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	p.castling = rights

	if fields[3] == "-" {
		p.enPassant = SqNone
	} else {
		sq := MakeSquare(fields[3])
		if !sq.IsValid() {
			return nil, &FenError{"en passant", fmt.Sprintf("not a valid square: %q", fields[3])}
		}
		p.enPassant = sq
	}

	hm, err := strconv.Atoi(fields[4])
	if err != nil || hm < 0 {
		return nil, &FenError{"halfmove clock", fmt.Sprintf("expected a non-negative integer, got %q", fields[4])}
	}
	p.halfmoveClock = hm

	fm, err := strconv.Atoi(fields[5])
	if err != nil || fm < 1 {
		return nil, &FenError{"fullmove number", fmt.Sprintf("expected a positive integer, got %q", fields[5])}
	}
	p.fullmoveNo = fm

	p.recomputeOccAll()
	p.hash = p.computeHash()
	return p, nil
}

func (p *Position) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &FenError{"piece placement", fmt.Sprintf("expected 8 ranks separated by '/', got %d", len(ranks))}
	}
	for i, rankStr := range ranks {
		rank := Rank8 - Rank(i)
		file := FileA
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			switch {
			case ch >= '1' && ch <= '8':
				file += File(ch - '0')
			default:
				piece, ok := pieceFromFenChar[ch]
				if !ok {
					return &FenError{"piece placement", fmt.Sprintf("unknown piece character %q", string(ch))}
				}
				if file > FileH {
					return &FenError{"piece placement", fmt.Sprintf("rank %d has too many squares", rank+1)}
				}
				p.putPiece(piece, SquareOf(file, rank))
				file++
			}
		}
		if file != FileNone {
			return &FenError{"piece placement", fmt.Sprintf("rank %d does not sum to 8 squares", rank+1)}
		}
	}
	return nil
}

func parseCastling(s string) (CastlingRights, error) {
	if s == "-" {
		return CrNone, nil
	}
	var r CastlingRights
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			r |= CrWhiteKing
		case 'Q':
			r |= CrWhiteQueen
		case 'k':
			r |= CrBlackKing
		case 'q':
			r |= CrBlackQueen
		default:
			return CrNone, &FenError{"castling availability", fmt.Sprintf("invalid character %q", string(s[i]))}
		}
	}
	return r, nil
}

// Fen emits the position as a FEN string. It is the exact inverse of
// NewPositionFromFen for any position reachable from a legal game (§6).
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			piece := p.board[SquareOf(f, r)]
			if piece == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(fenCharFromPiece[piece])
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNo))
	return sb.String()
}
