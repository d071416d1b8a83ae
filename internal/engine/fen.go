package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// The decoder runs in two phases: lexFEN turns the record into a flat
// token stream, then ParseFEN folds the stream into a GameState. A
// record that lexes can still fail to fold, e.g. nine piece ranks.

type fenTokenKind uint8

const (
	tokenPiece fenTokenKind = iota
	tokenEmpty
	tokenEndOfRank
	tokenEndOfBoard
	tokenTurn
	tokenCastle
	tokenEnPassant
	tokenHalfmove
	tokenFullmove
)

type fenToken struct {
	kind fenTokenKind
	ch   byte   // tokenPiece, tokenTurn, tokenCastle
	s    string // tokenEnPassant
	n    int    // tokenEmpty, tokenHalfmove, tokenFullmove
}

func lexFEN(fen string) ([]fenToken, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, errors.NewFENError(errors.ErrNotEnoughFields, "got %d fields, want 6", len(fields))
	}

	var tokens []fenToken
	for _, ch := range []byte(fields[0]) {
		switch {
		case ch == '/':
			tokens = append(tokens, fenToken{kind: tokenEndOfRank})
		case ch >= '1' && ch <= '8':
			tokens = append(tokens, fenToken{kind: tokenEmpty, n: int(ch - '0')})
		default:
			tokens = append(tokens, fenToken{kind: tokenPiece, ch: ch})
		}
	}
	tokens = append(tokens, fenToken{kind: tokenEndOfBoard})

	if len(fields[1]) != 1 {
		return nil, errors.NewFENError(errors.ErrInvalidTurn, "%q", fields[1])
	}
	tokens = append(tokens, fenToken{kind: tokenTurn, ch: fields[1][0]})

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			tokens = append(tokens, fenToken{kind: tokenCastle, ch: ch})
		}
	}

	if fields[3] != "-" {
		tokens = append(tokens, fenToken{kind: tokenEnPassant, s: fields[3]})
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, errors.NewFENError(errors.ErrInvalidField, "halfmove clock %q", fields[4])
	}
	tokens = append(tokens, fenToken{kind: tokenHalfmove, n: halfmove})

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 0 {
		return nil, errors.NewFENError(errors.ErrInvalidField, "fullmove number %q", fields[5])
	}
	return append(tokens, fenToken{kind: tokenFullmove, n: fullmove}), nil
}

var fenPieces = map[byte]chess.Piece{
	'P': {Kind: chess.Pawn, Color: chess.White},
	'N': {Kind: chess.Knight, Color: chess.White},
	'B': {Kind: chess.Bishop, Color: chess.White},
	'R': {Kind: chess.Rook, Color: chess.White},
	'Q': {Kind: chess.Queen, Color: chess.White},
	'K': {Kind: chess.King, Color: chess.White},
	'p': {Kind: chess.Pawn, Color: chess.Black},
	'n': {Kind: chess.Knight, Color: chess.Black},
	'b': {Kind: chess.Bishop, Color: chess.Black},
	'r': {Kind: chess.Rook, Color: chess.Black},
	'q': {Kind: chess.Queen, Color: chess.Black},
	'k': {Kind: chess.King, Color: chess.Black},
}

var fenCastleBits = map[byte]struct {
	color chess.PieceColor
	side  chess.CastleSide
}{
	'K': {chess.White, chess.KingSide},
	'Q': {chess.White, chess.QueenSide},
	'k': {chess.Black, chess.KingSide},
	'q': {chess.Black, chess.QueenSide},
}

// ParseFEN decodes a FEN record into a fresh GameState. All six fields
// are mandatory; a rank may omit its trailing empty-square count.
// Errors wrap the sentinels in the errors package, one per cause.
func ParseFEN(fen string) (*chess.GameState, error) {
	tokens, err := lexFEN(fen)
	if err != nil {
		return nil, err
	}

	state := chess.NewGameState()
	rank, file := 7, 0
	for _, tok := range tokens {
		switch tok.kind {
		case tokenPiece:
			piece, ok := fenPieces[tok.ch]
			if !ok {
				return nil, errors.NewFENError(errors.ErrInvalidPiece, "%q", tok.ch)
			}
			if file > 7 {
				return nil, errors.NewFENError(errors.ErrInvalidFileCount, "rank %d overflows", rank+1)
			}
			state.Board.Set(chess.NewPosition(uint8(rank), uint8(file)), piece)
			file++
		case tokenEmpty:
			file += tok.n
			if file > 8 {
				return nil, errors.NewFENError(errors.ErrInvalidFileCount, "rank %d overflows", rank+1)
			}
		case tokenEndOfRank:
			if rank == 0 {
				return nil, errors.NewFENError(errors.ErrInvalidRankCount, "more than 8 ranks")
			}
			rank--
			file = 0
		case tokenEndOfBoard:
			if rank != 0 {
				return nil, errors.NewFENError(errors.ErrInvalidRankCount, "got %d ranks, want 8", 8-rank)
			}
		case tokenTurn:
			switch tok.ch {
			case 'w':
				state.Turn = chess.White
			case 'b':
				state.Turn = chess.Black
			default:
				return nil, errors.NewFENError(errors.ErrInvalidTurn, "%q", tok.ch)
			}
		case tokenCastle:
			bit, ok := fenCastleBits[tok.ch]
			if !ok {
				return nil, errors.NewFENError(errors.ErrInvalidCastle, "%q", tok.ch)
			}
			state.SetCastle(bit.color, bit.side)
		case tokenEnPassant:
			pos, err := chess.ParsePosition(tok.s)
			if err != nil {
				return nil, errors.NewFENError(errors.ErrInvalidEnPassant, "%q", tok.s)
			}
			state.EnPassant = pos
			state.HasEnPassant = true
		case tokenHalfmove:
			state.HalfmoveClock = tok.n
		case tokenFullmove:
			state.FullmoveNumber = tok.n
		}
	}
	return state, nil
}

// NewInitialState returns the standard starting position.
func NewInitialState() *chess.GameState {
	state, err := ParseFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return state
}

// FormatFEN encodes state as a six-field FEN record. Empty-square runs
// are always written, including trailing ones, so output round-trips
// through ParseFEN byte for byte.
func FormatFEN(state *chess.GameState) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file <= 7; file++ {
			piece, ok := state.Board.Get(chess.NewPosition(uint8(rank), uint8(file)))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteByte(pieceLetter(piece))
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	if state.Turn == chess.White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}

	if state.CastlingRights == 0 {
		b.WriteByte('-')
	} else {
		for _, ch := range []byte("KQkq") {
			bit := fenCastleBits[ch]
			if state.CanCastle(bit.color, bit.side) {
				b.WriteByte(ch)
			}
		}
	}

	if ep, ok := state.EnPassantTarget(); ok {
		b.WriteString(" " + ep.String())
	} else {
		b.WriteString(" -")
	}

	fmt.Fprintf(&b, " %d %d", state.HalfmoveClock, state.FullmoveNumber)
	return b.String()
}

func pieceLetter(piece chess.Piece) byte {
	letters := "pnbrqk"
	ch := letters[piece.Kind]
	if piece.Color == chess.White {
		return ch - 'a' + 'A'
	}
	return ch
}
