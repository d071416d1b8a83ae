package chess

// CastleSide distinguishes the two castling directions.
type CastleSide uint8

const (
	KingSide CastleSide = iota
	QueenSide
)

// CastlingRights is a 4-bit set of per-colour, per-side castling
// availability flags.
type CastlingRights uint8

const (
	WhiteKingSide  CastlingRights = 0b1000
	WhiteQueenSide CastlingRights = 0b0100
	BlackKingSide  CastlingRights = 0b0010
	BlackQueenSide CastlingRights = 0b0001

	AllCastlingRights CastlingRights = 0b1111
)

func castleMask(color PieceColor, side CastleSide) CastlingRights {
	if color == White {
		if side == KingSide {
			return WhiteKingSide
		}
		return WhiteQueenSide
	}
	if side == KingSide {
		return BlackKingSide
	}
	return BlackQueenSide
}

// GameState is the aggregate position: the board plus everything else
// a legal-move decision needs. It is mutated only through the engine's
// ApplyMove; hypothetical moves are explored on a Clone.
type GameState struct {
	Board          Board
	Turn           PieceColor
	CastlingRights CastlingRights

	// EnPassant is the capturable target square, valid only while
	// HasEnPassant is set, and only for the move immediately after
	// the double push that created it.
	EnPassant    Position
	HasEnPassant bool

	// HalfmoveClock counts plies since the last pawn move or capture;
	// 100 marks the position drawable by the fifty-move rule.
	HalfmoveClock  int
	FullmoveNumber int

	// CapturedPieces logs captures in the order they happened.
	CapturedPieces []Piece
}

// NewGameState returns a state with an empty board, White to move and
// no castling rights.
func NewGameState() *GameState {
	return &GameState{
		Turn:           White,
		FullmoveNumber: 1,
	}
}

// Clone returns a value-deep copy: an independent board and an
// independent capture log, sharing nothing with the receiver.
func (s *GameState) Clone() *GameState {
	clone := *s
	clone.CapturedPieces = append([]Piece(nil), s.CapturedPieces...)
	return &clone
}

// CanCastle reports whether the rights bit for the given colour and
// side is still set. Rights are independent of current blocking or
// attack conditions.
func (s *GameState) CanCastle(color PieceColor, side CastleSide) bool {
	return s.CastlingRights&castleMask(color, side) != 0
}

// SetCastle sets the rights bit for the given colour and side.
func (s *GameState) SetCastle(color PieceColor, side CastleSide) {
	s.CastlingRights |= castleMask(color, side)
}

// ClearCastle clears the rights bit for the given colour and side.
func (s *GameState) ClearCastle(color PieceColor, side CastleSide) {
	s.CastlingRights &^= castleMask(color, side)
}

// EnPassantTarget returns the current en-passant target square, if any.
func (s *GameState) EnPassantTarget() (Position, bool) {
	return s.EnPassant, s.HasEnPassant
}
