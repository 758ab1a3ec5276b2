// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (pawn push direction in rows).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRow returns the row White or Black pawns start on.
func (c Colour) HomeRow() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// LastRow returns the row on which a pawn of this colour promotes.
func (c Colour) LastRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
// It returns NoKind for anything that is not a piece letter.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// Piece is a kind paired with a colour. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether p is the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Queen".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// GameState is the public state of a game as seen by the side to move.
type GameState int

const (
	InProgress GameState = iota
	Check
	Checkmate
	Stalemate
	GameOver
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case GameOver:
		return "GameOver"
	default:
		return "InProgress"
	}
}

// IsTerminal reports whether no further moves can be played.
func (s GameState) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == GameOver
}

// CastlingRights records the four castling flags from a setup string.
// Move generation never consults them.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// AllCastlingRights returns the rights of the standard starting position.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// String renders the rights in FEN form ("KQkq", "-", ...).
func (c CastlingRights) String() string {
	var out []byte
	if c.WhiteKingSide {
		out = append(out, 'K')
	}
	if c.WhiteQueenSide {
		out = append(out, 'Q')
	}
	if c.BlackKingSide {
		out = append(out, 'k')
	}
	if c.BlackQueenSide {
		out = append(out, 'q')
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// Promotion marks whether a pawn on its last rank awaits a replacement kind.
// The zero value means nothing is pending.
type Promotion struct {
	pending bool
	at      Square
}

// NoPromotion returns the marker for "nothing pending".
func NoPromotion() Promotion {
	return Promotion{}
}

// PendingAt returns a marker naming the square of the waiting pawn.
func PendingAt(sq Square) Promotion {
	return Promotion{pending: true, at: sq}
}

// Square returns the pending square and true, or false when none is pending.
func (p Promotion) Square() (Square, bool) {
	return p.at, p.pending
}

// IsPending reports whether a promotion awaits resolution.
func (p Promotion) IsPending() bool {
	return p.pending
}

// Names reports whether the marker is pending at sq.
func (p Promotion) Names(sq Square) bool {
	return p.pending && p.at == sq
}
