// Package chessrules is a chess rules engine. A Game owns a board, accepts
// moves in square notation, rejects illegal ones, tracks whose turn it is
// and reports check, checkmate and stalemate. Pawn promotion is a two-step
// handshake: ApplyMove leaves the pawn on its last rank and marks it
// pending, and ResolvePromotion replaces it.
//
// There is no search, castling, en passant, draw claiming or undo.
//
// A Game is not safe for concurrent use.
package chessrules

import (
	"fmt"
	"io"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game is a single chess game.
type Game struct {
	pos       *engine.Position
	promotion chess.Promotion
	state     GameState

	logFile   io.Writer
	verbosity int
}

// Option configures a Game.
type Option func(*Game)

// WithLog sends running commentary to w. Verbosity 1 reports state
// changes, 2 also reports rejected requests. A nil writer or verbosity 0
// keeps the game silent, which is the default.
func WithLog(w io.Writer, verbosity int) Option {
	return func(g *Game) {
		g.logFile = w
		g.verbosity = verbosity
	}
}

// New creates a game in the standard starting position, White to move.
func New(opts ...Option) *Game {
	return newGame(engine.NewInitialPosition(), opts)
}

// NewFromSetup creates a game from a FEN setup string. The en passant
// field and the clocks are accepted but no rule uses them.
func NewFromSetup(setup string, opts ...Option) (*Game, error) {
	pos, err := engine.ParseFEN(setup)
	if err != nil {
		return nil, errors.Wrap(err, "setting up game")
	}
	return newGame(pos, opts), nil
}

func newGame(pos *engine.Position, opts []Option) *Game {
	g := &Game{pos: pos}
	for _, opt := range opts {
		opt(g)
	}
	g.state = engine.EvaluateState(&g.pos.Board, g.pos.ToMove)
	g.logf(1, "new game: %s, %s to move, %s\n", g.pos.FEN(), g.pos.ToMove, g.state)
	return g
}

// ApplyMove moves the piece on from to to and returns the state for the
// side now to move. A rejected move returns an error wrapping one of
// ErrMalformedSquare, ErrNoPieceAtOrigin, ErrWrongSideToMove or
// ErrIllegalDestination, and leaves the game unchanged.
//
// A pawn reaching its last rank stays a pawn and is marked pending; see
// ResolvePromotion.
func (g *Game) ApplyMove(from, to string) (GameState, error) {
	m, err := g.validateMove(from, to)
	if err != nil {
		g.logf(2, "rejected: %v\n", err)
		return g.state, err
	}

	if g.promotion.Names(m.From) || g.promotion.Names(m.To) {
		g.promotion = chess.NoPromotion()
	}
	if engine.ApplyMove(g.pos, m) {
		// Replaces any earlier unresolved promotion.
		g.promotion = chess.PendingAt(m.To)
		g.logf(1, "%s: promotion pending on %s\n", m, m.To)
	}
	g.updateState(m.String())
	return g.state, nil
}

// validateMove runs every check ApplyMove needs before touching the board.
func (g *Game) validateMove(from, to string) (chess.Move, error) {
	side := g.pos.ToMove.String()
	reject := func(err error) (chess.Move, error) {
		return chess.Move{}, &errors.MoveError{Err: err, From: from, To: to, Side: side}
	}

	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return reject(err)
	}
	toSq, err := chess.ParseSquare(to)
	if err != nil {
		return reject(err)
	}

	piece, ok := g.pos.Board.Get(fromSq)
	if !ok {
		return reject(errors.ErrNoPieceAtOrigin)
	}
	if piece.Colour != g.pos.ToMove {
		return reject(errors.ErrWrongSideToMove)
	}

	for _, dest := range engine.LegalMoves(&g.pos.Board, fromSq, piece) {
		if dest == toSq {
			return chess.Move{From: fromSq, To: toSq}, nil
		}
	}
	return reject(errors.ErrIllegalDestination)
}

// LegalDestinations returns the squares the piece on from may legally move
// to, sorted. The boolean is false when from is malformed or empty. The
// piece need not belong to the side to move.
func (g *Game) LegalDestinations(from string) ([]string, bool) {
	dests, err := g.LegalDestinationsErr(from)
	return dests, err == nil
}

// LegalDestinationsErr is LegalDestinations with the reason for a missing
// result: ErrMalformedSquare or ErrNoPieceAtOrigin.
func (g *Game) LegalDestinationsErr(from string) ([]string, error) {
	sq, err := chess.ParseSquare(from)
	if err != nil {
		return nil, err
	}
	piece, ok := g.pos.Board.Get(sq)
	if !ok {
		return nil, fmt.Errorf("%s: %w", from, errors.ErrNoPieceAtOrigin)
	}

	squares := engine.LegalMoves(&g.pos.Board, sq, piece)
	dests := make([]string, 0, len(squares))
	for _, s := range squares {
		dests = append(dests, s.String())
	}
	sort.Strings(dests)
	return dests, nil
}

// LegalMoves lists every legal move of the side to move in long algebraic
// form ("e2e4"), sorted.
func (g *Game) LegalMoves() []string {
	moves := engine.AllLegalMoves(&g.pos.Board, g.pos.ToMove)
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// LegalMoveCount returns how many legal moves colour has right now. The
// side not to move has none.
func (g *Game) LegalMoveCount(colour Colour) int {
	if colour != g.pos.ToMove {
		return 0
	}
	return len(engine.AllLegalMoves(&g.pos.Board, colour))
}

// ResolvePromotion replaces the pending pawn on square with the piece
// named by kind: 'q' queen, 'r' rook, 'b' bishop, 'k' or 'n' knight, in
// either case. It fails with ErrNoPendingPromotion unless a promotion is
// pending on square, and with ErrInvalidPromotionKind for any other letter.
//
// On success the pending marker is cleared and the state is recomputed, so
// a check given by the new piece is reported by CurrentState.
func (g *Game) ResolvePromotion(square string, kind byte) error {
	k := promotionKind(kind)
	return g.resolvePromotion(square, k, fmt.Sprintf("%q", kind))
}

// ResolvePromotionKind is ResolvePromotion with a typed piece kind.
func (g *Game) ResolvePromotionKind(square string, kind Kind) error {
	return g.resolvePromotion(square, kind, kind.String())
}

func (g *Game) resolvePromotion(square string, kind Kind, asked string) error {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		g.logf(2, "promotion rejected: %v\n", err)
		return err
	}
	if !g.promotion.Names(sq) {
		g.logf(2, "promotion rejected: nothing pending on %s\n", square)
		return fmt.Errorf("%s: %w", square, errors.ErrNoPendingPromotion)
	}
	if !engine.IsPromotionKind(kind) {
		g.logf(2, "promotion rejected: %s\n", asked)
		return fmt.Errorf("%s: %w", asked, errors.ErrInvalidPromotionKind)
	}

	engine.Promote(g.pos, sq, kind)
	g.promotion = chess.NoPromotion()
	g.updateState(fmt.Sprintf("%s=%c", sq, kind.Letter()))
	return nil
}

// promotionKind maps the console letters onto kinds. 'k' means knight
// here since a pawn can never become a king.
func promotionKind(c byte) Kind {
	switch c {
	case 'q', 'Q':
		return chess.Queen
	case 'r', 'R':
		return chess.Rook
	case 'b', 'B':
		return chess.Bishop
	case 'k', 'K', 'n', 'N':
		return chess.Knight
	}
	return chess.NoKind
}

// updateState recomputes the state for the side to move.
func (g *Game) updateState(cause string) {
	prev := g.state
	g.state = engine.EvaluateState(&g.pos.Board, g.pos.ToMove)
	if g.state != prev || g.state != InProgress {
		g.logf(1, "%s: %s to move, %s\n", cause, g.pos.ToMove, g.state)
	} else {
		g.logf(2, "%s: %s to move\n", cause, g.pos.ToMove)
	}
}

// MarkGameOver records that the caller has ended the game. It is only
// allowed once the game has reached checkmate or stalemate.
func (g *Game) MarkGameOver() error {
	switch g.state {
	case Checkmate, Stalemate:
		g.state = GameOver
		return nil
	case GameOver:
		return nil
	}
	return fmt.Errorf("state is %s: %w", g.state, errors.ErrGameNotOver)
}

// CurrentState returns the state for the side to move.
func (g *Game) CurrentState() GameState {
	return g.state
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() Colour {
	return g.pos.ToMove
}

// PendingPromotion returns the square of a pawn waiting for promotion.
func (g *Game) PendingPromotion() (string, bool) {
	sq, ok := g.promotion.Square()
	if !ok {
		return "", false
	}
	return sq.String(), true
}

// PieceAt returns the piece on square. The boolean is false when square is
// malformed or empty.
func (g *Game) PieceAt(square string) (Piece, bool) {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return Piece{}, false
	}
	return g.pos.Board.Get(sq)
}

// Castling returns the castling flags from setup, updated as kings and
// rooks move. No move generation uses them.
func (g *Game) Castling() CastlingRights {
	return g.pos.Castling
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return g.pos.FEN()
}

// Board returns a copy of the board.
func (g *Game) Board() Board {
	return g.pos.Board
}

// String renders the board as ASCII with the side to move underneath.
func (g *Game) String() string {
	return fmt.Sprintf("%s\n%s to move (%s)", g.pos.Board.String(), g.pos.ToMove, g.state)
}

func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.logFile == nil || g.verbosity < level {
		return
	}
	fmt.Fprintf(g.logFile, format, args...)
}
