package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PseudoMoves returns the destinations the piece on from could reach by its
// movement pattern alone. It does not look at whose turn it is and does not
// reject moves that leave the mover's own king attacked.
func PseudoMoves(board *chess.Board, from chess.Square, piece chess.Piece) []chess.Square {
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, from, piece.Colour)
	case chess.Knight:
		return stepMoves(board, from, piece.Colour, knightOffsets)
	case chess.King:
		return stepMoves(board, from, piece.Colour, kingOffsets)
	case chess.Bishop:
		return slidingMoves(board, from, piece.Colour, diagonals)
	case chess.Rook:
		return slidingMoves(board, from, piece.Colour, orthogonals)
	case chess.Queen:
		return slidingMoves(board, from, piece.Colour, allLines)
	}
	return nil
}

// pawnMoves generates pushes, the double push from the home row and
// diagonal captures. There is no en passant.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	dir := colour.Forward()

	if one, ok := from.Offset(dir, 0); ok {
		if _, occupied := board.Get(one); !occupied {
			moves = append(moves, one)
			if from.Row == colour.HomeRow() {
				if two, ok := one.Offset(dir, 0); ok {
					if _, occupied := board.Get(two); !occupied {
						moves = append(moves, two)
					}
				}
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		target, ok := from.Offset(dir, dc)
		if !ok {
			continue
		}
		if occupant, occupied := board.Get(target); occupied && occupant.Colour != colour {
			moves = append(moves, target)
		}
	}
	return moves
}

// stepMoves handles the fixed-offset pieces: any on-board target not
// holding a friendly piece.
func stepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets []direction) []chess.Square {
	var moves []chess.Square
	for _, off := range offsets {
		target, ok := from.Offset(off.dr, off.dc)
		if !ok {
			continue
		}
		if occupant, occupied := board.Get(target); occupied && occupant.Colour == colour {
			continue
		}
		moves = append(moves, target)
	}
	return moves
}

// slidingMoves walks each ray until blocked.
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs []direction) []chess.Square {
	var moves []chess.Square
	visit := slideVisitor(colour)
	for _, dir := range dirs {
		moves = append(moves, walkRay(board, from, dir, visit)...)
	}
	return moves
}
