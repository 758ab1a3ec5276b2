package console

import (
	"io"
	"strings"

	chessrules "github.com/lgbarn/chessrules-go"
)

// RenderBoard writes an ASCII board with coloured pieces: White in blue,
// Black in red, files and ranks in cyan.
func RenderBoard(w io.Writer, board chessrules.Board, colour bool) {
	p := palette{enabled: colour}
	lines := strings.Split(board.String(), "\n")

	var sb strings.Builder
	for i, line := range lines {
		isFileLine := i == 0 || i == len(lines)-1
		for j := 0; j < len(line); j++ {
			c := line[j]
			switch {
			case c >= 'a' && c <= 'h' && isFileLine:
				sb.WriteString(p.paintByte(Cyan, c))
			case c >= '1' && c <= '8':
				sb.WriteString(p.paintByte(Cyan, c))
			case c >= 'A' && c <= 'Z':
				sb.WriteString(p.paintByte(Blue, c))
			case c >= 'a' && c <= 'z':
				sb.WriteString(p.paintByte(Red, c))
			default:
				sb.WriteByte(c)
			}
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}

// colourName returns the side name in its board colour.
func colourName(c chessrules.Colour, p palette) string {
	if c == chessrules.White {
		return p.paint(Blue, c.String())
	}
	return p.paint(Red, c.String())
}
