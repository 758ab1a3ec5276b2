// Package console is a line-oriented text front end for a chess game. It
// reads one command per line, prints the board and asks for the promotion
// piece when a pawn reaches its last rank.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	chessrules "github.com/lgbarn/chessrules-go"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Console holds one game and the streams it talks over.
type Console struct {
	cfg      *config.Config
	out      io.Writer
	palette  palette
	game     *chessrules.Game
	registry *Registry
	quit     bool
}

// New creates a console playing from cfg.StartFEN. colour enables ANSI
// colours; the caller decides it from cfg.Console.Colour and the terminal.
func New(cfg *config.Config, out io.Writer, colour bool) (*Console, error) {
	c := &Console{
		cfg:     cfg,
		out:     out,
		palette: palette{enabled: colour},
	}
	if err := c.newGame(cfg.StartFEN); err != nil {
		return nil, err
	}
	c.registry = c.defaultRegistry()
	return c, nil
}

// Game returns the game being played.
func (c *Console) Game() *chessrules.Game {
	return c.game
}

// Done reports whether the user asked to quit.
func (c *Console) Done() bool {
	return c.quit
}

// Prompt returns the prompt for the next line: the promotion question
// while a pawn is waiting, otherwise the side to move.
func (c *Console) Prompt() string {
	if sq, ok := c.game.PendingPromotion(); ok {
		return c.palette.paint(Yellow, fmt.Sprintf("promote %s to (q/r/b/n) [%c] ", sq, c.cfg.Console.PromotionDefault))
	}
	return colourName(c.game.SideToMove(), c.palette) + " " + c.palette.paint(Yellow, c.cfg.Console.Prompt)
}

// Welcome prints the banner and the starting board.
func (c *Console) Welcome() {
	fmt.Fprintln(c.out, c.palette.paint(Cyan, "Chess rules console"))
	fmt.Fprintln(c.out, "Type 'help' for commands")
	fmt.Fprintln(c.out)
	c.showBoard()
}

// Handle executes one input line.
func (c *Console) Handle(line string) {
	line = strings.TrimSpace(line)

	if sq, ok := c.game.PendingPromotion(); ok && !c.isCommand(line) {
		c.promote(sq, line)
		return
	}
	if line == "" {
		return
	}

	fields := strings.Fields(line)
	cmd, ok := c.registry.Lookup(fields[0])
	if !ok {
		if from, to, ok := splitMove(fields); ok {
			c.report(c.move(from, to))
			return
		}
		c.errorf("unknown command: %s (type 'help' for commands)", fields[0])
		return
	}
	c.report(cmd.Handler(c, fields[1:]))
}

// Run reads lines from r until EOF or quit.
func (c *Console) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for !c.quit {
		fmt.Fprint(c.out, c.Prompt())
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			break
		}
		c.Handle(scanner.Text())
	}
	return scanner.Err()
}

// isCommand reports whether line starts with a full command name, so
// commands stay usable while the promotion prompt is showing. Single
// letters are promotion answers there, not short names.
func (c *Console) isCommand(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 || len(fields[0]) < 2 {
		return false
	}
	_, ok := c.registry.Lookup(fields[0])
	return ok
}

// splitMove accepts "e2 e4", "e2e4" and "e7e8q".
func splitMove(fields []string) (from, to string, ok bool) {
	switch {
	case len(fields) == 2 && len(fields[0]) == 2 && len(fields[1]) == 2:
		return fields[0], fields[1], true
	case len(fields) == 1 && (len(fields[0]) == 4 || len(fields[0]) == 5):
		return fields[0][:2], fields[0][2:], true
	}
	return "", "", false
}

func (c *Console) newGame(fen string) error {
	g, err := chessrules.NewFromSetup(fen, chessrules.WithLog(c.cfg.LogFile, c.cfg.Verbosity))
	if err != nil {
		return err
	}
	c.game = g
	return nil
}

// move applies from-to. A fifth character on to resolves the promotion at
// once.
func (c *Console) move(from, to string) error {
	var promotion byte
	if len(to) == 3 {
		promotion = to[2]
		to = to[:2]
	}

	if _, err := c.game.ApplyMove(from, to); err != nil {
		return err
	}
	c.cfg.Logf(2, "%s%s played\n", from, to)

	if sq, ok := c.game.PendingPromotion(); ok && promotion != 0 {
		if err := c.game.ResolvePromotion(sq, promotion); err != nil {
			c.errorf("%v", err)
			return nil
		}
	}
	c.afterMove()
	return nil
}

// promote answers the promotion prompt. An empty answer takes the default.
func (c *Console) promote(sq, answer string) {
	letter := c.cfg.Console.PromotionDefault
	if answer != "" {
		if len(answer) != 1 {
			c.errorf("answer with one letter: q, r, b or n")
			return
		}
		letter = answer[0]
	}
	if err := c.game.ResolvePromotion(sq, letter); err != nil {
		c.report(err)
		return
	}
	c.afterMove()
}

// afterMove shows the board and announces check and game end. Nothing is
// announced while a promotion is still pending.
func (c *Console) afterMove() {
	if _, pending := c.game.PendingPromotion(); pending {
		return
	}
	if c.cfg.Console.ShowBoard {
		c.showBoard()
	}

	side := c.game.SideToMove()
	switch c.game.CurrentState() {
	case chessrules.Check:
		fmt.Fprintln(c.out, c.palette.paint(Magenta, side.String()+" is in check"))
	case chessrules.Checkmate:
		fmt.Fprintf(c.out, "%s %s wins\n", c.palette.paint(Magenta, "Checkmate."), colourName(side.Opposite(), c.palette))
		c.endGame()
	case chessrules.Stalemate:
		fmt.Fprintln(c.out, c.palette.paint(Magenta, "Stalemate. Draw"))
		c.endGame()
	}
}

func (c *Console) endGame() {
	if err := c.game.MarkGameOver(); err != nil {
		c.errorf("%v", err)
		return
	}
	fmt.Fprintln(c.out, "Game over. Type 'new' to play again")
}

func (c *Console) showBoard() {
	RenderBoard(c.out, c.game.Board(), c.palette.enabled)
	fmt.Fprintf(c.out, "%s to move\n", colourName(c.game.SideToMove(), c.palette))
}

// report prints err, naming the rejection reason in plain words.
func (c *Console) report(err error) {
	if err == nil {
		return
	}
	var moveErr *errors.MoveError
	if errors.As(err, &moveErr) {
		c.errorf("%s%s rejected: %v", moveErr.From, moveErr.To, moveErr.Err)
		return
	}
	c.errorf("%v", err)
}

func (c *Console) errorf(format string, args ...interface{}) {
	fmt.Fprintln(c.out, c.palette.paint(Red, "Error: "+fmt.Sprintf(format, args...)))
}
