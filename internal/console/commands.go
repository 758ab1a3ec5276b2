package console

import (
	"fmt"
	"strings"
)

func (c *Console) defaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(&Command{
		Name:        "move",
		ShortName:   "m",
		Description: "Move a piece",
		Usage:       "move <from> <to>",
		Handler:     moveHandler,
	})
	r.Register(&Command{
		Name:        "moves",
		Description: "List legal destinations of a piece",
		Usage:       "moves <square>",
		Handler:     movesHandler,
	})
	r.Register(&Command{
		Name:        "legal",
		ShortName:   "l",
		Description: "List every legal move of the side to move",
		Usage:       "legal",
		Handler:     legalHandler,
	})
	r.Register(&Command{
		Name:        "promote",
		ShortName:   "p",
		Description: "Choose the piece for a waiting pawn",
		Usage:       "promote <q|r|b|n>",
		Handler:     promoteHandler,
	})
	r.Register(&Command{
		Name:        "board",
		ShortName:   "b",
		Description: "Show the board",
		Usage:       "board",
		Handler:     boardHandler,
	})
	r.Register(&Command{
		Name:        "fen",
		Description: "Show the position as FEN",
		Usage:       "fen",
		Handler:     fenHandler,
	})
	r.Register(&Command{
		Name:        "new",
		ShortName:   "n",
		Description: "Start a new game, optionally from a FEN",
		Usage:       "new [fen]",
		Handler:     newHandler,
	})
	r.Register(&Command{
		Name:        "help",
		ShortName:   "?",
		Description: "Show available commands",
		Usage:       "help [command]",
		Handler:     helpHandler,
	})
	r.Register(&Command{
		Name:        "quit",
		ShortName:   "q",
		Description: "Leave the console",
		Usage:       "quit",
		Handler:     quitHandler,
	})
	r.Register(&Command{
		Name:        "exit",
		ShortName:   "x",
		Description: "Leave the console",
		Usage:       "exit",
		Handler:     quitHandler,
	})

	return r
}

func moveHandler(c *Console, args []string) error {
	if from, to, ok := splitMove(args); ok {
		return c.move(from, to)
	}
	return fmt.Errorf("usage: move <from> <to>")
}

func movesHandler(c *Console, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: moves <square>")
	}
	dests, err := c.game.LegalDestinationsErr(args[0])
	if err != nil {
		return err
	}
	if len(dests) == 0 {
		fmt.Fprintf(c.out, "%s: no legal moves\n", args[0])
		return nil
	}
	fmt.Fprintf(c.out, "%s: %s\n", args[0], strings.Join(dests, " "))
	return nil
}

func legalHandler(c *Console, _ []string) error {
	moves := c.game.LegalMoves()
	fmt.Fprintf(c.out, "%d legal moves: %s\n", len(moves), strings.Join(moves, " "))
	return nil
}

func promoteHandler(c *Console, args []string) error {
	sq, ok := c.game.PendingPromotion()
	if !ok {
		return fmt.Errorf("no pawn is waiting for promotion")
	}
	answer := ""
	if len(args) > 0 {
		answer = args[0]
	}
	c.promote(sq, answer)
	return nil
}

func boardHandler(c *Console, _ []string) error {
	c.showBoard()
	return nil
}

func fenHandler(c *Console, _ []string) error {
	fmt.Fprintln(c.out, c.game.FEN())
	return nil
}

func newHandler(c *Console, args []string) error {
	fen := c.cfg.StartFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if err := c.newGame(fen); err != nil {
		return err
	}
	c.showBoard()
	return nil
}

func helpHandler(c *Console, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	text, err := c.registry.Help(name)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, text)
	return nil
}

func quitHandler(c *Console, _ []string) error {
	c.quit = true
	return nil
}
