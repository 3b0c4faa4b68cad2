package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
)

// driver reads requests line by line and applies them to one game. It is
// the presentation side: it only asks the game to attempt moves and to
// report its state.
type driver struct {
	cfg      *config.Config
	game     *engine.Game
	line     int
	rejected int
}

func newDriver(cfg *config.Config, game *engine.Game) *driver {
	return &driver{cfg: cfg, game: game}
}

// run processes requests from r until EOF or a quit command.
func (d *driver) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		d.line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if !d.handle(fields) {
			return nil
		}
	}
	return scanner.Err()
}

// handle executes one request. It returns false when input should stop.
func (d *driver) handle(fields []string) bool {
	out := d.cfg.OutputFile

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return false
	case "status":
		d.reportStatus()
	case "board":
		fmt.Fprint(out, d.game.Board())
	case "fen":
		fmt.Fprintln(out, d.game.FEN())
	case "undo":
		m, ok := d.game.Undo()
		if !ok {
			fmt.Fprintln(out, "nothing to undo")
			return true
		}
		fmt.Fprintf(out, "undone %v\n", m)
		d.logf(2, "line %d: undo %v, %s to move\n", d.line, m, d.game.Turn())
	case "moves":
		d.listMoves(fields[1:])
	default:
		d.move(fields)
	}
	return true
}

// move parses a coordinate request and passes it to the game.
func (d *driver) move(fields []string) {
	out := d.cfg.OutputFile

	from, to, err := parseRequest(fields)
	if err != nil {
		d.rejected++
		fmt.Fprintf(out, "invalid request: %v\n", err)
		d.logf(1, "line %d: %v\n", d.line, err)
		return
	}

	mover := d.game.Turn()
	if err := d.game.AttemptMove(from, to); err != nil {
		d.rejected++
		fmt.Fprintf(out, "rejected: %v\n", err)
		d.logf(1, "line %d: %v\n", d.line, err)
		return
	}

	fmt.Fprintf(out, "%s %s-%s\n", mover, from, to)
	d.logf(2, "line %d: %s played %s-%s, %d legal replies\n", d.line, mover, from, to, d.game.LegalMoveCount())
	if d.cfg.ShowBoard {
		fmt.Fprint(out, d.game.Board())
	}

	switch d.game.Status() {
	case chess.Checkmate:
		fmt.Fprintf(out, "checkmate, %s wins\n", mover)
	case chess.Stalemate:
		fmt.Fprintln(out, "stalemate")
	default:
		if d.game.InCheck() {
			fmt.Fprintf(out, "%s is in check\n", d.game.Turn())
		}
	}
}

func (d *driver) reportStatus() {
	g := d.game
	check := ""
	if g.InCheck() {
		check = ", in check"
	}
	fmt.Fprintf(d.cfg.OutputFile, "game %s ply %d: %s to move%s, %s\n", g.ID, g.Ply(), g.Turn(), check, g.Status())
}

func (d *driver) listMoves(args []string) {
	out := d.cfg.OutputFile

	pos, err := parseSquareArgs(args)
	if err != nil {
		fmt.Fprintf(out, "invalid request: %v\n", err)
		return
	}

	moves := d.game.LegalMoves(pos)
	targets := make([]string, 0, len(moves))
	for _, m := range moves {
		targets = append(targets, m.Target().String())
	}
	fmt.Fprintf(out, "%s: %s\n", pos, strings.Join(targets, " "))
}

// logf writes to the log when verbosity is at least level.
func (d *driver) logf(level int, format string, args ...interface{}) {
	if d.cfg.Verbosity >= level {
		fmt.Fprintf(d.cfg.LogFile, format, args...)
	}
}

// parseRequest reads a move request as four integers "file rank file rank"
// or two square names "e2 e4".
func parseRequest(fields []string) (from, to chess.Position, err error) {
	switch len(fields) {
	case 2:
		if from, err = chess.ParseSquare(fields[0]); err != nil {
			return from, to, err
		}
		to, err = chess.ParseSquare(fields[1])
		return from, to, err
	case 4:
		if from, err = parseCoordinates(fields[0], fields[1]); err != nil {
			return from, to, err
		}
		to, err = parseCoordinates(fields[2], fields[3])
		return from, to, err
	default:
		return from, to, fmt.Errorf("unrecognised request %q", strings.Join(fields, " "))
	}
}

// parseSquareArgs reads one square as a name or as a file and rank pair.
func parseSquareArgs(args []string) (chess.Position, error) {
	switch len(args) {
	case 1:
		return chess.ParseSquare(args[0])
	case 2:
		return parseCoordinates(args[0], args[1])
	default:
		return chess.Position{}, fmt.Errorf("expected a square, got %q", strings.Join(args, " "))
	}
}

func parseCoordinates(file, rank string) (chess.Position, error) {
	f, err := strconv.Atoi(file)
	if err != nil {
		return chess.Position{}, errors.Wrapf(err, "file %q", file)
	}
	r, err := strconv.Atoi(rank)
	if err != nil {
		return chess.Position{}, errors.Wrapf(err, "rank %q", rank)
	}
	return chess.NewPosition(f, r)
}
