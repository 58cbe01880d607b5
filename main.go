// Command dropfour is a workbench for the Connect Four rules engine.
//
// It replays a move sequence through a game session and prints the
// resulting board, move log, outcome, and open columns. Sequences are
// given as 0-indexed column numbers, space- or comma-separated:
//
//	dropfour replay 3 3 4 4 5
//	dropfour replay 1,1,2,2,3,3,4
//
// By default the sequence is applied as one atomic batch and any
// illegal move rejects the whole sequence; with -each the moves are
// applied one at a time and rejections are reported individually.
// Colored output can be disabled with -plain or DROPFOUR_PLAIN=1
// (optionally via a .env file).
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"

	"dropfour/game/engine"
	"dropfour/game/session"
)

func main() {
	// Optional .env for defaults such as DROPFOUR_PLAIN; missing file
	// is fine.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "dropfour",
		Usage: "Connect Four rules engine workbench",
		Commands: []*cli.Command{
			replayCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func replayCommand() *cli.Command {
	return &cli.Command{
		Name:      "replay",
		Usage:     "apply a move sequence and print the resulting position",
		ArgsUsage: "columns...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "plain",
				Usage:   "disable colored output",
				Sources: cli.EnvVars("DROPFOUR_PLAIN"),
			},
			&cli.BoolFlag{
				Name:  "each",
				Usage: "apply moves one at a time instead of as an atomic batch",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			columns, err := parseColumns(cmd.Args().Slice())
			if err != nil {
				return err
			}

			opts := []termenv.OutputOption{}
			if cmd.Bool("plain") {
				opts = append(opts, termenv.WithProfile(termenv.Ascii))
			}
			out := termenv.NewOutput(os.Stdout, opts...)

			sess := session.New()
			if cmd.Bool("each") {
				for i, column := range columns {
					if _, err := sess.Submit(column); err != nil {
						fmt.Printf("move %d rejected: %v\n", i+1, err)
					}
				}
			} else if len(columns) > 0 {
				if _, err := sess.SubmitAll(columns); err != nil {
					fmt.Printf("sequence rejected: %v\n", err)
				}
			}

			report(out, sess)
			return nil
		},
	}
}

// parseColumns flattens command arguments into a column list. Both
// "3 3 4" and "3,3,4" forms are accepted.
func parseColumns(args []string) ([]int, error) {
	var columns []int
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			column, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("bad column %q: %w", field, err)
			}
			columns = append(columns, column)
		}
	}
	return columns, nil
}

// report prints the session's board, move log, outcome, and open
// columns.
func report(out *termenv.Output, sess *session.Session) {
	fmt.Print(renderBoard(out, sess.Board()))

	snap := sess.Inspect()
	fmt.Printf("moves:   %v\n", snap.Moves)
	fmt.Printf("outcome: %s\n", snap.Outcome)
	if !snap.Outcome.Decided() {
		fmt.Printf("to move: %s\n", sess.Board().ToMove())
	}
	fmt.Printf("open:    %v\n", sess.LegalMoves())
}

// renderBoard draws the position top row first, yellow as a filled disc
// and red as a hollow one, with ANSI color when the profile allows it.
func renderBoard(out *termenv.Output, state engine.GameState) string {
	yellow := out.String("●").Foreground(out.Color("3")).String()
	red := out.String("○").Foreground(out.Color("1")).String()

	var b strings.Builder
	for row := engine.Rows - 1; row >= 0; row-- {
		for column := 0; column < engine.Columns; column++ {
			if column > 0 {
				b.WriteByte(' ')
			}
			switch player, ok := state.Cell(column, row); {
			case ok && player == engine.Yellow:
				b.WriteString(yellow)
			case ok:
				b.WriteString(red)
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("0 1 2 3 4 5 6\n")
	return b.String()
}
