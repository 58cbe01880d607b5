// Package engine implements the Connect Four rules core.
//
// The engine package implements the game mechanics including:
//   - Move validation (column range, column fullness, finished games)
//   - Gravity placement on a 7-column, 6-row board
//   - Four-in-a-row detection in all four line directions
//   - Draw detection when all 42 cells are filled
//
// Core Types:
//
// GameState is the sole entity: an immutable, comparable value holding
// both players' bitboards, per-column fill counts, the move log, and the
// outcome. Every operation takes a GameState by value and returns a new
// one; the input is never modified, so callers can keep, compare, or
// discard intermediate states freely.
//
// Usage:
//
//	state := engine.NewGame()
//
//	state, err := state.Move(3)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Atomic batch: either all moves apply or none do.
//	state, err = state.MoveAll([]int{3, 4, 2})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(state.Outcome(), state.LegalMoves())
//
// Representation:
//
// Each player's pieces live in a 64-bit bitboard laid out in 7-bit
// column strides (bit 7*column+row, rows counted from the bottom). The
// seventh bit of each column is a sentinel no piece ever occupies; it
// separates adjacent columns so that shift-based line detection cannot
// see a run that wraps from the top of one column to the bottom of the
// next. Win detection is two shift-and-AND folds per direction,
// independent of how many pieces are on the board.
package engine
