package engine

import "fmt"

// Move drops a piece for the side to move into the given column and
// returns the resulting position.
//
// Preconditions are checked in order: a decided game rejects with
// ErrGameOver, then an out-of-range or full column rejects with
// ErrIllegalMove. On rejection the receiver is returned unchanged. Any
// integer is accepted as input.
func (s GameState) Move(column int) (GameState, error) {
	if s.outcome.Decided() {
		return s, fmt.Errorf("%w: outcome is %s", ErrGameOver, s.outcome)
	}
	if column < 0 || column >= Columns {
		return s, fmt.Errorf("%w: column %d out of range", ErrIllegalMove, column)
	}
	if s.fill[column] >= Rows {
		return s, fmt.Errorf("%w: column %d is full", ErrIllegalMove, column)
	}

	mover := s.ToMove()
	s.boards[mover] |= cellMask(column, int(s.fill[column]))
	s.fill[column]++
	s.moves[s.ply] = int8(column)
	s.ply++

	// Only the mover's board can have gained a line.
	switch {
	case s.boards[mover].connectsFour():
		if mover == Yellow {
			s.outcome = YellowWins
		} else {
			s.outcome = RedWins
		}
	case s.ply == MaxPlies:
		s.outcome = Draw
	}
	return s, nil
}

// MoveAll applies a sequence of moves atomically: each move is
// validated against the position reached by the moves before it, and if
// any one is illegal the whole batch is discarded and the original
// receiver is returned with ErrIllegalMoveBatch. Intermediate positions
// are plain values, so rollback is just returning the input.
func (s GameState) MoveAll(columns []int) (GameState, error) {
	next := s
	for i, column := range columns {
		var err error
		if next, err = next.Move(column); err != nil {
			return s, fmt.Errorf("%w: move %d of %d: %v", ErrIllegalMoveBatch, i+1, len(columns), err)
		}
	}
	return next, nil
}

// LegalMoves returns the columns that still have room, in ascending
// order. It reports open columns regardless of outcome; callers that
// care whether the game is still running check Outcome separately, and
// Move enforces both.
func (s GameState) LegalMoves() []int {
	open := make([]int, 0, Columns)
	for c := 0; c < Columns; c++ {
		if s.fill[c] < Rows {
			open = append(open, c)
		}
	}
	return open
}
