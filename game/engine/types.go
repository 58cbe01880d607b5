package engine

import "errors"

// Board geometry
const (
	Columns  = 7
	Rows     = 6
	MaxPlies = Columns * Rows

	// columnStride is the bit distance between the bases of adjacent
	// columns: one wider than the playable column height, leaving a
	// sentinel bit above every column.
	columnStride = Rows + 1
)

// Player identifies one of the two sides. Yellow always moves first.
type Player uint8

const (
	Yellow Player = iota
	Red
)

func (p Player) String() string {
	if p == Yellow {
		return "yellow"
	}
	return "red"
}

// Outcome is the terminal classification of a game. It starts as
// Undecided and, once set to anything else, never changes again.
type Outcome uint8

const (
	Undecided Outcome = iota
	YellowWins
	RedWins
	Draw
)

// Decided reports whether the game has reached a terminal outcome.
func (o Outcome) Decided() bool { return o != Undecided }

func (o Outcome) String() string {
	switch o {
	case YellowWins:
		return "yellow wins"
	case RedWins:
		return "red wins"
	case Draw:
		return "draw"
	default:
		return "undecided"
	}
}

var (
	// ErrGameOver rejects moves submitted after the outcome was decided.
	ErrGameOver = errors.New("game already decided")
	// ErrIllegalMove rejects a column outside 0-6 or one that is full.
	ErrIllegalMove = errors.New("illegal move")
	// ErrIllegalMoveBatch rejects an entire move sequence when any
	// element of it is illegal.
	ErrIllegalMoveBatch = errors.New("illegal move in batch")
)

// GameState is a full game position. The zero value is a fresh game.
//
// It is a comparable value type built from fixed-size arrays only, so a
// struct copy is a deep copy and == compares entire positions. Rejected
// operations return the receiver unchanged.
type GameState struct {
	boards  [2]bitboard
	fill    [Columns]uint8
	moves   [MaxPlies]int8
	ply     int
	outcome Outcome
}

// NewGame returns the initial position: empty board, yellow to move.
func NewGame() GameState {
	return GameState{}
}

// Ply returns the number of moves played so far by both sides combined.
func (s GameState) Ply() int { return s.ply }

// Outcome returns the game's terminal classification, Undecided while
// the game is still running.
func (s GameState) Outcome() Outcome { return s.outcome }

// ToMove returns the side whose turn it is. The side is derived from
// ply parity, never stored.
func (s GameState) ToMove() Player {
	if s.ply%2 == 0 {
		return Yellow
	}
	return Red
}

// Moves returns a copy of the move log, one column per ply in play
// order.
func (s GameState) Moves() []int {
	out := make([]int, s.ply)
	for i := range out {
		out[i] = int(s.moves[i])
	}
	return out
}

// Cell reports which player occupies the given cell, if any. Rows count
// from the bottom. Out-of-range coordinates are simply empty.
func (s GameState) Cell(column, row int) (Player, bool) {
	if column < 0 || column >= Columns || row < 0 || row >= Rows {
		return 0, false
	}
	switch m := cellMask(column, row); {
	case s.boards[Yellow]&m != 0:
		return Yellow, true
	case s.boards[Red]&m != 0:
		return Red, true
	}
	return 0, false
}
