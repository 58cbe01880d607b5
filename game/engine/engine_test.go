package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawSequence fills all 42 cells without ever completing a line.
var drawSequence = []int{
	0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1,
	2, 3, 2, 3, 3, 2, 3, 2, 2, 3, 2, 3,
	4, 5, 4, 5, 5, 4, 5, 4, 4, 5, 4, 5,
	6, 6, 6, 6, 6, 6,
}

func mustPlay(t *testing.T, columns ...int) GameState {
	t.Helper()
	state, err := NewGame().MoveAll(columns)
	require.NoError(t, err)
	return state
}

func TestNewGame(t *testing.T) {
	state := NewGame()

	assert.Equal(t, 0, state.Ply())
	assert.Equal(t, Undecided, state.Outcome())
	assert.Equal(t, Yellow, state.ToMove())
	assert.Empty(t, state.Moves())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, state.LegalMoves())
}

func TestMove_TracksLogAndTurns(t *testing.T) {
	columns := []int{3, 3, 0, 6, 2}

	state := NewGame()
	for i, column := range columns {
		var err error
		state, err = state.Move(column)
		require.NoError(t, err, "move %d", i)
		assert.Equal(t, i+1, state.Ply())
	}

	assert.Equal(t, columns, state.Moves())
	assert.Equal(t, Red, state.ToMove(), "odd ply means red to move")
	assert.Equal(t, Undecided, state.Outcome())
}

func TestMove_RejectsIllegalColumns(t *testing.T) {
	tests := []struct {
		name   string
		setup  []int
		column int
	}{
		{"negative column", nil, -1},
		{"column past right edge", nil, 7},
		{"arbitrary large column", nil, 42},
		{"full column", []int{0, 0, 0, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustPlay(t, tt.setup...)

			next, err := state.Move(tt.column)
			require.ErrorIs(t, err, ErrIllegalMove)
			assert.Equal(t, state, next, "rejected move must not change the position")
		})
	}
}

func TestMove_RejectsFinishedGame(t *testing.T) {
	// Yellow completes a horizontal line on the bottom row.
	state := mustPlay(t, 1, 1, 2, 2, 3, 3, 4)
	require.Equal(t, YellowWins, state.Outcome())

	next, err := state.Move(0)
	require.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, state, next)
}

func TestMove_DetectsWins(t *testing.T) {
	tests := []struct {
		name    string
		columns []int
		want    Outcome
	}{
		{
			name:    "horizontal yellow on bottom row",
			columns: []int{1, 1, 2, 2, 3, 3, 4},
			want:    YellowWins,
		},
		{
			name:    "vertical red in column 6",
			columns: []int{0, 6, 5, 6, 5, 6, 5, 6},
			want:    RedWins,
		},
		{
			name:    "rising diagonal yellow",
			columns: []int{0, 1, 1, 2, 3, 2, 2, 3, 6, 3, 3},
			want:    YellowWins,
		},
		{
			name:    "falling diagonal yellow",
			columns: []int{3, 2, 2, 1, 1, 0, 1, 0, 0, 5, 0},
			want:    YellowWins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Every prefix must still be undecided: the win registers
			// the instant the connecting piece lands, not before.
			state := NewGame()
			for _, column := range tt.columns[:len(tt.columns)-1] {
				var err error
				state, err = state.Move(column)
				require.NoError(t, err)
				require.Equal(t, Undecided, state.Outcome())
			}

			state, err := state.Move(tt.columns[len(tt.columns)-1])
			require.NoError(t, err)
			assert.Equal(t, tt.want, state.Outcome())
		})
	}
}

func TestMove_DetectsDraw(t *testing.T) {
	state := NewGame()
	for i, column := range drawSequence {
		var err error
		state, err = state.Move(column)
		require.NoError(t, err, "move %d", i)
		if i < len(drawSequence)-1 {
			require.Equal(t, Undecided, state.Outcome(), "move %d", i)
		}
	}

	assert.Equal(t, MaxPlies, state.Ply())
	assert.Equal(t, Draw, state.Outcome())
	assert.Empty(t, state.LegalMoves())

	_, err := state.Move(0)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestMoveAll_AppliesWholeSequence(t *testing.T) {
	columns := []int{3, 3, 4, 4, 5}

	state, err := NewGame().MoveAll(columns)
	require.NoError(t, err)

	assert.Equal(t, columns, state.Moves())
	assert.Equal(t, len(columns), state.Ply())
}

func TestMoveAll_IsAtomic(t *testing.T) {
	tests := []struct {
		name    string
		setup   []int
		columns []int
	}{
		{"out-of-range element on fresh game", nil, []int{4, 7}},
		{"legal prefix then overfilled column", []int{0, 1}, []int{0, 0, 0, 0, 0, 0}},
		{"batch continuing past a win", nil, []int{1, 1, 2, 2, 3, 3, 4, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustPlay(t, tt.setup...)

			next, err := state.MoveAll(tt.columns)
			require.ErrorIs(t, err, ErrIllegalMoveBatch)
			assert.Equal(t, state, next, "failed batch must roll back completely")
		})
	}
}

func TestLegalMoves(t *testing.T) {
	t.Run("excludes full columns", func(t *testing.T) {
		state := mustPlay(t, 3, 3, 3, 3, 3, 3)
		assert.Equal(t, []int{0, 1, 2, 4, 5, 6}, state.LegalMoves())
	})

	t.Run("ignores outcome", func(t *testing.T) {
		// Open columns are still reported after a win; Move is where
		// the game-over check lives.
		state := mustPlay(t, 1, 1, 2, 2, 3, 3, 4)
		require.True(t, state.Outcome().Decided())
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, state.LegalMoves())
	})
}

func TestInvariants_PieceCountMatchesPly(t *testing.T) {
	state := NewGame()
	for i, column := range drawSequence {
		var err error
		state, err = state.Move(column)
		require.NoError(t, err)

		total := state.boards[Yellow].count() + state.boards[Red].count()
		require.Equal(t, state.Ply(), total, "move %d", i)
		require.Zero(t, state.boards[Yellow]&state.boards[Red], "boards must never overlap")
	}
}

func TestCell(t *testing.T) {
	state := mustPlay(t, 3, 3, 4)

	tests := []struct {
		name        string
		column, row int
		want        Player
		occupied    bool
	}{
		{"yellow at bottom of column 3", 3, 0, Yellow, true},
		{"red stacked above", 3, 1, Red, true},
		{"yellow at bottom of column 4", 4, 0, Yellow, true},
		{"empty cell", 0, 0, 0, false},
		{"row above the stack", 3, 2, 0, false},
		{"out of range", 9, 9, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, ok := state.Cell(tt.column, tt.row)
			assert.Equal(t, tt.occupied, ok)
			if tt.occupied {
				assert.Equal(t, tt.want, player)
			}
		})
	}
}
