package session

import (
	"sync"

	"dropfour/game/engine"
)

// Snapshot is a read-only view of a session's game: the move log so far
// and the current outcome.
type Snapshot struct {
	Moves   []int          `json:"moves"`
	Outcome engine.Outcome `json:"outcome"`
}

// Session owns one game and serializes all access to it. The zero
// value is not ready to use; create sessions with New.
type Session struct {
	mu    sync.Mutex
	state engine.GameState
}

// New returns a session holding a fresh game.
func New() *Session {
	return &Session{state: engine.NewGame()}
}

// Submit plays a single move. On success the held state is replaced and
// the new snapshot returned; on failure the held state is untouched.
func (s *Session) Submit(column int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.Move(column)
	if err != nil {
		return Snapshot{}, err
	}
	s.state = next
	return snapshotOf(next), nil
}

// SubmitAll plays a sequence of moves atomically: either the whole
// sequence applies or the held state is left exactly as it was.
func (s *Session) SubmitAll(columns []int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.MoveAll(columns)
	if err != nil {
		return Snapshot{}, err
	}
	s.state = next
	return snapshotOf(next), nil
}

// LegalMoves returns the open columns of the held game in ascending
// order. Like the engine query it delegates to, it does not consult the
// outcome; Inspect reports that.
func (s *Session) LegalMoves() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LegalMoves()
}

// Inspect returns the current move log and outcome without mutating
// anything.
func (s *Session) Inspect() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotOf(s.state)
}

// Restart unconditionally replaces the held game with a fresh one,
// finished or not.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = engine.NewGame()
}

// Board returns a copy of the held position for read-only use such as
// rendering. The copy is a detached value; holding it does not block
// the session.
func (s *Session) Board() engine.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func snapshotOf(state engine.GameState) Snapshot {
	return Snapshot{Moves: state.Moves(), Outcome: state.Outcome()}
}
