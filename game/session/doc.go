// Package session wraps one running game for concurrent callers.
//
// The session package implements:
//   - A single owned GameState behind a mutex
//   - Serialized submit/inspect/restart operations
//   - Atomic rejection: a failed move never replaces the held state
//
// Core Types:
//
// Session holds exactly one game. All operations lock the session, so
// concurrent callers observe one linear history of moves and never a
// torn intermediate state. Every operation is pure computation over the
// held value and completes in bounded time; there is nothing to cancel
// or time out.
//
// One Session maps to one logical game. Independent games get
// independent Session values and run fully concurrently with each
// other; there are no package-level singletons.
//
// Usage:
//
//	sess := session.New()
//
//	snap, err := sess.Submit(3)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(snap.Moves, snap.Outcome)
//
//	sess.Restart() // fresh game, unconditionally
package session
