package practice

import (
	sess "github.com/abhisek/limitz/internal/session"
)

// sessionInitMsg is sent when the first problem has been generated.
type sessionInitMsg struct {
	State *sess.State
	Err   error
}

// attemptSavedMsg reports the stored sequence of the attempt made as the
// question-th answer of the session.
type attemptSavedMsg struct {
	Question int
	Seq      int64
	Err      error
}

// persistDoneMsg is sent when a fire-and-forget store write completes.
type persistDoneMsg struct {
	What string
	Err  error
}
