package session

import "errors"

var (
	// ErrSaveSession is returned when persisting session state to storage fails.
	ErrSaveSession = errors.New("session: failed to persist session")
	// ErrClearSession is returned when removing persisted session state fails.
	ErrClearSession = errors.New("session: failed to clear persisted session")
)
