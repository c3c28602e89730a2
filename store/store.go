package store

import (
	"errors"
	"strconv"
)

// Kind classifies a storage failure.
type Kind int

const (
	// KindNotFound means the key has no blob.
	KindNotFound Kind = iota + 1
	// KindIO means the backend could not be reached or read.
	KindIO
	// KindCorrupt means the backend exists but its own invariants are
	// broken (a root path that is not a directory, a database file that
	// is not a database).
	KindCorrupt
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindIO:
		return "i/o failure"
	case KindCorrupt:
		return "corrupt store"
	default:
		return "unknown"
	}
}

// Error is the narrow error every backend returns. Callers inside a
// composition absorb it into the aggregate fault at the point of
// failure; only tests and backends themselves branch on it.
type Error struct {
	Op   string // failing operation: "open", "read", "write"
	Key  string // blob key, or the backend path for "open"
	Kind Kind
	Err  error // underlying cause, may be nil
}

func (e *Error) Error() string {
	s := "store: " + e.Op + " " + strconv.Quote(e.Key) + ": " + e.Kind.String()
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a store Error with KindNotFound.
func IsNotFound(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindNotFound
}
