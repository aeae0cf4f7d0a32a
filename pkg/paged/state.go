package paged

import "fmt"

// State is the loading status of a Collection, exposed for UI consumption.
type State int

const (
	// StateIdle means no load has been attempted yet.
	StateIdle State = iota

	// StateLoading means a load attempt is in flight.
	StateLoading

	// StateLoaded means the most recent settled attempt succeeded.
	StateLoaded

	// StateFailed means the most recent settled attempt failed.
	StateFailed
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
