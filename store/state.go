// ABOUTME: Lifecycle state of the account cache
// ABOUTME: Uninitialized -> Loading -> Ready or Error
package store

// State is the lifecycle state of an AccountStore.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return "unknown"
}
