package core

const (
	// SessionKey holds the active session token. Present only while a session
	// is active.
	SessionKey = "current_session"

	// EventsKey holds the serialized EventCollection of the most recent session.
	EventsKey = "session_events"
)

// Store is the durable key/value medium the recorder persists through.
// Implementations must be safe for concurrent use and durable on return.
// Removing a missing key is not an error.
type Store interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Remove(key string) error
}
