// Package recorder manages a single analytics session and the events recorded
// within it.
//
// A Recorder moves between two states:
//
//	NoSession --StartSession--> ActiveSession --EndSession--> NoSession
//
// AddEvent is only valid in ActiveSession; AddEvent and EndSession in
// NoSession return core.ErrInvalidState without touching the store.
//
// Events are kept as one JSON document (event name -> record) under
// core.EventsKey. Every AddEvent is a read-modify-write of the whole document
// performed inside the recorder's critical section, so concurrent callers
// never lose updates. EndSession clears only the session token; the document
// stays readable through SessionData until the next StartSession resets it.
//
// Use New to build explicit handles and pass them to collaborators. Default
// returns the lazily created process-wide instance.
package recorder
