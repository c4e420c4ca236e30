// Package core provides the foundational domain types and contracts used by
// the telemetry recorder:
//
//   - Store (the durable key/value medium the recorder persists through)
//   - EventRecord / EventCollection (the in-memory shape of recorded events)
//   - Document (the serialized event collection with read helpers)
//   - Sentinel errors shared by every package (ErrInvalidState, ...)
//
// The package keeps implementation concerns (session lifecycle, concrete
// storage backends) out of scope so backends can be swapped without touching
// calling code.
package core
