// Package store houses concrete implementations of core.Store.
// The interface itself lives in the core package to centralize domain
// contracts. Keeping only implementations here prevents the recorder from
// depending on concrete storage.
//
// The in-memory store lives in this package; durable backends live in
// sub-packages (file, sqlite, redis). config.OpenStore selects one, so only
// the wiring layer decides which implementation to instantiate.
package store
