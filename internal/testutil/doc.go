// Package testutil contains helpers used across tests to reduce boilerplate
// when exercising the recorder against misbehaving stores and asserting on
// serialized documents. Not intended for production usage.
package testutil
