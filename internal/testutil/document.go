package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/telemetry/core"
)

// DecodeDocument parses a serialized event collection, failing the test on error.
func DecodeDocument(t testing.TB, doc string) core.EventCollection {
	t.Helper()
	coll, err := core.DecodeEventCollection(doc)
	require.NoError(t, err, "document: %s", doc)
	return coll
}

// FixedClock returns a clock that always reports ts.
func FixedClock(ts int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ts) }
}
