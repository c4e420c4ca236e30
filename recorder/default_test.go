package recorder

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/telemetry/store"
)

func TestDefault_SingleInstanceUnderConcurrency(t *testing.T) {
	const callers = 64
	got := make([]*Recorder, callers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			got[i] = Default(store.NewInMemoryStore())
		}(i)
	}
	close(start)
	wg.Wait()

	first := got[0]
	require.NotNil(t, first)
	for _, r := range got {
		assert.Same(t, first, r)
	}
	assert.Same(t, first, Default(nil), "later arguments are ignored")

	// the shared instance is fully usable
	require.NoError(t, first.StartSession())
	require.NoError(t, first.AddEvent("Login", nil))
	require.NoError(t, first.EndSession())
}
