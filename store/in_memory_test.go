package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/telemetry/core"
)

// Interface compliance (compile-time assertion)
var _ core.Store = (*InMemoryStore)(nil)

func TestInMemoryStore_PutGetRemove(t *testing.T) {
	s := NewInMemoryStore()

	_, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put("k", "v1"))
	require.NoError(t, s.Put("k", "v2"))
	v, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, s.Remove("k"))
	require.NoError(t, s.Remove("k"), "removing a missing key is not an error")
	_, ok, _ = s.Get("k")
	assert.False(t, ok)
}

func TestInMemoryStore_EmptyValueIsPresent(t *testing.T) {
	s := NewInMemoryStore()
	require.NoError(t, s.Put("k", ""))
	v, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestInMemoryStore_Concurrency(t *testing.T) {
	s := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%10)
			assert.NoError(t, s.Put(key, "v"))
			_, _, _ = s.Get(key)
		}(i)
	}
	wg.Wait()
	assert.Len(t, s.Keys(), 10)
}
