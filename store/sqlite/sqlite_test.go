package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/telemetry/core"
)

var _ core.Store = (*Store)(nil)

func openTemp(t *testing.T, optFns ...func(o *Options)) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "telemetry.db")
	s, err := Open(path, optFns...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestStore_PutGetRemove(t *testing.T) {
	s, _ := openTemp(t)

	_, ok, err := s.Get(core.SessionKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(core.SessionKey, "a"))
	require.NoError(t, s.Put(core.SessionKey, "b"))
	v, ok, err := s.Get(core.SessionKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	require.NoError(t, s.Remove(core.SessionKey))
	require.NoError(t, s.Remove(core.SessionKey))
	_, ok, err = s.Get(core.SessionKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SurvivesReopen(t *testing.T) {
	s, path := openTemp(t)
	require.NoError(t, s.Put(core.EventsKey, "{}"))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()
	v, ok, err := reopened.Get(core.EventsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{}", v)
}

func TestStore_NamespacesAreIsolated(t *testing.T) {
	a, path := openTemp(t, func(o *Options) { o.Namespace = "a" })
	require.NoError(t, a.Put("k", "from-a"))

	b, err := Open(path, func(o *Options) { o.Namespace = "b" })
	require.NoError(t, err)
	defer b.Close()

	_, ok, err := b.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ClosedReturnsError(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Close())
	_, _, err := s.Get("k")
	assert.Error(t, err)
	assert.Error(t, s.Put("k", "v"))
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}
