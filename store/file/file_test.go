package file

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/telemetry/core"
)

var _ core.Store = (*Store)(nil)

func newMemStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	s, err := New("/data", func(o *Options) { o.Fs = fs })
	require.NoError(t, err)
	return s, fs
}

func TestStore_PutGetRemove(t *testing.T) {
	s, _ := newMemStore(t)

	_, ok, err := s.Get(core.SessionKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(core.SessionKey, "sid"))
	require.NoError(t, s.Put(core.EventsKey, `{"Login":{"timestamp":1}}`))

	v, ok, err := s.Get(core.EventsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"Login":{"timestamp":1}}`, v)

	require.NoError(t, s.Remove(core.SessionKey))
	require.NoError(t, s.Remove(core.SessionKey))
	_, ok, err = s.Get(core.SessionKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SurvivesReopen(t *testing.T) {
	s, fs := newMemStore(t)
	require.NoError(t, s.Put("k", "v"))

	reopened, err := New("/data", func(o *Options) { o.Fs = fs })
	require.NoError(t, err)
	v, ok, err := reopened.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	exists, err := afero.Exists(fs, s.Path()+".tmp")
	require.NoError(t, err)
	assert.False(t, exists, "temp file should be renamed away")
}

func TestStore_Namespace(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := New("/data", func(o *Options) {
		o.Fs = fs
		o.Namespace = "demo"
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "demo.json"), s.Path())
}

func TestStore_CorruptFile(t *testing.T) {
	s, fs := newMemStore(t)
	require.NoError(t, afero.WriteFile(fs, s.Path(), []byte("{not json"), 0o600))

	_, _, err := s.Get("k")
	assert.Error(t, err)
	assert.Error(t, s.Put("k", "v"))
}

func TestStore_ReadOnlyFs(t *testing.T) {
	s, fs := newMemStore(t)
	s.fs = afero.NewReadOnlyFs(fs)
	assert.Error(t, s.Put("k", "v"))
}

func TestNew_EmptyDir(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestStore_OsFs(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Put("k", "v"))
	v, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
