package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/telemetry/core"
	"github.com/hupe1980/telemetry/recorder"
	"github.com/hupe1980/telemetry/store"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	for _, key := range []string{"", "  "} {
		sdk, err := New(func(o *Options) { o.APIKey = key })
		assert.Nil(t, sdk)
		assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
	}

	sdk, err := New()
	assert.Nil(t, sdk)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestNew_Defaults(t *testing.T) {
	sdk, err := New(func(o *Options) {
		o.APIKey = "key"
		o.Store = nil
		o.Logger = nil
	})
	require.NoError(t, err)
	assert.Equal(t, "key", sdk.APIKey())
	assert.NotNil(t, sdk.opts.Store)
	assert.NotNil(t, sdk.opts.Logger)
}

func TestSDK_StartReturnsSharedRecorder(t *testing.T) {
	a, err := New(func(o *Options) { o.APIKey = "a" })
	require.NoError(t, err)
	b, err := New(func(o *Options) { o.APIKey = "b" })
	require.NoError(t, err)

	ra := a.Start()
	assert.Same(t, ra, b.Start())
	assert.Same(t, ra, a.Start())
}

func TestSDK_NewRecorderLifecycle(t *testing.T) {
	s := store.NewInMemoryStore()
	sdk, err := New(func(o *Options) {
		o.APIKey = "key"
		o.Store = s
		o.RecorderOptions = []func(o *recorder.Options){
			func(o *recorder.Options) { o.NewToken = func() string { return "fixed" } },
		}
	})
	require.NoError(t, err)

	rec := sdk.NewRecorder()
	require.NoError(t, rec.StartSession())
	require.NoError(t, rec.AddEvent("Started Session", map[string]any{"source": "test"}))

	sid, ok := rec.SessionID()
	require.True(t, ok)
	assert.Equal(t, "fixed", sid)

	require.NoError(t, rec.EndSession())
	doc, err := rec.Snapshot()
	require.NoError(t, err)
	assert.True(t, doc.Has("Started Session"))

	_, ok, err = s.Get(core.SessionKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
