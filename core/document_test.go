package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Helpers(t *testing.T) {
	doc := Document(`{"Login":{"timestamp":10,"user":"alice"},"screen.view":{"timestamp":11,"name":"home"}}`)

	assert.True(t, doc.Valid())
	assert.Equal(t, 2, doc.Len())
	assert.Equal(t, []string{"Login", "screen.view"}, doc.Names())
	assert.True(t, doc.Has("Login"))
	assert.True(t, doc.Has("screen.view"), "dotted names must not be read as paths")
	assert.False(t, doc.Has("Logout"))

	user, ok := doc.Field("Login", "user")
	assert.True(t, ok)
	assert.Equal(t, "alice", user.String())

	name, ok := doc.Field("screen.view", "name")
	assert.True(t, ok)
	assert.Equal(t, "home", name.String())

	_, ok = doc.Field("Login", "missing")
	assert.False(t, ok)
	_, ok = doc.Field("Logout", "user")
	assert.False(t, ok)

	assert.Equal(t, int64(10), doc.Query("Login.timestamp").Int())
}

func TestDocument_Empty(t *testing.T) {
	doc := Document(EmptyDocument)
	assert.True(t, doc.Valid())
	assert.Equal(t, 0, doc.Len())
	assert.Empty(t, doc.Names())
	assert.False(t, Document(`{"a":`).Valid())
}
