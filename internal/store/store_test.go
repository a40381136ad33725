package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	var s Store = NewMemory()

	_, ok, err := s.Get("todoList")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set("todoList", "[]"))
	v, ok, err := s.Get("todoList")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[]", v)

	require.NoError(t, s.Set("todoList", `[{"id":1,"text":"x","done":false}]`))
	v, _, _ = s.Get("todoList")
	require.Equal(t, `[{"id":1,"text":"x","done":false}]`, v)
}

func TestMemoryZeroValue(t *testing.T) {
	var m Memory
	require.NoError(t, m.Set("k", "v"))
	v, ok, err := m.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", v)
}
