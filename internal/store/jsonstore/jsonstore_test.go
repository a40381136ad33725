package jsonstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/idilsaglam/classboard/internal/store"
)

var _ store.Store = (*Store)(nil)

func TestMissingFileHasNoKeys(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "store.json"))

	_, ok, err := s.Get("todoList")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSetThenGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.json")
	s := New(path)

	require.NoError(t, s.Set("todoList", `[{"id":1,"text":"buy milk","done":false}]`))
	require.NoError(t, s.Set("other", "x"))

	v, ok, err := s.Get("todoList")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":1,"text":"buy milk","done":false}]`, v)

	// the file is a plain key -> string object
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var data map[string]string
	require.NoError(t, json.Unmarshal(raw, &data))
	require.Equal(t, "x", data["other"])

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestSetOverwrites(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, s.Set("k", "one"))
	require.NoError(t, s.Set("k", "two"))

	v, _, err := s.Get("k")
	require.NoError(t, err)
	require.Equal(t, "two", v)
}

func TestCorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, _, err := New(path).Get("k")
	require.Error(t, err)
}

func TestEmptyFileHasNoKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, ok, err := New(path).Get("k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWatchReportsExternalWrites(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "store.json")
	s := New(path)

	ctx, cancel := context.WithCancel(context.Background())
	var hits atomic.Int32
	require.NoError(t, s.Watch(ctx, func() { hits.Add(1) }))

	other := New(path)
	require.NoError(t, other.Set("todoList", "[]"))
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "unrelated.txt"), []byte("x"), 0o644))

	require.Eventually(t, func() bool { return hits.Load() > 0 }, 2*time.Second, 10*time.Millisecond)

	cancel()
}
