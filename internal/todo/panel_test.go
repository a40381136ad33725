package todo

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/classboard/internal/ids"
	"github.com/idilsaglam/classboard/internal/logger"
	"github.com/idilsaglam/classboard/internal/model"
	"github.com/idilsaglam/classboard/internal/store"
)

// flakyStore wraps Memory and fails Set while failSet is true.
type flakyStore struct {
	*store.Memory
	failSet bool
	getErr  error
	sets    int
}

func (f *flakyStore) Get(key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return f.Memory.Get(key)
}

func (f *flakyStore) Set(key, value string) error {
	if f.failSet {
		return errors.New("disk full")
	}
	f.sets++
	return f.Memory.Set(key, value)
}

func newPanel(t *testing.T, s store.Store) *Panel {
	t.Helper()
	p, err := Open(s, WithIDSource(ids.NewCounter(0)))
	require.NoError(t, err)
	return p
}

// stored decodes what the store currently holds under the default key.
func stored(t *testing.T, s store.Store) []model.Todo {
	t.Helper()
	raw, ok, err := s.Get(StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	items, err := Decode(raw)
	require.NoError(t, err)
	return items
}

func TestOpenEmptyStore(t *testing.T) {
	p := newPanel(t, store.NewMemory())
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.AllDone())
}

func TestOpenLoadsStoredList(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set(StorageKey, `[{"id":1,"text":"a","done":true},{"id":2,"text":"b","done":false}]`))

	p := newPanel(t, s)
	assert.Equal(t, []model.Todo{{ID: 1, Text: "a", Done: true}, {ID: 2, Text: "b"}}, p.Items())
}

func TestOpenMalformedFallsBackToEmpty(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set(StorageKey, "{broken"))

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	p, err := Open(s, WithLogger(log))
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
	assert.Contains(t, buf.String(), "malformed")

	// the bad entry stays until the next mutation overwrites it
	raw, _, _ := s.Get(StorageKey)
	assert.Equal(t, "{broken", raw)
}

func TestOpenDropsInvalidRecords(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set(StorageKey, `[{"id":1,"text":"keep"},{"id":2,"text":"   "},{"id":1,"text":"dup"},{"id":3,"text":"also"}]`))

	p := newPanel(t, s)
	assert.Equal(t, []model.Todo{{ID: 1, Text: "keep"}, {ID: 3, Text: "also"}}, p.Items())
}

func TestOpenStoreErrorIsReturned(t *testing.T) {
	_, err := Open(&flakyStore{Memory: store.NewMemory(), getErr: errors.New("io")})
	require.Error(t, err)
}

func TestAddBlankIsNoop(t *testing.T) {
	s := &flakyStore{Memory: store.NewMemory()}
	p := newPanel(t, s)

	for _, text := range []string{"", "   ", "\t\n"} {
		_, added, err := p.Add(text)
		require.NoError(t, err)
		assert.False(t, added)
	}
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, s.sets)
}

func TestAddAppendsAndPersists(t *testing.T) {
	s := store.NewMemory()
	p := newPanel(t, s)

	todo, added, err := p.Add("buy milk")
	require.NoError(t, err)
	require.True(t, added)
	assert.Equal(t, model.Todo{ID: 1, Text: "buy milk", Done: false}, todo)

	_, _, err = p.Add("  call home ")
	require.NoError(t, err)

	want := []model.Todo{{ID: 1, Text: "buy milk"}, {ID: 2, Text: "  call home "}}
	assert.Equal(t, want, p.Items())
	assert.Equal(t, want, stored(t, s))
}

func TestAddSkipsCollidingIDs(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set(StorageKey, `[{"id":1,"text":"a"},{"id":2,"text":"b"}]`))
	p := newPanel(t, s)

	todo, _, err := p.Add("c")
	require.NoError(t, err)
	assert.Equal(t, int64(3), todo.ID)
}

func TestToggleFlipsOnlyTarget(t *testing.T) {
	s := store.NewMemory()
	p := newPanel(t, s)
	a, _, _ := p.Add("a")
	b, _, _ := p.Add("b")

	found, err := p.Toggle(b.ID)
	require.NoError(t, err)
	require.True(t, found)

	want := []model.Todo{a, {ID: b.ID, Text: "b", Done: true}}
	assert.Empty(t, cmp.Diff(want, p.Items()))
	assert.Empty(t, cmp.Diff(want, stored(t, s)))

	_, err = p.Toggle(b.ID)
	require.NoError(t, err)
	got, _ := p.Get(b.ID)
	assert.False(t, got.Done)
}

func TestToggleUnknownIsNoop(t *testing.T) {
	s := &flakyStore{Memory: store.NewMemory()}
	p := newPanel(t, s)
	p.Add("a")
	before := p.Items()
	sets := s.sets

	found, err := p.Toggle(999)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, cmp.Diff(before, p.Items()))
	assert.Equal(t, sets, s.sets)
}

func TestRemoveKeepsOrder(t *testing.T) {
	s := store.NewMemory()
	p := newPanel(t, s)
	a, _, _ := p.Add("a")
	b, _, _ := p.Add("b")
	c, _, _ := p.Add("c")

	found, err := p.Remove(b.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []model.Todo{a, c}, p.Items())
	assert.Equal(t, []model.Todo{a, c}, stored(t, s))

	found, err = p.Remove(b.ID)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 2, p.Len())
}

func TestAllDone(t *testing.T) {
	p := newPanel(t, store.NewMemory())
	assert.False(t, p.AllDone(), "empty list is never all done")

	a, _, _ := p.Add("a")
	b, _, _ := p.Add("b")
	assert.False(t, p.AllDone())

	p.Toggle(a.ID)
	assert.False(t, p.AllDone())
	p.Toggle(b.ID)
	assert.True(t, p.AllDone())

	done, pending := p.Stats()
	assert.Equal(t, 2, done)
	assert.Equal(t, 0, pending)

	p.Remove(a.ID)
	p.Add("fresh")
	assert.False(t, p.AllDone())
}

func TestFailedWriteRollsBack(t *testing.T) {
	s := &flakyStore{Memory: store.NewMemory()}
	p := newPanel(t, s)
	a, _, err := p.Add("a")
	require.NoError(t, err)

	s.failSet = true
	_, added, err := p.Add("b")
	require.Error(t, err)
	assert.False(t, added)

	_, err = p.Toggle(a.ID)
	require.Error(t, err)

	_, err = p.Remove(a.ID)
	require.Error(t, err)

	assert.Equal(t, []model.Todo{a}, p.Items())
	assert.Equal(t, []model.Todo{a}, stored(t, s))
}

func TestCustomKey(t *testing.T) {
	s := store.NewMemory()
	p, err := Open(s, WithKey("other"), WithIDSource(ids.NewCounter(0)))
	require.NoError(t, err)
	p.Add("x")

	_, ok, _ := s.Get(StorageKey)
	assert.False(t, ok)
	raw, ok, _ := s.Get("other")
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1,"text":"x","done":false}]`, raw)
}

func TestSubscribeAndReload(t *testing.T) {
	s := store.NewMemory()
	p := newPanel(t, s)

	var lens []int
	p.Subscribe(func(items []model.Todo) { lens = append(lens, len(items)) })

	p.Add("a")
	p.Add("   ")
	p.Toggle(404)

	changed, err := p.Reload()
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, s.Set(StorageKey, `[{"id":10,"text":"x"},{"id":11,"text":"y"}]`))
	changed, err = p.Reload()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 2, p.Len())

	assert.Equal(t, []int{1, 2}, lens)
}

func TestItemsIsACopy(t *testing.T) {
	p := newPanel(t, store.NewMemory())
	p.Add("a")

	items := p.Items()
	items[0].Done = true
	assert.False(t, p.AllDone())
}

func TestAddInvalidUTF8MatchesStoredText(t *testing.T) {
	s := store.NewMemory()
	p := newPanel(t, s)

	it, added, err := p.Add("a\xffb")
	require.NoError(t, err)
	require.True(t, added)
	assert.Equal(t, "a\uFFFDb", it.Text)
	assert.Empty(t, cmp.Diff(p.Items(), stored(t, s)))

	changed, err := p.Reload()
	require.NoError(t, err)
	assert.False(t, changed)
}
