package observe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotifyInOrder(t *testing.T) {
	var l List[int]
	var got []string
	l.Subscribe(func(v int) { got = append(got, "a") })
	l.Subscribe(func(v int) { got = append(got, "b") })

	l.Notify(1)
	require.Equal(t, []string{"a", "b"}, got)
}

func TestCancelRemovesOnlyThatSubscriber(t *testing.T) {
	var l List[string]
	var a, b int
	cancelA := l.Subscribe(func(string) { a++ })
	l.Subscribe(func(string) { b++ })

	cancelA()
	cancelA()
	l.Notify("x")

	require.Equal(t, 0, a)
	require.Equal(t, 1, b)
	require.Equal(t, 1, l.Len())
}

func TestCancelDuringNotify(t *testing.T) {
	var l List[int]
	calls := 0
	var cancel func()
	cancel = l.Subscribe(func(int) {
		calls++
		cancel()
	})
	l.Subscribe(func(int) { calls++ })

	l.Notify(0)
	require.Equal(t, 2, calls)

	l.Notify(0)
	require.Equal(t, 3, calls)
}
