package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderStartsLight(t *testing.T) {
	p := NewProvider("")
	assert.Equal(t, Light, p.Mode())
	assert.False(t, p.Dark())
}

func TestToggleTwiceRestoresMode(t *testing.T) {
	for _, start := range []Mode{Light, Dark} {
		assert.Equal(t, start, start.Toggle().Toggle())

		p := NewProvider(start)
		p.Toggle()
		p.Toggle()
		assert.Equal(t, start, p.Mode())
	}
}

func TestToggleNotifiesSubscribers(t *testing.T) {
	p := NewProvider(Light)
	var seen []Mode
	cancel := p.Subscribe(func(m Mode) { seen = append(seen, m) })

	require.Equal(t, Dark, p.Toggle())
	require.Equal(t, Light, p.Toggle())
	cancel()
	p.Toggle()

	assert.Equal(t, []Mode{Dark, Light}, seen)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" DARK ")
	require.NoError(t, err)
	assert.Equal(t, Dark, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Light, m)

	_, err = ParseMode("neon")
	require.Error(t, err)
}
