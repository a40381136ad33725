package ids

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClockIsStrictlyIncreasing(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	c := &Clock{now: func() time.Time { return fixed }}

	first := c.NextID()
	require.Equal(t, fixed.UnixMilli(), first)
	require.Equal(t, first+1, c.NextID())
	require.Equal(t, first+2, c.NextID())
}

func TestClockSurvivesBackwardsStep(t *testing.T) {
	cur := time.UnixMilli(2_000)
	c := &Clock{now: func() time.Time { return cur }}

	a := c.NextID()
	cur = time.UnixMilli(1_000)
	b := c.NextID()
	require.Greater(t, b, a)
}

func TestNewClockUsesWallTime(t *testing.T) {
	before := time.Now().UnixMilli()
	id := NewClock().NextID()
	require.GreaterOrEqual(t, id, before)
}

func TestCounter(t *testing.T) {
	c := NewCounter(10)
	require.Equal(t, int64(11), c.NextID())
	require.Equal(t, int64(12), c.NextID())
}
