package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVirtualClock_AdvanceAccumulates(t *testing.T) {
	clock := NewVirtualClock()
	clock.Start()

	assert.Equal(t, time.Duration(0), clock.Elapsed())
	clock.Advance(30 * time.Millisecond)
	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 40*time.Millisecond, clock.Elapsed())
}

func TestVirtualClock_StartResetsToZero(t *testing.T) {
	clock := NewVirtualClock()
	clock.Advance(time.Second)
	clock.Start()
	assert.Equal(t, time.Duration(0), clock.Elapsed())
}

func TestWallClock_ElapsedGrowsAndAdvanceBlocks(t *testing.T) {
	clock := NewWallClock()
	clock.Start()

	clock.Advance(5 * time.Millisecond)
	assert.GreaterOrEqual(t, clock.Elapsed(), 5*time.Millisecond)
}
