// Clock abstracts simulated time so the engine is testable without real
// wall-clock delays: WallClock sleeps for real, VirtualClock advances a
// counter instantly.

package sim

import (
	"sync"
	"time"
)

// Clock is the engine's time source. Start anchors the zero point, Elapsed
// reports time since the anchor, and Advance consumes d — by blocking the
// caller on a WallClock, or by bumping the counter on a VirtualClock.
type Clock interface {
	Start()
	Elapsed() time.Duration
	Advance(d time.Duration)
}

// WallClock measures real elapsed time from Start using the monotonic clock
// and sleeps to consume operation durations.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a WallClock. Start must be called before use; the
// simulator does so when it announces its own start.
func NewWallClock() *WallClock {
	return &WallClock{}
}

func (c *WallClock) Start() {
	c.start = time.Now()
}

func (c *WallClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

func (c *WallClock) Advance(d time.Duration) {
	time.Sleep(d)
}

// VirtualClock advances instantly, making runs deterministic and fast.
// Guarded by a mutex because I/O operations advance the clock from their own
// short-lived goroutine.
type VirtualClock struct {
	mu  sync.Mutex
	now time.Duration
}

// NewVirtualClock creates a VirtualClock at time zero.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

func (c *VirtualClock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = 0
}

func (c *VirtualClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *VirtualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
}
