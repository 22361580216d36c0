package jobs

import (
	"context"
	"log"
	"time"
)

// IdleSweeper releases page states that have been idle for too long
type IdleSweeper interface {
	Sweep() int
	Len() int
}

// SweepIdlePages releases idle page states and returns how many
// were released
func SweepIdlePages(registry IdleSweeper) int {
	released := registry.Sweep()
	if released > 0 {
		log.Printf("[INFO] Released %d idle page states, %d still mounted", released, registry.Len())
	}
	return released
}

// RunPageSweep sweeps every interval until ctx is cancelled
func RunPageSweep(ctx context.Context, registry IdleSweeper, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			SweepIdlePages(registry)
		}
	}
}
