package graceful

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Laisky/zap"

	"github.com/Laisky/bedrock-contentgen/common/logger"
)

// Drainer counts in-flight requests so shutdown can wait for them.
type Drainer struct {
	inFlight atomic.Int64
	interval time.Duration
}

// NewDrainer returns a Drainer polling every 500ms while draining.
func NewDrainer() *Drainer {
	return &Drainer{interval: 500 * time.Millisecond}
}

// BeginRequest increments the in-flight request counter and returns a function
// to decrement it. Use with `defer` at the top of request handlers/middlewares.
func (d *Drainer) BeginRequest() func() {
	d.inFlight.Add(1)
	return func() {
		d.inFlight.Add(-1)
	}
}

// InFlight returns the number of requests currently being served.
func (d *Drainer) InFlight() int64 {
	return d.inFlight.Load()
}

// Drain waits for in-flight requests to reach zero, bounded by ctx deadline.
func (d *Drainer) Drain(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		n := d.inFlight.Load()
		if n == 0 {
			logger.Logger.Info("graceful drain complete: no in-flight requests")
			return nil
		}

		select {
		case <-ctx.Done():
			logger.Logger.Error("graceful drain timeout", zap.Int64("in_flight_requests", n))
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
