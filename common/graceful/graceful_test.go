package graceful

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDrainReturnsOnceRequestsFinish(t *testing.T) {
	d := NewDrainer()
	d.interval = 5 * time.Millisecond

	done := d.BeginRequest()
	require.EqualValues(t, 1, d.InFlight())

	go func() {
		time.Sleep(20 * time.Millisecond)
		done()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Drain(ctx))
	require.Zero(t, d.InFlight())
}

func TestDrainTimesOut(t *testing.T) {
	d := NewDrainer()
	d.interval = 5 * time.Millisecond
	defer d.BeginRequest()()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, d.Drain(ctx), context.DeadlineExceeded)
}
