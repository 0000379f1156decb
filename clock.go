// SPDX-License-Identifier: MIT

package animate

import (
	"context"
	"time"
)

// Clock is the scheduler a run suspends on. Sleep and NextFrame return
// ctx.Err() when the context ends first.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
	NextFrame(ctx context.Context) error
}

type wallClock struct {
	frame time.Duration
}

// NewClock returns a wall clock whose frames are frame apart.
// A non-positive frame falls back to DefaultFrameInterval.
func NewClock(frame time.Duration) Clock {
	if frame <= 0 {
		frame = DefaultFrameInterval
	}

	return wallClock{frame: frame}
}

func (c wallClock) Now() time.Time { return time.Now() }

func (c wallClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c wallClock) NextFrame(ctx context.Context) error { return c.Sleep(ctx, c.frame) }
