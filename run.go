// SPDX-License-Identifier: MIT

package animate

import (
	"context"
	"fmt"
	"time"

	"github.com/wangfutao/animate.js/style"
)

// LiveTarget receives one transform per frame.
type LiveTarget interface {
	SetTransform(css string)
}

func validateRun(duration time.Duration, count IterationCount, delay time.Duration) error {
	if err := count.Validate(); err != nil {
		return err
	}
	if delay < 0 {
		return fmt.Errorf("%v: %w", delay, ErrNegativeDelay)
	}
	if duration <= 0 {
		return fmt.Errorf("%v: %w", duration, ErrInvalidDuration)
	}

	return nil
}

// RunLive plays the animation on target, evaluating once per clock frame.
//
// After delay, each iteration records its start and, per frame, applies
// Evaluate(elapsed/duration) while elapsed ≤ duration. The first frame past
// duration applies Evaluate(1) and ends the iteration. RunLive returns nil
// once count iterations complete, ctx.Err() when ctx ends first, or the
// first evaluation error. An empty rule list returns nil at once.
func (a *Animator) RunLive(ctx context.Context, target LiveTarget, duration time.Duration, count IterationCount, delay time.Duration) error {
	if err := validateRun(duration, count, delay); err != nil {
		return fmt.Errorf("RunLive: %w", err)
	}
	rules := a.Rules()
	if len(rules) == 0 {
		return nil
	}

	if err := a.clock.Sleep(ctx, delay); err != nil {
		a.logf("animate: %s cancelled during delay: %v", a.name, err)
		return err
	}
	for completed := 0; !count.done(completed); {
		start := a.clock.Now()
		for {
			if err := ctx.Err(); err != nil {
				a.logf("animate: %s cancelled after %d iterations: %v", a.name, completed, err)
				return err
			}
			elapsed := a.clock.Now().Sub(start)
			if elapsed > duration {
				m, err := evaluate(rules, 1)
				if err != nil {
					return fmt.Errorf("RunLive: %w", err)
				}
				target.SetTransform(m.CSS())
				completed++
				a.logf("animate: %s iteration %d/%s done", a.name, completed, count)

				break
			}
			m, err := evaluate(rules, float64(elapsed)/float64(duration))
			if err != nil {
				return fmt.Errorf("RunLive: %w", err)
			}
			target.SetTransform(m.CSS())
			if err = a.clock.NextFrame(ctx); err != nil {
				a.logf("animate: %s cancelled after %d iterations: %v", a.name, completed, err)
				return err
			}
		}
	}

	return nil
}

// RunDeclarative bakes Sample(1, CSSStep()) into a @keyframes rule named
// Name() in sheet (once per name), then after delay binds the animation to
// target and sets the final keyframe transform on it directly, so the end
// state shows even before the style engine starts the animation. An empty
// rule list returns nil without touching sheet or target.
func (a *Animator) RunDeclarative(ctx context.Context, target style.Target, sheet style.Registry, duration time.Duration, count IterationCount, delay time.Duration) error {
	if err := validateRun(duration, count, delay); err != nil {
		return fmt.Errorf("RunDeclarative: %w", err)
	}
	if len(a.Rules()) == 0 {
		return nil
	}

	kfs, err := a.Sample(1, a.CSSStep())
	if err != nil {
		return fmt.Errorf("RunDeclarative: %w", err)
	}
	if err = style.InstallKeyframes(sheet, a.name, kfs); err != nil {
		return fmt.Errorf("RunDeclarative: %w", err)
	}
	last, err := kfs.Last()
	if err != nil {
		return fmt.Errorf("RunDeclarative: %w", err)
	}

	if err = a.clock.Sleep(ctx, delay); err != nil {
		a.logf("animate: %s cancelled during delay: %v", a.name, err)
		return err
	}
	target.SetAnimation(a.name, duration, count.String())
	target.SetTransform(last.Transform.CSS())
	a.logf("animate: %s bound for %v x %s", a.name, duration, count)

	return nil
}
