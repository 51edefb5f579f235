package winkit

import (
	"context"
	"errors"
	"time"

	"github.com/1broseidon/winkit/event"
)

// ErrStopRun may be returned by a Run callback to end the loop. Run then
// returns nil.
var ErrStopRun = errors.New("winkit: stop run")

// runWaitSlice bounds each blocking wait in Run so cancellation of the
// context.Context is noticed.
const runWaitSlice = 50 * time.Millisecond

// Run drives the event loop, calling fn for every event and for the
// event.Update events selected by kind. It returns when fn returns an error
// (nil for ErrStopRun), when fn closes c, or with ctx.Err() when ctx is done.
//
// With event.UpdatePassive at most one Update is delivered between two other
// events, and the loop blocks while nothing happens. With UpdateActive and
// UpdateVBlank an Update is delivered whenever the queue is empty.
func (c *Context) Run(ctx context.Context, kind event.UpdateKind, fn func(event.Event) error) error {
	updateReady := true
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		e, ok, err := c.PollEvent()
		if err != nil {
			return err
		}
		if !ok {
			switch {
			case kind != event.UpdatePassive:
				e = event.Update{Header: event.Header{Time: time.Now()}, Kind: event.UpdateActive}
			case updateReady:
				e = event.Update{Header: event.Header{Time: time.Now()}, Kind: event.UpdatePassive}
			default:
				if e, ok, err = c.WaitEvent(runWaitSlice); err != nil {
					return err
				}
				if !ok {
					continue
				}
			}
		}

		_, isUpdate := e.(event.Update)
		updateReady = !isUpdate
		if err := fn(e); err != nil {
			if errors.Is(err, ErrStopRun) {
				return nil
			}
			return err
		}
		if c.closed {
			return nil
		}
	}
}
