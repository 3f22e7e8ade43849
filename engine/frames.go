package engine

import "github.com/nathoo/termfolio/types"

// Frames carries simulation frames from the board goroutine to a front
// end's event loop. It holds one frame; a newer frame replaces an
// undelivered older one.
type Frames chan types.Frame

// NewFrames returns an empty frame queue.
func NewFrames() Frames { return make(Frames, 1) }

// Send queues f without blocking. Use it as Options.OnFrame.
func (ch Frames) Send(f types.Frame) {
	for {
		select {
		case ch <- f:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
