// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import (
	"code.hybscloud.com/atomix"
)

// Outcome is the terminal classification of the producer's lifetime.
// It transitions at most once from Unset to one of the terminal values
// and is immutable afterwards.
type Outcome uint32

const (
	// Unset means no guard has been disposed yet: the fuse was never
	// armed, or the armed guard is still outstanding.
	Unset Outcome = iota
	// Closed means the guard was disposed on ordinary control flow.
	Closed
	// Failed means the guard was blown with an explicit error payload.
	Failed
	// Aborted means the guard was disposed while its goroutine was
	// panicking, with no explicit payload supplied.
	Aborted
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Unset:
		return "unset"
	case Closed:
		return "closed"
	case Failed:
		return "failed"
	case Aborted:
		return "aborted"
	default:
		return "invalid"
	}
}

// cell is the shared single-assignment outcome slot. The guard side
// writes it once; the reader side polls it. state holds an Outcome and
// is the only field both sides touch concurrently: the payload is
// written before the publishing CompareAndSwap and read only after a
// terminal state has been loaded, so the atomic state transition orders
// the payload handoff.
type cell struct {
	armed atomix.Uint32
	state atomix.Uint32
	err   error
}

// commit publishes a terminal outcome. Reports whether this call won
// the transition. The guard's consumption flag makes a second commit
// unreachable on the canonical paths; the state check here keeps a
// sequentially repeated disposal from scribbling over the payload while
// the reader may be loading it.
func (c *cell) commit(o Outcome, err error) bool {
	if Outcome(c.state.Load()) != Unset {
		return false
	}
	if o == Failed {
		c.err = err
	}
	return c.state.CompareAndSwap(uint32(Unset), uint32(o))
}

// load returns the current outcome without blocking.
func (c *cell) load() Outcome {
	return Outcome(c.state.Load())
}

// classify maps the current outcome to the error surfaced at
// end-of-stream: nil for Unset and Closed, the stored payload for
// Failed, ErrAborted for Aborted.
func (c *cell) classify() error {
	switch c.load() {
	case Failed:
		return c.err
	case Aborted:
		return ErrAborted
	default:
		return nil
	}
}
