// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

// Guard is the token for an outstanding producer obligation, obtained
// once via Fuse.Arm. Disposing of it — Settle, Close, Abort, or Blow —
// commits a terminal Outcome into the shared cell exactly once; the
// first disposal consumes the guard and every later call is a no-op.
//
// A guard models unique ownership of the obligation and is not safe for
// concurrent use.
type Guard struct {
	cell *cell
	done bool
}

// Settle commits the outcome for an ordinary scope exit and is meant to
// be deferred directly:
//
//	defer g.Settle()
//
// Settle calls recover itself to detect whether the goroutine is
// unwinding. A panic in flight commits Aborted and is consumed: the
// goroutine returns normally and the classified end-of-stream is the
// delivery of the crash, as with a dying writer thread behind a pipe.
// Without a panic, Settle commits Closed.
//
// recover only observes the panic from the deferred call itself, so
// wrapping Settle in another function (defer func() { g.Settle() }())
// would classify an unwinding exit as Closed. Producers that need the
// panic to keep propagating should instead call Abort from their own
// recover block and re-panic.
func (g *Guard) Settle() {
	if r := recover(); r != nil {
		g.dispose(Aborted, nil)
		return
	}
	g.dispose(Closed, nil)
}

// Blow commits Failed with the given payload, to be surfaced verbatim
// by the reader at end-of-stream. Blowing consumes the guard, so a
// deferred Settle that runs afterwards cannot recommit. A nil payload
// degrades to Aborted: the reader never reports end-of-stream failure
// with a nil error.
func (g *Guard) Blow(err error) {
	if err == nil {
		g.dispose(Aborted, nil)
		return
	}
	g.dispose(Failed, err)
}

// Close commits Closed. It is the explicit success arm for producers
// that manage completion without deferring Settle.
func (g *Guard) Close() {
	g.dispose(Closed, nil)
}

// Abort commits Aborted. It is the explicit failure arm for producers
// running their own recover block (for example to re-panic afterwards).
func (g *Guard) Abort() {
	g.dispose(Aborted, nil)
}

// dispose consumes the guard and commits o. On a consumed guard it
// does nothing, keeping every disposal path at-most-once.
func (g *Guard) dispose(o Outcome, err error) {
	if g.done {
		return
	}
	g.done = true
	g.cell.commit(o, err)
}
