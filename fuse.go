// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import "io"

// Fuse is the producer-side handle created by New alongside a Reader.
// Arming it yields the Guard that must be held for the duration of the
// producer's obligation. A fuse arms exactly once.
type Fuse struct {
	cell   *cell
	serial Serial
}

// fusePair holds the reader, the fuse, and the shared outcome cell in a
// single allocation. Only the caller-supplied inner reader is a
// separate heap object.
type fusePair struct {
	rd Reader
	f  Fuse
	cl cell
}

// New wraps the transport's read half r and returns the classifying
// Reader together with the Fuse for the producer side. The pair shares
// one outcome cell and one serial number.
//
// The fuse does not own the transport. The producer keeps the write
// half and closes it after disposing of the guard, so the committed
// outcome is visible by the time the reader observes end-of-stream:
//
//	defer w.Close()
//	defer g.Settle()
func New(r io.Reader) (*Reader, *Fuse) {
	s := nextSerial()
	p := &fusePair{}
	p.rd = Reader{inner: r, cell: &p.cl, serial: s}
	p.f = Fuse{cell: &p.cl, serial: s}
	return &p.rd, &p.f
}

// Arm yields the guard representing the producer's outstanding
// obligation. It fails with ErrAlreadyArmed on every call after the
// first; a failed call has no effect on the outcome cell.
func (f *Fuse) Arm() (*Guard, error) {
	if !f.cell.armed.CompareAndSwap(0, 1) {
		return nil, ErrAlreadyArmed
	}
	return &Guard{cell: f.cell}, nil
}

// Serial returns the serial number assigned to this fuse pair.
func (f *Fuse) Serial() Serial {
	return f.serial
}
