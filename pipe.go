// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import (
	"io"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// pipeCapacity is the bounded capacity of the pipe ring in bytes.
// 64 keeps the ring buffer within a single cache line while amortizing
// producer-side cached-index refresh cost.
const pipeCapacity = 64

// pipePair holds both halves, the byte ring, and the close flags in a
// single allocation. The SPSC queue is embedded as a value; only its
// ring buffer is a separate heap object.
type pipePair struct {
	r     PipeReader
	w     PipeWriter
	ring  lfq.SPSC[byte]
	wdone atomix.Uint32
	rdone atomix.Uint32
}

// PipeReader is the read half of a bounded in-process byte pipe.
// At most one goroutine may read at a time.
type PipeReader struct {
	ring  *lfq.SPSC[byte]
	wdone *atomix.Uint32
	rdone *atomix.Uint32
}

// PipeWriter is the write half of a bounded in-process byte pipe.
// At most one goroutine may write at a time.
type PipeWriter struct {
	ring  *lfq.SPSC[byte]
	wdone *atomix.Uint32
	rdone *atomix.Uint32
	slot  byte
}

// Pipe creates a connected pair of pipe halves over a bounded lock-free
// SPSC byte ring. The read half observes io.EOF once the write half is
// closed and the ring is drained, which makes the pair a transport for
// New: wrap the read half, hand the write half to the producer.
//
// Byte transfer is non-blocking at the I/O boundary: TryRead and
// TryWrite return iox.ErrWouldBlock when the ring cannot make progress,
// and the blocking Read and Write wait past that boundary with adaptive
// backoff (iox.Backoff).
func Pipe() (*PipeReader, *PipeWriter) {
	pair := &pipePair{}
	pair.ring.Init(pipeCapacity)

	pair.r = PipeReader{
		ring:  &pair.ring,
		wdone: &pair.wdone,
		rdone: &pair.rdone,
	}
	pair.w = PipeWriter{
		ring:  &pair.ring,
		wdone: &pair.wdone,
		rdone: &pair.rdone,
	}
	return &pair.r, &pair.w
}

// drain dequeues as many buffered bytes into p as are ready.
func (r *PipeReader) drain(p []byte) int {
	n := 0
	for n < len(p) {
		b, err := r.ring.Dequeue()
		if err != nil {
			break
		}
		p[n] = b
		n++
	}
	return n
}

// TryRead is the non-blocking read: it returns buffered bytes if any
// are ready, io.EOF once the write half is closed and the ring is
// drained, ErrClosedPipe after Close on the read half, and
// iox.ErrWouldBlock when the ring is empty but the writer may still
// produce.
func (r *PipeReader) TryRead(p []byte) (int, error) {
	if r.rdone.Load() != 0 {
		return 0, ErrClosedPipe
	}
	if len(p) == 0 {
		return 0, nil
	}
	if n := r.drain(p); n > 0 {
		return n, nil
	}
	if r.wdone.Load() != 0 {
		// Bytes enqueued just before the close can race the first
		// drain; loading the close flag orders them visible, so one
		// more drain settles whether the stream is truly exhausted.
		if n := r.drain(p); n > 0 {
			return n, nil
		}
		return 0, io.EOF
	}
	return 0, iox.ErrWouldBlock
}

// Read implements io.Reader. It blocks until at least one byte is
// ready, the write half is closed and drained (io.EOF), or the read
// half is closed (ErrClosedPipe).
func (r *PipeReader) Read(p []byte) (int, error) {
	var bo iox.Backoff
	for {
		n, err := r.TryRead(p)
		if !iox.IsWouldBlock(err) {
			return n, err
		}
		bo.Wait()
	}
}

// Close closes the read half. Buffered bytes are dropped, later reads
// fail with ErrClosedPipe, and the writer's next write fails with
// ErrClosedPipe. Close is idempotent.
func (r *PipeReader) Close() error {
	r.rdone.Store(1)
	return nil
}

// TryWrite is the non-blocking write: it enqueues as much of p as fits,
// reporting partial progress with a nil error, iox.ErrWouldBlock when
// the ring is full, and ErrClosedPipe once either half is closed.
func (w *PipeWriter) TryWrite(p []byte) (int, error) {
	if w.wdone.Load() != 0 || w.rdone.Load() != 0 {
		return 0, ErrClosedPipe
	}
	n := 0
	for n < len(p) {
		w.slot = p[n]
		if err := w.ring.Enqueue(&w.slot); err != nil {
			break
		}
		n++
	}
	if n > 0 || len(p) == 0 {
		return n, nil
	}
	return 0, iox.ErrWouldBlock
}

// Write implements io.Writer. It blocks until all of p is enqueued or
// a half is closed, in which case it reports the bytes written before
// ErrClosedPipe.
func (w *PipeWriter) Write(p []byte) (int, error) {
	var bo iox.Backoff
	n := 0
	for n < len(p) {
		m, err := w.TryWrite(p[n:])
		if err != nil {
			if !iox.IsWouldBlock(err) {
				return n, err
			}
			bo.Wait()
			continue
		}
		n += m
		bo.Reset()
	}
	return n, nil
}

// Close closes the write half. The read half drains the remaining
// buffered bytes and then observes io.EOF. Close is idempotent.
func (w *PipeWriter) Close() error {
	w.wdone.Store(1)
	return nil
}
