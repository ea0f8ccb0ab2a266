// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fuse classifies the end of a byte stream: finished, failed,
// or producer died.
//
// A bare stream cannot tell its reader whether end-of-stream means the
// producer completed or its goroutine terminated with an obligation
// outstanding. [New] wraps the transport's read half in a [Reader] and
// returns a [Fuse]; the producer arms the fuse, holds the resulting
// [Guard] while writing, and the guard's disposal commits a terminal
// [Outcome] into a shared single-assignment cell. At end-of-stream the
// Reader surfaces that outcome instead of a silent io.EOF.
//
// # Architecture
//
//   - Outcome cell: write-once slot on [code.hybscloud.com/atomix], committed by the first disposal, read by the consumer any number of times.
//   - Guard: affine obligation token. [Guard.Settle] is deferred directly and detects an unwinding goroutine itself; [Guard.Blow] carries an explicit failure payload; [Guard.Close] and [Guard.Abort] are the explicit arms.
//   - Reader: delegates to the inner read half and classifies only the io.EOF boundary: Closed and Unset stay io.EOF, Aborted becomes [ErrAborted], Failed becomes the payload verbatim.
//   - Transport: [Pipe] supplies a bounded lock-free SPSC byte pipe via [code.hybscloud.com/lfq]. Non-blocking at the I/O boundary ([code.hybscloud.com/iox.ErrWouldBlock]); blocking Read/Write wait with adaptive backoff.
//   - Protocols: producer-side [code.hybscloud.com/kont] effects. [Produce] runs a protocol of [Write], [Fail], and [Close] operations, settling the guard by the protocol's result.
//
// # Classification
//
//   - Guard disposed on ordinary control flow: reader sees io.EOF.
//   - Guard disposed while panicking: reader sees [ErrAborted].
//   - Guard blown with a payload: reader sees that payload.
//   - No guard disposed yet: reader sees io.EOF; the producer avoids
//     the window by holding the guard until its writes are flushed.
//
// # Example
//
//	pr, pw := fuse.Pipe()
//	fr, f := fuse.New(pr)
//
//	go func() {
//		g, err := f.Arm()
//		if err != nil {
//			return
//		}
//		defer pw.Close()
//		defer g.Settle()
//		pw.Write([]byte("payload"))
//	}()
//
//	data, err := io.ReadAll(fr) // data == "payload", err == nil
//
// Had the producer panicked between Arm and Settle, io.ReadAll would
// have returned the bytes written so far and [ErrAborted].
package fuse
