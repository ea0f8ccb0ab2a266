// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import (
	"io"

	"code.hybscloud.com/kont"
)

// produceContext holds the dispatch targets for a running producer
// protocol: the stream's write half, the armed guard, and the
// short-circuit reason once an operation has failed.
type produceContext struct {
	w   io.Writer
	g   *Guard
	err error
}

// produceDispatcher is the structural interface for produce operations.
// Dispatch is blocking (the pipe's Write already waits past the I/O
// boundary); returning false short-circuits the protocol.
type produceDispatcher interface {
	DispatchProduce(ctx *produceContext) (kont.Resumed, bool)
}

// Write is the effect operation for appending bytes to the stream.
// Perform(Write{Data: p}) delivers p through the write half.
type Write struct {
	kont.Phantom[struct{}]
	Data []byte
}

// DispatchProduce handles Write on the producer targets.
// A transport write error blows the guard with that error and
// short-circuits the protocol.
func (op Write) DispatchProduce(ctx *produceContext) (kont.Resumed, bool) {
	if _, err := ctx.w.Write(op.Data); err != nil {
		ctx.g.Blow(err)
		ctx.err = err
		return nil, false
	}
	return struct{}{}, true
}

// Fail is the effect operation for blowing the guard with an explicit
// payload. Perform(Fail{Err: err}) commits Failed(err) and
// short-circuits the protocol; nothing after it runs.
type Fail struct {
	kont.Phantom[struct{}]
	Err error
}

// DispatchProduce handles Fail on the producer targets. A nil payload
// degrades to Aborted, mirroring Guard.Blow.
func (op Fail) DispatchProduce(ctx *produceContext) (kont.Resumed, bool) {
	ctx.g.Blow(op.Err)
	if op.Err != nil {
		ctx.err = op.Err
	} else {
		ctx.err = ErrAborted
	}
	return nil, false
}

// Close is the effect operation committing the Closed outcome.
// Perform(Close{}) settles the guard on the success path; the protocol
// continues and may still write, though its classification is fixed.
type Close struct {
	kont.Phantom[struct{}]
}

// DispatchProduce handles Close on the producer targets. Never fails.
func (Close) DispatchProduce(ctx *produceContext) (kont.Resumed, bool) {
	ctx.g.Close()
	return struct{}{}, true
}

// produceHandler implements kont.Handler for produce effects.
// A short-circuiting dispatch yields the zero R as the protocol result;
// Produce reports the recorded reason as its error instead.
type produceHandler[R any] struct {
	ctx *produceContext
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h produceHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	pop, ok := op.(produceDispatcher)
	if !ok {
		panic("fuse: unhandled effect in produceHandler")
	}
	v, resumed := pop.DispatchProduce(h.ctx)
	if !resumed {
		var zero R
		return zero, false
	}
	return v, true
}

// Produce arms f and runs a producer protocol against w, settling the
// guard by the protocol's result: completion commits Closed, Fail
// commits Failed and returns its payload, a transport write error
// commits Failed and returns that error, and a panic commits Aborted
// and returns ErrAborted with the panic consumed, as with Guard.Settle.
//
// When w is an io.Closer, Produce closes it after the outcome is
// committed, so the consumer observes end-of-stream only after the
// classification is readable.
func Produce[R any](w io.Writer, f *Fuse, protocol kont.Eff[R]) (result R, err error) {
	g, err := f.Arm()
	if err != nil {
		return result, err
	}
	if c, ok := w.(io.Closer); ok {
		defer c.Close()
	}
	defer func() {
		if r := recover(); r != nil {
			g.Abort()
			err = ErrAborted
		}
	}()

	ctx := &produceContext{w: w, g: g}
	result = kont.Handle(protocol, produceHandler[R]{ctx: ctx})
	if ctx.err != nil {
		return result, ctx.err
	}
	g.Close()
	return result, nil
}
