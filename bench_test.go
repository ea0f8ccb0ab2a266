// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"code.hybscloud.com/fuse"
)

// BenchmarkNew measures pair construction.
func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	r := bytes.NewReader(nil)
	for b.Loop() {
		fuse.New(r)
	}
}

// BenchmarkPipe measures pipe construction.
func BenchmarkPipe(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		fuse.Pipe()
	}
}

// BenchmarkArmSettle measures the arm/settle cycle on a fresh fuse.
func BenchmarkArmSettle(b *testing.B) {
	b.ReportAllocs()
	r := bytes.NewReader(nil)
	for b.Loop() {
		_, f := fuse.New(r)
		g, _ := f.Arm()
		g.Settle()
	}
}

// BenchmarkOutcomeQuery measures the reader-side outcome poll.
func BenchmarkOutcomeQuery(b *testing.B) {
	b.ReportAllocs()
	fr, f := fuse.New(bytes.NewReader(nil))
	g, _ := f.Arm()
	g.Close()
	for b.Loop() {
		fr.Outcome()
	}
}

// BenchmarkClassifiedEOF measures Read at a committed end-of-stream.
func BenchmarkClassifiedEOF(b *testing.B) {
	b.ReportAllocs()
	fr, f := fuse.New(bytes.NewReader(nil))
	g, _ := f.Arm()
	g.Blow(errors.New("down"))
	buf := make([]byte, 8)
	for b.Loop() {
		fr.Read(buf)
	}
}

// BenchmarkPipeRoundTrip measures a write/read round-trip through the pipe.
func BenchmarkPipeRoundTrip(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	pr, pw := fuse.Pipe()
	buf := make([]byte, 16)
	for b.Loop() {
		pw.Write(buf)
		io.ReadFull(pr, buf)
	}
}

// BenchmarkFusedTransfer measures an armed producer round through the pipe.
func BenchmarkFusedTransfer(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	payload := []byte("0123456789abcdef")
	for b.Loop() {
		pr, pw := fuse.Pipe()
		fr, f := fuse.New(pr)
		done := make(chan struct{})
		go func() {
			defer close(done)
			g, _ := f.Arm()
			defer pw.Close()
			defer g.Settle()
			pw.Write(payload)
		}()
		io.ReadAll(fr)
		<-done
	}
}

// BenchmarkProduceProtocol measures a Produce protocol round.
func BenchmarkProduceProtocol(b *testing.B) {
	skipRace(b)
	b.ReportAllocs()
	payload := []byte("0123456789abcdef")
	for b.Loop() {
		pr, pw := fuse.Pipe()
		fr, f := fuse.New(pr)
		done := make(chan struct{})
		go func() {
			defer close(done)
			fuse.Produce(pw, f, fuse.WriteThen(payload, fuse.CloseDone(struct{}{})))
		}()
		io.ReadAll(fr)
		<-done
	}
}
