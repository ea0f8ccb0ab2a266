// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse_test

// spawn runs fn on its own goroutine and returns a channel closed when
// fn has returned or finished unwinding. The contained recover keeps a
// producer that dies without a guard from taking down the test binary.
func spawn(fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() { _ = recover() }()
		fn()
	}()
	return done
}
