// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import "errors"

// ErrAlreadyArmed is returned by Fuse.Arm when the fuse has been armed
// before. Arming is a one-shot transition; a second call is a local
// misuse reported at the call site and never reaches the outcome cell.
var ErrAlreadyArmed = errors.New("fuse: already armed")

// ErrAborted is the fixed classification surfaced by Reader when the
// producer's goroutine terminated abnormally while its guard was
// outstanding. It carries no producer payload; explicit failure payloads
// travel through Guard.Blow instead.
var ErrAborted = errors.New("fuse: producer aborted")

// ErrClosedPipe is returned by pipe operations on a closed half:
// writes after either half closed, and reads after the read half closed.
// A closed write half is not an error for the read half; it drains the
// ring and then reports io.EOF.
var ErrClosedPipe = errors.New("fuse: read/write on closed pipe")
