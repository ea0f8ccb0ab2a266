// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import (
	"code.hybscloud.com/kont"
)

// WriteThen writes data and then continues with next.
// Fuses Perform(Write{Data: data}) + Then.
func WriteThen[B any](data []byte, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Write{Data: data}), next)
}

// CloseDone commits the Closed outcome and returns a.
// Fuses Perform(Close{}) + Then + Pure.
func CloseDone[A any](a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Close{}), kont.Pure(a))
}

// FailDone blows the guard with err, short-circuiting the protocol.
// Fuses Perform(Fail{Err: err}) + Then + Pure; the Pure value is never
// reached because Fail does not resume.
func FailDone[A any](err error) kont.Eff[A] {
	var zero A
	return kont.Then(kont.Perform(Fail{Err: err}), kont.Pure(zero))
}
