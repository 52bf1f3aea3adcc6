// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prop

import (
	"code.hybscloud.com/kont"
)

// AwaitBind awaits h and passes the unwrapped value to f.
// Fuses Perform(Await[T]{Handle: h}) + Bind.
// If h failed, f never runs and the enclosing computation forwards
// h's code.
func AwaitBind[T, B any](h Handle[T], f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Await[T]{Handle: h}), f)
}

// AwaitThen awaits h for its effect on propagation only, discarding the
// value, and continues with next.
// Fuses Perform(Await[T]{Handle: h}) + Then.
func AwaitThen[T, B any](h Handle[T], next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Await[T]{Handle: h}), next)
}

// Done completes the computation body with a.
func Done[A any](a A) kont.Eff[A] {
	return kont.Pure(a)
}

// FailWith terminates the computation body with code.
// Delegates to kont's error effect; the forward handler finalizes the
// cell with code and nothing after the FailWith point runs.
func FailWith[A any](code Code) kont.Eff[A] {
	return kont.ThrowError[Code, A](code)
}
