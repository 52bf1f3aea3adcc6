// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prop

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is the pre-allocated terminal frame, avoiding a heap
// escape when boxing ReturnFrame{} into kont.Frame per construction.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame
// construction. Named function produces a static function value,
// consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

func awaitBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) kont.Expr[B])
	result := f(current.(T))
	return kont.Erased(result.Value), result.Frame
}

// ExprAwaitBind awaits h and passes the unwrapped value to f.
// Fuses ExprPerform(Await[T]{Handle: h}) + ExprBind.
func ExprAwaitBind[T, B any](h Handle[T], f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = awaitBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Await[T]{Handle: h}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprAwaitThen awaits h, discarding the value, and continues with next.
// Fuses ExprPerform(Await[T]{Handle: h}) + ExprThen.
func ExprAwaitThen[T, B any](h Handle[T], next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Await[T]{Handle: h}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprDone completes the computation body with a.
func ExprDone[A any](a A) kont.Expr[A] {
	return kont.ExprReturn(a)
}

// ExprFailWith terminates the computation body with code.
func ExprFailWith[A any](code Code) kont.Expr[A] {
	return kont.ExprThrowError[Code, A](code)
}
