// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prop

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a fallible computation until its first await point.
// Returns (terminal handle, nil) on completion, or (zero, suspension)
// if an await is pending. Stepping exposes await points to an external
// driver; it does not defer work — each await still resolves against an
// already-terminal handle.
func Step[R any](m kont.Expr[R]) (Handle[R], *kont.Suspension[Handle[R]]) {
	wrapped := kont.ExprMap(m, Succeed[R])
	return kont.StepExpr(wrapped)
}

// Advance resolves the suspended await operation. On success the
// computation resumes to its next await point or completion. On failure
// the suspension is discarded and a terminal failed handle carrying the
// forwarded code is returned — the remainder of the body never runs.
//
// The suspension is affine: advancing it twice panics.
func Advance[R any](susp *kont.Suspension[Handle[R]]) (Handle[R], *kont.Suspension[Handle[R]]) {
	if aop, ok := susp.Op().(awaitDispatcher); ok {
		var ctx kont.ErrorContext[Code]
		v, _ := aop.DispatchAwait(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return Failed[R](ctx.Err), nil
		}
		return susp.Resume(v)
	}
	if eop, ok := susp.Op().(interface {
		DispatchError(ctx *kont.ErrorContext[Code]) (kont.Resumed, bool)
	}); ok {
		var ctx kont.ErrorContext[Code]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return Failed[R](ctx.Err), nil
		}
		return susp.Resume(v)
	}
	panic("prop: unhandled effect in Advance")
}
