// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prop

import (
	"code.hybscloud.com/kont"
)

// forwardHandler implements kont.Handler for fallible computations.
// It dispatches two effect families: await operations and kont error
// operations (Throw via FailWith). The first failure finalizes the
// computation's own cell with the same code and short-circuits the
// trampoline — nothing after the failed await point runs, and no second
// forward is possible.
// Value type: passed to the trampoline on the stack, avoiding heap
// allocation.
type forwardHandler[A any] struct {
	ctx *kont.ErrorContext[Code]
	h   Handle[A]
}

// Dispatch implements kont.Handler via structural interface assertion.
// Dispatch order: Await → Error.
func (h forwardHandler[A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if aop, ok := op.(awaitDispatcher); ok {
		v, _ := aop.DispatchAwait(h.ctx)
		if h.ctx.HasErr {
			h.h.cell.setError(h.ctx.Err)
			return h.h, false
		}
		return v, true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[Code]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.ctx)
		if h.ctx.HasErr {
			h.h.cell.setError(h.ctx.Err)
			return h.h, false
		}
		return v, true
	}
	panic("prop: unhandled effect in forwardHandler")
}

// Go runs a Cont-world fallible computation eagerly to a terminal state
// and returns its handle. The body executes synchronously within the
// call: each await resolves immediately against an already-terminal
// handle, success finalizes the cell with the body's value, and the
// first forwarded failure finalizes it with that code.
//
// A panic escaping the body is recovered: if the cell is still unset it
// is finalized with CodeFault, so faults become observable errors rather
// than lost results. Panics raised after finalization indicate protocol
// misuse and are re-raised.
func Go[A any](body kont.Eff[A]) (h Handle[A]) {
	h = Handle[A]{cell: acquireCell(), serial: nextSerial()}
	defer recoverFault(h.cell)
	wrapped := kont.Map[kont.Resumed, A, Handle[A]](body, func(a A) Handle[A] {
		h.cell.setSuccess(a)
		return h
	})
	var ctx kont.ErrorContext[Code]
	return kont.Handle(wrapped, forwardHandler[A]{ctx: &ctx, h: h})
}

// GoExpr runs an Expr-world fallible computation eagerly to a terminal
// state and returns its handle. Semantics match Go.
func GoExpr[A any](body kont.Expr[A]) (h Handle[A]) {
	h = Handle[A]{cell: acquireCell(), serial: nextSerial()}
	defer recoverFault(h.cell)
	wrapped := kont.ExprMap(body, func(a A) Handle[A] {
		h.cell.setSuccess(a)
		return h
	})
	var ctx kont.ErrorContext[Code]
	return kont.HandleExpr(wrapped, forwardHandler[A]{ctx: &ctx, h: h})
}

// recoverFault maps a panic escaping a computation body to CodeFault.
// A panic after the cell is already terminal is not a computation fault
// and is re-raised.
func recoverFault(c *cell) {
	r := recover()
	if r == nil {
		return
	}
	if c.state.Load() != cellUnset {
		panic(r)
	}
	c.setError(CodeFault)
}
