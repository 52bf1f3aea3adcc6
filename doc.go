// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package prop provides short-circuiting error propagation for fallible
// computations via algebraic effects on [code.hybscloud.com/kont].
//
// A fallible computation produces either a success value or a numeric error
// code. Awaiting another computation inside a body unwraps the value on
// success; on failure the code is forwarded automatically and the awaiting
// body terminates at the await point, without explicit branching at each
// call site.
//
// # Architecture
//
//   - Result cell: write-once container tagged success or error, shared by
//     reference count. Released cells are recycled through a bounded
//     lock-free SPSC free list via [code.hybscloud.com/lfq].
//   - Handle: the caller-facing view of a terminal cell, satisfying
//     [Handle.IsSuccess], [Handle.Value], [Handle.Code].
//   - Execution: eager and fully synchronous. [Go] runs a body to a
//     terminal state before returning; there is no deferred start and no
//     scheduler hand-off. Dual-world API supporting closure-based
//     (Cont-world) and defunctionalized (Expr-world) evaluation.
//   - Forwarding: awaiting a failed handle finalizes the awaiting
//     computation's own cell with the same code and abandons the rest of
//     its body. Propagation is unconditional — a body cannot inspect the
//     code and continue.
//
// # API Topologies
//
//   - Operations: [Await]. Explicit in-body failure delegates to
//     [code.hybscloud.com/kont.ThrowError] through [FailWith].
//   - Handles: [Succeed], [Failed], [Handle.Retain], [Handle.Release].
//   - Cont-world: [AwaitBind], [AwaitThen], [Done], [FailWith], run by [Go].
//   - Expr-world: zero-allocation variants [ExprAwaitBind], [ExprAwaitThen],
//     [ExprDone], [ExprFailWith], run by [GoExpr]. Bridge via [Reify] and
//     [Reflect].
//   - Recursive: [Loop] and [ExprLoop] for trampoline-based iterative
//     computations.
//
// # Integration
//
//   - Stepping: [Step] and [Advance] evaluate a computation one await point
//     at a time for external drivers. Resolution remains synchronous; each
//     suspension is affine (resumed at most once).
//   - Faults: a panic escaping a body is mapped to [CodeFault] before the
//     cell is finalized. A computation's result is never left unset.
//
// # Example
//
//	cfg := prop.ReadFile("service.conf")
//	merged := prop.Go(prop.AwaitBind(cfg, func(b []byte) kont.Eff[[]byte] {
//		return prop.Done(append(b, defaults...))
//	}))
//	if !merged.IsSuccess() {
//		return merged.Code() // first failure in the chain, unchanged
//	}
//	use(merged.Value())
package prop
