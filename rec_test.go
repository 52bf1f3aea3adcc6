// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prop_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/prop"
)

func TestLoopAccumulate(t *testing.T) {
	// Sum 0..4 by awaiting a fresh stage per iteration.
	type state struct{ i, acc int }
	h := prop.Go(prop.Loop(state{}, func(s state) kont.Eff[kont.Either[state, int]] {
		if s.i >= 5 {
			return kont.Pure(kont.Right[state, int](s.acc))
		}
		stage := prop.Succeed(s.i)
		return prop.AwaitBind(stage, func(n int) kont.Eff[kont.Either[state, int]] {
			return kont.Pure(kont.Left[state, int](state{i: s.i + 1, acc: s.acc + n}))
		})
	}))

	if !h.IsSuccess() {
		t.Fatalf("loop failed with code %d", h.Code())
	}
	// 0+1+2+3+4 = 10
	if got := h.Value(); got != 10 {
		t.Fatalf("loop result got %d, want 10", got)
	}
}

func TestLoopForwardsMidIteration(t *testing.T) {
	// Iteration 3 awaits a failed stage: the whole loop forwards its code.
	iterations := 0
	h := prop.Go(prop.Loop(0, func(i int) kont.Eff[kont.Either[int, int]] {
		iterations++
		stage := prop.Succeed(i)
		if i == 3 {
			stage = prop.Failed[int](40)
		}
		return prop.AwaitBind(stage, func(n int) kont.Eff[kont.Either[int, int]] {
			if n >= 9 {
				return kont.Pure(kont.Right[int, int](n))
			}
			return kont.Pure(kont.Left[int, int](n + 1))
		})
	}))

	if h.IsSuccess() || h.Code() != 40 {
		t.Fatal("loop must forward the failed iteration's code")
	}
	if iterations != 4 {
		t.Fatalf("iterations got %d, want 4 (loop stopped at the failure)", iterations)
	}
}

func TestExprLoopAccumulate(t *testing.T) {
	type state struct{ i, acc int }
	h := prop.GoExpr(prop.ExprLoop(state{}, func(s state) kont.Expr[kont.Either[state, int]] {
		if s.i >= 5 {
			return kont.ExprReturn(kont.Right[state, int](s.acc))
		}
		stage := prop.Succeed(s.i)
		return prop.ExprAwaitBind(stage, func(n int) kont.Expr[kont.Either[state, int]] {
			return kont.ExprReturn(kont.Left[state, int](state{i: s.i + 1, acc: s.acc + n}))
		})
	}))

	if !h.IsSuccess() {
		t.Fatalf("loop failed with code %d", h.Code())
	}
	if got := h.Value(); got != 10 {
		t.Fatalf("loop result got %d, want 10", got)
	}
}

func TestExprLoopPureSteps(t *testing.T) {
	// Pure iterations take the eager ReturnFrame path without frames.
	h := prop.GoExpr(prop.ExprLoop(0, func(i int) kont.Expr[kont.Either[int, int]] {
		if i >= 100 {
			return kont.ExprReturn(kont.Right[int, int](i))
		}
		return kont.ExprReturn(kont.Left[int, int](i + 1))
	}))

	if !h.IsSuccess() || h.Value() != 100 {
		t.Fatal("pure Expr loop broken")
	}
}
