// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prop

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world fallible computation to Expr-world.
// The resulting Expr can be run with GoExpr or stepped with Step and
// Advance.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world fallible computation to Cont-world.
// The resulting Eff can be run with Go.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
