// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prop_test

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/prop"
)

// driveExpr drives an Expr-world computation to a terminal handle via a
// Step+Advance loop. Used by stepping and bridge tests to exercise the
// external-driver path.
func driveExpr[R any](m kont.Expr[R]) prop.Handle[R] {
	h, susp := prop.Step[R](m)
	for susp != nil {
		h, susp = prop.Advance(susp)
	}
	return h
}
