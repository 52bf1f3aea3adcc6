// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prop

// Code is the numeric error code carried by a failed computation.
// The taxonomy is flat: one code per failure, no wrapping or chaining.
// The first failure in a chain of awaits becomes the code of every
// enclosing computation.
type Code = uint64

// CodeFault is the reserved code for faults recovered inside [Go] and
// [GoExpr]. A panic escaping a computation body finalizes the result
// cell with CodeFault instead of leaving it unset.
const CodeFault = ^Code(0)
