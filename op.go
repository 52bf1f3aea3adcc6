// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prop

import (
	"code.hybscloud.com/kont"
)

// Await is the effect operation for consuming another computation's
// terminal result. Perform(Await[T]{Handle: h}) unwraps h's value on
// success; on failure the awaiting computation forwards h's code and
// terminates at the await point.
type Await[T any] struct {
	kont.Phantom[T]
	Handle Handle[T]
}

// DispatchAwait resolves an await point against the terminal handle.
// On success it resumes with the unwrapped value. On failure it records
// the code in the forward context and returns (struct{}{}, true) —
// uniform with kont's Throw dispatch; the handler inspects ctx.HasErr
// to short-circuit, so the continuation is never resumed.
func (a Await[T]) DispatchAwait(ctx *kont.ErrorContext[Code]) (kont.Resumed, bool) {
	if a.Handle.IsSuccess() {
		return a.Handle.Value(), true
	}
	ctx.Err = a.Handle.Code()
	ctx.HasErr = true
	return struct{}{}, true
}

// awaitDispatcher is the structural interface for await operations.
// Dispatch never blocks: awaited handles are terminal by construction.
type awaitDispatcher interface {
	DispatchAwait(ctx *kont.ErrorContext[Code]) (kont.Resumed, bool)
}
