// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prop

// Handle is the caller-facing view of a completed fallible computation.
// Every handle references a terminal result cell: execution is eager, so
// a computation is finished by the time its handle exists.
//
// Checking is the caller's responsibility. Reading the value of a failed
// handle, or the code of a successful one, is a contract violation and
// panics.
type Handle[T any] struct {
	cell   *cell
	serial Serial
}

// Succeed creates a terminal successful handle holding v.
// Leaf computations that do no awaiting complete through Succeed.
func Succeed[T any](v T) Handle[T] {
	h := Handle[T]{cell: acquireCell(), serial: nextSerial()}
	h.cell.setSuccess(v)
	return h
}

// Failed creates a terminal failed handle carrying code.
func Failed[T any](code Code) Handle[T] {
	h := Handle[T]{cell: acquireCell(), serial: nextSerial()}
	h.cell.setError(code)
	return h
}

// IsSuccess reports whether the computation completed with a value.
func (h Handle[T]) IsSuccess() bool {
	return h.cell.tag() == cellSuccess
}

// Value returns the success value.
// Panics if the computation failed.
func (h Handle[T]) Value() T {
	if h.cell.tag() != cellSuccess {
		panic("prop: value read from failed computation")
	}
	return h.cell.value.(T)
}

// Code returns the error code.
// Panics if the computation succeeded.
func (h Handle[T]) Code() Code {
	if h.cell.tag() != cellError {
		panic("prop: error code read from successful computation")
	}
	return h.cell.code
}

// Serial returns the serial number assigned to this computation.
func (h Handle[T]) Serial() Serial {
	return h.serial
}

// Retain adds a reference to the underlying result cell and returns the
// handle, for callers that share a result beyond the creating scope.
func (h Handle[T]) Retain() Handle[T] {
	h.cell.retain()
	return h
}

// Release drops a reference. The last release recycles the cell; the
// handle must not be touched afterwards. Releasing is optional — handles
// that are never released are reclaimed by the garbage collector.
func (h Handle[T]) Release() {
	h.cell.release()
}
