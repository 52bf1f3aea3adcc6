// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prop

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lfq"
)

// Result cell tags. A cell transitions from cellUnset to exactly one of
// cellSuccess or cellError, enforced by compare-and-swap.
const (
	cellUnset uint32 = iota
	cellSuccess
	cellError
)

// freeListCapacity is the bounded capacity of the released-cell free list.
// 64 covers the deepest await chains seen in practice while keeping the
// ring buffer small; overflow falls back to the garbage collector.
const freeListCapacity = 64

// cell is the write-once result container shared between the computation
// that completes it and the computations that await it. The value slot is
// type-erased; concrete types are recovered at the typed Handle boundary.
type cell struct {
	state atomix.Uint32
	refs  atomix.Uint32
	value kont.Erased
	code  Code
}

// cellFree recycles released cells. SPSC is sufficient because the
// propagation model runs on a single logical thread of control; both
// ends of the queue are driven from the same call chain.
var cellFree lfq.SPSC[*cell]

func init() {
	cellFree.Init(freeListCapacity)
}

// acquireCell returns an unset cell holding one reference, reusing a
// recycled cell when the free list has one.
func acquireCell() *cell {
	c, err := cellFree.Dequeue()
	if err != nil {
		c = new(cell)
	}
	c.refs.Store(1)
	return c
}

// setSuccess finalizes the cell with a success value.
// The cell must be unset; completing a cell twice is a programming error.
func (c *cell) setSuccess(v kont.Erased) {
	c.value = v
	if !c.state.CompareAndSwap(cellUnset, cellSuccess) {
		panic("prop: result cell completed twice")
	}
}

// setError finalizes the cell with an error code.
// The cell must be unset; completing a cell twice is a programming error.
func (c *cell) setError(code Code) {
	c.code = code
	if !c.state.CompareAndSwap(cellUnset, cellError) {
		panic("prop: result cell completed twice")
	}
}

// tag returns the terminal tag. Reading an unset cell is a contract
// violation: handles are only handed out once their cell is terminal.
func (c *cell) tag() uint32 {
	s := c.state.Load()
	if s == cellUnset {
		panic("prop: result cell read before completion")
	}
	return s
}

func (c *cell) retain() {
	c.refs.Add(1)
}

// release drops one reference. The last release resets the cell and
// returns it to the free list; a full free list drops it for the GC.
func (c *cell) release() {
	n := c.refs.Add(^uint32(0))
	if n == ^uint32(0) {
		panic("prop: result cell released twice")
	}
	if n != 0 {
		return
	}
	c.value = nil
	c.code = 0
	c.state.Store(cellUnset)
	p := c
	_ = cellFree.Enqueue(&p)
}
