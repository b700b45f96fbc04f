// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

// Handles are 32 bit ids: the low 16 bits are the slot index plus one
// and the high 16 bits are the generation of the slot, so the zero id
// is never valid and a handle to a destroyed resource never refers to
// the resource that reuses its slot.
const (
	slotShift = 16
	slotMask  = 1<<slotShift - 1

	// MaxPoolSize is the largest supported pool size.
	MaxPoolSize = slotMask - 1
)

// Buffer is a handle to a vertex or index buffer.
type Buffer struct{ ID uint32 }

// Image is a handle to a texture.
type Image struct{ ID uint32 }

// Shader is a handle to a shader program.
type Shader struct{ ID uint32 }

// Pipeline is a handle to a pipeline.
type Pipeline struct{ ID uint32 }

type slot[T any] struct {
	id   uint32
	live bool
	res  T
}

// pool is a fixed array of slots with a free list.
type pool[T any] struct {
	slots []slot[T]
	free  []int
}

func newPool[T any](size int) *pool[T] {
	p := &pool[T]{slots: make([]slot[T], size), free: make([]int, size)}
	// popped from the end, so slot 0 is handed out first
	for i := range size {
		p.free[i] = size - 1 - i
	}
	return p
}

// alloc reserves a slot and returns its new id.
func (p *pool[T]) alloc(res T) (uint32, error) {
	n := len(p.free)
	if n == 0 {
		return 0, ErrPoolExhausted
	}
	i := p.free[n-1]
	p.free = p.free[:n-1]
	s := &p.slots[i]
	gen := (s.id>>slotShift + 1) & slotMask
	s.id = gen<<slotShift | uint32(i+1)
	s.live = true
	s.res = res
	return s.id, nil
}

// lookup returns the slot of a live id, or nil.
func (p *pool[T]) lookup(id uint32) *slot[T] {
	i := int(id&slotMask) - 1
	if i < 0 || i >= len(p.slots) {
		return nil
	}
	s := &p.slots[i]
	if !s.live || s.id != id {
		return nil
	}
	return s
}

// release frees the slot of a live id and reports whether it was live.
func (p *pool[T]) release(id uint32) bool {
	s := p.lookup(id)
	if s == nil {
		return false
	}
	var zero T
	s.res = zero
	s.live = false
	p.free = append(p.free, int(id&slotMask)-1)
	return true
}

// ids returns the ids of all live slots.
func (p *pool[T]) ids() []uint32 {
	var ids []uint32
	for i := range p.slots {
		if p.slots[i].live {
			ids = append(ids, p.slots[i].id)
		}
	}
	return ids
}

// used returns the number of live slots.
func (p *pool[T]) used() int {
	return len(p.slots) - len(p.free)
}
