package ecs

import (
	"iter"
	"math/bits"
	"reflect"
)

// column is a type-erased, slot-addressed store for one component type.
type column interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}

// ComponentRegistry maps component types to column factories. Every type used
// in Spawn must be registered first. Registries are per-storage, so several
// worlds can coexist in one process.
type ComponentRegistry struct {
	factories map[reflect.Type]func() column
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() column),
	}
}

// RegisterComponent makes T usable as a component in storages built on r.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() column {
		return &blockColumn[T]{}
	}
}

// Registered reports whether t has a column factory.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) newColumn(t reflect.Type) column {
	factory, ok := r.factories[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return factory()
}

const blockSize = 64

// blockColumn stores components in fixed 64-slot blocks. Blocks are allocated
// individually so pointers handed out by Get stay valid while the column grows.
// Occupancy is one bit per slot.
type blockColumn[T any] struct {
	blocks []*[blockSize]T
	used   []uint64
	free   []int
	next   int
	count  int
}

// Append stores item (a T or *T) and returns its slot, or -1 on a type mismatch.
func (c *blockColumn[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		return -1
	}

	var index int
	if n := len(c.free); n > 0 {
		index = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		index = c.next
		c.next++
		if index/blockSize >= len(c.blocks) {
			c.blocks = append(c.blocks, new([blockSize]T))
			c.used = append(c.used, 0)
		}
	}

	block, slot := index/blockSize, index%blockSize
	c.blocks[block][slot] = value
	c.used[block] |= 1 << slot
	c.count++
	return index
}

func (c *blockColumn[T]) Get(index int) any {
	if !c.Has(index) {
		return nil
	}
	return &c.blocks[index/blockSize][index%blockSize]
}

func (c *blockColumn[T]) Has(index int) bool {
	if index < 0 || index >= c.next {
		return false
	}
	return c.used[index/blockSize]&(1<<(index%blockSize)) != 0
}

// Delete zeroes the slot and queues it for reuse.
func (c *blockColumn[T]) Delete(index int) {
	if !c.Has(index) {
		return
	}
	block, slot := index/blockSize, index%blockSize
	var zero T
	c.blocks[block][slot] = zero
	c.used[block] &^= 1 << slot
	c.free = append(c.free, index)
	c.count--
}

func (c *blockColumn[T]) Len() int {
	return c.count
}

// Iter yields occupied slots in ascending order.
func (c *blockColumn[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for block, mask := range c.used {
			for mask != 0 {
				slot := bits.TrailingZeros64(mask)
				mask &^= 1 << slot
				if !yield(block*blockSize + slot) {
					return
				}
			}
		}
	}
}
