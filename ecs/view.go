package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

type viewField struct {
	component reflect.Type
	offset    uintptr
	optional  bool
	entityId  bool
}

// View selects entities by the shape of a struct. Every pointer field of T
// names a component; embedded pointers are required, named pointer fields may
// be tagged `ecs:"optional"`. A field of type EntityId receives the entity's
// ID.
//
//	type mover struct {
//		ecs.EntityId
//		*Position
//		*Velocity
//		Label *Name `ecs:"optional"`
//	}
type View[T any] struct {
	storage *Storage
	fields  []viewField
}

// NewView builds a view over storage. It panics if T is not a valid view shape.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	fields := make([]viewField, 0, structType.NumField())
	for i := range structType.NumField() {
		f := structType.Field(i)
		if f.Type == entityIdType {
			fields = append(fields, viewField{offset: f.Offset, entityId: true})
			continue
		}
		if f.Type.Kind() != reflect.Pointer {
			panic("View struct fields must be pointer types or EntityId")
		}

		optional := false
		if tag := f.Tag.Get("ecs"); tag != "" {
			if tag != "optional" || f.Anonymous {
				panic("invalid ecs tag \"" + tag + "\" on field " + f.Name)
			}
			optional = true
		}
		fields = append(fields, viewField{
			component: f.Type.Elem(),
			offset:    f.Offset,
			optional:  optional,
		})
	}

	return &View[T]{storage: storage, fields: fields}
}

func (v *View[T]) matches(archetype *Archetype) bool {
	for _, f := range v.fields {
		if f.entityId || f.optional {
			continue
		}
		if !archetype.HasComponent(f.component) {
			return false
		}
	}
	return true
}

// columnsFor maps each view field to its column in archetype (-1 if absent).
func (v *View[T]) columnsFor(archetype *Archetype) []int {
	cols := make([]int, len(v.fields))
	for i, f := range v.fields {
		cols[i] = -1
		if !f.entityId {
			cols[i] = archetype.columnIndex(f.component)
		}
	}
	return cols
}

func (v *View[T]) populate(out unsafe.Pointer, archetype *Archetype, index int, cols []int) bool {
	for i, f := range v.fields {
		fieldPtr := unsafe.Add(out, f.offset)
		if f.entityId {
			*(*EntityId)(fieldPtr) = NewEntityId(archetype.id, uint32(index))
			continue
		}

		var comp any
		if cols[i] >= 0 {
			comp = archetype.columns[cols[i]].Get(index)
		}
		if comp == nil {
			if !f.optional {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}
		*(*unsafe.Pointer)(fieldPtr) = dataPointer(comp)
	}
	return true
}

// Fill populates out for entity id. It returns false when the entity is gone
// or lacks a required component.
func (v *View[T]) Fill(id EntityId, out *T) bool {
	archetype, ok := v.storage.archetypes.Get(id.ArchetypeId())
	if !ok || !v.matches(archetype) {
		return false
	}
	if len(archetype.columns) == 0 || !archetype.columns[0].Has(int(id.Index())) {
		return false
	}
	return v.populate(unsafe.Pointer(out), archetype, int(id.Index()), v.columnsFor(archetype))
}

// Get returns the populated view for id, or nil.
func (v *View[T]) Get(id EntityId) *T {
	var out T
	if !v.Fill(id, &out) {
		return nil
	}
	return &out
}

func (v *View[T]) iterArchetype(archetype *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		if len(archetype.columns) == 0 {
			return
		}
		cols := v.columnsFor(archetype)
		var out T
		for index := range archetype.columns[0].Iter() {
			if !v.populate(unsafe.Pointer(&out), archetype, index, cols) {
				continue
			}
			if !yield(NewEntityId(archetype.id, uint32(index)), out) {
				return
			}
		}
	}
}

// Iter walks every matching entity, archetypes in creation order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.ordered {
			if !v.matches(archetype) {
				continue
			}
			for id, item := range v.iterArchetype(archetype) {
				if !yield(id, item) {
					return
				}
			}
		}
	}
}

// Values is Iter without the IDs.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (v *View[T]) Count() int {
	n := 0
	for range v.Iter() {
		n++
	}
	return n
}

// IDs collects the IDs of all matching entities. Use it when the caller is
// about to delete them.
func (v *View[T]) IDs() []EntityId {
	var ids []EntityId
	for id := range v.Iter() {
		ids = append(ids, id)
	}
	return ids
}
