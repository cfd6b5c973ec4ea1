package ecs

import "iter"

// Query is a View whose results are materialized once per refresh. Systems
// declare Query fields; the Scheduler binds them and calls Execute right
// before the owning system runs.
type Query[T any] struct {
	view       *View[T]
	storage    *Storage
	archetypes []*Archetype
	seen       int

	entities   []EntityId
	components []T
	valid      bool
}

// NewQuery creates a query over storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage and drops any cached results.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.archetypes = nil
	q.seen = 0
	q.valid = false
}

// Execute rebuilds the result cache. Matching archetypes are only rescanned
// when new archetypes have appeared since the last call.
func (q *Query[T]) Execute() {
	if n := len(q.storage.ordered); n != q.seen {
		for _, archetype := range q.storage.ordered[q.seen:] {
			if q.view.matches(archetype) {
				q.archetypes = append(q.archetypes, archetype)
			}
		}
		q.seen = n
	}

	q.entities = q.entities[:0]
	q.components = q.components[:0]
	for _, archetype := range q.archetypes {
		for id, item := range q.view.iterArchetype(archetype) {
			q.entities = append(q.entities, id)
			q.components = append(q.components, item)
		}
	}
	q.valid = true
}

// Iter yields the cached results. It panics if Execute has never run.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.valid {
		panic("Query.Iter() called before Query.Execute()")
	}
	return func(yield func(EntityId, T) bool) {
		for i := range q.entities {
			if !yield(q.entities[i], q.components[i]) {
				return
			}
		}
	}
}

// Values yields only the cached component views.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.valid {
		panic("Query.Values() called before Query.Execute()")
	}
	return func(yield func(T) bool) {
		for i := range q.components {
			if !yield(q.components[i]) {
				return
			}
		}
	}
}

// Len returns the number of cached results.
func (q *Query[T]) Len() int {
	return len(q.entities)
}

// First returns the first cached result, if any.
func (q *Query[T]) First() (T, bool) {
	if !q.valid || len(q.components) == 0 {
		var zero T
		return zero, false
	}
	return q.components[0], true
}
