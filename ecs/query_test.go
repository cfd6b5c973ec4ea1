package ecs_test

import (
	"testing"

	"github.com/plus3/advent/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQueryRequiresExecute(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	q := ecs.NewQuery[mover](storage)

	assert.Panics(t, func() {
		for range q.Iter() {
		}
	})
}

func TestQueryPicksUpNewArchetypes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	q := ecs.NewQuery[struct{ *Position }](storage)

	storage.Spawn(Position{X: 1})
	q.Execute()
	assert.Equal(t, 1, q.Len())

	storage.Spawn(Position{X: 2}, Velocity{})
	storage.Spawn(Health{})
	q.Execute()
	assert.Equal(t, 2, q.Len())

	total := float32(0)
	for item := range q.Values() {
		total += item.Position.X
	}
	assert.Equal(t, float32(3), total)
}

func TestQueryCacheIsASnapshot(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	q := ecs.NewQuery[struct{ *Position }](storage)

	storage.Spawn(Position{X: 1})
	q.Execute()
	storage.Spawn(Position{X: 2})

	assert.Equal(t, 1, q.Len(), "results only change on Execute")

	first, ok := q.First()
	assert.True(t, ok)
	assert.Equal(t, float32(1), first.Position.X)
}
