package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studenttracker/internal/model"
)

func student(roll, name string, m1, m2, m3 int) model.Student {
	return model.Student{Roll: roll, Name: name, Marks: [3]int{m1, m2, m3}}
}

func TestUpsertInsertsAndUpdates(t *testing.T) {
	s := New()

	inserted := s.Upsert(student("S1", "Ava", 90, 92, 88))
	assert.True(t, inserted)
	assert.Equal(t, 1, s.Len())

	inserted = s.Upsert(student("S1", "Ava Lee", 70, 71, 72))
	assert.False(t, inserted)
	assert.Equal(t, 1, s.Len())

	got, err := s.Get("S1")
	assert.NoError(t, err)
	assert.Equal(t, "Ava Lee", got.Name)
	assert.Equal(t, [3]int{70, 71, 72}, got.Marks)
}

func TestUpsertPreservesPosition(t *testing.T) {
	s := New()
	s.Upsert(student("S1", "Ava", 90, 92, 88))
	s.Upsert(student("S2", "Bo", 40, 35, 50))
	s.Upsert(student("S3", "Cy", 60, 60, 60))

	// Updating the middle record must not move it.
	s.Upsert(student("S2", "Bo Chen", 80, 80, 80))

	rolls := []string{}
	for _, st := range s.List() {
		rolls = append(rolls, st.Roll)
	}
	assert.Equal(t, []string{"S1", "S2", "S3"}, rolls)
}

func TestDeleteAndGet(t *testing.T) {
	s := New()
	s.Upsert(student("S1", "Ava", 90, 92, 88))
	s.Upsert(student("S2", "Bo", 40, 35, 50))
	s.Upsert(student("S3", "Cy", 60, 60, 60))

	assert.NoError(t, s.Delete("S2"))

	_, err := s.Get("S2")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op signal with no side effects.
	assert.ErrorIs(t, s.Delete("S2"), ErrNotFound)
	assert.Equal(t, 2, s.Len())

	// Remaining records keep their relative order and stay reachable.
	rolls := []string{}
	for _, st := range s.List() {
		rolls = append(rolls, st.Roll)
	}
	assert.Equal(t, []string{"S1", "S3"}, rolls)

	got, err := s.Get("S3")
	assert.NoError(t, err)
	assert.Equal(t, "Cy", got.Name)
}

func TestDeleteAbsentRoll(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Delete("missing"), ErrNotFound)
}

func TestListIsSnapshot(t *testing.T) {
	s := New()
	s.Upsert(student("S1", "Ava", 90, 92, 88))

	snapshot := s.List()
	s.Upsert(student("S2", "Bo", 40, 35, 50))
	s.Upsert(student("S1", "Changed", 1, 2, 3))

	assert.Len(t, snapshot, 1)
	assert.Equal(t, "Ava", snapshot[0].Name)
}

func TestClear(t *testing.T) {
	s := New()
	s.Upsert(student("S1", "Ava", 90, 92, 88))
	s.Upsert(student("S2", "Bo", 40, 35, 50))

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())

	_, err := s.Get("S1")
	assert.ErrorIs(t, err, ErrNotFound)

	// The store remains usable after a reset.
	assert.True(t, s.Upsert(student("S1", "Ava", 90, 92, 88)))
}
