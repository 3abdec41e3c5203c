// Package store holds the in-memory roster of student records.
//
// Records are keyed by roll and kept in insertion order; that order is the
// canonical display order for listing, search results and CSV export. The
// store is exclusively owned by one caller at a time and does no locking of
// its own.
package store

import (
	"errors"

	"studenttracker/internal/model"
)

// ErrNotFound is returned by Get and Delete for an absent roll.
var ErrNotFound = errors.New("student not found")

type Store struct {
	students []model.Student
	index    map[string]int // roll -> position in students
}

func New() *Store {
	return &Store{index: make(map[string]int)}
}

// Upsert inserts the record or, if the roll already exists, overwrites its
// name and marks in place without moving it in the iteration order.
// Returns true for an insert, false for an update.
func (s *Store) Upsert(st model.Student) bool {
	if pos, ok := s.index[st.Roll]; ok {
		s.students[pos] = st
		return false
	}
	s.index[st.Roll] = len(s.students)
	s.students = append(s.students, st)
	return true
}

func (s *Store) Get(roll string) (model.Student, error) {
	pos, ok := s.index[roll]
	if !ok {
		return model.Student{}, ErrNotFound
	}
	return s.students[pos], nil
}

// Delete removes the record with the given roll. Absent rolls report
// ErrNotFound and leave the store untouched.
func (s *Store) Delete(roll string) error {
	pos, ok := s.index[roll]
	if !ok {
		return ErrNotFound
	}
	s.students = append(s.students[:pos], s.students[pos+1:]...)
	delete(s.index, roll)
	for i := pos; i < len(s.students); i++ {
		s.index[s.students[i].Roll] = i
	}
	return nil
}

// List returns a snapshot of the records in insertion order. Later
// mutations do not affect the returned slice.
func (s *Store) List() []model.Student {
	out := make([]model.Student, len(s.students))
	copy(out, s.students)
	return out
}

// Clear removes every record. Irreversible.
func (s *Store) Clear() {
	s.students = nil
	s.index = make(map[string]int)
}

func (s *Store) Len() int {
	return len(s.students)
}
