// Package query provides read-only lookups over a student store.
package query

import (
	"errors"
	"strings"

	"studenttracker/internal/model"
	"studenttracker/internal/store"
)

var (
	// ErrNoQuery signals that the caller supplied an empty query. Distinct
	// from an empty result set: the caller should prompt for input rather
	// than report zero matches.
	ErrNoQuery = errors.New("no search query provided")

	// ErrEmpty signals an operation that needs at least one record.
	ErrEmpty = errors.New("no student records available")
)

// Search matches q case-insensitively as a substring of each record's roll
// or name and returns the hits in store order. An empty result is a valid
// outcome, not an error.
func Search(s *store.Store, q string) ([]model.Student, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrNoQuery
	}
	q = strings.ToLower(q)

	hits := []model.Student{}
	for _, st := range s.List() {
		if strings.Contains(strings.ToLower(st.Roll), q) || strings.Contains(strings.ToLower(st.Name), q) {
			hits = append(hits, st)
		}
	}
	return hits, nil
}

// Topper returns the record with the highest average. Ties go to the
// earliest insertion: the scan keeps the first record and only replaces it
// on a strictly greater average.
func Topper(s *store.Store) (model.Student, error) {
	students := s.List()
	if len(students) == 0 {
		return model.Student{}, ErrEmpty
	}

	top := students[0]
	for _, st := range students[1:] {
		if st.Average() > top.Average() {
			top = st
		}
	}
	return top, nil
}
