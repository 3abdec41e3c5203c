package service

import (
	"io"
	"sync"

	"studenttracker/internal/codec"
	"studenttracker/internal/model"
	"studenttracker/internal/query"
	"studenttracker/internal/store"
	"studenttracker/internal/validate"
)

// StudentService is the command surface over the roster. The underlying
// store is single-owner and lock-free; the service serializes access so it
// can be shared by concurrent HTTP handlers.
type StudentService struct {
	mu    sync.Mutex
	store *store.Store
}

func NewStudentService() *StudentService {
	return &StudentService{store: store.New()}
}

// UpsertResult tells the caller whether the record was added or an
// existing one was overwritten, so messaging can differ.
type UpsertResult struct {
	Student  model.Student `json:"student"`
	Inserted bool          `json:"inserted"`
}

// Upsert validates the raw input and inserts or replaces the record.
// Validation failures never reach the store.
func (s *StudentService) Upsert(roll, name, m1, m2, m3 string) (UpsertResult, error) {
	roll, name, err := validate.RequireNonEmpty(roll, name)
	if err != nil {
		return UpsertResult{}, err
	}
	marks, err := validate.ParseMarks(m1, m2, m3)
	if err != nil {
		return UpsertResult{}, err
	}

	st := model.Student{Roll: roll, Name: name, Marks: marks}

	s.mu.Lock()
	defer s.mu.Unlock()
	inserted := s.store.Upsert(st)
	return UpsertResult{Student: st, Inserted: inserted}, nil
}

func (s *StudentService) Get(roll string) (model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(roll)
}

func (s *StudentService) Delete(roll string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(roll)
}

func (s *StudentService) List() []model.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.List()
}

func (s *StudentService) Search(q string) ([]model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return query.Search(s.store, q)
}

func (s *StudentService) Topper() (model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return query.Topper(s.store)
}

// ExportCSV writes the roster to w and returns the number of records
// written. An empty roster reports query.ErrEmpty without writing.
func (s *StudentService) ExportCSV(w io.Writer) (int, error) {
	s.mu.Lock()
	students := s.store.List()
	s.mu.Unlock()

	if len(students) == 0 {
		return 0, query.ErrEmpty
	}
	if err := codec.ExportCSV(w, students); err != nil {
		return 0, err
	}
	return len(students), nil
}

// ImportCSV parses r and, only on complete success, replaces the live
// roster wholesale. Any parse failure leaves the existing roster untouched.
func (s *StudentService) ImportCSV(r io.Reader) (int, error) {
	students, err := codec.ImportCSV(r)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Clear()
	for _, st := range students {
		s.store.Upsert(st)
	}
	return s.store.Len(), nil
}

// Report renders the report card for one student.
func (s *StudentService) Report(roll string, withRemark bool) (string, error) {
	st, err := s.Get(roll)
	if err != nil {
		return "", err
	}
	return codec.Report(st, withRemark), nil
}

// Reset removes every record. Irreversible.
func (s *StudentService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Clear()
}
