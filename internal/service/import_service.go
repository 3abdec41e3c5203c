package service

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	StatusCompleted = "completed"
	StatusError     = "error"
)

// ImportSession records the outcome of one CSV import.
type ImportSession struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	Records   int       `json:"records"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// ImportService runs CSV imports against the roster and keeps a history of
// every attempt, successful or not.
type ImportService struct {
	students *StudentService

	sessionLock sync.RWMutex
	sessions    []ImportSession
}

func NewImportService(students *StudentService) *ImportService {
	return &ImportService{students: students}
}

// ImportFile reads the CSV at path into the live roster. The file handle is
// released on every exit path; a failed import leaves the roster untouched
// and is still recorded as a session.
func (s *ImportService) ImportFile(path string) (ImportSession, error) {
	session := ImportSession{
		ID:        uuid.NewString(),
		FileName:  filepath.Base(path),
		StartTime: time.Now(),
	}

	file, err := os.Open(path)
	if err != nil {
		return s.record(session, 0, err), err
	}
	defer file.Close()

	count, err := s.students.ImportCSV(file)
	return s.record(session, count, err), err
}

func (s *ImportService) record(session ImportSession, count int, err error) ImportSession {
	session.EndTime = time.Now()
	if err != nil {
		session.Status = StatusError
		session.Error = err.Error()
	} else {
		session.Status = StatusCompleted
		session.Records = count
	}

	s.sessionLock.Lock()
	defer s.sessionLock.Unlock()
	s.sessions = append(s.sessions, session)
	return session
}

// Sessions returns a copy of the import history, oldest first.
func (s *ImportService) Sessions() []ImportSession {
	s.sessionLock.RLock()
	defer s.sessionLock.RUnlock()

	out := make([]ImportSession, len(s.sessions))
	copy(out, s.sessions)
	return out
}
