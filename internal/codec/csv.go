// Package codec serializes student records to and from the tabular CSV
// format and renders per-student report cards.
package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"studenttracker/internal/model"
	"studenttracker/internal/validate"
)

// Header is the fixed column layout of the CSV export, in order.
var Header = []string{"roll", "name", "marks1", "marks2", "marks3", "total", "average", "grade"}

// ErrBadHeader is returned when the first line of an import has fewer
// columns than the expected layout.
var ErrBadHeader = errors.New("unexpected CSV format: expected 8 columns (roll,name,marks1,marks2,marks3,total,average,grade)")

// RowError reports a malformed data row during import. Row numbers are
// 1-based and count the header as row 1, so data rows start at 2.
type RowError struct {
	Row    int
	Record []string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d is malformed: %s", e.Row, e.Reason)
}

// ExportCSV writes one header line followed by one line per record in the
// given order. Total, average and grade are recomputed from the marks at
// export time so the output always reflects the current marks.
func ExportCSV(w io.Writer, students []model.Student) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, st := range students {
		row := []string{
			st.Roll,
			st.Name,
			strconv.Itoa(st.Marks[0]),
			strconv.Itoa(st.Marks[1]),
			strconv.Itoa(st.Marks[2]),
			strconv.Itoa(st.Total()),
			st.FormatAverage(),
			st.Grade(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV parses a full export back into records. The whole import is
// atomic: the first malformed row rejects everything, and no partial result
// is returned. Derived columns (total, average, grade) are ignored on the
// way in and recomputed from the marks.
func ImportCSV(r io.Reader) ([]model.Student, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column counts are checked per row below

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrBadHeader
	}
	if err != nil {
		return nil, err
	}
	if len(header) < len(Header) {
		return nil, ErrBadHeader
	}

	var students []model.Student
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &RowError{Row: row, Reason: err.Error()}
		}
		if len(record) < len(Header) {
			return nil, &RowError{Row: row, Record: record, Reason: fmt.Sprintf("expected %d columns, got %d", len(Header), len(record))}
		}

		roll, name, err := validate.RequireNonEmpty(record[0], record[1])
		if err != nil {
			return nil, &RowError{Row: row, Record: record, Reason: err.Error()}
		}
		marks, err := validate.ParseMarks(record[2], record[3], record[4])
		if err != nil {
			return nil, &RowError{Row: row, Record: record, Reason: err.Error()}
		}

		students = append(students, model.Student{Roll: roll, Name: name, Marks: marks})
	}
	return students, nil
}

// Report renders the fixed-layout text report card for one student. The
// richer variant appends a Remark line derived from the grade.
func Report(st model.Student, withRemark bool) string {
	var b strings.Builder
	b.WriteString("=== Student Report Card ===\n")
	fmt.Fprintf(&b, "Roll No.: %s\n", st.Roll)
	fmt.Fprintf(&b, "Name    : %s\n", st.Name)
	fmt.Fprintf(&b, "Marks   : %s\n", st.FormatMarks())
	fmt.Fprintf(&b, "Total   : %d\n", st.Total())
	fmt.Fprintf(&b, "Average : %s\n", st.FormatAverage())
	fmt.Fprintf(&b, "Grade   : %s\n", st.Grade())
	if withRemark {
		fmt.Fprintf(&b, "Remark  : %s\n", st.Remark())
	}
	return b.String()
}
