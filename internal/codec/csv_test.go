package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"studenttracker/internal/model"
)

func sampleStudents() []model.Student {
	return []model.Student{
		{Roll: "S1", Name: "Ava", Marks: [3]int{90, 92, 88}},
		{Roll: "S2", Name: "Bo", Marks: [3]int{40, 35, 50}},
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	err := ExportCSV(&buf, sampleStudents())
	assert.NoError(t, err)

	want := "roll,name,marks1,marks2,marks3,total,average,grade\n" +
		"S1,Ava,90,92,88,270,90.00,A+\n" +
		"S2,Bo,40,35,50,125,41.67,F\n"
	assert.Equal(t, want, buf.String())
}

func TestExportRecomputesDerivedColumns(t *testing.T) {
	// Derived values come from the marks at export time, never a cache.
	st := model.Student{Roll: "S1", Name: "Ava", Marks: [3]int{90, 92, 88}}
	st.Marks = [3]int{10, 10, 10}

	var buf bytes.Buffer
	assert.NoError(t, ExportCSV(&buf, []model.Student{st}))
	assert.Contains(t, buf.String(), "S1,Ava,10,10,10,30,10.00,F")
}

func TestImportExportRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, ExportCSV(&buf, sampleStudents()))

	got, err := ImportCSV(&buf)
	assert.NoError(t, err)
	assert.Equal(t, sampleStudents(), got)
}

func TestImportBadHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty input", ""},
		{"Too few header columns", "roll,name,marks1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportCSV(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrBadHeader)
		})
	}
}

func TestImportMalformedRows(t *testing.T) {
	header := "roll,name,marks1,marks2,marks3,total,average,grade\n"
	good := "S1,Ava,90,92,88,270,90.00,A+\n"

	tests := []struct {
		name       string
		input      string
		wantRow    int
		wantReason string
	}{
		{"Short row", header + "S1,Ava,90,92,88\n", 2, "expected 8 columns, got 5"},
		{"Short row after a good one", header + good + "S2,Bo,40\n", 3, "expected 8 columns, got 3"},
		{"Non-integer marks", header + "S1,Ava,90,abc,88,270,90.00,A+\n", 2, "marks must be integers"},
		{"Out-of-range marks", header + good + "S2,Bo,40,135,50,225,75.00,B\n", 3, "marks out of range 0-100"},
		{"Empty roll", header + ",Ava,90,92,88,270,90.00,A+\n", 2, "roll number cannot be empty"},
		{"Empty name", header + "S1,  ,90,92,88,270,90.00,A+\n", 2, "name cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportCSV(strings.NewReader(tt.input))
			var rerr *RowError
			assert.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.wantRow, rerr.Row)
			assert.Contains(t, rerr.Reason, tt.wantReason)
		})
	}
}

func TestImportIgnoresStaleDerivedColumns(t *testing.T) {
	// Total/average/grade columns are not trusted on import.
	input := "roll,name,marks1,marks2,marks3,total,average,grade\n" +
		"S1,Ava,90,92,88,999,12.34,F\n"

	got, err := ImportCSV(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 270, got[0].Total())
	assert.Equal(t, "A+", got[0].Grade())
}

func TestReport(t *testing.T) {
	st := model.Student{Roll: "S1", Name: "Ava", Marks: [3]int{90, 92, 88}}

	want := "=== Student Report Card ===\n" +
		"Roll No.: S1\n" +
		"Name    : Ava\n" +
		"Marks   : [90, 92, 88]\n" +
		"Total   : 270\n" +
		"Average : 90.00\n" +
		"Grade   : A+\n"
	assert.Equal(t, want, Report(st, false))
	assert.Equal(t, want+"Remark  : Excellent\n", Report(st, true))
}

func TestReportRemarks(t *testing.T) {
	tests := []struct {
		name   string
		marks  [3]int
		remark string
	}{
		{"A+ is Excellent", [3]int{95, 95, 95}, "Remark  : Excellent"},
		{"B is Good", [3]int{75, 75, 75}, "Remark  : Good"},
		{"C is Average", [3]int{65, 65, 65}, "Remark  : Average"},
		{"D is Needs Improvement", [3]int{55, 55, 55}, "Remark  : Needs Improvement"},
		{"F is Fail", [3]int{20, 20, 20}, "Remark  : Fail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := model.Student{Roll: "R", Name: "N", Marks: tt.marks}
			assert.Contains(t, Report(st, true), tt.remark)
		})
	}
}
