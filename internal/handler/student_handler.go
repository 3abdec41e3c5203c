package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"studenttracker/internal/service"
)

type StudentHandler struct {
	studentService *service.StudentService
	reportRemark   bool
}

func NewStudentHandler(studentService *service.StudentService, reportRemark bool) *StudentHandler {
	return &StudentHandler{studentService: studentService, reportRemark: reportRemark}
}

// UpsertStudent adds a record or overwrites an existing one. The response
// distinguishes the two so the client can say "added" or "updated".
func (h *StudentHandler) UpsertStudent(w http.ResponseWriter, r *http.Request) {
	res, err := h.studentService.Upsert(
		r.FormValue("roll"),
		r.FormValue("name"),
		r.FormValue("marks1"),
		r.FormValue("marks2"),
		r.FormValue("marks3"),
	)
	if err != nil {
		respondError(w, err)
		return
	}

	status := http.StatusOK
	message := "Student updated"
	if res.Inserted {
		status = http.StatusCreated
		message = "Student added"
	}
	writeJSON(w, status, map[string]interface{}{
		"message":  message,
		"student":  res.Student,
		"inserted": res.Inserted,
	})
}

func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students := h.studentService.List()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  students,
		"count": len(students),
	})
}

func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	st, err := h.studentService.Get(mux.Vars(r)["roll"])
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	roll := mux.Vars(r)["roll"]
	if err := h.studentService.Delete(roll); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Student deleted", "roll": roll})
}

// SearchStudents matches q against roll and name. A missing or blank q is
// rejected so the client can prompt for input; zero matches is a normal
// empty result.
func (h *StudentHandler) SearchStudents(w http.ResponseWriter, r *http.Request) {
	hits, err := h.studentService.Search(r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  hits,
		"count": len(hits),
	})
}

func (h *StudentHandler) GetTopper(w http.ResponseWriter, r *http.Request) {
	top, err := h.studentService.Topper()
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"student": top,
		"average": top.Average(),
		"grade":   top.Grade(),
	})
}

// ExportCSV streams the roster as a CSV download. The export is buffered
// so a failure never produces a partial response body.
func (h *StudentHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if _, err := h.studentService.ExportCSV(&buf); err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="students.csv"`)
	w.Write(buf.Bytes())
}

// GetReport returns the student's report card as a text download, named
// report_<roll>_<name>.txt. The remark line follows the server default
// unless overridden with ?remark=true|false.
func (h *StudentHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	roll := mux.Vars(r)["roll"]

	withRemark := h.reportRemark
	switch r.URL.Query().Get("remark") {
	case "true":
		withRemark = true
	case "false":
		withRemark = false
	}

	st, err := h.studentService.Get(roll)
	if err != nil {
		respondError(w, err)
		return
	}
	report, err := h.studentService.Report(roll, withRemark)
	if err != nil {
		respondError(w, err)
		return
	}

	filename := fmt.Sprintf("report_%s_%s.txt", st.Roll, strings.ReplaceAll(st.Name, " ", "_"))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	fmt.Fprint(w, report)
}

// ResetStudents removes every record. Irreversible; confirmation is the
// client's job.
func (h *StudentHandler) ResetStudents(w http.ResponseWriter, r *http.Request) {
	h.studentService.Reset()
	writeJSON(w, http.StatusOK, map[string]string{"message": "All student records removed"})
}
