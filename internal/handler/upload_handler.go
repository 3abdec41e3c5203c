package handler

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"studenttracker/internal/service"
)

type UploadHandler struct {
	importService *service.ImportService
	uploadDir     string
}

func NewUploadHandler(importService *service.ImportService, uploadDir string) *UploadHandler {
	return &UploadHandler{importService: importService, uploadDir: uploadDir}
}

// UploadCSV accepts one CSV file as multipart form data, saves it under a
// collision-free name and imports it. The import is atomic: on any
// malformed row the live roster is left untouched and the row number is
// reported back.
func (h *UploadHandler) UploadCSV(w http.ResponseWriter, r *http.Request) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		respondError(w, err)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large or bad request", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	savePath := filepath.Join(h.uploadDir, uuid.NewString()+"_"+filepath.Base(header.Filename))
	outFile, err := os.Create(savePath)
	if err != nil {
		log.Println("Error saving the file:", err)
		respondError(w, err)
		return
	}
	if _, err := io.Copy(outFile, file); err != nil {
		outFile.Close()
		log.Println("Error writing file:", err)
		respondError(w, err)
		return
	}
	outFile.Close()

	session, err := h.importService.ImportFile(savePath)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Import completed",
		"session": session,
	})
}
