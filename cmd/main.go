package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"studenttracker/internal/config"
	"studenttracker/internal/handler"
	"studenttracker/internal/service"
)

func main() {
	cfg := config.Load()

	// Initialize services
	studentService := service.NewStudentService()
	importService := service.NewImportService(studentService)

	// Initialize handlers
	studentHandler := handler.NewStudentHandler(studentService, cfg.ReportRemark)
	uploadHandler := handler.NewUploadHandler(importService, cfg.UploadDir)
	sessionHandler := handler.NewSessionHandler(importService)

	// Setup router
	r := mux.NewRouter()

	r.HandleFunc("/students", studentHandler.UpsertStudent).Methods("POST")
	r.HandleFunc("/students", studentHandler.ListStudents).Methods("GET")
	r.HandleFunc("/students/search", studentHandler.SearchStudents).Methods("GET")
	r.HandleFunc("/students/topper", studentHandler.GetTopper).Methods("GET")
	r.HandleFunc("/students/{roll}", studentHandler.GetStudent).Methods("GET")
	r.HandleFunc("/students/{roll}", studentHandler.DeleteStudent).Methods("DELETE")
	r.HandleFunc("/students/{roll}/report", studentHandler.GetReport).Methods("GET")
	r.HandleFunc("/export", studentHandler.ExportCSV).Methods("GET")
	r.HandleFunc("/upload", uploadHandler.UploadCSV).Methods("POST")
	r.HandleFunc("/imports", sessionHandler.ListImports).Methods("GET")
	r.HandleFunc("/reset", studentHandler.ResetStudents).Methods("POST")

	// Create uploads directory
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create uploads directory:", err)
	}

	// Start server
	log.Println("Server running on port " + cfg.Port)
	err := http.ListenAndServe(":"+cfg.Port,
		handlers.CORS(handlers.AllowedOrigins([]string{cfg.AllowedOrigin}))(r))
	if err != nil {
		log.Fatal("Server failed:", err)
	}
}
