// Package function exposes the plagiarism checker as a Cloud Functions
// HTTP function, reusing the same router as the standalone server.
package function

import (
	"log"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"plagiarism-checker/internal/config"
	"plagiarism-checker/internal/handlers"
)

func init() {
	functions.HTTP("CheckPlagiarism", CheckPlagiarism)
}

// CheckPlagiarism handles a single HTTP request in the Cloud Functions runtime.
func CheckPlagiarism(w http.ResponseWriter, r *http.Request) {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	server, err := handlers.NewServer(cfg)
	if err != nil {
		log.Printf("Failed to create server: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	server.SetupRoutes().ServeHTTP(w, r)
}
