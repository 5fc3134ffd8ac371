package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// CheckRequest is the inbound payload for a plagiarism check.
type CheckRequest struct {
	Text string `json:"text"`
}

// checkPlagiarismHandler runs the pipeline on the submitted text and returns
// the report with per-sentence similarity scores.
func (s *Server) checkPlagiarismHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "Field 'text' is required", http.StatusBadRequest)
		return
	}

	log.Printf("Received plagiarism check request (%d chars)", len(req.Text))

	report, err := s.checker.Check(ctx, req.Text)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error checking plagiarism: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
