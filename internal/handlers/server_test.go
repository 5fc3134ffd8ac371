package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"plagiarism-checker/internal/config"
	"plagiarism-checker/internal/plagiarism"
)

// fakeChecker returns a fixed report or error.
type fakeChecker struct {
	report *plagiarism.Report
	err    error
	gotTxt string
}

func (f *fakeChecker) Check(ctx context.Context, text string) (*plagiarism.Report, error) {
	f.gotTxt = text
	return f.report, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		Port:           "8080",
		Host:           "0.0.0.0",
		SearchProvider: "serper",
		SerperAPIKey:   "test-key",
	}
}

func TestHealthHandler(t *testing.T) {
	server := NewServerWithChecker(testConfig(), &fakeChecker{})
	router := server.SetupRoutes()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%v'", result["status"])
	}
}

func TestCheckPlagiarismHandler(t *testing.T) {
	checker := &fakeChecker{
		report: &plagiarism.Report{
			OverallSimilarity: 90,
			Sentences: []plagiarism.SentenceResult{
				{Sentence: "A sentence copied from somewhere online.", Similarity: 90, Source: "https://example.com/src"},
			},
		},
	}
	server := NewServerWithChecker(testConfig(), checker)
	router := server.SetupRoutes()

	body := bytes.NewBufferString(`{"text": "A sentence copied from somewhere online."}`)
	req := httptest.NewRequest("POST", "/check-plagiarism", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if checker.gotTxt != "A sentence copied from somewhere online." {
		t.Errorf("Checker received wrong text: %q", checker.gotTxt)
	}

	var report plagiarism.Report
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if report.OverallSimilarity != 90 {
		t.Errorf("Expected overall_similarity 90, got %f", report.OverallSimilarity)
	}
	if len(report.Sentences) != 1 || report.Sentences[0].Source != "https://example.com/src" {
		t.Errorf("Unexpected sentences payload: %+v", report.Sentences)
	}
}

func TestCheckPlagiarismHandlerInvalidJSON(t *testing.T) {
	server := NewServerWithChecker(testConfig(), &fakeChecker{})
	router := server.SetupRoutes()

	req := httptest.NewRequest("POST", "/check-plagiarism", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestCheckPlagiarismHandlerMissingText(t *testing.T) {
	server := NewServerWithChecker(testConfig(), &fakeChecker{})
	router := server.SetupRoutes()

	for _, body := range []string{`{}`, `{"text": ""}`, `{"text": "   "}`} {
		req := httptest.NewRequest("POST", "/check-plagiarism", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400 for body %s, got %d", body, w.Code)
		}
	}
}

func TestCheckPlagiarismHandlerPipelineError(t *testing.T) {
	server := NewServerWithChecker(testConfig(), &fakeChecker{err: errors.New("pipeline fault")})
	router := server.SetupRoutes()

	req := httptest.NewRequest("POST", "/check-plagiarism", bytes.NewBufferString(`{"text": "Some qualifying sentence for the check."}`))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	server := NewServerWithChecker(testConfig(), &fakeChecker{})
	router := server.SetupRoutes()

	req := httptest.NewRequest("OPTIONS", "/check-plagiarism", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected allow-all CORS origin, got '%s'", got)
	}
}

func TestNewServerUnknownProvider(t *testing.T) {
	cfg := testConfig()
	cfg.SearchProvider = "altavista"

	if _, err := NewServer(cfg); err == nil {
		t.Error("Expected error for unsupported search provider")
	}
}
