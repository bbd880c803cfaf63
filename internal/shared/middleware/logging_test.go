package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggingPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("body"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()

	Logging(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	if rec.Body.String() != "body" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestResponseWriterRecordsFirstStatusOnly(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := wrapResponseWriter(rec)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	if rw.status != http.StatusNotFound {
		t.Errorf("expected recorded status 404, got %d", rw.status)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected written status 404, got %d", rec.Code)
	}
}
