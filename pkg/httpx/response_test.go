package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/shareit/pkg/httpx"
)

func TestErrorWritesCategoryMessageTimestamp(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.Error(w, http.StatusConflict, "email already in use")

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("content-type = %q", ct)
	}

	var body httpx.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Error != "Conflict" {
		t.Errorf("error = %q, want Conflict", body.Error)
	}
	if body.Message != "email already in use" {
		t.Errorf("message = %q", body.Message)
	}
	if body.Timestamp.IsZero() {
		t.Error("timestamp missing")
	}
	if body.Fields != nil {
		t.Errorf("fields = %v, want omitted", body.Fields)
	}
}

func TestErrorWithFields(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.ErrorWithFields(w, http.StatusUnprocessableEntity, "validation failed",
		map[string]string{"email": "Must be a valid email address"})

	var body httpx.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Fields["email"] == "" {
		t.Errorf("fields = %v, want email message", body.Fields)
	}
}

func TestSafeError(t *testing.T) {
	boom := errors.New("pq: connection refused at 10.0.0.3")

	if got := httpx.SafeError(boom, http.StatusInternalServerError, true); got != "Internal Server Error" {
		t.Errorf("production 500 leaked %q", got)
	}
	if got := httpx.SafeError(boom, http.StatusInternalServerError, false); got != boom.Error() {
		t.Errorf("development 500 = %q, want raw error", got)
	}
	if got := httpx.SafeError(boom, http.StatusBadRequest, true); got != boom.Error() {
		t.Errorf("production 400 = %q, want raw error", got)
	}
}
