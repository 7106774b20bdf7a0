package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPreflightGetsCORSHeaders(t *testing.T) {
	router := InitRouter()

	for _, path := range []string{"/payment", "/employee/payments/pending", "/customer/login"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK && rec.Code != http.StatusNoContent {
			t.Errorf("OPTIONS %s: status = %d, want 2xx", path, rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("OPTIONS %s: Access-Control-Allow-Origin = %q", path, got)
		}
	}
}

func TestPreflightDisallowedOrigin(t *testing.T) {
	router := InitRouter()

	req := httptest.NewRequest(http.MethodOptions, "/payment", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty for disallowed origin", got)
	}
}
