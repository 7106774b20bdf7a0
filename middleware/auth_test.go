package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/utils"
)

func TestEmployeeAuthMiddleware_MissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")

	handler := EmployeeAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	req := httptest.NewRequest("GET", "/employee/payments/pending", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestEmployeeAuthMiddleware_MalformedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")

	handler := EmployeeAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a malformed token")
	}))

	for _, authz := range []string{"Bearer garbage", "Token abc", "Bearer "} {
		req := httptest.NewRequest("GET", "/employee/payments/pending", nil)
		req.Header.Set("Authorization", authz)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Authorization %q: status = %d, want 401", authz, rec.Code)
		}
	}
}

func TestEmployeeAuthMiddleware_RejectsCustomerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")

	token, err := utils.GenerateCustomerToken("John Doe", "1234567890")
	if err != nil {
		t.Fatal(err)
	}

	handler := EmployeeAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("customer token must not pass the employee gate")
	}))

	req := httptest.NewRequest("GET", "/employee/payments/pending", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestEmployeeAuthMiddleware_AttachesClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")

	token, err := utils.GenerateEmployeeToken("EMP123456", "admin")
	if err != nil {
		t.Fatal(err)
	}

	var gotID string
	handler := EmployeeAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetEmployeeID(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/employee/payments/pending", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotID != "EMP123456" {
		t.Fatalf("employee id in context = %q, want EMP123456", gotID)
	}
}

func TestCustomerAuthMiddleware_RejectsEmployeeToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")

	token, err := utils.GenerateEmployeeToken("EMP123456", "admin")
	if err != nil {
		t.Fatal(err)
	}

	handler := CustomerAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("employee token must not pass the customer gate")
	}))

	req := httptest.NewRequest("POST", "/payment", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestCustomerAuthMiddleware_AttachesAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")

	token, err := utils.GenerateCustomerToken("John Doe", "1234567890")
	if err != nil {
		t.Fatal(err)
	}

	var gotAccount string
	handler := CustomerAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccount, _ = GetCustomerAccount(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/payment", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotAccount != "1234567890" {
		t.Fatalf("account in context = %q, want 1234567890", gotAccount)
	}
}
