package employees_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/database"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/models"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/routes"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB swaps the shared handle for an in-memory sqlite database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Employee{}, &models.Customer{}, &models.Payment{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return db
}

func newEmployeeRouter() *mux.Router {
	r := mux.NewRouter()
	routes.SetEmployeeRoutes(r)
	return r
}

func employeeToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateEmployeeToken("EMP123456", "admin")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func seedPayment(t *testing.T, db *gorm.DB, status, accountNumber string) models.Payment {
	t.Helper()
	enc, err := utils.EncryptField(accountNumber)
	if err != nil {
		t.Fatalf("encrypt seed account: %v", err)
	}
	p := models.Payment{
		ID:                 uuid.NewString(),
		Amount:             "1500.00",
		Currency:           "USD",
		SwiftProvider:      "SWIFT",
		SwiftCode:          "ABSAZAJJ",
		PayeeName:          "Jane Payee",
		PayeeAccountNumber: enc,
		PayeeBankName:      "First Bank",
		PayeeCountry:       "Germany",
		Status:             status,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	return p
}

func TestGetPendingPayments_ExcludesSubmittedAndDecrypts(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")
	t.Setenv("ENCRYPTION_KEY", "test-encryption-key")
	db := openTestDB(t)

	seedPayment(t, db, models.StatusPending, "1111111111")
	seedPayment(t, db, models.StatusVerified, "2222222222")
	seedPayment(t, db, "", "3333333333")
	seedPayment(t, db, models.StatusSubmitted, "4444444444")

	router := newEmployeeRouter()
	req := httptest.NewRequest("GET", "/employee/payments/pending", nil)
	req.Header.Set("Authorization", "Bearer "+employeeToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var got []struct {
		ID        string `json:"_id"`
		Status    string `json:"status"`
		PayeeInfo struct {
			AccountNumber string  `json:"accountNumber"`
			IBAN          *string `json:"iban"`
		} `json:"payeeInfo"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d payments, want 3", len(got))
	}
	accounts := map[string]bool{}
	for _, p := range got {
		if p.Status == models.StatusSubmitted {
			t.Errorf("payment %s: submitted payment in pending listing", p.ID)
		}
		accounts[p.PayeeInfo.AccountNumber] = true
		if p.PayeeInfo.IBAN != nil {
			t.Errorf("payment %s: iban = %v, want null passthrough", p.ID, *p.PayeeInfo.IBAN)
		}
	}
	for _, want := range []string{"1111111111", "2222222222", "3333333333"} {
		if !accounts[want] {
			t.Errorf("decrypted account %s missing from listing", want)
		}
	}
	if accounts["4444444444"] {
		t.Error("submitted payment's account leaked into listing")
	}
}

func TestGetPendingPayments_FailsAtomicallyOnBadCiphertext(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")
	t.Setenv("ENCRYPTION_KEY", "test-encryption-key")
	db := openTestDB(t)

	seedPayment(t, db, models.StatusPending, "1111111111")
	bad := models.Payment{
		ID:                 uuid.NewString(),
		Amount:             "10.00",
		Currency:           "EUR",
		PayeeAccountNumber: "not-a-ciphertext",
		Status:             models.StatusPending,
	}
	if err := db.Create(&bad).Error; err != nil {
		t.Fatal(err)
	}

	router := newEmployeeRouter()
	req := httptest.NewRequest("GET", "/employee/payments/pending", nil)
	req.Header.Set("Authorization", "Bearer "+employeeToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 for invalid ciphertext", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "1111111111") {
		t.Error("partial plaintext leaked from a failed listing")
	}
}

func TestGetPendingPayments_RequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")
	openTestDB(t)

	router := newEmployeeRouter()
	req := httptest.NewRequest("GET", "/employee/payments/pending", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestVerifyPayment_MissingFlag(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")
	t.Setenv("ENCRYPTION_KEY", "test-encryption-key")
	db := openTestDB(t)
	p := seedPayment(t, db, models.StatusPending, "1111111111")

	router := newEmployeeRouter()
	req := httptest.NewRequest("PUT", "/employee/payments/"+p.ID+"/verify", bytes.NewBufferString(`{}`))
	req.Header.Set("Authorization", "Bearer "+employeeToken(t))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "SWIFT verification status must be provided") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestVerifyPayment_NotFoundLeavesStoreUnmodified(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")
	t.Setenv("ENCRYPTION_KEY", "test-encryption-key")
	db := openTestDB(t)
	p := seedPayment(t, db, models.StatusPending, "1111111111")

	router := newEmployeeRouter()
	req := httptest.NewRequest("PUT", "/employee/payments/"+uuid.NewString()+"/verify", bytes.NewBufferString(`{"swiftVerified":true}`))
	req.Header.Set("Authorization", "Bearer "+employeeToken(t))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var stored models.Payment
	if err := db.First(&stored, "id = ?", p.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Status != models.StatusPending || stored.VerifiedAt != nil {
		t.Error("miss on verify must not modify existing payments")
	}
}

func TestVerifyPayment_StampsAuditFields(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")
	t.Setenv("ENCRYPTION_KEY", "test-encryption-key")
	db := openTestDB(t)
	p := seedPayment(t, db, models.StatusPending, "1111111111")

	router := newEmployeeRouter()
	req := httptest.NewRequest("PUT", "/employee/payments/"+p.ID+"/verify", bytes.NewBufferString(`{"swiftVerified":true}`))
	req.Header.Set("Authorization", "Bearer "+employeeToken(t))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var stored models.Payment
	if err := db.First(&stored, "id = ?", p.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Status != models.StatusVerified {
		t.Errorf("status = %q, want verified", stored.Status)
	}
	if !stored.SwiftVerified {
		t.Error("swiftVerified flag not stored")
	}
	if stored.VerifiedBy == nil || *stored.VerifiedBy != "EMP123456" {
		t.Errorf("verifiedBy = %v, want EMP123456", stored.VerifiedBy)
	}
	if stored.VerifiedAt == nil || time.Since(*stored.VerifiedAt) > time.Minute {
		t.Errorf("verifiedAt = %v, want a recent timestamp", stored.VerifiedAt)
	}
}

func TestSubmitToSwift_OnlyVerifiedTransition(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")
	t.Setenv("ENCRYPTION_KEY", "test-encryption-key")
	db := openTestDB(t)

	verified := seedPayment(t, db, models.StatusVerified, "1111111111")
	pending := seedPayment(t, db, models.StatusPending, "2222222222")

	body := fmt.Sprintf(`{"paymentIds":[%q,%q]}`, verified.ID, pending.ID)
	router := newEmployeeRouter()
	req := httptest.NewRequest("POST", "/employee/payments/submit-to-swift", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+employeeToken(t))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "1 payments submitted to SWIFT successfully") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	var a, b models.Payment
	if err := db.First(&a, "id = ?", verified.ID).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.First(&b, "id = ?", pending.ID).Error; err != nil {
		t.Fatal(err)
	}
	if a.Status != models.StatusSubmitted {
		t.Errorf("verified payment status = %q, want submitted", a.Status)
	}
	if a.SubmittedBy == nil || *a.SubmittedBy != "EMP123456" || a.SubmittedToSwiftAt == nil {
		t.Error("submitted payment missing audit stamps")
	}
	if b.Status != models.StatusPending || b.SubmittedToSwiftAt != nil {
		t.Error("pending payment must be silently skipped, not transitioned")
	}
}

func TestSubmitToSwift_IsRepeatable(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")
	t.Setenv("ENCRYPTION_KEY", "test-encryption-key")
	db := openTestDB(t)
	verified := seedPayment(t, db, models.StatusVerified, "1111111111")

	router := newEmployeeRouter()
	body := fmt.Sprintf(`{"paymentIds":[%q]}`, verified.ID)
	for i, want := range []string{"1 payments submitted", "0 payments submitted"} {
		req := httptest.NewRequest("POST", "/employee/payments/submit-to-swift", bytes.NewBufferString(body))
		req.Header.Set("Authorization", "Bearer "+employeeToken(t))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("call %d: status = %d, want 200", i+1, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("call %d: body = %s, want %q", i+1, rec.Body.String(), want)
		}
	}
}

func TestSubmitToSwift_EmptyList(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-signing-secret")
	t.Setenv("ENCRYPTION_KEY", "test-encryption-key")
	openTestDB(t)

	router := newEmployeeRouter()
	for _, body := range []string{`{"paymentIds":[]}`, `{}`} {
		req := httptest.NewRequest("POST", "/employee/payments/submit-to-swift", bytes.NewBufferString(body))
		req.Header.Set("Authorization", "Bearer "+employeeToken(t))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}
