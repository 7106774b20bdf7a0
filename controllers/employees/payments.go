package employees

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/database"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/middleware"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/models"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// paymentResponse is the shape returned to the employee dashboard: the stored
// payment with its payee block decrypted.
type paymentResponse struct {
	ID                 string           `json:"_id"`
	Amount             string           `json:"amount"`
	Currency           string           `json:"currency"`
	SwiftProvider      string           `json:"swiftProvider"`
	SwiftCode          string           `json:"swiftCode"`
	PayeeInfo          models.PayeeInfo `json:"payeeInfo"`
	Status             string           `json:"status"`
	SwiftVerified      bool             `json:"swiftVerified"`
	VerifiedAt         *time.Time       `json:"verifiedAt,omitempty"`
	VerifiedBy         string           `json:"verifiedBy,omitempty"`
	SubmittedToSwiftAt *time.Time       `json:"submittedToSwiftAt,omitempty"`
	SubmittedBy        string           `json:"submittedBy,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
}

func decryptPayment(p models.Payment) (paymentResponse, error) {
	accountNumber, err := utils.DecryptField(p.PayeeAccountNumber)
	if err != nil {
		return paymentResponse{}, fmt.Errorf("payment %s: %w", p.ID, err)
	}
	iban, err := utils.DecryptOptionalField(p.IBAN)
	if err != nil {
		return paymentResponse{}, fmt.Errorf("payment %s: %w", p.ID, err)
	}
	return paymentResponse{
		ID:            p.ID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		SwiftProvider: p.SwiftProvider,
		SwiftCode:     p.SwiftCode,
		PayeeInfo: models.PayeeInfo{
			Name:          p.PayeeName,
			AccountNumber: accountNumber,
			BankName:      p.PayeeBankName,
			Address:       p.PayeeAddress,
			City:          p.PayeeCity,
			PostalCode:    p.PayeePostalCode,
			Country:       p.PayeeCountry,
			IBAN:          iban,
		},
		Status:             p.Status,
		SwiftVerified:      p.SwiftVerified,
		VerifiedAt:         p.VerifiedAt,
		VerifiedBy:         utils.GetStringValue(p.VerifiedBy),
		SubmittedToSwiftAt: p.SubmittedToSwiftAt,
		SubmittedBy:        utils.GetStringValue(p.SubmittedBy),
		CreatedAt:          p.CreatedAt,
	}, nil
}

// GetPendingPayments returns every payment that has not yet been submitted to
// SWIFT: new (empty status), pending and verified. Sensitive payee fields are
// decrypted before the data leaves the handler. A single invalid ciphertext
// fails the whole listing so the dashboard never sees plaintext-looking
// garbage next to real data.
func GetPendingPayments(w http.ResponseWriter, r *http.Request) {
	var payments []models.Payment
	err := database.DB.
		Where("status IN ?", []string{"", models.StatusPending, models.StatusVerified}).
		Find(&payments).Error
	if err != nil {
		log.Printf("Error fetching pending payments: %v", err)
		utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
			"message": "Error fetching pending payments",
		})
		return
	}

	decrypted := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		resp, err := decryptPayment(p)
		if err != nil {
			log.Printf("Error fetching pending payments: %v", err)
			utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
				"message": "Error fetching pending payments",
			})
			return
		}
		decrypted = append(decrypted, resp)
	}

	utils.WriteJSONValue(w, http.StatusOK, decrypted)
}

type verifyRequest struct {
	SwiftVerified *bool `json:"swiftVerified"`
}

// VerifyPayment marks a payment SWIFT-verified and stamps the audit fields
// with the acting employee and the current time. The update is keyed by id
// only; re-verifying an already verified or submitted payment overwrites the
// previous stamp (last write wins).
func VerifyPayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req verifyRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if req.SwiftVerified == nil {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "SWIFT verification status must be provided",
		})
		return
	}

	employeeID, _ := middleware.GetEmployeeID(r)

	var payment models.Payment
	if err := database.DB.First(&payment, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.WriteJSONValue(w, http.StatusNotFound, map[string]string{
				"message": "Payment not found",
			})
			return
		}
		log.Printf("Error verifying payment: %v", err)
		utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
			"message": "Error verifying payment",
		})
		return
	}

	now := time.Now()
	err := database.DB.Model(&payment).Updates(map[string]interface{}{
		"status":         models.StatusVerified,
		"swift_verified": *req.SwiftVerified,
		"verified_at":    now,
		"verified_by":    employeeID,
	}).Error
	if err != nil {
		log.Printf("Error verifying payment: %v", err)
		utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
			"message": "Error verifying payment",
		})
		return
	}

	utils.WriteJSONValue(w, http.StatusOK, map[string]string{
		"message": "Payment verified successfully",
	})
}

type submitRequest struct {
	PaymentIDs []string `json:"paymentIds"`
}

// SubmitToSwift transitions every verified payment in the given id set to
// submitted, in one bulk update. The status filter is the transition guard:
// ids that are not currently verified are silently skipped, so the operation
// is safe to repeat and the reported count covers only rows actually moved.
func SubmitToSwift(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if len(req.PaymentIDs) == 0 {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "Payment IDs must be provided",
		})
		return
	}

	employeeID, _ := middleware.GetEmployeeID(r)

	result := database.DB.Model(&models.Payment{}).
		Where("id IN ? AND status = ?", req.PaymentIDs, models.StatusVerified).
		Updates(map[string]interface{}{
			"status":                models.StatusSubmitted,
			"submitted_to_swift_at": time.Now(),
			"submitted_by":          employeeID,
		})
	if result.Error != nil {
		log.Printf("Error submitting to SWIFT: %v", result.Error)
		utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
			"message": "Error submitting payments to SWIFT",
		})
		return
	}

	utils.WriteJSONValue(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("%d payments submitted to SWIFT successfully", result.RowsAffected),
	})
}
