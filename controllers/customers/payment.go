package customers

import (
	"log"
	"net/http"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/database"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/middleware"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/models"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRequest struct {
	Amount             string  `json:"amount"`
	Currency           string  `json:"currency"`
	SwiftProvider      string  `json:"swiftProvider"`
	SwiftCode          string  `json:"swiftCode"`
	PayeeName          string  `json:"payeeName"`
	PayeeAccountNumber string  `json:"payeeAccountNumber"`
	PayeeBankName      string  `json:"payeeBankName"`
	PayeeAddress       string  `json:"payeeAddress"`
	PayeeCity          string  `json:"payeeCity"`
	PayeePostalCode    string  `json:"payeePostalCode"`
	PayeeCountry       string  `json:"payeeCountry"`
	IBAN               *string `json:"iban"`
}

// CreatePayment stores a new international payment instruction for the
// authenticated customer. The payee account number and optional IBAN are
// encrypted before they touch the database; the instruction starts in the
// pending state and only the employee workflow moves it forward.
func CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Amount == "" || req.Currency == "" || req.SwiftCode == "" ||
		req.PayeeName == "" || req.PayeeAccountNumber == "" {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "All fields are required",
		})
		return
	}
	if !utils.ValidateAmount(req.Amount) {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid amount. Must be a positive number with up to 2 decimal places",
		})
		return
	}
	if !utils.ValidateCurrency(req.Currency) {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid currency. Must be a 3-letter currency code",
		})
		return
	}
	if !utils.ValidateSwiftCode(req.SwiftCode) {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid SWIFT code. Must be 8 or 11 characters",
		})
		return
	}
	if !utils.ValidateAccountNumber(req.PayeeAccountNumber) {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid payee account number. Must be between 7 and 11 digits",
		})
		return
	}

	accountNumber, _ := middleware.GetCustomerAccount(r)
	var customer models.Customer
	if err := database.DB.Where("account_number = ?", accountNumber).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.WriteJSONValue(w, http.StatusUnauthorized, map[string]string{
				"message": "Authentication failed",
			})
			return
		}
		log.Printf("Error creating payment: %v", err)
		utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
			"message": "Error creating payment",
		})
		return
	}

	encryptedAccount, err := utils.EncryptField(utils.Sanitize(req.PayeeAccountNumber))
	if err != nil {
		log.Printf("Error creating payment: %v", err)
		utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
			"message": "Error creating payment",
		})
		return
	}
	var encryptedIBAN *string
	if req.IBAN != nil && *req.IBAN != "" {
		sanitized := utils.Sanitize(*req.IBAN)
		encryptedIBAN, err = utils.EncryptOptionalField(&sanitized)
		if err != nil {
			log.Printf("Error creating payment: %v", err)
			utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
				"message": "Error creating payment",
			})
			return
		}
	}

	payment := models.Payment{
		ID:                 uuid.NewString(),
		CustomerID:         customer.ID,
		Amount:             utils.Sanitize(req.Amount),
		Currency:           utils.Sanitize(req.Currency),
		SwiftProvider:      utils.Sanitize(req.SwiftProvider),
		SwiftCode:          utils.Sanitize(req.SwiftCode),
		PayeeName:          utils.Sanitize(req.PayeeName),
		PayeeAccountNumber: encryptedAccount,
		PayeeBankName:      utils.Sanitize(req.PayeeBankName),
		PayeeAddress:       utils.Sanitize(req.PayeeAddress),
		PayeeCity:          utils.Sanitize(req.PayeeCity),
		PayeePostalCode:    utils.Sanitize(req.PayeePostalCode),
		PayeeCountry:       utils.Sanitize(req.PayeeCountry),
		IBAN:               encryptedIBAN,
		Status:             models.StatusPending,
	}

	if err := database.DB.Create(&payment).Error; err != nil {
		log.Printf("Error creating payment: %v", err)
		utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
			"message": "Error creating payment",
		})
		return
	}

	utils.WriteJSONValue(w, http.StatusCreated, map[string]string{
		"message":   "Payment submitted successfully",
		"paymentId": payment.ID,
	})
}
