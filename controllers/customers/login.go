package customers

import (
	"log"
	"net/http"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/middleware"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/models"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/utils"

	"gorm.io/gorm"
)

type loginRequest struct {
	Username      string `json:"username"`
	AccountNumber string `json:"accountNumber"`
	Password      string `json:"password"`
}

// Login authenticates a customer by username, account number and password.
// Repeated failures against the same account trigger a progressive lockout.
// The token is returned in the body only; customers authenticate follow-up
// requests with the bearer convention.
func Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Username == "" || req.AccountNumber == "" || req.Password == "" {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "All fields are required",
		})
		return
	}
	if !utils.ValidateAccountNumber(req.AccountNumber) {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid account number. Must be between 7 and 11 digits",
		})
		return
	}
	if !utils.ValidatePassword(req.Password) {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid password. Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character",
		})
		return
	}

	username := utils.Sanitize(req.Username)
	accountNumber := utils.Sanitize(req.AccountNumber)

	if locked, retry := middleware.IsAccountLocked(accountNumber); locked {
		utils.WriteJSONValue(w, http.StatusTooManyRequests, map[string]interface{}{
			"message":             "Too many failed login attempts, please try again later",
			"retry_after_seconds": int(retry.Seconds()),
		})
		return
	}

	customer, err := models.GetCustomerByAccountNumber(accountNumber)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("Customer login error: %v", err)
			utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
				"message": "Internal server error",
			})
			return
		}
		utils.WriteJSONValue(w, http.StatusUnauthorized, map[string]string{
			"message": "Authentication failed: Invalid credentials",
		})
		return
	}

	if customer.FullName != username || !customer.ValidatePassword(req.Password) {
		middleware.RecordFailedLogin(accountNumber)
		utils.WriteJSONValue(w, http.StatusUnauthorized, map[string]string{
			"message": "Authentication failed: Invalid credentials",
		})
		return
	}

	middleware.ResetFailedLogin(accountNumber)

	token, err := utils.GenerateCustomerToken(customer.FullName, customer.AccountNumber)
	if err != nil {
		log.Printf("Customer login error: %v", err)
		utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
		return
	}

	utils.WriteJSONValue(w, http.StatusOK, map[string]string{
		"message": "Authentication successful",
		"token":   token,
	})
}
