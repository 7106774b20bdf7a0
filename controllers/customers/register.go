package customers

import (
	"log"
	"net/http"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/database"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/middleware"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/models"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/utils"

	"gorm.io/gorm"
)

type registerRequest struct {
	FullName      string `json:"fullName"`
	IDNumber      string `json:"idNumber"`
	AccountNumber string `json:"accountNumber"`
	Password      string `json:"password"`
}

// Register creates a new customer account. Every field is format-checked
// before any database access and sanitized before being stored or used in a
// lookup.
func Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.FullName == "" || req.IDNumber == "" || req.AccountNumber == "" || req.Password == "" {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "All fields are required",
		})
		return
	}
	if !utils.ValidateFullName(req.FullName) {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid full name. Only letters, spaces, hyphens and apostrophes are allowed",
		})
		return
	}
	if !utils.ValidateIDNumber(req.IDNumber) {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid ID number. Must be exactly 13 digits",
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

	customer := models.Customer{
		FullName:      utils.Sanitize(req.FullName),
		IDNumber:      utils.Sanitize(req.IDNumber),
		AccountNumber: utils.Sanitize(req.AccountNumber),
		Password:      req.Password,
	}

	var existing models.Customer
	err := database.DB.
		Where("id_number = ? OR account_number = ?", customer.IDNumber, customer.AccountNumber).
		First(&existing).Error
	if err == nil {
		utils.WriteJSONValue(w, http.StatusConflict, map[string]string{
			"message": "An account with these details already exists",
		})
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("Customer registration error: %v", err)
		utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
			"message": "Registration failed",
		})
		return
	}

	if err := customer.HashPassword(); err != nil {
		log.Printf("Customer registration error: %v", err)
		utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
			"message": "Registration failed",
		})
		return
	}
	if err := database.DB.Create(&customer).Error; err != nil {
		log.Printf("Customer registration error: %v", err)
		utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
			"message": "Registration failed",
		})
		return
	}

	utils.WriteJSONValue(w, http.StatusCreated, map[string]string{
		"message": "Registration successful",
	})
}
