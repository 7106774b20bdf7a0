package models

import (
	"time"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/database"

	"golang.org/x/crypto/bcrypt"
)

// Customer is a registered account holder who can submit payment instructions.
type Customer struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	FullName      string    `json:"fullName" gorm:"type:varchar(100);not null"`
	IDNumber      string    `json:"idNumber" gorm:"type:varchar(13);uniqueIndex;not null"`
	AccountNumber string    `json:"accountNumber" gorm:"type:varchar(11);uniqueIndex;not null"`
	Password      string    `json:"-" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(c.Password), 12)
	if err != nil {
		return err
	}
	c.Password = string(hashed)
	return nil
}

func (c *Customer) ValidatePassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) == nil
}

// GetCustomerByAccountNumber retrieves a customer by their account number.
func GetCustomerByAccountNumber(accountNumber string) (*Customer, error) {
	var customer Customer
	result := database.DB.Where("account_number = ?", accountNumber).First(&customer)
	if result.Error != nil {
		return nil, result.Error
	}
	return &customer, nil
}
