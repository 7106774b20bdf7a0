package models

import "time"

// Payment statuses. A new payment starts at StatusPending and only ever moves
// forward: pending -> verified -> submitted. The submit transition is guarded
// at the database level; documents migrated from older data may carry an empty
// status, which the pending listing treats the same as pending.
const (
	StatusPending   = "pending"
	StatusVerified  = "verified"
	StatusSubmitted = "submitted"
)

// Payment is an international payment instruction. PayeeAccountNumber and
// IBAN hold ciphertext at rest; handlers decrypt them on the way out.
type Payment struct {
	ID            string `gorm:"type:varchar(36);primaryKey" json:"_id"`
	CustomerID    uint   `gorm:"index" json:"-"`
	Amount        string `gorm:"type:varchar(32);not null" json:"amount"`
	Currency      string `gorm:"type:varchar(3);not null" json:"currency"`
	SwiftProvider string `gorm:"type:varchar(64)" json:"swiftProvider"`
	SwiftCode     string `gorm:"type:varchar(11)" json:"swiftCode"`

	PayeeName          string  `gorm:"type:varchar(100)" json:"-"`
	PayeeAccountNumber string  `gorm:"type:text" json:"-"`
	PayeeBankName      string  `gorm:"type:varchar(100)" json:"-"`
	PayeeAddress       string  `gorm:"type:varchar(200)" json:"-"`
	PayeeCity          string  `gorm:"type:varchar(100)" json:"-"`
	PayeePostalCode    string  `gorm:"type:varchar(16)" json:"-"`
	PayeeCountry       string  `gorm:"type:varchar(64)" json:"-"`
	IBAN               *string `gorm:"type:text" json:"-"`

	Status        string `gorm:"type:varchar(16);default:'pending';index" json:"status"`
	SwiftVerified bool   `json:"swiftVerified"`

	VerifiedAt         *time.Time `json:"verifiedAt,omitempty"`
	VerifiedBy         *string    `gorm:"type:varchar(16)" json:"verifiedBy,omitempty"`
	SubmittedToSwiftAt *time.Time `json:"submittedToSwiftAt,omitempty"`
	SubmittedBy        *string    `gorm:"type:varchar(16)" json:"submittedBy,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// PayeeInfo is the decrypted payee block returned to employee and customer
// facing handlers.
type PayeeInfo struct {
	Name          string  `json:"name"`
	AccountNumber string  `json:"accountNumber"`
	BankName      string  `json:"bankName"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	PostalCode    string  `json:"postalCode"`
	Country       string  `json:"country"`
	IBAN          *string `json:"iban"`
}
