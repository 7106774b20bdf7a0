package models

import (
	"time"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/database"

	"golang.org/x/crypto/bcrypt"
)

// Employee is a bank staff record. Employees are created only by the
// register-employee utility, never through a customer-facing endpoint, and the
// serving path never updates or deletes them.
type Employee struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	EmployeeID string    `json:"employeeId" gorm:"type:varchar(16);uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"not null"`
	Role       string    `json:"role" gorm:"type:varchar(32);default:admin"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// HashPassword replaces the plaintext password with its bcrypt hash.
// Cost 12 matches the registration utility's hashing parameters.
func (e *Employee) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(e.Password), 12)
	if err != nil {
		return err
	}
	e.Password = string(hashed)
	return nil
}

// ValidatePassword checks the provided password against the stored hash.
func (e *Employee) ValidatePassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(password)) == nil
}

// GetEmployeeByEmployeeID retrieves an employee by their EMP identifier.
func GetEmployeeByEmployeeID(employeeID string) (*Employee, error) {
	var employee Employee
	result := database.DB.Where("employee_id = ?", employeeID).First(&employee)
	if result.Error != nil {
		return nil, result.Error
	}
	return &employee, nil
}
