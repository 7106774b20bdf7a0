package main

import (
	"flag"
	"log"
	"os"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/database"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/models"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/utils"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// One-shot utility for seeding employee accounts. Employees are never created
// through the serving path; this is the only way in. The utility opens its own
// database connection and closes it before exiting.
func main() {
	employeeID := flag.String("id", "", "employee ID (EMP followed by 6 digits)")
	password := flag.String("password", "", "employee password")
	role := flag.String("role", "admin", "employee role tag")
	flag.Parse()

	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	if !utils.ValidateEmployeeID(*employeeID) {
		log.Fatal("Invalid employee ID. Format should be EMPxxxxxx")
	}
	if !utils.ValidatePassword(*password) {
		log.Fatal("Invalid password. Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}

	db, err := database.Open()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	if err := db.AutoMigrate(&models.Employee{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var existing models.Employee
	err = db.Where("employee_id = ?", *employeeID).First(&existing).Error
	if err == nil {
		log.Println("Employee already exists")
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to look up employee: %v", err)
	}

	employee := models.Employee{
		EmployeeID: *employeeID,
		Password:   *password,
		Role:       *role,
	}
	if err := employee.HashPassword(); err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(&employee).Error; err != nil {
		log.Fatalf("failed to create employee: %v", err)
	}

	log.Printf("Employee added with ID: %d", employee.ID)
}
