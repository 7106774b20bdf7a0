package employees

import (
	"log"
	"net/http"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/middleware"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/models"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/utils"

	"gorm.io/gorm"
)

type loginRequest struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

// Login authenticates an employee and issues a session token. The token is
// returned in the body and as an HTTP-only cookie with a matching lifetime;
// both carry the same signed string. Absent record and wrong password produce
// the identical 401 body so the response never leaks which check failed.
func Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.EmployeeID == "" || req.Password == "" {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "All fields are required",
		})
		return
	}

	// Format checks run before any database access
	if !utils.ValidateEmployeeID(req.EmployeeID) {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid employee ID. Format should be EMPxxxxxx",
		})
		return
	}
	if !utils.ValidatePassword(req.Password) {
		utils.WriteJSONValue(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid password. Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character",
		})
		return
	}

	sanitizedEmployeeID := utils.Sanitize(req.EmployeeID)

	employee, err := models.GetEmployeeByEmployeeID(sanitizedEmployeeID)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("Employee login error: %v", err)
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

	if !employee.ValidatePassword(req.Password) {
		utils.WriteJSONValue(w, http.StatusUnauthorized, map[string]string{
			"message": "Authentication failed: Invalid credentials",
		})
		return
	}

	token, err := utils.GenerateEmployeeToken(sanitizedEmployeeID, employee.Role)
	if err != nil {
		log.Printf("Employee login error: %v", err)
		utils.WriteJSONValue(w, http.StatusInternalServerError, map[string]string{
			"message": "Internal server error",
		})
		return
	}

	// Cookie max-age mirrors the token expiry so the two surfaces stay in sync
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(utils.SessionDuration.Seconds()),
		Path:     "/",
	})

	utils.WriteJSONValue(w, http.StatusOK, map[string]string{
		"message": "Authentication successful",
		"token":   token,
		"role":    employee.Role,
	})
}
