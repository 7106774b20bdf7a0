package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/utils"
)

// EmployeeAuthMiddleware gates employee-only routes. It extracts the bearer
// token from the Authorization header, verifies it, and attaches the decoded
// employeeId and role to the request context. Customer tokens are rejected
// here even when their signature is valid: the two identity classes never
// cross-authorize.
func EmployeeAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Message: "Authentication failed",
			})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Message: "Authentication failed",
			})
			return
		}

		employeeID, _ := claims["employeeId"].(string)
		role, _ := claims["role"].(string)
		if employeeID == "" || role == utils.RoleCustomer {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Message: "Authentication failed",
			})
			return
		}

		ctx := context.WithValue(r.Context(), utils.EmployeeIDKey, employeeID)
		ctx = context.WithValue(ctx, utils.UserRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetEmployeeID returns the authenticated employee's identifier from the
// request context.
func GetEmployeeID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(utils.EmployeeIDKey).(string)
	return id, ok && id != ""
}
