package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/utils"
)

// CustomerAuthMiddleware gates customer-only routes. Only tokens carrying the
// customer role claim pass; employee tokens are rejected regardless of their
// signature validity.
func CustomerAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Message: "Authentication failed",
			})
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))

		claims, err := utils.ValidateToken(tokenStr)
		if err != nil {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Message: "Authentication failed",
			})
			return
		}

		role, _ := claims["role"].(string)
		if role != utils.RoleCustomer {
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{
				Success: false,
				Message: "Access denied",
			})
			return
		}

		username, _ := claims["username"].(string)
		accountNumber, _ := claims["accountNumber"].(string)
		ctx := context.WithValue(r.Context(), utils.UsernameKey, username)
		ctx = context.WithValue(ctx, utils.AccountKey, accountNumber)
		ctx = context.WithValue(ctx, utils.UserRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCustomerAccount returns the authenticated customer's account number from
// the request context.
func GetCustomerAccount(r *http.Request) (string, bool) {
	acc, ok := r.Context().Value(utils.AccountKey).(string)
	return acc, ok && acc != ""
}
