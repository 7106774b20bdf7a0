package employees

import (
	"log"
	"net/http"
	"strings"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/utils"
)

// Logout ends an employee session: the token's jti is blacklisted for the
// rest of its lifetime and the session cookie is cleared. Revocation needs
// Redis; without it the cookie is still cleared and the token simply ages
// out at its 8 hour expiry.
func Logout(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	if claims, err := utils.ValidateToken(tokenStr); err == nil {
		if err := utils.RevokeToken(claims); err != nil {
			log.Printf("Logout: token revocation unavailable: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
		Path:     "/",
	})

	utils.WriteJSONValue(w, http.StatusOK, map[string]string{
		"message": "Logged out successfully",
	})
}
