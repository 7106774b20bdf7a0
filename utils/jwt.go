package utils

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	redis "github.com/redis/go-redis/v9"
)

// Session tokens for the two identity classes. Employee and customer tokens
// share the signing secret but carry disjoint claims: employee tokens embed
// employeeId and the employee's role tag, customer tokens embed the username
// and account number with role "customer". Gates check the claims they expect,
// so a token from one class never authorizes the other class's routes.

// SessionDuration is the lifetime of every issued token. The employee login
// cookie max-age must match it.
const SessionDuration = 8 * time.Hour

// RoleCustomer is the role claim carried by every customer token.
const RoleCustomer = "customer"

type contextKey string

const (
	EmployeeIDKey = contextKey("employeeId")
	UserRoleKey   = contextKey("userRole")
	UsernameKey   = contextKey("username")
	AccountKey    = contextKey("accountNumber")
	RequestIDKey  = contextKey("requestID")
)

// RedisClient is an optional shared Redis client used for token revocation and
// login lockout state. It stays nil when REDIS_ADDR is not configured.
var RedisClient *redis.Client

func init() {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return
	}
	opts := &redis.Options{Addr: addr}
	if p := os.Getenv("REDIS_PASS"); p != "" {
		opts.Password = p
	}
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		var dbn int
		_, _ = fmt.Sscanf(dbStr, "%d", &dbn)
		opts.DB = dbn
	}
	rc := redis.NewClient(opts)
	if err := rc.Ping(context.Background()).Err(); err != nil {
		fmt.Printf("warning: redis ping failed: %v\n", err)
		// revocation and lockout fall back to in-memory state
		return
	}
	RedisClient = rc
}

// GenerateEmployeeToken issues a signed session token for an authenticated
// employee. The same token string is placed in the response body and the
// session cookie.
func GenerateEmployeeToken(employeeID, role string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	now := time.Now()
	jti, err := generateJTI(32)
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"employeeId": employeeID,
		"role":       role,
		"exp":        now.Add(SessionDuration).Unix(),
		"iat":        now.Unix(),
		"nbf":        now.Unix(),
		"jti":        jti,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateCustomerToken issues a signed session token for an authenticated
// customer.
func GenerateCustomerToken(username, accountNumber string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	now := time.Now()
	jti, err := generateJTI(32)
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"username":      username,
		"accountNumber": accountNumber,
		"role":          RoleCustomer,
		"exp":           now.Add(SessionDuration).Unix(),
		"iat":           now.Unix(),
		"nbf":           now.Unix(),
		"jti":           jti,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and verifies a session token, returning its claims.
// It requires HS256 exactly to avoid algorithm confusion, and consults the
// Redis jti blacklist when one is configured.
func ValidateToken(tokenStr string) (jwt.MapClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	token, err := jwt.ParseWithClaims(tokenStr, jwt.MapClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method == nil || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	if jtiRaw, ok := claims["jti"].(string); ok && jtiRaw != "" && RedisClient != nil {
		res, err := RedisClient.Get(context.Background(), "jwt:blacklist:"+jtiRaw).Result()
		if err == nil && res == "1" {
			return nil, errors.New("token revoked")
		}
		// ignore redis errors (do not fail auth due to redis outage)
	}

	return claims, nil
}

// RevokeToken blacklists a token's jti for the remainder of its lifetime.
// Requires Redis; revocation is a best-effort cross-instance facility.
func RevokeToken(claims jwt.MapClaims) error {
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return errors.New("token has no jti")
	}
	if RedisClient == nil {
		return errors.New("no revocation store configured")
	}
	ttl := SessionDuration
	if expRaw, ok := claims["exp"].(float64); ok {
		if remain := time.Until(time.Unix(int64(expRaw), 0)); remain > 0 {
			ttl = remain
		}
	}
	return RedisClient.Set(context.Background(), "jwt:blacklist:"+jti, "1", ttl).Err()
}

// generateJTI creates a URL-safe random identifier used as JWT ID
func generateJTI(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	const hex = "0123456789abcdef"
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = hex[int(b[i])%len(hex)]
	}
	return string(out), nil
}
