package routes

import (
	"net/http"
	"time"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/controllers/customers"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/middleware"

	"github.com/gorilla/mux"
)

func SetCustomerRoutes(r *mux.Router) {
	// Rate limiters: 5 logins and 3 registrations per IP per minute
	loginLimiter := middleware.NewIPRateLimiter(5, time.Minute)
	registerLimiter := middleware.NewIPRateLimiter(3, time.Minute)

	r.Handle("/customer/register", registerLimiter.Middleware(http.HandlerFunc(customers.Register))).Methods(http.MethodPost)
	r.Handle("/customer/login", loginLimiter.Middleware(http.HandlerFunc(customers.Login))).Methods(http.MethodPost)

	r.Handle("/payment", middleware.CustomerAuthMiddleware(http.HandlerFunc(customers.CreatePayment))).Methods(http.MethodPost)
}
