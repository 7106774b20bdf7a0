package routes

import (
	"net/http"
	"time"

	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/controllers/employees"
	"github.com/ST10245866/Group7-APDS7311-POE-Part-3/middleware"

	"github.com/gorilla/mux"
)

func SetEmployeeRoutes(r *mux.Router) {
	// Rate limiter for employee login: 5 attempts per IP per minute
	loginLimiter := middleware.NewIPRateLimiter(5, time.Minute)

	r.Handle("/employee/login", loginLimiter.Middleware(http.HandlerFunc(employees.Login))).Methods(http.MethodPost)
	r.Handle("/employee/logout", middleware.EmployeeAuthMiddleware(http.HandlerFunc(employees.Logout))).Methods(http.MethodPost)

	// Everything under /employee/payments requires an employee token
	paymentsRouter := r.PathPrefix("/employee/payments").Subrouter()
	paymentsRouter.Use(middleware.EmployeeAuthMiddleware)

	paymentsRouter.Handle("/pending", http.HandlerFunc(employees.GetPendingPayments)).Methods(http.MethodGet)
	paymentsRouter.Handle("/{id}/verify", http.HandlerFunc(employees.VerifyPayment)).Methods(http.MethodPut)
	paymentsRouter.Handle("/submit-to-swift", http.HandlerFunc(employees.SubmitToSwift)).Methods(http.MethodPost)
}
