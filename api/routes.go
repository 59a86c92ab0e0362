package api

import (
	"net/http"

	"github.com/garnizeh/attendify/internal/config"
	"github.com/garnizeh/attendify/internal/db"
	"github.com/garnizeh/attendify/internal/repository/sqlite"
	"github.com/gorilla/mux"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db, logger)

	// Create handlers
	systemHandler := NewSystemHandler(db)
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	employeesHandler := NewEmployeesHandler(repo)
	attendanceHandler := NewAttendanceHandler(repo)
	leaveHandler := NewLeaveHandler(repo)
	meetingsHandler := NewMeetingsHandler(repo)

	// Open endpoints
	r.HandleFunc("/", systemHandler.HomeHandler).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/save-employee", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/get-employee/{empid}", employeesHandler.GetEmployee).Methods("GET")
	api.HandleFunc("/get-employee-full/{empid}", employeesHandler.GetEmployeeFull).Methods("GET")
	api.HandleFunc("/get-all-employees", employeesHandler.ListEmployees).Methods("GET")
	api.HandleFunc("/update-employee/{empid}", employeesHandler.UpdateEmployee).Methods("PUT")
	api.HandleFunc("/checkin", attendanceHandler.Checkin).Methods("POST")
	api.HandleFunc("/checkout", attendanceHandler.Checkout).Methods("POST")
	api.HandleFunc("/coffee-break", attendanceHandler.CoffeeBreak).Methods("POST")
	api.HandleFunc("/submit-leave", leaveHandler.SubmitLeave).Methods("POST")
	api.HandleFunc("/leave-count/{empid}", leaveHandler.LeaveCountByType).Methods("GET")
	api.HandleFunc("/leave-count", leaveHandler.LeaveCountByStatus).Methods("GET")
	api.HandleFunc("/total-count", leaveHandler.TotalCount).Methods("GET")
	api.HandleFunc("/leave-dates", leaveHandler.LeaveDates).Methods("GET")
	api.HandleFunc("/save-meeting", meetingsHandler.SaveMeeting).Methods("POST")

	// Approval-side endpoints require a bearer token issued at login. The
	// middleware wraps the handlers directly so these routes share the /api
	// subrouter with the open endpoints.
	auth := JWTAuthMiddlewareWithSecret(cfg.JWTSecret)
	api.Handle("/pending-leave-requests", auth(http.HandlerFunc(leaveHandler.PendingLeaveRequests))).Methods("GET")
	api.Handle("/update-leave-status", auth(http.HandlerFunc(leaveHandler.UpdateLeaveStatus))).Methods("POST")

	return r
}
