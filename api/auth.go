package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/garnizeh/attendify/internal/models"
	"github.com/garnizeh/attendify/pkg/repository"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	employeeRepo  repository.EmployeeRepo
	jwtSecret     string
	tokenDuration time.Duration
	validate      *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(er repository.EmployeeRepo, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{
		employeeRepo:  er,
		jwtSecret:     jwtSecret,
		tokenDuration: tokenDuration,
		validate:      validator.New(),
	}
}

type registerRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	Username    string `json:"username" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Occupation  string `json:"occupation"`
	Faculty     string `json:"faculty"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register stores a new employee. The password is stored as a bcrypt hash;
// the row itself never leaves with the hash attached.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}
	// Login trims before comparing, so the hash must come from the trimmed
	// password or padded registrations could never authenticate.
	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing required fields"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "error hashing password"})
		return
	}

	employee := models.Employee{
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		Occupation:   req.Occupation,
		Faculty:      req.Faculty,
	}

	if _, err := h.employeeRepo.CreateEmployee(r.Context(), &employee); err != nil {
		writeDBError(w, "create employee", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Employee added successfully"})
}

// Login checks the credentials and answers with the empid and a bearer
// token for the approval-side endpoints.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid request"})
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "missing required fields"})
		return
	}

	employee, err := h.employeeRepo.GetByUsername(r.Context(), req.Username)
	if err != nil {
		writeDBError(w, "load employee", err)
		return
	}
	if employee == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)) != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"empid": employee.EmpID,
		"exp":   time.Now().Add(h.tokenDuration).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "error signing token"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"empid":   employee.EmpID,
		"token":   tokenStr,
	})
}
