package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/garnizeh/attendify/internal/models"
	"github.com/garnizeh/attendify/pkg/repository"
	"github.com/gorilla/mux"
)

type EmployeesHandler struct {
	employeeRepo repository.EmployeeRepo
}

func NewEmployeesHandler(er repository.EmployeeRepo) *EmployeesHandler {
	return &EmployeesHandler{employeeRepo: er}
}

func empIDFromPath(r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["empid"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// GetEmployee answers with the short profile used by the dashboard header.
func (h *EmployeesHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	empID, ok := empIDFromPath(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid empid"})
		return
	}

	employee, err := h.employeeRepo.GetByID(r.Context(), empID)
	if err != nil {
		writeDBError(w, "get employee", err)
		return
	}
	if employee == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "Employee not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"full_name": employee.FullName,
		"email":     employee.Email,
	})
}

// GetEmployeeFull answers with the whole profile except credentials.
func (h *EmployeesHandler) GetEmployeeFull(w http.ResponseWriter, r *http.Request) {
	empID, ok := empIDFromPath(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid empid"})
		return
	}

	employee, err := h.employeeRepo.GetByID(r.Context(), empID)
	if err != nil {
		writeDBError(w, "get employee full", err)
		return
	}
	if employee == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Employee not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"full_name":    employee.FullName,
		"username":     employee.Username,
		"email":        employee.Email,
		"phone_number": employee.PhoneNumber,
		"occupation":   employee.Occupation,
		"faculty":      employee.Faculty,
	})
}

func (h *EmployeesHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeRepo.ListEmployees(r.Context())
	if err != nil {
		writeDBError(w, "list employees", err)
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"employees": employees})
}

type updateEmployeeRequest struct {
	FullName    string `json:"full_name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Occupation  string `json:"occupation"`
	Faculty     string `json:"faculty"`
}

// UpdateEmployee rewrites the profile. Zero changed rows is reported as a
// client-visible 400, distinct from a database failure.
func (h *EmployeesHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	empID, ok := empIDFromPath(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid empid"})
		return
	}

	var req updateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No input data provided"})
		return
	}

	employee := models.Employee{
		EmpID:       empID,
		FullName:    req.FullName,
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Occupation:  req.Occupation,
		Faculty:     req.Faculty,
	}

	rows, err := h.employeeRepo.UpdateEmployee(r.Context(), &employee)
	if err != nil {
		writeDBError(w, "update employee", err)
		return
	}
	if rows == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Update failed or no changes made"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Profile updated successfully"})
}
