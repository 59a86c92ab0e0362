package api

import (
	"encoding/json"
	"net/http"

	"github.com/garnizeh/attendify/internal/models"
	"github.com/garnizeh/attendify/pkg/repository"
	"github.com/go-playground/validator/v10"
)

type AttendanceHandler struct {
	attendanceRepo repository.AttendanceRepo
	validate       *validator.Validate
}

func NewAttendanceHandler(ar repository.AttendanceRepo) *AttendanceHandler {
	return &AttendanceHandler{attendanceRepo: ar, validate: validator.New()}
}

type attendanceRequest struct {
	EmpID int64  `json:"empid" validate:"required"`
	Date  string `json:"date" validate:"required"`
	Time  string `json:"time" validate:"required"`
}

func (h *AttendanceHandler) decode(w http.ResponseWriter, r *http.Request) (*attendanceRequest, bool) {
	var req attendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return nil, false
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
		return nil, false
	}

	return &req, true
}

func (h *AttendanceHandler) Checkin(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	if err := h.attendanceRepo.RecordCheckin(r.Context(), req.EmpID, req.Date, req.Time); err != nil {
		writeDBError(w, "record checkin", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Check-in saved successfully"})
}

func (h *AttendanceHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	if err := h.attendanceRepo.RecordCheckout(r.Context(), req.EmpID, req.Date, req.Time); err != nil {
		writeDBError(w, "record checkout", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Check-out saved"})
}

func (h *AttendanceHandler) CoffeeBreak(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	b := models.CoffeeBreak{EmpID: req.EmpID, BreakDate: req.Date, StartTime: req.Time}
	if _, err := h.attendanceRepo.RecordCoffeeBreak(r.Context(), &b); err != nil {
		writeDBError(w, "record coffee break", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Coffee break saved successfully"})
}
