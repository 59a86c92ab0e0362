package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/garnizeh/attendify/internal/models"
	"github.com/garnizeh/attendify/pkg/repository"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type LeaveHandler struct {
	leaveRepo repository.LeaveRepo
	validate  *validator.Validate
}

func NewLeaveHandler(lr repository.LeaveRepo) *LeaveHandler {
	return &LeaveHandler{leaveRepo: lr, validate: validator.New()}
}

// SubmitLeave records a leave request in the ledger and, for recognized
// types, in the matching shadow table. Both writes happen in one
// transaction inside the repository.
func (h *LeaveHandler) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	var req models.LeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing required fields"})
		return
	}

	if _, err := h.leaveRepo.SubmitLeave(r.Context(), &req); err != nil {
		writeDBError(w, "submit leave", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Leave request submitted successfully"})
}

// LeaveCountByType answers with the per-type totals from the shadow tables,
// flattened to the top level of the body.
func (h *LeaveHandler) LeaveCountByType(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["empid"]
	empID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || empID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid empid"})
		return
	}

	counts, err := h.leaveRepo.CountLeavesByType(r.Context(), empID)
	if err != nil {
		writeDBError(w, "count leaves by type", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":           true,
		"empid":             empID,
		"annual_leave":      counts.Annual,
		"sick_leave":        counts.Sick,
		"maternity_leave":   counts.Maternity,
		"bereavement_leave": counts.Bereavement,
	})
}

// LeaveCountByStatus answers with one summary string per leave type. The
// body is a bare JSON array; callers parse these strings.
func (h *LeaveHandler) LeaveCountByStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	empStr := q.Get("empId")
	status := q.Get("status")
	if empStr == "" || status == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing empId or status"})
		return
	}
	empID, err := strconv.ParseInt(empStr, 10, 64)
	if err != nil || empID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid empId"})
		return
	}

	summaries, err := h.leaveRepo.CountLeavesByStatus(r.Context(), empID, status)
	if err != nil {
		writeDBError(w, "count leaves by status", err)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

// TotalCount answers with the ledger row count for one employee and status,
// independent of leave type.
func (h *LeaveHandler) TotalCount(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	empStr := q.Get("employeeId")
	status := q.Get("status")
	if empStr == "" || status == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required query parameters: employeeId and status"})
		return
	}
	empID, err := strconv.ParseInt(empStr, 10, 64)
	if err != nil || empID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid employeeId"})
		return
	}

	count, err := h.leaveRepo.CountByStatus(r.Context(), empID, status)
	if err != nil {
		writeDBError(w, "count by status", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":      count,
		"success":    true,
		"employeeId": empID,
		"status":     status,
	})
}

func (h *LeaveHandler) PendingLeaveRequests(w http.ResponseWriter, r *http.Request) {
	pending, err := h.leaveRepo.ListPending(r.Context())
	if err != nil {
		writeDBError(w, "list pending leaves", err)
		return
	}
	if pending == nil {
		pending = []models.PendingLeave{}
	}

	writeJSON(w, http.StatusOK, pending)
}

type updateLeaveStatusRequest struct {
	LeaveID int64  `json:"leave_id" validate:"required"`
	Status  string `json:"status" validate:"required"`
	// Accepted for wire compatibility; the ledger row decides which shadow
	// table is touched.
	LeaveType string `json:"leave_type"`
}

func (h *LeaveHandler) UpdateLeaveStatus(w http.ResponseWriter, r *http.Request) {
	var req updateLeaveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing required fields"})
		return
	}

	if err := h.leaveRepo.UpdateLeaveStatus(r.Context(), req.LeaveID, req.Status); err != nil {
		writeDBError(w, "update leave status", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Leave status updated successfully"})
}

func (h *LeaveHandler) LeaveDates(w http.ResponseWriter, r *http.Request) {
	empStr := r.URL.Query().Get("empid")
	if empStr == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "empid is required"})
		return
	}
	empID, err := strconv.ParseInt(empStr, 10, 64)
	if err != nil || empID <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid empid"})
		return
	}

	dates, err := h.leaveRepo.ListAcceptedDates(r.Context(), empID)
	if err != nil {
		writeDBError(w, "list accepted leave dates", err)
		return
	}
	if dates == nil {
		dates = []models.LeaveDates{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"leave_dates": dates})
}
