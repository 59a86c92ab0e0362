package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/garnizeh/attendify/api"
	"github.com/garnizeh/attendify/internal/models"
	"github.com/garnizeh/attendify/pkg/repository/mock"
	"github.com/gorilla/mux"
)

func TestSubmitLeave(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mocks := mock.NewMocks()
		handler := api.NewLeaveHandler(mocks.LeaveRepo)

		body, _ := json.Marshal(map[string]any{
			"empid":            1,
			"leave_start_date": "2024-01-01",
			"leave_end_date":   "2024-01-03",
			"status":           "pending",
			"leave_type":       "sick leave",
		})
		req := httptest.NewRequest(http.MethodPost, "/submit-leave", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.SubmitLeave(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		if len(mocks.LeaveRepo.Submitted) != 1 {
			t.Fatalf("expected 1 submission, got %d", len(mocks.LeaveRepo.Submitted))
		}
		got := mocks.LeaveRepo.Submitted[0]
		if got.EmpID != 1 || got.LeaveType != "sick leave" || got.Status != "pending" {
			t.Fatalf("unexpected submission: %#v", got)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		mocks := mock.NewMocks()
		handler := api.NewLeaveHandler(mocks.LeaveRepo)

		body, _ := json.Marshal(map[string]any{"empid": 1, "leave_type": "sick leave"})
		req := httptest.NewRequest(http.MethodPost, "/submit-leave", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.SubmitLeave(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(mocks.LeaveRepo.Submitted) != 0 {
			t.Fatalf("nothing should be submitted on validation failure")
		}
	})
}

func TestLeaveCountByType(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.LeaveRepo.Counts = models.LeaveTypeCounts{Sick: 1}
	handler := api.NewLeaveHandler(mocks.LeaveRepo)

	req := httptest.NewRequest(http.MethodGet, "/leave-count/1", nil)
	req = mux.SetURLVars(req, map[string]string{"empid": "1"})
	w := httptest.NewRecorder()
	handler.LeaveCountByType(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for key, want := range map[string]float64{
		"sick_leave":        1,
		"annual_leave":      0,
		"maternity_leave":   0,
		"bereavement_leave": 0,
	} {
		if got, _ := resp[key].(float64); got != want {
			t.Fatalf("%s: got %v want %v (body=%s)", key, resp[key], want, w.Body.String())
		}
	}
	if success, _ := resp["success"].(bool); !success {
		t.Fatalf("expected success=true, body=%s", w.Body.String())
	}
}

func TestLeaveCountByStatus(t *testing.T) {
	t.Run("MissingParams", func(t *testing.T) {
		mocks := mock.NewMocks()
		handler := api.NewLeaveHandler(mocks.LeaveRepo)

		req := httptest.NewRequest(http.MethodGet, "/leave-count?empId=1", nil)
		w := httptest.NewRecorder()
		handler.LeaveCountByStatus(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Missing empId or status")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("SummaryStrings", func(t *testing.T) {
		mocks := mock.NewMocks()
		mocks.LeaveRepo.Summaries = []string{
			"Annual Leave: 2 requests (pending)",
			"Sick Leave: 0 requests (pending)",
			"Maternity Leave: 0 requests (pending)",
			"Bereavement Leave: 1 requests (pending)",
		}
		handler := api.NewLeaveHandler(mocks.LeaveRepo)

		req := httptest.NewRequest(http.MethodGet, "/leave-count?empId=1&status=pending", nil)
		w := httptest.NewRecorder()
		handler.LeaveCountByStatus(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("expected a bare JSON array: %v", err)
		}
		if len(resp) != 4 || resp[0] != "Annual Leave: 2 requests (pending)" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestTotalCount(t *testing.T) {
	t.Run("MissingParams", func(t *testing.T) {
		mocks := mock.NewMocks()
		handler := api.NewLeaveHandler(mocks.LeaveRepo)

		req := httptest.NewRequest(http.MethodGet, "/total-count?status=pending", nil)
		w := httptest.NewRecorder()
		handler.TotalCount(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Count", func(t *testing.T) {
		mocks := mock.NewMocks()
		mocks.LeaveRepo.StatusN = 5
		handler := api.NewLeaveHandler(mocks.LeaveRepo)

		req := httptest.NewRequest(http.MethodGet, "/total-count?employeeId=1&status=pending", nil)
		w := httptest.NewRecorder()
		handler.TotalCount(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Count      int64  `json:"count"`
			Success    bool   `json:"success"`
			EmployeeID int64  `json:"employeeId"`
			Status     string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !resp.Success || resp.Count != 5 || resp.EmployeeID != 1 || resp.Status != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPendingLeaveRequests(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.LeaveRepo.Pending = []models.PendingLeave{
		{RequestID: 1, EmpID: 2, EmployeeName: "Grace Hopper", StartDate: "2024-01-01", EndDate: "2024-01-03", Status: "pending", LeaveType: "sick leave"},
	}
	handler := api.NewLeaveHandler(mocks.LeaveRepo)

	req := httptest.NewRequest(http.MethodGet, "/pending-leave-requests", nil)
	w := httptest.NewRecorder()
	handler.PendingLeaveRequests(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp) != 1 || resp[0]["employeeName"] != "Grace Hopper" || resp[0]["leaveType"] != "sick leave" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestUpdateLeaveStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mocks := mock.NewMocks()
		handler := api.NewLeaveHandler(mocks.LeaveRepo)

		body, _ := json.Marshal(map[string]any{"leave_id": 3, "status": "accepted", "leave_type": "sick leave"})
		req := httptest.NewRequest(http.MethodPost, "/update-leave-status", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.UpdateLeaveStatus(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if mocks.LeaveRepo.Updated[3] != "accepted" {
			t.Fatalf("status not applied: %#v", mocks.LeaveRepo.Updated)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		mocks := mock.NewMocks()
		handler := api.NewLeaveHandler(mocks.LeaveRepo)

		body, _ := json.Marshal(map[string]any{"leave_id": 3})
		req := httptest.NewRequest(http.MethodPost, "/update-leave-status", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.UpdateLeaveStatus(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestLeaveDates(t *testing.T) {
	t.Run("MissingEmpid", func(t *testing.T) {
		mocks := mock.NewMocks()
		handler := api.NewLeaveHandler(mocks.LeaveRepo)

		req := httptest.NewRequest(http.MethodGet, "/leave-dates", nil)
		w := httptest.NewRecorder()
		handler.LeaveDates(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Dates", func(t *testing.T) {
		mocks := mock.NewMocks()
		mocks.LeaveRepo.Accepted = []models.LeaveDates{
			{EmpID: 1, StartDate: "2024-01-01", EndDate: "2024-01-03"},
		}
		handler := api.NewLeaveHandler(mocks.LeaveRepo)

		req := httptest.NewRequest(http.MethodGet, "/leave-dates?empid=1", nil)
		w := httptest.NewRecorder()
		handler.LeaveDates(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			LeaveDates []models.LeaveDates `json:"leave_dates"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(resp.LeaveDates) != 1 || resp.LeaveDates[0].StartDate != "2024-01-01" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
