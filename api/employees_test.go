package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/garnizeh/attendify/api"
	"github.com/garnizeh/attendify/internal/models"
	"github.com/garnizeh/attendify/pkg/repository/mock"
	"github.com/gorilla/mux"
)

func TestGetEmployee(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.EmpRepo.Stored = &models.Employee{EmpID: 7, FullName: "Grace Hopper", Username: "grace", Email: "grace@example.com"}
	handler := api.NewEmployeesHandler(mocks.EmpRepo)

	t.Run("Found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get-employee/7", nil)
		req = mux.SetURLVars(req, map[string]string{"empid": "7"})
		w := httptest.NewRecorder()
		handler.GetEmployee(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Success  bool   `json:"success"`
			FullName string `json:"full_name"`
			Email    string `json:"email"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !resp.Success || resp.FullName != "Grace Hopper" || resp.Email != "grace@example.com" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get-employee/999", nil)
		req = mux.SetURLVars(req, map[string]string{"empid": "999"})
		w := httptest.NewRecorder()
		handler.GetEmployee(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Success || resp.Message != "Employee not found" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("BadID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get-employee/zero", nil)
		req = mux.SetURLVars(req, map[string]string{"empid": "zero"})
		w := httptest.NewRecorder()
		handler.GetEmployee(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestGetEmployeeFull(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.EmpRepo.Stored = &models.Employee{
		EmpID:        7,
		FullName:     "Grace Hopper",
		Username:     "grace",
		Email:        "grace@example.com",
		PhoneNumber:  "555-0100",
		Occupation:   "Professor",
		Faculty:      "Engineering",
		PasswordHash: "sensitive",
	}
	handler := api.NewEmployeesHandler(mocks.EmpRepo)

	req := httptest.NewRequest(http.MethodGet, "/get-employee-full/7", nil)
	req = mux.SetURLVars(req, map[string]string{"empid": "7"})
	w := httptest.NewRecorder()
	handler.GetEmployeeFull(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["username"] != "grace" || resp["faculty"] != "Engineering" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if bytes.Contains(w.Body.Bytes(), []byte("sensitive")) {
		t.Fatalf("credentials leaked in profile body")
	}
}

func TestListEmployees(t *testing.T) {
	mocks := mock.NewMocks()
	handler := api.NewEmployeesHandler(mocks.EmpRepo)

	t.Run("Empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get-all-employees", nil)
		w := httptest.NewRecorder()
		handler.ListEmployees(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Employees []models.Employee `json:"employees"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Employees == nil || len(resp.Employees) != 0 {
			t.Fatalf("expected empty array, got: %s", w.Body.String())
		}
	})

	t.Run("Listed", func(t *testing.T) {
		mocks.EmpRepo.All = []models.Employee{
			{EmpID: 1, FullName: "A", Username: "a", Email: "a@example.com"},
			{EmpID: 2, FullName: "B", Username: "b", Email: "b@example.com"},
		}
		req := httptest.NewRequest(http.MethodGet, "/get-all-employees", nil)
		w := httptest.NewRecorder()
		handler.ListEmployees(w, req)

		var resp struct {
			Employees []models.Employee `json:"employees"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(resp.Employees) != 2 {
			t.Fatalf("expected 2 employees, got %d", len(resp.Employees))
		}
	})
}

func TestUpdateEmployee(t *testing.T) {
	body := map[string]string{
		"full_name":    "Grace Hopper",
		"username":     "grace",
		"email":        "grace@example.com",
		"phone_number": "555-0100",
		"occupation":   "Professor",
		"faculty":      "Engineering",
	}

	run := func(t *testing.T, rows int64) *httptest.ResponseRecorder {
		mocks := mock.NewMocks()
		mocks.EmpRepo.UpdateRows = rows
		handler := api.NewEmployeesHandler(mocks.EmpRepo)

		b, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPut, "/update-employee/7", bytes.NewReader(b))
		req = mux.SetURLVars(req, map[string]string{"empid": "7"})
		w := httptest.NewRecorder()
		handler.UpdateEmployee(w, req)
		return w
	}

	t.Run("Changed", func(t *testing.T) {
		w := run(t, 1)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Profile updated successfully")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	// zero rows affected is a normal outcome with its own status code,
	// never a 500
	t.Run("NoChanges", func(t *testing.T) {
		w := run(t, 0)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("Update failed or no changes made")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("NoBody", func(t *testing.T) {
		mocks := mock.NewMocks()
		handler := api.NewEmployeesHandler(mocks.EmpRepo)
		req := httptest.NewRequest(http.MethodPut, "/update-employee/7", io.NopCloser(bytes.NewReader(nil)))
		req = mux.SetURLVars(req, map[string]string{"empid": "7"})
		w := httptest.NewRecorder()
		handler.UpdateEmployee(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
