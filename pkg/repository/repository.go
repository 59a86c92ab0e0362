package repository

import (
	"context"

	"github.com/garnizeh/attendify/internal/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type EmployeeRepo interface {
	CreateEmployee(ctx context.Context, e *models.Employee) (int64, error)
	GetByID(ctx context.Context, empID int64) (*models.Employee, error)
	GetByUsername(ctx context.Context, username string) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	// UpdateEmployee returns the number of rows changed; zero is a normal
	// outcome, not an error.
	UpdateEmployee(ctx context.Context, e *models.Employee) (int64, error)
}

type AttendanceRepo interface {
	RecordCheckin(ctx context.Context, empID int64, day, tm string) error
	RecordCheckout(ctx context.Context, empID int64, day, tm string) error
	RecordCoffeeBreak(ctx context.Context, b *models.CoffeeBreak) (int64, error)
	GetDay(ctx context.Context, empID int64, day string) (*models.Attendance, error)
}

// LeaveRepo is the ledger coordinator: it owns the unified leave_request
// table, the four per-type shadow tables, and the aggregate count queries.
type LeaveRepo interface {
	SubmitLeave(ctx context.Context, lr *models.LeaveRequest) (int64, error)
	UpdateLeaveStatus(ctx context.Context, requestID int64, status string) error
	CountLeavesByType(ctx context.Context, empID int64) (*models.LeaveTypeCounts, error)
	CountLeavesByStatus(ctx context.Context, empID int64, status string) ([]string, error)
	CountByStatus(ctx context.Context, empID int64, status string) (int64, error)
	ListPending(ctx context.Context) ([]models.PendingLeave, error)
	ListAcceptedDates(ctx context.Context, empID int64) ([]models.LeaveDates, error)
}

type MeetingRepo interface {
	CreateMeeting(ctx context.Context, m *models.Meeting) (int64, error)
}
