package mock

import (
	"context"

	"github.com/garnizeh/attendify/internal/models"
)

// Test helpers and mocks
type Mocks struct {
	EmpRepo   *mockEmployeeRepo
	AttRepo   *mockAttendanceRepo
	LeaveRepo *mockLeaveRepo
	MeetRepo  *mockMeetingRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		EmpRepo:   &mockEmployeeRepo{},
		AttRepo:   &mockAttendanceRepo{},
		LeaveRepo: &mockLeaveRepo{},
		MeetRepo:  &mockMeetingRepo{},
	}
}

type mockEmployeeRepo struct {
	Stored      *models.Employee
	All         []models.Employee
	CreateErr   error
	UpdateErr   error
	UpdateRows  int64
	LastUpdated *models.Employee
}

func (m *mockEmployeeRepo) CreateEmployee(ctx context.Context, e *models.Employee) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *e
	stored.EmpID = 1
	m.Stored = &stored
	return 1, nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, empID int64) (*models.Employee, error) {
	if m.Stored != nil && m.Stored.EmpID == empID {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *mockEmployeeRepo) GetByUsername(ctx context.Context, username string) (*models.Employee, error) {
	if m.Stored != nil && m.Stored.Username == username {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *mockEmployeeRepo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return m.All, nil
}

func (m *mockEmployeeRepo) UpdateEmployee(ctx context.Context, e *models.Employee) (int64, error) {
	if m.UpdateErr != nil {
		return 0, m.UpdateErr
	}
	m.LastUpdated = e
	return m.UpdateRows, nil
}

type mockAttendanceRepo struct {
	Checkins     []models.Attendance
	Checkouts    []models.Attendance
	CoffeeBreaks []models.CoffeeBreak
	Err          error
}

func (m *mockAttendanceRepo) RecordCheckin(ctx context.Context, empID int64, day, tm string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Checkins = append(m.Checkins, models.Attendance{EmpID: empID, Day: day, CheckinTime: &tm})
	return nil
}

func (m *mockAttendanceRepo) RecordCheckout(ctx context.Context, empID int64, day, tm string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Checkouts = append(m.Checkouts, models.Attendance{EmpID: empID, Day: day, CheckoutTime: &tm})
	return nil
}

func (m *mockAttendanceRepo) RecordCoffeeBreak(ctx context.Context, b *models.CoffeeBreak) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.CoffeeBreaks = append(m.CoffeeBreaks, *b)
	return int64(len(m.CoffeeBreaks)), nil
}

func (m *mockAttendanceRepo) GetDay(ctx context.Context, empID int64, day string) (*models.Attendance, error) {
	return nil, nil
}

type mockLeaveRepo struct {
	Submitted  []models.LeaveRequest
	Updated    map[int64]string
	Counts     models.LeaveTypeCounts
	Summaries  []string
	StatusN    int64
	Pending    []models.PendingLeave
	Accepted   []models.LeaveDates
	SubmitErr  error
	UpdateErr  error
	QueryErr   error
	LastStatus string
}

func (m *mockLeaveRepo) SubmitLeave(ctx context.Context, lr *models.LeaveRequest) (int64, error) {
	if m.SubmitErr != nil {
		return 0, m.SubmitErr
	}
	lr.RequestID = int64(len(m.Submitted) + 1)
	m.Submitted = append(m.Submitted, *lr)
	return lr.RequestID, nil
}

func (m *mockLeaveRepo) UpdateLeaveStatus(ctx context.Context, requestID int64, status string) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if m.Updated == nil {
		m.Updated = make(map[int64]string)
	}
	m.Updated[requestID] = status
	m.LastStatus = status
	return nil
}

func (m *mockLeaveRepo) CountLeavesByType(ctx context.Context, empID int64) (*models.LeaveTypeCounts, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	c := m.Counts
	return &c, nil
}

func (m *mockLeaveRepo) CountLeavesByStatus(ctx context.Context, empID int64, status string) ([]string, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return m.Summaries, nil
}

func (m *mockLeaveRepo) CountByStatus(ctx context.Context, empID int64, status string) (int64, error) {
	if m.QueryErr != nil {
		return 0, m.QueryErr
	}
	return m.StatusN, nil
}

func (m *mockLeaveRepo) ListPending(ctx context.Context) ([]models.PendingLeave, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return m.Pending, nil
}

func (m *mockLeaveRepo) ListAcceptedDates(ctx context.Context, empID int64) ([]models.LeaveDates, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return m.Accepted, nil
}

type mockMeetingRepo struct {
	Meetings  []models.Meeting
	CreateErr error
}

func (m *mockMeetingRepo) CreateMeeting(ctx context.Context, mt *models.Meeting) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Meetings = append(m.Meetings, *mt)
	return int64(len(m.Meetings)), nil
}
