package models

// Recognized leave type labels as they appear on the wire. Submissions with
// any other label still produce a ledger row but no shadow row.
const (
	LeaveTypeAnnual      = "annual leave"
	LeaveTypeSick        = "sick leave"
	LeaveTypeMaternity   = "maternity leave"
	LeaveTypeBereavement = "bereavement leave"
)

// Leave request statuses stored on the ledger.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type Employee struct {
	EmpID        int64  `json:"empid" db:"empid"`
	FullName     string `json:"full_name" db:"full_name" validate:"required"`
	Username     string `json:"username" db:"username" validate:"required"`
	Email        string `json:"email" db:"email" validate:"required,email"`
	PhoneNumber  string `json:"phone_number,omitempty" db:"phone_number"`
	PasswordHash string `json:"-" db:"password_hash"`
	Occupation   string `json:"occupation,omitempty" db:"occupation"`
	Faculty      string `json:"faculty,omitempty" db:"faculty"`
	Photo        []byte `json:"-" db:"emp_photo"`
	Created      int64  `json:"created,omitempty" db:"created"`
}

// Attendance is the single row per employee per day. Check-in and check-out
// both upsert against the (empid, day) key.
type Attendance struct {
	ID           int64   `json:"id" db:"id"`
	EmpID        int64   `json:"empid" db:"empid"`
	Day          string  `json:"day" db:"day"`
	CheckinTime  *string `json:"checkin_time,omitempty" db:"checkin_time"`
	CheckoutTime *string `json:"checkout_time,omitempty" db:"checkout_time"`
}

// CoffeeBreak is an append-only log entry; several per employee-day are valid.
type CoffeeBreak struct {
	ID        int64  `json:"id" db:"id"`
	EmpID     int64  `json:"empid" db:"empid"`
	BreakDate string `json:"break_date" db:"break_date"`
	StartTime string `json:"start_coffee_break" db:"start_coffee_break"`
}

// LeaveRequest is a row of the unified ledger. ShadowID points at the row
// duplicated into the per-type shadow table at submission time; it is nil
// for unrecognized leave types.
type LeaveRequest struct {
	RequestID int64  `json:"request_id" db:"request_id"`
	EmpID     int64  `json:"empid" db:"empid" validate:"required"`
	StartDate string `json:"leave_start_date" db:"leave_start_date" validate:"required"`
	EndDate   string `json:"leave_end_date" db:"leave_end_date" validate:"required"`
	Status    string `json:"status" db:"status"`
	LeaveType string `json:"leave_type" db:"leave_type" validate:"required"`
	ShadowID  *int64 `json:"-" db:"shadow_id"`
}

// PendingLeave is a ledger row joined with the requesting employee's name,
// keyed the way the approval UI expects.
type PendingLeave struct {
	RequestID    int64  `json:"requestId"`
	EmpID        int64  `json:"empId"`
	EmployeeName string `json:"employeeName"`
	StartDate    string `json:"leaveStartDate"`
	EndDate      string `json:"leaveEndDate"`
	Status       string `json:"status"`
	LeaveType    string `json:"leaveType"`
}

// LeaveDates is an accepted leave range for calendar rendering.
type LeaveDates struct {
	EmpID     int64  `json:"empid"`
	StartDate string `json:"leave_start_date"`
	EndDate   string `json:"leave_end_date"`
}

// LeaveTypeCounts holds per-type totals from the shadow tables.
type LeaveTypeCounts struct {
	Annual      int64 `json:"annual_leave"`
	Sick        int64 `json:"sick_leave"`
	Maternity   int64 `json:"maternity_leave"`
	Bereavement int64 `json:"bereavement_leave"`
}

type Meeting struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title" validate:"required"`
	MeetingDate string `json:"meeting_date" db:"meeting_date" validate:"required"`
	StartTime   string `json:"start_time" db:"start_time" validate:"required"`
	EndTime     string `json:"end_time" db:"end_time" validate:"required"`
	Location    string `json:"location,omitempty" db:"location"`
	OrganizerID *int64 `json:"organizer_id,omitempty" db:"organizer_id"`
}
