package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"log/slog"

	"github.com/garnizeh/attendify/internal/models"
)

// shadowTables maps wire leave-type labels to their shadow table. Table
// names only ever come from this map, never from request input, so the
// statements below stay fully parameterized.
var shadowTables = map[string]string{
	models.LeaveTypeAnnual:      "annual_leave",
	models.LeaveTypeSick:        "sick_leave",
	models.LeaveTypeMaternity:   "maternity_leave",
	models.LeaveTypeBereavement: "bereavement_leave",
}

// statusSummaryTypes is the fixed order and spelling of the per-type summary
// lines; external callers parse these strings.
var statusSummaryTypes = []string{"Annual Leave", "Sick Leave", "Maternity Leave", "Bereavement Leave"}

// SubmitLeave writes the ledger row and, for a recognized leave type, the
// shadow row in a single transaction. The shadow row's generated id is
// stored back on the ledger row so later status updates can address it.
// An unrecognized leave type produces a ledger row only; that permissive
// behavior is part of the contract.
func (r *SQLiteRepo) SubmitLeave(ctx context.Context, lr *models.LeaveRequest) (int64, error) {
	if lr == nil {
		return 0, fmt.Errorf("leave request is nil")
	}
	if lr.Status == "" {
		lr.Status = models.StatusPending
	}

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `INSERT INTO leave_request (empid, leave_start_date, leave_end_date, status, leave_type) VALUES (?, ?, ?, ?, ?)`,
		lr.EmpID, lr.StartDate, lr.EndDate, lr.Status, lr.LeaveType)
	if err != nil {
		return 0, fmt.Errorf("insert ledger row: %w", err)
	}
	requestID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if table, ok := shadowTables[lr.LeaveType]; ok {
		res, err := tx.ExecContext(ctx, `INSERT INTO `+table+` (empid, leave_start_date, leave_end_date, status, leave_type) VALUES (?, ?, ?, ?, ?)`,
			lr.EmpID, lr.StartDate, lr.EndDate, lr.Status, lr.LeaveType)
		if err != nil {
			return 0, fmt.Errorf("insert %s row: %w", table, err)
		}
		shadowID, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE leave_request SET shadow_id = ? WHERE request_id = ?`, shadowID, requestID); err != nil {
			return 0, fmt.Errorf("link shadow row: %w", err)
		}
		lr.ShadowID = &shadowID
	} else {
		r.logger.Warn("unrecognized leave type, ledger row only",
			slog.String("leave_type", lr.LeaveType),
			slog.Int64("empid", lr.EmpID),
		)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	lr.RequestID = requestID
	return requestID, nil
}

// UpdateLeaveStatus sets the status on the ledger row and, when the row
// carries a shadow id, on the shadow row it was linked to at submission
// time. The ledger is authoritative for which shadow table to touch.
// A missing request id is a no-op, matching the write-through contract.
func (r *SQLiteRepo) UpdateLeaveStatus(ctx context.Context, requestID int64, status string) error {
	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var leaveType string
	var shadowID sql.NullInt64
	row := tx.QueryRowContext(ctx, `SELECT leave_type, shadow_id FROM leave_request WHERE request_id = ?`, requestID)
	if err := row.Scan(&leaveType, &shadowID); err != nil {
		if err == sql.ErrNoRows {
			return nil
		}

		return fmt.Errorf("load ledger row: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE leave_request SET status = ? WHERE request_id = ?`, status, requestID); err != nil {
		return fmt.Errorf("update ledger row: %w", err)
	}

	if table, ok := shadowTables[leaveType]; ok && shadowID.Valid {
		if _, err := tx.ExecContext(ctx, `UPDATE `+table+` SET status = ? WHERE id = ?`, status, shadowID.Int64); err != nil {
			return fmt.Errorf("update %s row: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// CountLeavesByType counts shadow-table rows per leave type for an employee.
func (r *SQLiteRepo) CountLeavesByType(ctx context.Context, empID int64) (*models.LeaveTypeCounts, error) {
	var c models.LeaveTypeCounts
	for _, q := range []struct {
		table string
		dst   *int64
	}{
		{"annual_leave", &c.Annual},
		{"sick_leave", &c.Sick},
		{"maternity_leave", &c.Maternity},
		{"bereavement_leave", &c.Bereavement},
	} {
		row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM `+q.table+` WHERE empid = ?`, empID)
		if err := row.Scan(q.dst); err != nil {
			return nil, fmt.Errorf("count %s: %w", q.table, err)
		}
	}

	return &c, nil
}

// CountLeavesByStatus formats one human-readable summary line per leave
// type: "<Type>: <n> requests (<status>)". The type comparison is
// case-insensitive because the ledger stores lowercase labels.
func (r *SQLiteRepo) CountLeavesByStatus(ctx context.Context, empID int64, status string) ([]string, error) {
	out := make([]string, 0, len(statusSummaryTypes))
	for _, lt := range statusSummaryTypes {
		var count int64
		row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM leave_request WHERE empid = ? AND leave_type = ? COLLATE NOCASE AND status = ?`, empID, lt, status)
		if err := row.Scan(&count); err != nil {
			return nil, fmt.Errorf("count %q: %w", lt, err)
		}
		out = append(out, fmt.Sprintf("%s: %d requests (%s)", lt, count, status))
	}

	return out, nil
}

// CountByStatus counts ledger rows for an employee with the given status,
// independent of leave type.
func (r *SQLiteRepo) CountByStatus(ctx context.Context, empID int64, status string) (int64, error) {
	var count int64
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM leave_request WHERE empid = ? AND status = ?`, empID, status)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// ListPending joins pending ledger rows with the requesting employee names.
func (r *SQLiteRepo) ListPending(ctx context.Context) ([]models.PendingLeave, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT lr.request_id, lr.empid, e.full_name, lr.leave_start_date, lr.leave_end_date, lr.status, lr.leave_type FROM leave_request lr JOIN employees e ON lr.empid = e.empid WHERE lr.status = ? ORDER BY lr.request_id`, models.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PendingLeave
	for rows.Next() {
		var p models.PendingLeave
		if err := rows.Scan(&p.RequestID, &p.EmpID, &p.EmployeeName, &p.StartDate, &p.EndDate, &p.Status, &p.LeaveType); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// ListAcceptedDates returns the accepted leave ranges for one employee.
func (r *SQLiteRepo) ListAcceptedDates(ctx context.Context, empID int64) ([]models.LeaveDates, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT empid, leave_start_date, leave_end_date FROM leave_request WHERE status = ? AND empid = ? ORDER BY leave_start_date`, models.StatusAccepted, empID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.LeaveDates
	for rows.Next() {
		var d models.LeaveDates
		if err := rows.Scan(&d.EmpID, &d.StartDate, &d.EndDate); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}
