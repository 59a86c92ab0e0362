package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/attendify/internal/models"
)

// Check-in and check-out both upsert against the UNIQUE(empid, day) key so
// one employee-day always reconciles to a single attendance row.

func (r *SQLiteRepo) RecordCheckin(ctx context.Context, empID int64, day, tm string) error {
	_, err := r.conn.Exec(ctx, `INSERT INTO attendance (empid, day, checkin_time) VALUES (?, ?, ?) ON CONFLICT(empid, day) DO UPDATE SET checkin_time = excluded.checkin_time`, empID, day, tm)
	return err
}

func (r *SQLiteRepo) RecordCheckout(ctx context.Context, empID int64, day, tm string) error {
	_, err := r.conn.Exec(ctx, `INSERT INTO attendance (empid, day, checkout_time) VALUES (?, ?, ?) ON CONFLICT(empid, day) DO UPDATE SET checkout_time = excluded.checkout_time`, empID, day, tm)
	return err
}

func (r *SQLiteRepo) RecordCoffeeBreak(ctx context.Context, b *models.CoffeeBreak) (int64, error) {
	if b == nil {
		return 0, fmt.Errorf("coffee break is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO schedule (start_coffee_break, break_date, empid) VALUES (?, ?, ?)`, b.StartTime, b.BreakDate, b.EmpID)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetDay(ctx context.Context, empID int64, day string) (*models.Attendance, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, empid, day, checkin_time, checkout_time FROM attendance WHERE empid = ? AND day = ?`, empID, day)
	var a models.Attendance
	var in, out sql.NullString
	if err := row.Scan(&a.ID, &a.EmpID, &a.Day, &in, &out); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if in.Valid {
		a.CheckinTime = &in.String
	}
	if out.Valid {
		a.CheckoutTime = &out.String
	}

	return &a, nil
}
