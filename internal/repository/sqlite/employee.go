package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/attendify/internal/models"
)

func (r *SQLiteRepo) CreateEmployee(ctx context.Context, e *models.Employee) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("employee is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO employees (full_name, username, email, phone_number, password_hash, occupation, faculty, emp_photo, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.FullName, e.Username, e.Email, e.PhoneNumber, e.PasswordHash, e.Occupation, e.Faculty, e.Photo, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetByID(ctx context.Context, empID int64) (*models.Employee, error) {
	row := r.conn.QueryRow(ctx, `SELECT empid, full_name, username, email, phone_number, password_hash, occupation, faculty, emp_photo, created FROM employees WHERE empid = ?`, empID)
	return scanEmployee(row)
}

func (r *SQLiteRepo) GetByUsername(ctx context.Context, username string) (*models.Employee, error) {
	row := r.conn.QueryRow(ctx, `SELECT empid, full_name, username, email, phone_number, password_hash, occupation, faculty, emp_photo, created FROM employees WHERE username = ?`, username)
	return scanEmployee(row)
}

func (r *SQLiteRepo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT empid, full_name, email, username, phone_number, occupation, faculty FROM employees ORDER BY empid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Employee
	for rows.Next() {
		var e models.Employee
		var phone, occupation, faculty sql.NullString
		if err := rows.Scan(&e.EmpID, &e.FullName, &e.Email, &e.Username, &phone, &occupation, &faculty); err != nil {
			return nil, err
		}
		e.PhoneNumber = phone.String
		e.Occupation = occupation.String
		e.Faculty = faculty.String
		out = append(out, e)
	}

	return out, rows.Err()
}

// UpdateEmployee rewrites the profile fields and reports how many rows
// changed. Zero means the empid did not match or nothing differed; callers
// surface that as a client-visible outcome rather than a failure. SQLite's
// changes() counts matched rows even when the new values equal the old ones,
// so identical rows are excluded in the WHERE clause to keep the count at
// zero for a no-op update.
func (r *SQLiteRepo) UpdateEmployee(ctx context.Context, e *models.Employee) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("employee is nil")
	}

	res, err := r.conn.Exec(ctx, `UPDATE employees SET full_name = ?, username = ?, email = ?, phone_number = ?, occupation = ?, faculty = ? WHERE empid = ? AND (full_name IS NOT ? OR username IS NOT ? OR email IS NOT ? OR phone_number IS NOT ? OR occupation IS NOT ? OR faculty IS NOT ?)`,
		e.FullName, e.Username, e.Email, e.PhoneNumber, e.Occupation, e.Faculty, e.EmpID,
		e.FullName, e.Username, e.Email, e.PhoneNumber, e.Occupation, e.Faculty)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func scanEmployee(row *sql.Row) (*models.Employee, error) {
	var e models.Employee
	var phone, occupation, faculty sql.NullString
	var photo []byte
	if err := row.Scan(&e.EmpID, &e.FullName, &e.Username, &e.Email, &phone, &e.PasswordHash, &occupation, &faculty, &photo, &e.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	e.PhoneNumber = phone.String
	e.Occupation = occupation.String
	e.Faculty = faculty.String
	e.Photo = photo

	return &e, nil
}
