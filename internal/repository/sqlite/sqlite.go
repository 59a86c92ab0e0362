package sqlite

import (
	"time"

	"log/slog"

	"github.com/garnizeh/attendify/internal/db"
	"github.com/garnizeh/attendify/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.EmployeeRepo = (*SQLiteRepo)(nil)
var _ repository.AttendanceRepo = (*SQLiteRepo)(nil)
var _ repository.LeaveRepo = (*SQLiteRepo)(nil)
var _ repository.MeetingRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
