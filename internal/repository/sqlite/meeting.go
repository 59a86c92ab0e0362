package sqlite

import (
	"context"
	"fmt"

	"github.com/garnizeh/attendify/internal/models"
)

func (r *SQLiteRepo) CreateMeeting(ctx context.Context, m *models.Meeting) (int64, error) {
	if m == nil {
		return 0, fmt.Errorf("meeting is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO meetings (title, meeting_date, start_time, end_time, location, organizer_id) VALUES (?, ?, ?, ?, ?, ?)`,
		m.Title, m.MeetingDate, m.StartTime, m.EndTime, m.Location, m.OrganizerID)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}
