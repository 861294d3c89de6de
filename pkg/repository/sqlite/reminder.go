package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

type reminderRepository struct {
	db *sql.DB
}

func (r *reminderRepository) Create(ctx context.Context, reminder *model.Reminder) (*model.Reminder, error) {
	now := time.Now().UTC()
	kind := reminder.Kind.Normalize()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reminders (title, time, kind, done, created_at) VALUES (?, ?, ?, ?, ?)`,
		reminder.Title, reminder.Time, kind.String(), reminder.Done, now,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert reminder", goerr.V("title", reminder.Title))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read reminder id")
	}

	created := *reminder
	created.ID = id
	created.Kind = kind
	created.CreatedAt = now
	return &created, nil
}

func (r *reminderRepository) List(ctx context.Context, includeDone bool) ([]*model.Reminder, error) {
	query := `SELECT id, title, time, kind, done, created_at FROM reminders ORDER BY id`
	if !includeDone {
		query = `SELECT id, title, time, kind, done, created_at FROM reminders WHERE done = 0 ORDER BY id`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query reminders")
	}
	defer rows.Close()

	reminders := make([]*model.Reminder, 0)
	for rows.Next() {
		var rm model.Reminder
		if err := rows.Scan(&rm.ID, &rm.Title, &rm.Time, &rm.Kind, &rm.Done, &rm.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan reminder row")
		}
		reminders = append(reminders, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate reminder rows")
	}

	return reminders, nil
}
