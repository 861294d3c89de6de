package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

type historyRepository struct {
	db *sql.DB
}

func (r *historyRepository) Append(ctx context.Context, record *model.HistoryRecord) (*model.HistoryRecord, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO history (process_id, utterance, intent, entities, response, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		record.ProcessID, record.Utterance, record.Intent, record.Entities, record.Response, now,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert history record", goerr.V("processID", record.ProcessID))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read history id")
	}

	created := *record
	created.ID = id
	created.CreatedAt = now
	return &created, nil
}

func (r *historyRepository) List(ctx context.Context, limit int) ([]*model.HistoryRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, process_id, utterance, intent, entities, response, created_at FROM history
		 ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query history")
	}
	defer rows.Close()

	records := make([]*model.HistoryRecord, 0)
	for rows.Next() {
		var h model.HistoryRecord
		if err := rows.Scan(&h.ID, &h.ProcessID, &h.Utterance, &h.Intent, &h.Entities, &h.Response, &h.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan history row")
		}
		records = append(records, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate history rows")
	}

	return records, nil
}
