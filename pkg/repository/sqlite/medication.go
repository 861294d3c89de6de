package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

type medicationRepository struct {
	db *sql.DB
}

func (r *medicationRepository) Create(ctx context.Context, medication *model.Medication) (*model.Medication, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO medications (name, dosage, schedule, notes, created_at) VALUES (?, ?, ?, ?, ?)`,
		medication.Name, medication.Dosage, medication.Schedule, medication.Notes, now,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert medication", goerr.V("name", medication.Name))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read medication id")
	}

	created := *medication
	created.ID = id
	created.CreatedAt = now
	return &created, nil
}

func (r *medicationRepository) List(ctx context.Context) ([]*model.Medication, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, dosage, schedule, notes, created_at FROM medications ORDER BY id`,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query medications")
	}
	defer rows.Close()

	medications := make([]*model.Medication, 0)
	for rows.Next() {
		var m model.Medication
		if err := rows.Scan(&m.ID, &m.Name, &m.Dosage, &m.Schedule, &m.Notes, &m.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan medication row")
		}
		medications = append(medications, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate medication rows")
	}

	return medications, nil
}
