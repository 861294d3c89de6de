package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

type messageRepository struct {
	db *sql.DB
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) (*model.Message, error) {
	now := time.Now().UTC()
	direction := message.Direction.Normalize()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (contact_id, content, direction, created_at) VALUES (?, ?, ?, ?)`,
		message.ContactID, message.Content, direction.String(), now,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert message", goerr.V("contactID", message.ContactID))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read message id")
	}

	created := *message
	created.ID = id
	created.Direction = direction
	created.CreatedAt = now
	return &created, nil
}

// List returns messages newest first. A contactID of zero disables the
// contact filter; LIMIT -1 is sqlite for "no limit".
func (r *messageRepository) List(ctx context.Context, contactID int64, limit int) ([]*model.Message, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, contact_id, content, direction, created_at FROM messages
		 WHERE (? = 0 OR contact_id = ?) ORDER BY id DESC LIMIT ?`,
		contactID, contactID, limit,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query messages", goerr.V("contactID", contactID))
	}
	defer rows.Close()

	messages := make([]*model.Message, 0)
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.ContactID, &m.Content, &m.Direction, &m.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan message row")
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate message rows")
	}

	return messages, nil
}
