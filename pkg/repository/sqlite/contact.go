package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

type contactRepository struct {
	db *sql.DB
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO contacts (name, phone, relation, emergency, created_at) VALUES (?, ?, ?, ?, ?)`,
		contact.Name, contact.Phone, contact.Relation, contact.Emergency, now,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert contact", goerr.V("name", contact.Name))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read contact id")
	}

	created := *contact
	created.ID = id
	created.CreatedAt = now
	return &created, nil
}

func (r *contactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, phone, relation, emergency, created_at FROM contacts ORDER BY id`,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query contacts")
	}
	defer rows.Close()

	return scanContacts(rows)
}

func (r *contactRepository) FindByName(ctx context.Context, name string) (*model.Contact, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "contact not found", goerr.V("name", name))
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, phone, relation, emergency, created_at FROM contacts
		 WHERE instr(lower(name), ?) > 0 ORDER BY id LIMIT 1`,
		needle,
	)

	var c model.Contact
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Relation, &c.Emergency, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "contact not found", goerr.V("name", name))
		}
		return nil, goerr.Wrap(err, "failed to scan contact", goerr.V("name", name))
	}

	return &c, nil
}

func (r *contactRepository) ListEmergency(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, phone, relation, emergency, created_at FROM contacts WHERE emergency = 1 ORDER BY id`,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query emergency contacts")
	}
	defer rows.Close()

	return scanContacts(rows)
}

func scanContacts(rows *sql.Rows) ([]*model.Contact, error) {
	contacts := make([]*model.Contact, 0)
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Relation, &c.Emergency, &c.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan contact row")
		}
		contacts = append(contacts, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate contact rows")
	}
	return contacts, nil
}
