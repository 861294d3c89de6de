// Package sqlite is the file-backed record store. One database file holds
// all entities; the schema is created on open, so a fresh path is enough
// to start.
package sqlite

import (
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
)

type Sqlite struct {
	db         *sql.DB
	contact    *contactRepository
	reminder   *reminderRepository
	medication *medicationRepository
	message    *messageRepository
	history    *historyRepository
}

var _ interfaces.Repository = &Sqlite{}

const schema = `
CREATE TABLE IF NOT EXISTS contacts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	relation TEXT NOT NULL DEFAULT '',
	emergency INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS reminders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	time TEXT NOT NULL DEFAULT '',
	kind TEXT NOT NULL DEFAULT 'general',
	done INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS medications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	dosage TEXT NOT NULL DEFAULT '',
	schedule TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	contact_id INTEGER NOT NULL DEFAULT 0,
	content TEXT NOT NULL,
	direction TEXT NOT NULL DEFAULT 'received',
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_contact ON messages(contact_id);
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	process_id TEXT NOT NULL DEFAULT '',
	utterance TEXT NOT NULL,
	intent TEXT NOT NULL,
	entities TEXT NOT NULL DEFAULT '{}',
	response TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
`

// New opens (or creates) the database file at path and bootstraps the
// schema.
func New(path string) (*Sqlite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to initialize sqlite schema", goerr.V("path", path))
	}

	return &Sqlite{
		db:         db,
		contact:    &contactRepository{db: db},
		reminder:   &reminderRepository{db: db},
		medication: &medicationRepository{db: db},
		message:    &messageRepository{db: db},
		history:    &historyRepository{db: db},
	}, nil
}

func (s *Sqlite) Contact() interfaces.ContactRepository {
	return s.contact
}

func (s *Sqlite) Reminder() interfaces.ReminderRepository {
	return s.reminder
}

func (s *Sqlite) Medication() interfaces.MedicationRepository {
	return s.medication
}

func (s *Sqlite) Message() interfaces.MessageRepository {
	return s.message
}

func (s *Sqlite) History() interfaces.HistoryRepository {
	return s.history
}

func (s *Sqlite) Close() error {
	return s.db.Close()
}
