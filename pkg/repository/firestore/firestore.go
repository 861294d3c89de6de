// Package firestore is the Firestore-backed record store. Each entity
// lives in its own collection keyed by a numeric ID; IDs come from
// per-entity counter documents updated in a transaction, so they stay
// monotonic across instances.
package firestore

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Firestore struct {
	client     *firestore.Client
	contact    *contactRepository
	reminder   *reminderRepository
	medication *medicationRepository
	message    *messageRepository
	history    *historyRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces every collection, used by tests to
// isolate runs against a shared project.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.contact.names.prefix = prefix
		f.reminder.names.prefix = prefix
		f.medication.names.prefix = prefix
		f.message.names.prefix = prefix
		f.history.names.prefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:     client,
		contact:    &contactRepository{client: client, names: collectionNames{entity: "contacts"}},
		reminder:   &reminderRepository{client: client, names: collectionNames{entity: "reminders"}},
		medication: &medicationRepository{client: client, names: collectionNames{entity: "medications"}},
		message:    &messageRepository{client: client, names: collectionNames{entity: "messages"}},
		history:    &historyRepository{client: client, names: collectionNames{entity: "history"}},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Contact() interfaces.ContactRepository {
	return f.contact
}

func (f *Firestore) Reminder() interfaces.ReminderRepository {
	return f.reminder
}

func (f *Firestore) Medication() interfaces.MedicationRepository {
	return f.medication
}

func (f *Firestore) Message() interfaces.MessageRepository {
	return f.message
}

func (f *Firestore) History() interfaces.HistoryRepository {
	return f.history
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

// collectionNames resolves the entity and counter collection names with
// an optional prefix.
type collectionNames struct {
	entity string
	prefix string
}

func (n collectionNames) collection() string {
	if n.prefix != "" {
		return n.prefix + "_" + n.entity
	}
	return n.entity
}

func (n collectionNames) counterCollection() string {
	if n.prefix != "" {
		return n.prefix + "_counters"
	}
	return "counters"
}

func (n collectionNames) counterDoc() string {
	return n.entity + "_counter"
}

// nextID increments the entity's counter document transactionally and
// returns the new value. A missing counter starts at 1.
func nextID(ctx context.Context, client *firestore.Client, names collectionNames) (int64, error) {
	counterRef := client.Collection(names.counterCollection()).Doc(names.counterDoc())

	var id int64
	err := client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(counterRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				id = 1
				return tx.Set(counterRef, map[string]interface{}{
					"value": id,
				})
			}
			return goerr.Wrap(err, "failed to get counter")
		}

		current, err := doc.DataAt("value")
		if err != nil {
			return goerr.Wrap(err, "failed to get counter value")
		}

		id = current.(int64) + 1
		return tx.Update(counterRef, []firestore.Update{
			{Path: "value", Value: id},
		})
	})

	if err != nil {
		return 0, goerr.Wrap(err, "failed to get next ID", goerr.V("entity", names.entity))
	}

	return id, nil
}

// sortByID orders fetched documents by their numeric ID. Sorting happens
// client-side so filtered queries need no composite indexes.
func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

