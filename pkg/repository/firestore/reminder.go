package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
	"github.com/waqt-lab/sawtak/pkg/domain/types"
	"google.golang.org/api/iterator"
)

type reminderDocument struct {
	ID        int64     `firestore:"id"`
	Title     string    `firestore:"title"`
	Time      string    `firestore:"time"`
	Kind      string    `firestore:"kind"`
	Done      bool      `firestore:"done"`
	CreatedAt time.Time `firestore:"created_at"`
}

func (d *reminderDocument) toModel() *model.Reminder {
	return &model.Reminder{
		ID:        d.ID,
		Title:     d.Title,
		Time:      d.Time,
		Kind:      types.ReminderKind(d.Kind),
		Done:      d.Done,
		CreatedAt: d.CreatedAt,
	}
}

type reminderRepository struct {
	client *firestore.Client
	names  collectionNames
}

func (r *reminderRepository) Create(ctx context.Context, reminder *model.Reminder) (*model.Reminder, error) {
	id, err := nextID(ctx, r.client, r.names)
	if err != nil {
		return nil, err
	}

	doc := &reminderDocument{
		ID:        id,
		Title:     reminder.Title,
		Time:      reminder.Time,
		Kind:      reminder.Kind.Normalize().String(),
		Done:      reminder.Done,
		CreatedAt: time.Now().UTC(),
	}

	docRef := r.client.Collection(r.names.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create reminder", goerr.V("title", reminder.Title))
	}

	return doc.toModel(), nil
}

func (r *reminderRepository) List(ctx context.Context, includeDone bool) ([]*model.Reminder, error) {
	query := r.client.Collection(r.names.collection()).Query
	if !includeDone {
		query = query.Where("done", "==", false)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	reminders := make([]*model.Reminder, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate reminders")
		}

		var reminderDoc reminderDocument
		if err := doc.DataTo(&reminderDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal reminder")
		}
		reminders = append(reminders, reminderDoc.toModel())
	}

	sortByID(reminders, func(rm *model.Reminder) int64 { return rm.ID })
	return reminders, nil
}
