package firestore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
	"github.com/waqt-lab/sawtak/pkg/domain/types"
	"google.golang.org/api/iterator"
)

type messageDocument struct {
	ID        int64     `firestore:"id"`
	ContactID int64     `firestore:"contact_id"`
	Content   string    `firestore:"content"`
	Direction string    `firestore:"direction"`
	CreatedAt time.Time `firestore:"created_at"`
}

func (d *messageDocument) toModel() *model.Message {
	return &model.Message{
		ID:        d.ID,
		ContactID: d.ContactID,
		Content:   d.Content,
		Direction: types.MessageDirection(d.Direction),
		CreatedAt: d.CreatedAt,
	}
}

type messageRepository struct {
	client *firestore.Client
	names  collectionNames
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) (*model.Message, error) {
	id, err := nextID(ctx, r.client, r.names)
	if err != nil {
		return nil, err
	}

	doc := &messageDocument{
		ID:        id,
		ContactID: message.ContactID,
		Content:   message.Content,
		Direction: message.Direction.Normalize().String(),
		CreatedAt: time.Now().UTC(),
	}

	docRef := r.client.Collection(r.names.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create message", goerr.V("contactID", message.ContactID))
	}

	return doc.toModel(), nil
}

// List returns messages newest first. A contactID of zero disables the
// contact filter; a limit of zero or less means no limit.
func (r *messageRepository) List(ctx context.Context, contactID int64, limit int) ([]*model.Message, error) {
	query := r.client.Collection(r.names.collection()).Query
	if contactID != 0 {
		query = query.Where("contact_id", "==", contactID)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	messages := make([]*model.Message, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate messages")
		}

		var messageDoc messageDocument
		if err := doc.DataTo(&messageDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal message")
		}
		messages = append(messages, messageDoc.toModel())
	}

	sort.Slice(messages, func(i, j int) bool { return messages[i].ID > messages[j].ID })
	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}

	return messages, nil
}
