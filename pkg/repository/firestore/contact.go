package firestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
	"google.golang.org/api/iterator"
)

type contactDocument struct {
	ID        int64     `firestore:"id"`
	Name      string    `firestore:"name"`
	Phone     string    `firestore:"phone"`
	Relation  string    `firestore:"relation"`
	Emergency bool      `firestore:"emergency"`
	CreatedAt time.Time `firestore:"created_at"`
}

func (d *contactDocument) toModel() *model.Contact {
	return &model.Contact{
		ID:        d.ID,
		Name:      d.Name,
		Phone:     d.Phone,
		Relation:  d.Relation,
		Emergency: d.Emergency,
		CreatedAt: d.CreatedAt,
	}
}

type contactRepository struct {
	client *firestore.Client
	names  collectionNames
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	id, err := nextID(ctx, r.client, r.names)
	if err != nil {
		return nil, err
	}

	doc := &contactDocument{
		ID:        id,
		Name:      contact.Name,
		Phone:     contact.Phone,
		Relation:  contact.Relation,
		Emergency: contact.Emergency,
		CreatedAt: time.Now().UTC(),
	}

	docRef := r.client.Collection(r.names.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create contact", goerr.V("name", contact.Name))
	}

	return doc.toModel(), nil
}

func (r *contactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	return r.list(ctx, r.client.Collection(r.names.collection()).Documents(ctx))
}

// FindByName scans the collection for a case-insensitive substring match.
// Firestore has no substring operator, so filtering happens client-side;
// contact lists are tiny.
func (r *contactRepository) FindByName(ctx context.Context, name string) (*model.Contact, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "contact not found", goerr.V("name", name))
	}

	contacts, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			return c, nil
		}
	}

	return nil, goerr.Wrap(interfaces.ErrNotFound, "contact not found", goerr.V("name", name))
}

func (r *contactRepository) ListEmergency(ctx context.Context) ([]*model.Contact, error) {
	iter := r.client.Collection(r.names.collection()).
		Where("emergency", "==", true).
		Documents(ctx)
	return r.list(ctx, iter)
}

func (r *contactRepository) list(ctx context.Context, iter *firestore.DocumentIterator) ([]*model.Contact, error) {
	defer iter.Stop()

	contacts := make([]*model.Contact, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate contacts")
		}

		var contactDoc contactDocument
		if err := doc.DataTo(&contactDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal contact")
		}
		contacts = append(contacts, contactDoc.toModel())
	}

	sortByID(contacts, func(c *model.Contact) int64 { return c.ID })
	return contacts, nil
}
