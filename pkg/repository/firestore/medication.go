package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
	"google.golang.org/api/iterator"
)

type medicationDocument struct {
	ID        int64     `firestore:"id"`
	Name      string    `firestore:"name"`
	Dosage    string    `firestore:"dosage"`
	Schedule  string    `firestore:"schedule"`
	Notes     string    `firestore:"notes"`
	CreatedAt time.Time `firestore:"created_at"`
}

func (d *medicationDocument) toModel() *model.Medication {
	return &model.Medication{
		ID:        d.ID,
		Name:      d.Name,
		Dosage:    d.Dosage,
		Schedule:  d.Schedule,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
	}
}

type medicationRepository struct {
	client *firestore.Client
	names  collectionNames
}

func (r *medicationRepository) Create(ctx context.Context, medication *model.Medication) (*model.Medication, error) {
	id, err := nextID(ctx, r.client, r.names)
	if err != nil {
		return nil, err
	}

	doc := &medicationDocument{
		ID:        id,
		Name:      medication.Name,
		Dosage:    medication.Dosage,
		Schedule:  medication.Schedule,
		Notes:     medication.Notes,
		CreatedAt: time.Now().UTC(),
	}

	docRef := r.client.Collection(r.names.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create medication", goerr.V("name", medication.Name))
	}

	return doc.toModel(), nil
}

func (r *medicationRepository) List(ctx context.Context) ([]*model.Medication, error) {
	iter := r.client.Collection(r.names.collection()).Documents(ctx)
	defer iter.Stop()

	medications := make([]*model.Medication, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate medications")
		}

		var medicationDoc medicationDocument
		if err := doc.DataTo(&medicationDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal medication")
		}
		medications = append(medications, medicationDoc.toModel())
	}

	sortByID(medications, func(m *model.Medication) int64 { return m.ID })
	return medications, nil
}
