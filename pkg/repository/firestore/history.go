package firestore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
	"google.golang.org/api/iterator"
)

type historyDocument struct {
	ID        int64     `firestore:"id"`
	ProcessID string    `firestore:"process_id"`
	Utterance string    `firestore:"utterance"`
	Intent    string    `firestore:"intent"`
	Entities  string    `firestore:"entities"`
	Response  string    `firestore:"response"`
	CreatedAt time.Time `firestore:"created_at"`
}

func (d *historyDocument) toModel() *model.HistoryRecord {
	return &model.HistoryRecord{
		ID:        d.ID,
		ProcessID: d.ProcessID,
		Utterance: d.Utterance,
		Intent:    d.Intent,
		Entities:  d.Entities,
		Response:  d.Response,
		CreatedAt: d.CreatedAt,
	}
}

type historyRepository struct {
	client *firestore.Client
	names  collectionNames
}

func (r *historyRepository) Append(ctx context.Context, record *model.HistoryRecord) (*model.HistoryRecord, error) {
	id, err := nextID(ctx, r.client, r.names)
	if err != nil {
		return nil, err
	}

	doc := &historyDocument{
		ID:        id,
		ProcessID: record.ProcessID,
		Utterance: record.Utterance,
		Intent:    record.Intent,
		Entities:  record.Entities,
		Response:  record.Response,
		CreatedAt: time.Now().UTC(),
	}

	docRef := r.client.Collection(r.names.collection()).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to append history record", goerr.V("processID", record.ProcessID))
	}

	return doc.toModel(), nil
}

func (r *historyRepository) List(ctx context.Context, limit int) ([]*model.HistoryRecord, error) {
	iter := r.client.Collection(r.names.collection()).Documents(ctx)
	defer iter.Stop()

	records := make([]*model.HistoryRecord, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate history")
		}

		var historyDoc historyDocument
		if err := doc.DataTo(&historyDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal history record")
		}
		records = append(records, historyDoc.toModel())
	}

	sort.Slice(records, func(i, j int) bool { return records[i].ID > records[j].ID })
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}
