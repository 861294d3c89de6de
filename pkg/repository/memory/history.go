package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

type historyRepository struct {
	mu      sync.RWMutex
	records map[int64]*model.HistoryRecord
	nextID  int64
}

func newHistoryRepository() *historyRepository {
	return &historyRepository{
		records: make(map[int64]*model.HistoryRecord),
		nextID:  1,
	}
}

func copyHistoryRecord(h *model.HistoryRecord) *model.HistoryRecord {
	copied := *h
	return &copied
}

func (r *historyRepository) Append(ctx context.Context, record *model.HistoryRecord) (*model.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyHistoryRecord(record)
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	r.nextID++

	r.records[created.ID] = created
	return copyHistoryRecord(created), nil
}

// List returns records newest first, up to limit. A limit of zero or
// less means no limit.
func (r *historyRepository) List(ctx context.Context, limit int) ([]*model.HistoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*model.HistoryRecord, 0, len(r.records))
	for _, h := range r.records {
		records = append(records, copyHistoryRecord(h))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID > records[j].ID })

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}
