package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

type reminderRepository struct {
	mu        sync.RWMutex
	reminders map[int64]*model.Reminder
	nextID    int64
}

func newReminderRepository() *reminderRepository {
	return &reminderRepository{
		reminders: make(map[int64]*model.Reminder),
		nextID:    1,
	}
}

func copyReminder(rm *model.Reminder) *model.Reminder {
	copied := *rm
	return &copied
}

func (r *reminderRepository) Create(ctx context.Context, reminder *model.Reminder) (*model.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyReminder(reminder)
	created.ID = r.nextID
	created.Kind = created.Kind.Normalize()
	created.CreatedAt = time.Now().UTC()
	r.nextID++

	r.reminders[created.ID] = created
	return copyReminder(created), nil
}

func (r *reminderRepository) List(ctx context.Context, includeDone bool) ([]*model.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reminders := make([]*model.Reminder, 0, len(r.reminders))
	for _, rm := range r.reminders {
		if !includeDone && rm.Done {
			continue
		}
		reminders = append(reminders, copyReminder(rm))
	}
	sort.Slice(reminders, func(i, j int) bool { return reminders[i].ID < reminders[j].ID })

	return reminders, nil
}
