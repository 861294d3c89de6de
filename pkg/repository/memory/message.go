package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

type messageRepository struct {
	mu       sync.RWMutex
	messages map[int64]*model.Message
	nextID   int64
}

func newMessageRepository() *messageRepository {
	return &messageRepository{
		messages: make(map[int64]*model.Message),
		nextID:   1,
	}
}

func copyMessage(m *model.Message) *model.Message {
	copied := *m
	return &copied
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyMessage(message)
	created.ID = r.nextID
	created.Direction = created.Direction.Normalize()
	created.CreatedAt = time.Now().UTC()
	r.nextID++

	r.messages[created.ID] = created
	return copyMessage(created), nil
}

// List returns messages newest first. A contactID of zero disables the
// contact filter; a limit of zero or less means no limit.
func (r *messageRepository) List(ctx context.Context, contactID int64, limit int) ([]*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]*model.Message, 0, len(r.messages))
	for _, m := range r.messages {
		if contactID != 0 && m.ContactID != contactID {
			continue
		}
		messages = append(messages, copyMessage(m))
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID > messages[j].ID })

	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}

	return messages, nil
}
