package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

type contactRepository struct {
	mu       sync.RWMutex
	contacts map[int64]*model.Contact
	nextID   int64
}

func newContactRepository() *contactRepository {
	return &contactRepository{
		contacts: make(map[int64]*model.Contact),
		nextID:   1,
	}
}

func copyContact(c *model.Contact) *model.Contact {
	copied := *c
	return &copied
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyContact(contact)
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	r.nextID++

	r.contacts[created.ID] = created
	return copyContact(created), nil
}

func (r *contactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contacts := make([]*model.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		contacts = append(contacts, copyContact(c))
	}
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID < contacts[j].ID })

	return contacts, nil
}

func (r *contactRepository) FindByName(ctx context.Context, name string) (*model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "contact not found", goerr.V("name", name))
	}

	ids := make([]int64, 0, len(r.contacts))
	for id := range r.contacts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		c := r.contacts[id]
		if strings.Contains(strings.ToLower(c.Name), needle) {
			return copyContact(c), nil
		}
	}

	return nil, goerr.Wrap(interfaces.ErrNotFound, "contact not found", goerr.V("name", name))
}

func (r *contactRepository) ListEmergency(ctx context.Context) ([]*model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contacts := make([]*model.Contact, 0)
	for _, c := range r.contacts {
		if c.Emergency {
			contacts = append(contacts, copyContact(c))
		}
	}
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID < contacts[j].ID })

	return contacts, nil
}
