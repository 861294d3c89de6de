package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

type medicationRepository struct {
	mu          sync.RWMutex
	medications map[int64]*model.Medication
	nextID      int64
}

func newMedicationRepository() *medicationRepository {
	return &medicationRepository{
		medications: make(map[int64]*model.Medication),
		nextID:      1,
	}
}

func copyMedication(m *model.Medication) *model.Medication {
	copied := *m
	return &copied
}

func (r *medicationRepository) Create(ctx context.Context, medication *model.Medication) (*model.Medication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyMedication(medication)
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	r.nextID++

	r.medications[created.ID] = created
	return copyMedication(created), nil
}

func (r *medicationRepository) List(ctx context.Context) ([]*model.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	medications := make([]*model.Medication, 0, len(r.medications))
	for _, m := range r.medications {
		medications = append(medications, copyMedication(m))
	}
	sort.Slice(medications, func(i, j int) bool { return medications[i].ID < medications[j].ID })

	return medications, nil
}
