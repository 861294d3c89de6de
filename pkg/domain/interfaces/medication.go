package interfaces

import (
	"context"

	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

// MedicationRepository manages the medication list
type MedicationRepository interface {
	Create(ctx context.Context, medication *model.Medication) (*model.Medication, error)
	List(ctx context.Context) ([]*model.Medication, error)
}
