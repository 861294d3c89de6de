package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

func runMedicationRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and List round-trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Medication().Create(ctx, &model.Medication{
			Name:     "Doliprane",
			Dosage:   "500mg",
			Schedule: "08:00",
			Notes:    "avec le petit déjeuner",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).NotEqual(int64(0))

		_, err = repo.Medication().Create(ctx, &model.Medication{Name: "Amlodipine"})
		gt.NoError(t, err).Required()

		medications, err := repo.Medication().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, medications).Length(2)
		gt.Value(t, medications[0].Name).Equal("Doliprane")
		gt.Value(t, medications[0].Notes).Equal("avec le petit déjeuner")
		gt.Value(t, medications[1].Name).Equal("Amlodipine")
	})
}

func TestMedicationRepository(t *testing.T) {
	runRepositoryTest(t, "medication", runMedicationRepositoryTest)
}
