package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

func runContactRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns sequential IDs", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created1, err := repo.Contact().Create(ctx, &model.Contact{
			Name:     "Mohamed",
			Phone:    "+216 20 123 456",
			Relation: "fils",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created1.ID).NotEqual(int64(0))
		gt.Value(t, created1.Name).Equal("Mohamed")
		gt.Bool(t, created1.CreatedAt.IsZero()).False()

		created2, err := repo.Contact().Create(ctx, &model.Contact{Name: "Fatma"})
		gt.NoError(t, err).Required()
		gt.Value(t, created2.ID).NotEqual(created1.ID)
	})

	t.Run("List returns contacts in creation order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"Mohamed", "Fatma", "Amina"} {
			_, err := repo.Contact().Create(ctx, &model.Contact{Name: name})
			gt.NoError(t, err).Required()
		}

		contacts, err := repo.Contact().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, contacts).Length(3)
		gt.Value(t, contacts[0].Name).Equal("Mohamed")
		gt.Value(t, contacts[2].Name).Equal("Amina")
	})

	t.Run("FindByName matches case-insensitive substring", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Contact().Create(ctx, &model.Contact{Name: "Dr. Ben Said", Phone: "71 123 456"})
		gt.NoError(t, err).Required()

		found, err := repo.Contact().FindByName(ctx, "ben said")
		gt.NoError(t, err).Required()
		gt.Value(t, found.Name).Equal("Dr. Ben Said")

		found, err = repo.Contact().FindByName(ctx, "BEN")
		gt.NoError(t, err).Required()
		gt.Value(t, found.Name).Equal("Dr. Ben Said")
	})

	t.Run("FindByName returns ErrNotFound for unknown name", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Contact().Create(ctx, &model.Contact{Name: "Mohamed"})
		gt.NoError(t, err).Required()

		_, err = repo.Contact().FindByName(ctx, "karim")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("FindByName rejects empty needle", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Contact().Create(ctx, &model.Contact{Name: "Mohamed"})
		gt.NoError(t, err).Required()

		_, err = repo.Contact().FindByName(ctx, "  ")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("ListEmergency filters on the emergency flag", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Contact().Create(ctx, &model.Contact{Name: "Mohamed", Emergency: true})
		gt.NoError(t, err).Required()
		_, err = repo.Contact().Create(ctx, &model.Contact{Name: "Amina"})
		gt.NoError(t, err).Required()
		_, err = repo.Contact().Create(ctx, &model.Contact{Name: "SAMU", Phone: "190", Emergency: true})
		gt.NoError(t, err).Required()

		emergency, err := repo.Contact().ListEmergency(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, emergency).Length(2)
		gt.Value(t, emergency[0].Name).Equal("Mohamed")
		gt.Value(t, emergency[1].Name).Equal("SAMU")
	})
}

func TestContactRepository(t *testing.T) {
	runRepositoryTest(t, "contact", runContactRepositoryTest)
}
