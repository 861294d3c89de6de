package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
	"github.com/waqt-lab/sawtak/pkg/domain/types"
)

func runReminderRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create normalizes an empty kind to general", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Reminder().Create(ctx, &model.Reminder{
			Title: "prendre mon médicament",
			Time:  "08:00",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).NotEqual(int64(0))
		gt.Value(t, created.Kind).Equal(types.ReminderGeneral)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("Create keeps an explicit kind", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Reminder().Create(ctx, &model.Reminder{
			Title: "réveil",
			Time:  "07:00",
			Kind:  types.ReminderAlarm,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.Kind).Equal(types.ReminderAlarm)
	})

	t.Run("List filters completed reminders unless asked", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Reminder().Create(ctx, &model.Reminder{Title: "acheter du pain"})
		gt.NoError(t, err).Required()
		_, err = repo.Reminder().Create(ctx, &model.Reminder{Title: "appeler fatma", Done: true})
		gt.NoError(t, err).Required()

		pending, err := repo.Reminder().List(ctx, false)
		gt.NoError(t, err).Required()
		gt.Array(t, pending).Length(1)
		gt.Value(t, pending[0].Title).Equal("acheter du pain")

		all, err := repo.Reminder().List(ctx, true)
		gt.NoError(t, err).Required()
		gt.Array(t, all).Length(2)
	})
}

func TestReminderRepository(t *testing.T) {
	runRepositoryTest(t, "reminder", runReminderRepositoryTest)
}
