package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/waqt-lab/sawtak/pkg/repository/memory"
	"github.com/waqt-lab/sawtak/pkg/usecase"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	gt.NoError(t, uc.Seed(ctx)).Required()

	contacts, err := repo.Contact().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, contacts).Length(5)
	gt.Value(t, contacts[0].Name).Equal("Mohamed")
	gt.Bool(t, contacts[0].Emergency).True()

	emergency, err := repo.Contact().ListEmergency(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, emergency).Length(3)

	medications, err := repo.Medication().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, medications).Length(3)

	reminders, err := repo.Reminder().List(ctx, false)
	gt.NoError(t, err).Required()
	gt.Array(t, reminders).Length(3)

	messages, err := repo.Message().List(ctx, 0, 0)
	gt.NoError(t, err).Required()
	gt.Array(t, messages).Length(3)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	gt.NoError(t, uc.Seed(ctx)).Required()
	gt.NoError(t, uc.Seed(ctx)).Required()

	contacts, err := repo.Contact().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, contacts).Length(5)
}
