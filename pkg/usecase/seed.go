package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/model"
	"github.com/waqt-lab/sawtak/pkg/domain/types"
	"github.com/waqt-lab/sawtak/pkg/utils/logging"
)

// Seed loads the demo dataset. It is idempotent: a store that already
// has contacts is left untouched.
func (uc *UseCases) Seed(ctx context.Context) error {
	existing, err := uc.repo.Contact().List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to check existing contacts")
	}
	if len(existing) > 0 {
		logging.From(ctx).Info("Store already has contacts, skipping seed")
		return nil
	}

	contacts := []*model.Contact{
		{Name: "Mohamed", Phone: "+216 20 123 456", Relation: "fils", Emergency: true},
		{Name: "Fatma", Phone: "+216 25 789 012", Relation: "fille", Emergency: true},
		{Name: "Dr. Ben Said", Phone: "+216 71 234 567", Relation: "médecin"},
		{Name: "Amina", Phone: "+216 22 345 678", Relation: "voisine"},
		{Name: "SAMU", Phone: "190", Relation: "urgence", Emergency: true},
	}
	created := make([]*model.Contact, 0, len(contacts))
	for _, c := range contacts {
		saved, err := uc.repo.Contact().Create(ctx, c)
		if err != nil {
			return goerr.Wrap(err, "failed to seed contact", goerr.V("name", c.Name))
		}
		created = append(created, saved)
	}

	medications := []*model.Medication{
		{Name: "Doliprane", Dosage: "500mg", Schedule: "08:00, 20:00", Notes: "Après le repas"},
		{Name: "Amlodipine", Dosage: "5mg", Schedule: "08:00", Notes: "Pour la tension"},
		{Name: "Metformine", Dosage: "850mg", Schedule: "08:00, 13:00, 20:00", Notes: "Pour le diabète"},
	}
	for _, m := range medications {
		if _, err := uc.repo.Medication().Create(ctx, m); err != nil {
			return goerr.Wrap(err, "failed to seed medication", goerr.V("name", m.Name))
		}
	}

	reminders := []*model.Reminder{
		{Title: "Prendre Doliprane", Time: "08:00", Kind: types.ReminderMedical},
		{Title: "Rendez-vous Dr. Ben Said", Time: "10:00", Kind: types.ReminderMedical},
		{Title: "Appeler Mohamed", Time: "18:00", Kind: types.ReminderGeneral},
	}
	for _, r := range reminders {
		if _, err := uc.repo.Reminder().Create(ctx, r); err != nil {
			return goerr.Wrap(err, "failed to seed reminder", goerr.V("title", r.Title))
		}
	}

	messages := []*model.Message{
		{ContactID: created[0].ID, Content: "Bonjour papa, comment tu vas aujourd'hui?", Direction: types.MessageReceived},
		{ContactID: created[1].ID, Content: "Maman, n'oublie pas ton médicament ce soir", Direction: types.MessageReceived},
		{ContactID: created[0].ID, Content: "Je vais bien, merci mon fils", Direction: types.MessageSent},
	}
	for _, msg := range messages {
		if _, err := uc.repo.Message().Create(ctx, msg); err != nil {
			return goerr.Wrap(err, "failed to seed message", goerr.V("contactID", msg.ContactID))
		}
	}

	logging.From(ctx).Info("Seeded demo data",
		"contacts", len(contacts),
		"medications", len(medications),
		"reminders", len(reminders),
		"messages", len(messages),
	)

	return nil
}
