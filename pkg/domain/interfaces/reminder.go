package interfaces

import (
	"context"

	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

// ReminderRepository manages reminders and alarms
type ReminderRepository interface {
	Create(ctx context.Context, reminder *model.Reminder) (*model.Reminder, error)

	// List returns reminders ordered by creation. When includeDone is
	// false, completed reminders are filtered out.
	List(ctx context.Context, includeDone bool) ([]*model.Reminder, error)
}
