package interfaces

import (
	"context"

	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

// MessageRepository manages sent and received messages
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) (*model.Message, error)

	// List returns messages newest first, up to limit. A contactID of 0
	// means no contact filter.
	List(ctx context.Context, contactID int64, limit int) ([]*model.Message, error)
}
