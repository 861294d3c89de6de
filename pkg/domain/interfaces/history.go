package interfaces

import (
	"context"

	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

// HistoryRepository is the append-only log of pipeline invocations
type HistoryRepository interface {
	Append(ctx context.Context, record *model.HistoryRecord) (*model.HistoryRecord, error)

	// List returns history records newest first, up to limit.
	List(ctx context.Context, limit int) ([]*model.HistoryRecord, error)
}
