package model

import (
	"time"

	"github.com/waqt-lab/sawtak/pkg/domain/types"
)

// Reminder is a scheduled announcement. Time is a wall-clock "HH:MM"
// string, not an absolute timestamp.
type Reminder struct {
	ID        int64              `json:"id"`
	Title     string             `json:"title"`
	Time      string             `json:"time"`
	Kind      types.ReminderKind `json:"kind"`
	Done      bool               `json:"done"`
	CreatedAt time.Time          `json:"created_at"`
}
