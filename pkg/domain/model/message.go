package model

import (
	"time"

	"github.com/waqt-lab/sawtak/pkg/domain/types"
)

// Message is one entry of the conversation log with a contact. ContactID
// is zero when the sender is not in the contact list.
type Message struct {
	ID        int64                  `json:"id"`
	ContactID int64                  `json:"contact_id"`
	Content   string                 `json:"content"`
	Direction types.MessageDirection `json:"direction"`
	CreatedAt time.Time              `json:"created_at"`
}
