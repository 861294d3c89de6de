package interfaces

import (
	"context"

	"github.com/waqt-lab/sawtak/pkg/domain/model"
)

// ContactRepository manages the user's contacts
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	List(ctx context.Context) ([]*model.Contact, error)

	// FindByName returns the first contact whose name contains the given
	// substring, case-insensitive. Returns a not-found error when no
	// contact matches.
	FindByName(ctx context.Context, name string) (*model.Contact, error)

	// ListEmergency returns all contacts flagged as emergency contacts.
	ListEmergency(ctx context.Context) ([]*model.Contact, error)
}
