// Package memory is the in-memory record store used for development and
// tests. All entities live in maps guarded by RWMutexes; every value
// crossing the boundary is copied, so callers can never alias internal
// state.
package memory

import (
	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
)

type Memory struct {
	contact    *contactRepository
	reminder   *reminderRepository
	medication *medicationRepository
	message    *messageRepository
	history    *historyRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		contact:    newContactRepository(),
		reminder:   newReminderRepository(),
		medication: newMedicationRepository(),
		message:    newMessageRepository(),
		history:    newHistoryRepository(),
	}
}

func (m *Memory) Contact() interfaces.ContactRepository {
	return m.contact
}

func (m *Memory) Reminder() interfaces.ReminderRepository {
	return m.reminder
}

func (m *Memory) Medication() interfaces.MedicationRepository {
	return m.medication
}

func (m *Memory) Message() interfaces.MessageRepository {
	return m.message
}

func (m *Memory) History() interfaces.HistoryRepository {
	return m.history
}

func (m *Memory) Close() error {
	return nil
}
