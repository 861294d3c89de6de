package interfaces

// Repository defines the interface for the record store backing the
// assistant: contacts, reminders, medications, messages and the action
// history.
type Repository interface {
	Contact() ContactRepository
	Reminder() ReminderRepository
	Medication() MedicationRepository
	Message() MessageRepository
	History() HistoryRepository

	Close() error
}
