package types

// SlotKey identifies a structured piece of information extracted from an
// utterance.
type SlotKey string

const (
	SlotTime          SlotKey = "time"
	SlotDate          SlotKey = "date"
	SlotContact       SlotKey = "contact"
	SlotMedication    SlotKey = "medication"
	SlotMessageBody   SlotKey = "message_content"
	SlotReminderTitle SlotKey = "reminder_title"

	// SlotRawText carries the original utterance through the pipeline for
	// audit and history. It is never used for matching.
	SlotRawText SlotKey = "_raw_text"
)

// String returns the string representation of the slot key
func (s SlotKey) String() string {
	return string(s)
}
