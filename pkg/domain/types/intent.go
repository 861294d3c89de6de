package types

import "fmt"

// Intent represents a supported user goal detected from an utterance
type Intent string

const (
	IntentCreateReminder Intent = "create_reminder"
	IntentCallContact    Intent = "call_contact"
	IntentGetWeather     Intent = "get_weather"
	IntentGetTime        Intent = "get_time"
	IntentAddMedication  Intent = "add_medication"
	IntentReadMessages   Intent = "read_messages"
	IntentSendMessage    Intent = "send_message"
	IntentSetAlarm       Intent = "set_alarm"
	IntentCheckAgenda    Intent = "check_agenda"
	IntentEmergencyAlert Intent = "emergency_alert"
	IntentUnknown        Intent = "unknown"
)

// AllIntents returns all valid intents in classification order.
// The order matters: exact score ties resolve to the first-listed intent.
func AllIntents() []Intent {
	return []Intent{
		IntentCreateReminder,
		IntentCallContact,
		IntentGetWeather,
		IntentGetTime,
		IntentAddMedication,
		IntentReadMessages,
		IntentSendMessage,
		IntentSetAlarm,
		IntentCheckAgenda,
		IntentEmergencyAlert,
		IntentUnknown,
	}
}

// IsValid checks if the intent is valid
func (i Intent) IsValid() bool {
	switch i {
	case IntentCreateReminder,
		IntentCallContact,
		IntentGetWeather,
		IntentGetTime,
		IntentAddMedication,
		IntentReadMessages,
		IntentSendMessage,
		IntentSetAlarm,
		IntentCheckAgenda,
		IntentEmergencyAlert,
		IntentUnknown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the intent
func (i Intent) String() string {
	return string(i)
}

// ParseIntent parses a string into an Intent
func ParseIntent(s string) (Intent, error) {
	intent := Intent(s)
	if !intent.IsValid() {
		return "", fmt.Errorf("invalid intent: %s", s)
	}
	return intent, nil
}
