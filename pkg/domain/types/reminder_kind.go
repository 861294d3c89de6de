package types

import "fmt"

// ReminderKind represents the category of a reminder
type ReminderKind string

const (
	ReminderGeneral ReminderKind = "general"
	ReminderMedical ReminderKind = "medical"
	ReminderAlarm   ReminderKind = "alarm"
)

// IsValid checks if the reminder kind is valid
func (k ReminderKind) IsValid() bool {
	switch k {
	case ReminderGeneral, ReminderMedical, ReminderAlarm:
		return true
	default:
		return false
	}
}

// Normalize returns the kind, treating empty as ReminderGeneral.
func (k ReminderKind) Normalize() ReminderKind {
	if k == "" {
		return ReminderGeneral
	}
	return k
}

// String returns the string representation of the reminder kind
func (k ReminderKind) String() string {
	return string(k)
}

// ParseReminderKind parses a string into a ReminderKind
func ParseReminderKind(s string) (ReminderKind, error) {
	k := ReminderKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid reminder kind: %s", s)
	}
	return k, nil
}
