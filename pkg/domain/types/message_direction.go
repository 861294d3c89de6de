package types

import "fmt"

// MessageDirection represents whether a message was sent or received
type MessageDirection string

const (
	MessageSent     MessageDirection = "sent"
	MessageReceived MessageDirection = "received"
)

// IsValid checks if the message direction is valid
func (d MessageDirection) IsValid() bool {
	switch d {
	case MessageSent, MessageReceived:
		return true
	default:
		return false
	}
}

// Normalize returns the direction, treating empty as MessageReceived.
func (d MessageDirection) Normalize() MessageDirection {
	if d == "" {
		return MessageReceived
	}
	return d
}

// String returns the string representation of the message direction
func (d MessageDirection) String() string {
	return string(d)
}

// ParseMessageDirection parses a string into a MessageDirection
func ParseMessageDirection(s string) (MessageDirection, error) {
	d := MessageDirection(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid message direction: %s", s)
	}
	return d, nil
}
