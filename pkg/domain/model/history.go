package model

import "time"

// HistoryRecord is one append-only entry of the invocation log. Entities
// holds the extracted slot map serialized as JSON; ProcessID correlates
// the record with the request logs.
type HistoryRecord struct {
	ID        int64     `json:"id"`
	ProcessID string    `json:"process_id"`
	Utterance string    `json:"utterance"`
	Intent    string    `json:"intent"`
	Entities  string    `json:"entities"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
