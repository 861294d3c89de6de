package model

import "time"

type Medication struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Schedule  string    `json:"schedule"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
