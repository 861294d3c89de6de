package model

import "time"

type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Relation  string    `json:"relation"`
	Emergency bool      `json:"emergency"`
	CreatedAt time.Time `json:"created_at"`
}
