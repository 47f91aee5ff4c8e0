package model

import "time"

// LogEntry is one row of the append-only audit log. Username is a soft
// reference: entries survive deletion of the user they name.
type LogEntry struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
