package models

import "time"

// AuditLogEntry represents a single OAuth lifecycle event. Detail carries a
// short human-readable outcome; token material never goes in here.
type AuditLogEntry struct {
	ID        int64
	Timestamp time.Time
	UserID    string
	Platform  string
	Action    string // initiate, callback, refresh, revoke, state_rejected
	Success   bool
	Detail    string
	UserAgent string
	IPAddress string
}
