package models

import "time"

// AuditFields holds the row timestamps shared by most tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
