package domain

import "time"

// AuditFields records who created and last touched an entity. The By fields
// carry user ids; for self-registered users they point back at the new user
// itself.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
