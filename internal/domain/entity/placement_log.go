package entity

import "time"

// PlacementLog is one persisted placement diagnostic row, written for every
// preview/stamp computation so mismatches between the on-screen overlay and
// the stamped output can be reconstructed after the fact.
type PlacementLog struct {
	ID         int64     `json:"id"`
	DocumentID string    `json:"document_id"`
	Page       int       `json:"page"`
	Rotation   int       `json:"rotation"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}
