package models

import "time"

// ActivityLog records mutating API operations. Written asynchronously by the
// audit dispatcher; a dropped entry never fails the request that caused it.
type ActivityLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action   string `gorm:"size:50;not null" json:"action"`
	Entity   string `gorm:"size:50" json:"entity"`
	EntityID *uint  `json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
