package model

import (
	"time"
)

// SettlementEvent represents the database model for settlement event
// idempotency records. The unique index on EventID is what makes duplicate
// webhook deliveries collide.
type SettlementEvent struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	EventID     string    `gorm:"uniqueIndex;not null;size:255"`
	Kind        string    `gorm:"not null;size:50"`
	ExternalRef string    `gorm:"not null;size:255;index"`
	Processed   bool      `gorm:"not null;default:false"`
	Payload     []byte    `gorm:"type:bytea"`
	CreatedAt   time.Time `gorm:"not null"`
	ProcessedAt *time.Time
}

// TableName specifies the table name for SettlementEvent
func (SettlementEvent) TableName() string {
	return "settlement_events"
}
