package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents the database model for ledger log rows. Rows are
// append-only: after insert only status and processed_at ever change.
type Transaction struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Kind        string    `gorm:"not null;size:50;index"`
	AmountCents int64     `gorm:"not null"`
	SenderID    *uint64   `gorm:"index"`
	ReceiverID  *uint64   `gorm:"index"`
	Status      string    `gorm:"not null;size:50"`
	Description *string   `gorm:"type:text"`
	ExternalRef *string   `gorm:"uniqueIndex;size:255"`
	CreatedAt   time.Time `gorm:"not null;index"`
	ProcessedAt *time.Time
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
