package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID             uint64    `gorm:"primaryKey"`
	BalanceCents   int64     `gorm:"not null"` // Balance in cents, never negative
	CanGiveTips    bool      `gorm:"not null;default:true"`
	CanReceiveTips bool      `gorm:"not null;default:true"`
	CustomerRef    *string   `gorm:"size:255"`
	PayoutRef      *string   `gorm:"size:255"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
