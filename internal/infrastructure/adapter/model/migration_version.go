package model

import (
	"time"

	"gorm.io/gorm"
)

// MigrationVersion records an applied schema migration so startup can skip
// versions that already ran
type MigrationVersion struct {
	ID        uint           `gorm:"primaryKey;autoIncrement"`
	Version   string         `gorm:"type:varchar(32);not null;index"`
	AppliedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Details   string         `gorm:"type:text;null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName names the ledger's schema version table
func (MigrationVersion) TableName() string {
	return "migration_versions"
}
