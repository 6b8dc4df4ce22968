package migration

import (
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// Composite indexes serving the history query: transactions where the
	// user is sender or receiver, newest first
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_sender_created
		ON transactions (sender_id, created_at DESC)
		WHERE sender_id IS NOT NULL
	`).Error; err != nil {
		m.logger.Error("Failed to create sender_created composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_receiver_created
		ON transactions (receiver_id, created_at DESC)
		WHERE receiver_id IS NOT NULL
	`).Error; err != nil {
		m.logger.Error("Failed to create receiver_created composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Partial index for the reconciler's lookup of unresolved external rows
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_pending_external
		ON transactions (external_ref)
		WHERE status = 'pending' AND external_ref IS NOT NULL
	`).Error; err != nil {
		m.logger.Error("Failed to create pending external partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN index for created_at, efficient for append-only temporal data
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
		ON transactions USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Unprocessed settlement events by external ref for reconciliation sweeps
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_settlement_events_unprocessed
		ON settlement_events (external_ref)
		WHERE processed = false
	`).Error; err != nil {
		m.logger.Error("Failed to create unprocessed settlement events index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Reduce page splits on the hot append-only table
	if err := m.db.Exec(`
		ALTER TABLE transactions SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.Exec(`
		ALTER TABLE transactions ALTER COLUMN sender_id SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for sender_id", map[string]any{
			"error": err.Error(),
		})
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
