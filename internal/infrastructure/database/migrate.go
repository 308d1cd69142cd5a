package database

import (
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	// Auto-migrate all models
	logger.Info("Running GORM auto-migrations...")
	err := db.AutoMigrate(
		&model.Merchant{},
		&model.APIKey{},
		&model.Payment{},
		&model.Transaction{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}
	logger.Info("GORM auto-migrations completed successfully")

	if db.Dialector.Name() == DriverPostgres {
		logger.Info("Creating append-only guard for transactions...")
		if err := createAppendOnlyGuard(db); err != nil {
			logger.Error("Failed to create append-only guard", zap.Error(err))
			return err
		}
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createAppendOnlyGuard rejects UPDATE and DELETE on the audit trail
func createAppendOnlyGuard(db *gorm.DB) error {
	functionSQL := `
CREATE OR REPLACE FUNCTION reject_transaction_mutation() RETURNS TRIGGER AS $$
BEGIN
    RAISE EXCEPTION 'transactions are append-only (% rejected)', TG_OP;
END;
$$ LANGUAGE plpgsql;`

	if err := db.Exec(functionSQL).Error; err != nil {
		return err
	}

	if err := db.Exec(`DROP TRIGGER IF EXISTS transactions_append_only ON transactions`).Error; err != nil {
		return err
	}

	return db.Exec(`
CREATE TRIGGER transactions_append_only
    BEFORE UPDATE OR DELETE ON transactions
    FOR EACH ROW EXECUTE FUNCTION reject_transaction_mutation();`).Error
}
