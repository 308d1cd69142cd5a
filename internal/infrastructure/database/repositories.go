package database

import (
	"github.com/wekeepgrowing/merchant-gateway/internal/adapter/repository"
	domainRepo "github.com/wekeepgrowing/merchant-gateway/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *domainRepo.Repositories {
	return &domainRepo.Repositories{
		Merchant:    repository.NewMerchantRepository(db, logger),
		APIKey:      repository.NewAPIKeyRepository(db, logger),
		Payment:     repository.NewPaymentRepository(db, logger),
		Transaction: repository.NewTransactionRepository(db, logger),
		Transactor:  repository.NewTransactor(db),
	}
}
