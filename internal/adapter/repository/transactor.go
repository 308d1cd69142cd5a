package repository

import (
	"context"

	domainRepo "github.com/wekeepgrowing/merchant-gateway/internal/domain/repository"
	"gorm.io/gorm"
)

type txKey struct{}

type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a transactor that carries the gorm transaction in the context
func NewTransactor(db *gorm.DB) domainRepo.Transactor {
	return &gormTransactor{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the active transaction from ctx, or db bound to ctx
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
