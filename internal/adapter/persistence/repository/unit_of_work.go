package repository

import (
	"context"

	"gorm.io/gorm"

	"fluxo_propostas/internal/usecase/interfaces"
)

type txKey struct{}

// GormUnitOfWork implements interfaces.IUnitOfWork on top of gorm transactions.
//
// The *gorm.DB of the open transaction is stored in the context; every repository
// of this package resolves its connection through conn(ctx) and joins it.
type GormUnitOfWork struct {
	db *gorm.DB
}

var _ interfaces.IUnitOfWork = (*GormUnitOfWork)(nil)

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the ambient transaction when present, else db bound to ctx.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// Migrate creates or updates every table and index used by the repositories.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(allModels()...)
}
