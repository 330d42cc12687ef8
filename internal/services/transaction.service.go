package services

import (
	"context"
	"crm/internal/database"
	"crm/internal/logger"

	"gorm.io/gorm"
)

type txContextKey struct{}

// GetTransaction returns the transaction stored in the context by
// TransactionService.Execute, if any. Repositories call this so that
// operations composed into one transaction share it transparently.
func GetTransaction(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txContextKey{}).(*gorm.DB)
	return tx, ok
}

type TransactionService struct {
	db  database.DB
	log logger.Logger
}

func NewTransactionService(db database.DB) *TransactionService {
	return &TransactionService{
		db:  db,
		log: logger.New("TransactionService"),
	}
}

// Execute runs fn inside a database transaction. The transaction is placed
// in the context handed to fn; any error from fn rolls everything back.
// Nested Execute calls reuse the outer transaction.
func (s *TransactionService) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	log := s.log.Function("Execute")

	if _, ok := GetTransaction(ctx); ok {
		return fn(ctx)
	}

	tx := s.db.SQLWithContext(ctx).Begin()
	if tx.Error != nil {
		return log.Err("failed to begin transaction", tx.Error)
	}

	txCtx := context.WithValue(ctx, txContextKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			log.Er("failed to rollback transaction", rbErr)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return log.Err("failed to commit transaction", err)
	}

	return nil
}
