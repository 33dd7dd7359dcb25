package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockops-api/internal/application/auth"
	"github.com/jhoicas/stockops-api/internal/application/inventory"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and auth.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia una transacción, ejecuta fn con la tx y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDocument transacción con repos de documentos (del tipo indicado), bodegas, stock e historial.
func (r *TxRunner) RunDocument(ctx context.Context, kind entity.DocumentKind, fn func(
	docRepo repository.DocumentRepository,
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
	moveRepo repository.MoveHistoryRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(
			NewDocumentRepository(tx, kind),
			NewWarehouseRepository(tx),
			NewStockRepository(tx),
			NewMoveHistoryRepository(tx),
		)
	})
}

// RunAuth transacción con repos de usuarios y códigos de recuperación (reset de contraseña).
func (r *TxRunner) RunAuth(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	resetRepo repository.PasswordResetRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewUserRepository(tx), NewPasswordResetRepository(tx))
	})
}
