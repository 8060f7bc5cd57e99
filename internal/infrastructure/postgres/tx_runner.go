package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Boutique-api/internal/application/stock"
	"github.com/jhoicas/Boutique-api/internal/application/usecase"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner and usecase.ClientTxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ usecase.ClientTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con un repositorio de artículos
// atado a la tx y hace Commit o Rollback. Para operaciones unitarias como el
// set absoluto de cantidad.
func (r *TxRunner) Run(ctx context.Context, fn func(articles repository.ArticleRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewArticleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBatch inicia la transacción externa del conciliador de stock y le pasa
// a fn una BatchTx con savepoints por ítem. Los ítems fallidos no revierten
// la transacción, solo un error devuelto por fn.
func (r *TxRunner) RunBatch(ctx context.Context, fn func(tx stock.BatchTx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&batchTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// batchTx implementa stock.BatchTx sobre una transacción pgx abierta.
type batchTx struct {
	tx pgx.Tx
}

// Step ejecuta fn dentro de un savepoint (Begin anidado de pgx). Un error
// SQL de un ítem abortaría la transacción externa (25P02); el rollback del
// savepoint la deja usable para los ítems siguientes, y el commit del
// savepoint (RELEASE) confirma el ítem dentro de la transacción.
func (b *batchTx) Step(ctx context.Context, fn func(articles repository.ArticleRepository) error) error {
	sp, err := b.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}
	if err := fn(NewArticleRepository(sp)); err != nil {
		_ = sp.Rollback(ctx)
		return err
	}
	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}

// RunClient inicia una transacción con repos de clientes y usuarios
// (para crear cliente + cuenta asociada de forma atómica).
func (r *TxRunner) RunClient(ctx context.Context, fn func(
	clients repository.ClientRepository,
	users repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewClientRepository(tx), NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
