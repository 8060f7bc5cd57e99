package stock

import (
	"context"

	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// BatchTx expone los pasos por ítem de una transacción de batch. Cada Step
// corre dentro de un savepoint de la transacción externa: si fn devuelve
// error se revierte solo lo escrito por ese ítem y la transacción sigue
// usable para los siguientes. En PostgreSQL un error SQL dentro de una
// transacción la deja abortada (25P02); el savepoint es lo que permite
// registrar el fallo por ítem y seguir con el resto del batch.
type BatchTx interface {
	Step(ctx context.Context, fn func(articles repository.ArticleRepository) error) error
}

// TxRunner ejecuta funciones dentro de una transacción de BD.
type TxRunner interface {
	// Run ejecuta fn con un repositorio de artículos atado a la tx.
	// Commit si fn retorna nil, Rollback si no. Para operaciones unitarias.
	Run(ctx context.Context, fn func(articles repository.ArticleRepository) error) error

	// RunBatch ejecuta fn con una BatchTx para procesar ítems con
	// aislamiento individual. La transacción externa hace Commit aunque
	// algunos Step hayan fallado; solo un error devuelto por fn la revierte.
	RunBatch(ctx context.Context, fn func(tx BatchTx) error) error
}
