package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Boutique-api/internal/application/stock"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/authz"
)

func TestSetQuantity_FijaValorAbsoluto(t *testing.T) {
	repo := newFakeArticleRepo(testArticle(1, 8))
	runner := &fakeTxRunner{repo: repo}
	uc := stock.NewSetQuantityUseCase(runner)

	out, err := uc.Set(context.Background(), authz.RoleBoutiquier, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, int64(8), out.OldQuantity)
	assert.Equal(t, int64(20), out.NewQuantity)

	a, _ := repo.GetByID(1)
	assert.Equal(t, int64(20), a.Stock, "el stock debe quedar en el valor absoluto, no sumado")
}

// Idempotencia: repetir el set con la misma cantidad deja old == new.
func TestSetQuantity_Idempotente(t *testing.T) {
	repo := newFakeArticleRepo(testArticle(1, 8))
	runner := &fakeTxRunner{repo: repo}
	uc := stock.NewSetQuantityUseCase(runner)

	_, err := uc.Set(context.Background(), authz.RoleAdmin, 1, 20)
	require.NoError(t, err)

	out, err := uc.Set(context.Background(), authz.RoleAdmin, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, out.OldQuantity, out.NewQuantity)
	assert.Equal(t, int64(20), out.NewQuantity)
}

func TestSetQuantity_CantidadNegativa(t *testing.T) {
	runner := &fakeTxRunner{repo: newFakeArticleRepo(testArticle(1, 8))}
	uc := stock.NewSetQuantityUseCase(runner)

	out, err := uc.Set(context.Background(), authz.RoleAdmin, 1, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, out)
	assert.Zero(t, runner.runCalls, "la validación debe cortar antes de abrir transacción")
}

func TestSetQuantity_ArticuloInexistente(t *testing.T) {
	runner := &fakeTxRunner{repo: newFakeArticleRepo()}
	uc := stock.NewSetQuantityUseCase(runner)

	out, err := uc.Set(context.Background(), authz.RoleAdmin, 42, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
}

func TestSetQuantity_RolSinPermiso(t *testing.T) {
	runner := &fakeTxRunner{repo: newFakeArticleRepo(testArticle(1, 8))}
	uc := stock.NewSetQuantityUseCase(runner)

	out, err := uc.Set(context.Background(), authz.RoleUnknown, 1, 5)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, out)
}
