package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/application/stock"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/authz"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeArticleRepo repositorio en memoria con inyección de errores por ID.
type fakeArticleRepo struct {
	articles map[int64]*entity.Article
	getErr   map[int64]error // error a devolver en GetByIDForUpdate
	saveErr  map[int64]error // error a devolver en Save
}

func newFakeArticleRepo(articles ...*entity.Article) *fakeArticleRepo {
	r := &fakeArticleRepo{
		articles: make(map[int64]*entity.Article),
		getErr:   make(map[int64]error),
		saveErr:  make(map[int64]error),
	}
	for _, a := range articles {
		r.articles[a.ID] = a
	}
	return r
}

func (r *fakeArticleRepo) Create(a *entity.Article) error {
	a.ID = int64(len(r.articles) + 1)
	r.articles[a.ID] = a
	return nil
}

func (r *fakeArticleRepo) GetByID(id int64) (*entity.Article, error) {
	return r.GetByIDForUpdate(id)
}

func (r *fakeArticleRepo) GetByIDForUpdate(id int64) (*entity.Article, error) {
	if err := r.getErr[id]; err != nil {
		return nil, err
	}
	a, ok := r.articles[id]
	if !ok || a.DeletedAt != nil {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

// Save escribe primero y después reporta el error inyectado, emulando un
// UPDATE que muta la fila antes de que la constraint lo rechace: solo el
// rollback del savepoint del ítem debe deshacer esa escritura.
func (r *fakeArticleRepo) Save(a *entity.Article) error {
	if _, ok := r.articles[a.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *a
	r.articles[a.ID] = &copia
	if err := r.saveErr[a.ID]; err != nil {
		return err
	}
	return nil
}

func (r *fakeArticleRepo) ListByAvailability(available bool) ([]*entity.Article, error) {
	var list []*entity.Article
	for _, a := range r.articles {
		if a.DeletedAt != nil {
			continue
		}
		if (available && a.Stock > 0) || (!available && a.Stock == 0) {
			list = append(list, a)
		}
	}
	return list, nil
}

func (r *fakeArticleRepo) SoftDelete(id int64) error {
	a, ok := r.articles[id]
	if !ok || a.DeletedAt != nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	a.DeletedAt = &now
	return nil
}

func (r *fakeArticleRepo) Restore(id int64) error {
	a, ok := r.articles[id]
	if !ok || a.DeletedAt == nil {
		return domain.ErrNotFound
	}
	a.DeletedAt = nil
	return nil
}

func (r *fakeArticleRepo) ForceDelete(id int64) error {
	if _, ok := r.articles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.articles, id)
	return nil
}

// fakeTxRunner ejecuta los callbacks directamente contra el repo en memoria.
// Si fn devuelve error lo propaga, igual que el rollback real.
type fakeTxRunner struct {
	repo     *fakeArticleRepo
	runCalls int
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(articles repository.ArticleRepository) error) error {
	r.runCalls++
	return fn(r.repo)
}

func (r *fakeTxRunner) RunBatch(ctx context.Context, fn func(tx stock.BatchTx) error) error {
	r.runCalls++
	return fn(&fakeBatchTx{repo: r.repo})
}

// fakeBatchTx emula el savepoint por ítem: toma una instantánea del estado
// antes de cada Step y la restaura si fn falla.
type fakeBatchTx struct {
	repo *fakeArticleRepo
}

func (b *fakeBatchTx) Step(ctx context.Context, fn func(articles repository.ArticleRepository) error) error {
	snapshot := make(map[int64]*entity.Article, len(b.repo.articles))
	for id, a := range b.repo.articles {
		copia := *a
		snapshot[id] = &copia
	}
	if err := fn(b.repo); err != nil {
		b.repo.articles = snapshot
		return err
	}
	return nil
}

func testArticle(id, stockQty int64) *entity.Article {
	return &entity.Article{
		ID:    id,
		Label: "artículo de prueba",
		Price: decimal.NewFromInt(1000),
		Stock: stockQty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconcile
// ──────────────────────────────────────────────────────────────────────────────

// Batch mixto: un éxito, un ID inexistente y una cantidad negativa. El éxito
// se aplica y los dos fallos quedan registrados sin revertir nada.
func TestReconcile_BatchMixto(t *testing.T) {
	repo := newFakeArticleRepo(testArticle(1, 10), testArticle(2, 3))
	runner := &fakeTxRunner{repo: repo}
	uc := stock.NewReconcileUseCase(runner)

	updates := []dto.StockDelta{
		{ID: 1, Quantity: 5},
		{ID: 999, Quantity: 3},
		{ID: 2, Quantity: -1},
	}
	report, err := uc.Reconcile(context.Background(), authz.RoleBoutiquier, updates)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, dto.StatusEchec, report.Status, "con fallos el estado global es ECHEC")
	require.Len(t, report.SuccessfulUpdates, 1)
	require.Len(t, report.FailedUpdates, 2)
	assert.Equal(t, len(updates), len(report.SuccessfulUpdates)+len(report.FailedUpdates),
		"cada instrucción debe aparecer exactamente una vez en el reporte")

	ok := report.SuccessfulUpdates[0]
	assert.Equal(t, int64(1), ok.ID)
	assert.Equal(t, int64(10), ok.OldQuantity)
	assert.Equal(t, int64(15), ok.NewQuantity)
	assert.Equal(t, int64(5), ok.AddedQuantity)

	// El orden de entrada se conserva dentro de la lista de fallos.
	assert.Equal(t, int64(999), report.FailedUpdates[0].Article.ID)
	assert.Equal(t, int64(2), report.FailedUpdates[1].Article.ID)
	assert.NotEmpty(t, report.FailedUpdates[0].Error)
	assert.NotEmpty(t, report.FailedUpdates[1].Error)

	// El stock del artículo con delta negativo no se tocó.
	a2, _ := repo.GetByID(2)
	assert.Equal(t, int64(3), a2.Stock)
}

func TestReconcile_TodoExitoso(t *testing.T) {
	repo := newFakeArticleRepo(testArticle(1, 10), testArticle(2, 0))
	runner := &fakeTxRunner{repo: repo}
	uc := stock.NewReconcileUseCase(runner)

	report, err := uc.Reconcile(context.Background(), authz.RoleAdmin, []dto.StockDelta{
		{ID: 1, Quantity: 2},
		{ID: 2, Quantity: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, dto.StatusSuccess, report.Status)
	assert.Len(t, report.SuccessfulUpdates, 2)
	assert.Empty(t, report.FailedUpdates)
}

// Delta cero: no-op válido, cuenta como éxito con old == new.
func TestReconcile_DeltaCeroEsNoOp(t *testing.T) {
	repo := newFakeArticleRepo(testArticle(1, 10))
	runner := &fakeTxRunner{repo: repo}
	uc := stock.NewReconcileUseCase(runner)

	report, err := uc.Reconcile(context.Background(), authz.RoleBoutiquier, []dto.StockDelta{
		{ID: 1, Quantity: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, dto.StatusSuccess, report.Status)
	require.Len(t, report.SuccessfulUpdates, 1)
	assert.Equal(t, int64(10), report.SuccessfulUpdates[0].OldQuantity)
	assert.Equal(t, int64(10), report.SuccessfulUpdates[0].NewQuantity)
	assert.Equal(t, int64(0), report.SuccessfulUpdates[0].AddedQuantity)
}

// Un fallo de persistencia aislable (Save falla para un ID) se registra por
// ítem y los demás continúan.
func TestReconcile_ErrorDeSaveAislado(t *testing.T) {
	repo := newFakeArticleRepo(testArticle(1, 10), testArticle(2, 4))
	repo.saveErr[1] = errors.New("violación de restricción")
	runner := &fakeTxRunner{repo: repo}
	uc := stock.NewReconcileUseCase(runner)

	report, err := uc.Reconcile(context.Background(), authz.RoleBoutiquier, []dto.StockDelta{
		{ID: 1, Quantity: 5},
		{ID: 2, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, dto.StatusEchec, report.Status)
	require.Len(t, report.FailedUpdates, 1)
	assert.Equal(t, int64(1), report.FailedUpdates[0].Article.ID)
	assert.Contains(t, report.FailedUpdates[0].Error, "violación")
	require.Len(t, report.SuccessfulUpdates, 1)
	assert.Equal(t, int64(2), report.SuccessfulUpdates[0].ID)

	// La escritura parcial del ítem fallido se revirtió con su savepoint.
	a1, _ := repo.GetByID(1)
	assert.Equal(t, int64(10), a1.Stock, "el stock del ítem fallido no debe cambiar")
}

// Un error SQL de un ítem no debe envenenar la transacción externa: los
// ítems posteriores se procesan y el batch confirma sus éxitos.
func TestReconcile_FalloDePersistenciaNoContaminaLaTransaccion(t *testing.T) {
	repo := newFakeArticleRepo(testArticle(1, 10), testArticle(2, 4), testArticle(3, 0))
	repo.saveErr[1] = errors.New("violación de restricción")
	runner := &fakeTxRunner{repo: repo}
	uc := stock.NewReconcileUseCase(runner)

	report, err := uc.Reconcile(context.Background(), authz.RoleBoutiquier, []dto.StockDelta{
		{ID: 1, Quantity: 5},
		{ID: 2, Quantity: 1},
		{ID: 3, Quantity: 2},
	})
	require.NoError(t, err, "el fallo de un ítem no debe convertirse en error global")
	require.NotNil(t, report)
	assert.Equal(t, dto.StatusEchec, report.Status)
	require.Len(t, report.FailedUpdates, 1)
	require.Len(t, report.SuccessfulUpdates, 2)

	// Los ítems posteriores al fallo se aplicaron igual.
	a2, _ := repo.GetByID(2)
	a3, _ := repo.GetByID(3)
	assert.Equal(t, int64(5), a2.Stock)
	assert.Equal(t, int64(2), a3.Stock)

	// Y la escritura parcial del ítem fallido quedó revertida.
	a1, _ := repo.GetByID(1)
	assert.Equal(t, int64(10), a1.Stock)
}

// Un error irrecuperable (contexto cancelado) aborta el batch completo:
// no hay reporte parcial, el error sube al llamador.
func TestReconcile_ErrorIrrecuperableAbortaTodo(t *testing.T) {
	repo := newFakeArticleRepo(testArticle(1, 10), testArticle(2, 4))
	repo.getErr[2] = context.Canceled
	runner := &fakeTxRunner{repo: repo}
	uc := stock.NewReconcileUseCase(runner)

	report, err := uc.Reconcile(context.Background(), authz.RoleBoutiquier, []dto.StockDelta{
		{ID: 1, Quantity: 5},
		{ID: 2, Quantity: 1},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report, "con rollback no debe haber reporte parcial")
}

// Rol sin permiso de update: se rechaza antes de abrir transacción.
func TestReconcile_RolSinPermiso(t *testing.T) {
	runner := &fakeTxRunner{repo: newFakeArticleRepo(testArticle(1, 10))}
	uc := stock.NewReconcileUseCase(runner)

	report, err := uc.Reconcile(context.Background(), authz.RoleUnknown, []dto.StockDelta{
		{ID: 1, Quantity: 5},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, report)
	assert.Zero(t, runner.runCalls, "no debe abrirse transacción con rol denegado")
}

func TestReconcile_BatchVacio(t *testing.T) {
	runner := &fakeTxRunner{repo: newFakeArticleRepo()}
	uc := stock.NewReconcileUseCase(runner)

	report, err := uc.Reconcile(context.Background(), authz.RoleAdmin, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, report)
	assert.Zero(t, runner.runCalls)
}
