package consumption_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/scorte-pro/internal/application/consumption"
	"github.com/tu-usuario/scorte-pro/internal/domain"
	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
	"github.com/tu-usuario/scorte-pro/internal/domain/repository"
	"github.com/tu-usuario/scorte-pro/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newMemoryFixture(t *testing.T, quantity int) (*consumption.UseCase, *memory.Store, string) {
	t.Helper()
	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	product := &entity.Product{
		ID:          "p-1",
		Name:        "Caffè",
		Quantity:    quantity,
		MinQuantity: 2,
		Unit:        "pz",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, productRepo.Create(context.Background(), product))
	return consumption.NewUseCase(memory.NewTxRunner(store)), store, product.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos básicos
// ──────────────────────────────────────────────────────────────────────────────

func TestConsume_DecrementaYRegistra(t *testing.T) {
	uc, store, productID := newMemoryFixture(t, 5)
	ctx := context.Background()

	out, err := uc.Consume(ctx, "", productID, 1)
	require.NoError(t, err)

	assert.Equal(t, 4, out.Product.Quantity, "el producto retornado ya viene decrementado")
	assert.Equal(t, productID, out.Usage.ProductID)
	assert.Equal(t, "Caffè", out.Usage.ProductName, "el registro lleva snapshot del nombre")
	assert.Equal(t, 1, out.Usage.QuantityUsed)
	assert.NotEmpty(t, out.Usage.ID)

	// Estado persistido coherente con la respuesta
	p, err := memory.NewProductRepository(store).GetByID(ctx, productID, "")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Quantity)

	records, err := memory.NewUsageRepository(store).QueryByRange(ctx, "", nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestConsume_ProductoInexistente_ErrNotFound(t *testing.T) {
	uc, _, _ := newMemoryFixture(t, 5)

	_, err := uc.Consume(context.Background(), "", "no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConsume_CantidadInvalida_ErrInvalidInput(t *testing.T) {
	uc, _, productID := newMemoryFixture(t, 5)

	for _, amount := range []int{0, -1} {
		_, err := uc.Consume(context.Background(), "", productID, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestConsume_StockInsuficiente_SinMutacion(t *testing.T) {
	uc, store, productID := newMemoryFixture(t, 0)
	ctx := context.Background()

	_, err := uc.Consume(ctx, "", productID, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Ni decremento ni registro de consumo
	p, err := memory.NewProductRepository(store).GetByID(ctx, productID, "")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity)

	records, err := memory.NewUsageRepository(store).QueryByRange(ctx, "", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestConsume_AgotaStockExacto(t *testing.T) {
	uc, _, productID := newMemoryFixture(t, 1)

	out, err := uc.Consume(context.Background(), "", productID, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Product.Quantity)

	_, err = uc.Consume(context.Background(), "", productID, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: q consumos concurrentes sobre stock q no pueden perder updates
// ──────────────────────────────────────────────────────────────────────────────

func TestConsume_Concurrente_SinPerdidaDeUpdates(t *testing.T) {
	const stock = 20
	uc, store, productID := newMemoryFixture(t, stock)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < stock; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Consume(ctx, "", productID, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p, err := memory.NewProductRepository(store).GetByID(ctx, productID, "")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity, "cada consumo debe observar la cantidad ya decrementada por los anteriores")

	records, err := memory.NewUsageRepository(store).QueryByRange(ctx, "", nil, nil)
	require.NoError(t, err)
	assert.Len(t, records, stock)

	// Un consumo más ya no cabe
	_, err = uc.Consume(ctx, "", productID, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad frente a fallo del registro: el decremento no debe confirmarse
// ──────────────────────────────────────────────────────────────────────────────

var errAppendFailed = errors.New("append failed")

type failingUsageRepo struct {
	repository.UsageRepository
}

func (r *failingUsageRepo) Append(ctx context.Context, record *entity.UsageRecord) error {
	return errAppendFailed
}

// failingTxRunner reusa el runner en memoria pero sustituye el repo de
// consumos por uno que falla, para provocar el rollback.
type failingTxRunner struct {
	inner repository.TxRunner
}

func (r *failingTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	usageRepo repository.UsageRepository,
) error) error {
	return r.inner.Run(ctx, func(
		productRepo repository.ProductRepository,
		usageRepo repository.UsageRepository,
	) error {
		return fn(productRepo, &failingUsageRepo{UsageRepository: usageRepo})
	})
}

func TestConsume_FallaRegistro_RevierteDecremento(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	productRepo := memory.NewProductRepository(store)
	require.NoError(t, productRepo.Create(ctx, &entity.Product{
		ID: "p-1", Name: "Caffè", Quantity: 5, Unit: "pz", CreatedAt: time.Now(),
	}))

	uc := consumption.NewUseCase(&failingTxRunner{inner: memory.NewTxRunner(store)})

	_, err := uc.Consume(ctx, "", "p-1", 1)
	assert.ErrorIs(t, err, errAppendFailed)

	p, err := productRepo.GetByID(ctx, "p-1", "")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Quantity, "el rollback debe revertir el decremento de stock")
}
