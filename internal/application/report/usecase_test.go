package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/scorte-pro/internal/application/consumption"
	"github.com/tu-usuario/scorte-pro/internal/application/report"
	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
	domainreport "github.com/tu-usuario/scorte-pro/internal/domain/report"
	"github.com/tu-usuario/scorte-pro/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store       *memory.Store
	productRepo *memory.ProductRepo
	usageRepo   *memory.UsageRepo
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:       store,
		productRepo: memory.NewProductRepository(store),
		usageRepo:   memory.NewUsageRepository(store),
	}
}

func (f *fixture) addProduct(t *testing.T, id, name string, quantity, minQuantity int) {
	t.Helper()
	require.NoError(t, f.productRepo.Create(context.Background(), &entity.Product{
		ID: id, Name: name, Quantity: quantity, MinQuantity: minQuantity,
		Unit: "pz", CreatedAt: time.Now(),
	}))
}

func (f *fixture) addUsage(t *testing.T, id, productID, name string, used int, at time.Time) {
	t.Helper()
	require.NoError(t, f.usageRepo.Append(context.Background(), &entity.UsageRecord{
		ID: id, ProductID: productID, ProductName: name, QuantityUsed: used, UsedAt: at,
	}))
}

func (f *fixture) usecase(includeUsage bool) *report.UseCase {
	return report.NewUseCase(f.usageRepo, f.productRepo, domainreport.Options{
		IncludeUsageInShortfall: includeUsage,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregación y fórmula
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildReport_AgregaConsumosPorProducto(t *testing.T) {
	f := newFixture()
	now := time.Now()
	f.addProduct(t, "p-1", "Caffè", 3, 5)
	f.addUsage(t, "u-1", "p-1", "Caffè", 2, now.Add(-2*time.Hour))
	f.addUsage(t, "u-2", "p-1", "Caffè", 4, now.Add(-time.Hour))

	rows, err := f.usecase(false).BuildReport(context.Background(), "", nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "p-1", row.ProductID)
	assert.Equal(t, 6, row.TotalUsed)
	assert.Equal(t, 3, row.CurrentQuantity)
	assert.Equal(t, 5, row.MinQuantity)
	assert.True(t, row.NeedsReorder)
	assert.Equal(t, 2, row.QuantityToOrder, "fórmula canónica: min - quantity")
}

func TestBuildReport_VarianteIncluyeConsumo(t *testing.T) {
	f := newFixture()
	f.addProduct(t, "p-1", "Caffè", 3, 5)
	f.addUsage(t, "u-1", "p-1", "Caffè", 6, time.Now())

	rows, err := f.usecase(true).BuildReport(context.Background(), "", nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 8, rows[0].QuantityToOrder, "variante: (min - quantity) + consumo del período")
}

func TestBuildReport_StockSobreMinimo_SinRiordino(t *testing.T) {
	f := newFixture()
	f.addProduct(t, "p-1", "Caffè", 10, 5)
	f.addUsage(t, "u-1", "p-1", "Caffè", 3, time.Now())

	rows, err := f.usecase(true).BuildReport(context.Background(), "", nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].NeedsReorder)
	assert.Zero(t, rows[0].QuantityToOrder, "sin déficit la variante tampoco ordena nada")
}

func TestBuildReport_ConsumoDeProductoEliminado_SeOmite(t *testing.T) {
	f := newFixture()
	f.addProduct(t, "p-1", "Caffè", 1, 5)
	f.addUsage(t, "u-1", "p-1", "Caffè", 2, time.Now())
	f.addUsage(t, "u-2", "p-eliminado", "Zucchero", 9, time.Now())

	rows, err := f.usecase(false).BuildReport(context.Background(), "", nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1, "el consumo huérfano no produce fila")
	assert.Equal(t, "p-1", rows[0].ProductID)
}

func TestBuildReport_SoloConsumosDelRango(t *testing.T) {
	f := newFixture()
	day := func(d int) time.Time { return time.Date(2025, 3, d, 12, 0, 0, 0, time.UTC) }
	f.addProduct(t, "p-1", "Caffè", 0, 5)
	f.addUsage(t, "u-1", "p-1", "Caffè", 2, day(1))
	f.addUsage(t, "u-2", "p-1", "Caffè", 3, day(10))

	from, to := day(5), day(15)
	rows, err := f.usecase(true).BuildReport(context.Background(), "", &from, &to)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].TotalUsed, "solo cuenta el consumo dentro del rango")
	assert.Equal(t, 8, rows[0].QuantityToOrder)
}

func TestBuildReport_SinConsumos_ReporteVacio(t *testing.T) {
	f := newFixture()
	f.addProduct(t, "p-1", "Caffè", 0, 5)

	rows, err := f.usecase(false).BuildReport(context.Background(), "", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rows, "un producto sin consumos en el rango no aparece, aun en déficit")
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden e idempotencia
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildReport_OrdenPorNombreItaliano(t *testing.T) {
	f := newFixture()
	now := time.Now()
	f.addProduct(t, "p-1", "Zucchero", 0, 1)
	f.addProduct(t, "p-2", "Aghi", 0, 1)
	f.addProduct(t, "p-3", "Caffè", 0, 1)
	f.addUsage(t, "u-1", "p-1", "Zucchero", 1, now)
	f.addUsage(t, "u-2", "p-2", "Aghi", 1, now)
	f.addUsage(t, "u-3", "p-3", "Caffè", 1, now)

	rows, err := f.usecase(false).BuildReport(context.Background(), "", nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Aghi", rows[0].ProductName)
	assert.Equal(t, "Caffè", rows[1].ProductName)
	assert.Equal(t, "Zucchero", rows[2].ProductName)
}

func TestBuildReport_Idempotente(t *testing.T) {
	f := newFixture()
	f.addProduct(t, "p-1", "Caffè", 2, 5)
	f.addUsage(t, "u-1", "p-1", "Caffè", 4, time.Now())

	uc := f.usecase(true)
	first, err := uc.BuildReport(context.Background(), "", nil, nil)
	require.NoError(t, err)
	second, err := uc.BuildReport(context.Background(), "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second, "mismos argumentos, mismas filas")
}

func TestBuildReport_RoundTripConConsumos(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.addProduct(t, "p-1", "Garze", 5, 3)

	uc := consumption.NewUseCase(memory.NewTxRunner(f.store))
	for i := 0; i < 3; i++ {
		_, err := uc.Consume(ctx, "", "p-1", 1)
		require.NoError(t, err)
	}

	rows, err := f.usecase(false).BuildReport(ctx, "", nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 3, row.TotalUsed)
	assert.Equal(t, 2, row.CurrentQuantity)
	assert.True(t, row.NeedsReorder)
	assert.Equal(t, 1, row.QuantityToOrder)
}

func TestBuildReport_NombreDeReporte_EsSnapshotDelConsumo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	now := time.Now()
	f.addProduct(t, "p-1", "Caffè", 0, 2)
	f.addUsage(t, "u-1", "p-1", "Caffè Vecchio", 1, now)

	rows, err := f.usecase(false).BuildReport(ctx, "", nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Caffè Vecchio", rows[0].ProductName,
		"la fila usa el nombre registrado en el consumo, no el actual del producto")
}

func TestBuildReport_ProductoRenombrado_UsaSnapshotMasAntiguo(t *testing.T) {
	f := newFixture()
	now := time.Now()
	f.addProduct(t, "p-1", "Caffè Arabica", 0, 2)
	f.addUsage(t, "u-1", "p-1", "Caffè", 1, now.Add(-48*time.Hour))
	f.addUsage(t, "u-2", "p-1", "Caffè Arabica", 1, now)

	rows, err := f.usecase(false).BuildReport(context.Background(), "", nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Caffè", rows[0].ProductName,
		"con varios snapshots en el rango gana el del consumo más antiguo")
	assert.Equal(t, 2, rows[0].TotalUsed)
}
