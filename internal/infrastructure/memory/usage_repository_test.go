package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
	"github.com/tu-usuario/scorte-pro/internal/infrastructure/memory"
)

func seedUsages(t *testing.T, repo *memory.UsageRepo, records ...*entity.UsageRecord) {
	t.Helper()
	for _, r := range records {
		require.NoError(t, repo.Append(context.Background(), r))
	}
}

func TestUsageRepo_QueryByRange_LimitesInclusivos(t *testing.T) {
	repo := memory.NewUsageRepository(memory.NewStore())
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 12, 0, 0, 0, time.UTC)
	}
	seedUsages(t, repo,
		&entity.UsageRecord{ID: "u-1", ProductID: "p-1", ProductName: "A", QuantityUsed: 1, UsedAt: day(1)},
		&entity.UsageRecord{ID: "u-2", ProductID: "p-1", ProductName: "A", QuantityUsed: 1, UsedAt: day(5)},
		&entity.UsageRecord{ID: "u-3", ProductID: "p-1", ProductName: "A", QuantityUsed: 1, UsedAt: day(9)},
	)

	from, to := day(1), day(5)
	records, err := repo.QueryByRange(context.Background(), "", &from, &to)
	require.NoError(t, err)
	require.Len(t, records, 2, "los límites del rango son inclusivos")
	assert.Equal(t, "u-2", records[0].ID, "orden por fecha descendente")
	assert.Equal(t, "u-1", records[1].ID)

	// Sin límites: todo el libro
	records, err = repo.QueryByRange(context.Background(), "", nil, nil)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	// Solo límite inferior
	records, err = repo.QueryByRange(context.Background(), "", &to, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "u-3", records[0].ID)
}

func TestUsageRepo_ScopingPorDueno(t *testing.T) {
	repo := memory.NewUsageRepository(memory.NewStore())
	now := time.Now()
	seedUsages(t, repo,
		&entity.UsageRecord{ID: "u-1", OwnerID: "alice", ProductID: "p-1", ProductName: "A", QuantityUsed: 1, UsedAt: now},
		&entity.UsageRecord{ID: "u-2", OwnerID: "bob", ProductID: "p-2", ProductName: "B", QuantityUsed: 1, UsedAt: now},
	)

	records, err := repo.QueryByRange(context.Background(), "alice", nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "u-1", records[0].ID)

	// ownerID vacío = sin scope
	records, err = repo.QueryByRange(context.Background(), "", nil, nil)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// Clear con scope solo borra lo del dueño
	require.NoError(t, repo.Clear(context.Background(), "alice"))
	records, err = repo.QueryByRange(context.Background(), "", nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "u-2", records[0].ID)
}

func TestProductRepo_List_OrdenPorNombre(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	ctx := context.Background()
	for _, p := range []*entity.Product{
		{ID: "p-1", Name: "Zucchero", Unit: "pz", CreatedAt: time.Now()},
		{ID: "p-2", Name: "Caffè", Unit: "pz", CreatedAt: time.Now()},
		{ID: "p-3", Name: "Aghi", Unit: "pz", CreatedAt: time.Now()},
	} {
		require.NoError(t, repo.Create(ctx, p))
	}

	list, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Aghi", list[0].Name)
	assert.Equal(t, "Caffè", list[1].Name)
	assert.Equal(t, "Zucchero", list[2].Name)
}

func TestProductRepo_Delete_Idempotente(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p-1", Name: "Caffè", Unit: "pz", CreatedAt: time.Now()}))

	require.NoError(t, repo.Delete(ctx, "p-1", ""))
	require.NoError(t, repo.Delete(ctx, "p-1", ""), "borrar un id inexistente no es error")

	p, err := repo.GetByID(ctx, "p-1", "")
	require.NoError(t, err)
	assert.Nil(t, p)
}
