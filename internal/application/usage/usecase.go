package usage

import (
	"context"
	"time"

	"github.com/tu-usuario/scorte-pro/internal/application/dto"
	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
	"github.com/tu-usuario/scorte-pro/internal/domain/repository"
)

// UseCase consultas y limpieza del libro de consumos.
type UseCase struct {
	usageRepo   repository.UsageRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(usageRepo repository.UsageRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{usageRepo: usageRepo, productRepo: productRepo}
}

// QueryByRange devuelve los consumos del rango (límites opcionales) ordenados
// por fecha descendente, cada uno con su producto poblado. Prodotto es null
// cuando el producto fue eliminado: el histórico sobrevive a sus productos.
func (uc *UseCase) QueryByRange(ctx context.Context, ownerID string, from, to *time.Time) ([]dto.UsageResponse, error) {
	records, err := uc.usageRepo.QueryByRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	products, err := uc.productRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]dto.UsageResponse, 0, len(records))
	for _, r := range records {
		item := dto.UsageResponse{
			ID:           r.ID,
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			QuantityUsed: r.QuantityUsed,
			UsedAt:       r.UsedAt,
		}
		if p, ok := byID[r.ProductID]; ok {
			item.Product = &dto.ProductResponse{
				ID:          p.ID,
				Name:        p.Name,
				Quantity:    p.Quantity,
				MinQuantity: p.MinQuantity,
				Unit:        p.Unit,
				CreatedAt:   p.CreatedAt,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// Clear elimina todos los consumos del dueño (acción administrativa).
func (uc *UseCase) Clear(ctx context.Context, ownerID string) error {
	return uc.usageRepo.Clear(ctx, ownerID)
}
