package consumption

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/scorte-pro/internal/application/dto"
	"github.com/tu-usuario/scorte-pro/internal/domain"
	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
	"github.com/tu-usuario/scorte-pro/internal/domain/repository"
)

// UseCase registra el consumo de unidades de un producto de forma atómica:
// decremento de stock y registro de auditoría son una sola unidad observable.
// La serialización por producto la da el bloqueo de fila (GetForUpdate) dentro
// de la transacción: dos consumos concurrentes del mismo producto no pueden
// leer ambos la misma cantidad.
type UseCase struct {
	txRunner repository.TxRunner
}

// NewUseCase construye el caso de uso de consumo.
func NewUseCase(txRunner repository.TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// Consume decrementa amount unidades del producto y agrega el registro de
// consumo con snapshot del nombre. El endpoint HTTP consume siempre 1; la
// operación acepta cualquier cantidad positiva <= stock actual.
//
// Errores: ErrInvalidInput (amount <= 0), ErrNotFound (producto inexistente o
// de otro dueño), ErrInsufficientStock (stock insuficiente, sin mutación).
func (uc *UseCase) Consume(ctx context.Context, ownerID, productID string, amount int) (*dto.ConsumeResponse, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out dto.ConsumeResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		usageRepo repository.UsageRepository,
	) error {
		// Bloquea la fila del producto: el check y el decremento quedan
		// serializados frente a otros consumos del mismo producto.
		product, err := productRepo.GetForUpdate(ctx, productID, ownerID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Quantity < amount {
			return domain.ErrInsufficientStock
		}

		product.Quantity -= amount
		if err := productRepo.UpdateQuantity(ctx, product.ID, product.Quantity); err != nil {
			return err
		}

		record := &entity.UsageRecord{
			ID:           uuid.New().String(),
			OwnerID:      ownerID,
			ProductID:    product.ID,
			ProductName:  product.Name,
			QuantityUsed: amount,
			UsedAt:       time.Now(),
		}
		if err := usageRepo.Append(ctx, record); err != nil {
			// El rollback de la transacción revierte también el decremento:
			// nunca queda stock decrementado sin su registro.
			return err
		}

		out = dto.ConsumeResponse{
			Product: dto.ProductResponse{
				ID:          product.ID,
				Name:        product.Name,
				Quantity:    product.Quantity,
				MinQuantity: product.MinQuantity,
				Unit:        product.Unit,
				CreatedAt:   product.CreatedAt,
			},
			Usage: dto.UsageResponse{
				ID:           record.ID,
				ProductID:    record.ProductID,
				ProductName:  record.ProductName,
				QuantityUsed: record.QuantityUsed,
				UsedAt:       record.UsedAt,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
