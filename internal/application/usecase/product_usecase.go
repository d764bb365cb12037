package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/scorte-pro/internal/application/dto"
	"github.com/tu-usuario/scorte-pro/internal/domain"
	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
	"github.com/tu-usuario/scorte-pro/internal/domain/repository"
)

// DefaultUnit unidad de medida por defecto ("pezzi").
const DefaultUnit = "pz"

// ProductUseCase casos de uso CRUD para productos. La cantidad también se
// decrementa vía consumos (ver paquete consumption); Update comparte con
// ellos el mismo mecanismo de serialización por producto (TxRunner +
// GetForUpdate), así un consumo nunca se pierde bajo un PUT concurrente.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner repository.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner repository.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un nuevo producto. Quantity y MinQuantity valen 0 si se omiten;
// Unit vale "pz". Nombre vacío o cantidades negativas -> ErrInvalidInput.
func (uc *ProductUseCase) Create(ctx context.Context, ownerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	quantity := 0
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	minQuantity := 0
	if in.MinQuantity != nil {
		minQuantity = *in.MinQuantity
	}
	if quantity < 0 || minQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = DefaultUnit
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        name,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		Unit:        unit,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id, ownerID string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update aplica un patch parcial: solo los campos presentes se modifican.
// CreatedAt es inmutable. Devuelve (nil, nil) si el producto no existe.
//
// Lee y escribe dentro de una transacción con la fila bloqueada: el patch es
// lectura-modificación-escritura de la fila completa, y sin el bloqueo un
// consumo confirmado entre la lectura y la escritura quedaría pisado por la
// cantidad ya obsoleta (incluso en un PUT que solo renombra).
func (uc *ProductUseCase) Update(ctx context.Context, id, ownerID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.UsageRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if product == nil {
			return nil
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return domain.ErrInvalidInput
			}
			product.Name = name
		}
		if in.Quantity != nil {
			if *in.Quantity < 0 {
				return domain.ErrInvalidInput
			}
			product.Quantity = *in.Quantity
		}
		if in.MinQuantity != nil {
			if *in.MinQuantity < 0 {
				return domain.ErrInvalidInput
			}
			product.MinQuantity = *in.MinQuantity
		}
		if in.Unit != nil && *in.Unit != "" {
			product.Unit = *in.Unit
		}
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List lista los productos del dueño ordenados por nombre ascendente.
func (uc *ProductUseCase) List(ctx context.Context, ownerID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto. Idempotente: un id inexistente no es error.
// Los registros de consumo del producto NO se eliminan en cascada; quedan
// como histórico de auditoría.
func (uc *ProductUseCase) Delete(ctx context.Context, id, ownerID string) error {
	return uc.repo.Delete(ctx, id, ownerID)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		Unit:        p.Unit,
		CreatedAt:   p.CreatedAt,
	}
}
