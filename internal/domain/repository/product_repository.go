package repository

import (
	"context"

	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// ownerID vacío significa "sin scoping" (despliegue single-tenant); cuando no
// está vacío, toda operación se limita a los productos de ese dueño.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si no existe producto con ese id y dueño.
	GetByID(ctx context.Context, id, ownerID string) (*entity.Product, error)
	// List devuelve los productos ordenados por nombre ascendente.
	List(ctx context.Context, ownerID string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Delete es idempotente: eliminar un id inexistente no es error.
	Delete(ctx context.Context, id, ownerID string) error
	// GetForUpdate carga el producto bloqueando su fila para escritura.
	// Solo tiene sentido dentro de una transacción (ver TxRunner).
	GetForUpdate(ctx context.Context, id, ownerID string) (*entity.Product, error)
	// UpdateQuantity persiste únicamente la cantidad actual.
	UpdateQuantity(ctx context.Context, id string, quantity int) error
}
