package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
	"github.com/tu-usuario/scorte-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). owner_id se guarda como cadena vacía en despliegues
// single-tenant; con ownerID vacío las queries no filtran por dueño.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, owner_id, name, quantity, min_quantity, unit, created_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, owner_id, name, quantity, min_quantity, unit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.OwnerID, product.Name,
		product.Quantity, product.MinQuantity, product.Unit, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (y dueño, si aplica). (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id, ownerID string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1 AND ($2 = '' OR owner_id = $2)`
	return r.scanOne(r.q.QueryRow(ctx, query, id, ownerID), "get product")
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
// Usar dentro de una transacción del TxRunner.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id, ownerID string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1 AND ($2 = '' OR owner_id = $2)
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id, ownerID), "get product for update")
}

// List lista los productos del dueño ordenados por nombre ascendente.
func (r *ProductRepo) List(ctx context.Context, ownerID string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE ($1 = '' OR owner_id = $1)
		ORDER BY name ASC, id ASC`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Quantity, &p.MinQuantity, &p.Unit, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables del producto (created_at es inmutable).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, quantity = $3, min_quantity = $4, unit = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Quantity, product.MinQuantity, product.Unit,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity persiste solo la cantidad actual.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $2 WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// Delete elimina un producto. Idempotente: cero filas afectadas no es error.
func (r *ProductRepo) Delete(ctx context.Context, id, ownerID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM products WHERE id = $1 AND ($2 = '' OR owner_id = $2)`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Quantity, &p.MinQuantity, &p.Unit, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
