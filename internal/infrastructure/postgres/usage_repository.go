package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
	"github.com/tu-usuario/scorte-pro/internal/domain/repository"
)

var _ repository.UsageRepository = (*UsageRepo)(nil)

// UsageRepo implementación del libro de consumos sobre PostgreSQL (usable con
// pool o tx). La tabla es append-only: no hay UPDATE, solo INSERT y el DELETE
// administrativo de Clear. No hay FK hacia products: el histórico debe
// sobrevivir a la eliminación del producto.
type UsageRepo struct {
	q Querier
}

// NewUsageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsageRepository(q Querier) *UsageRepo {
	return &UsageRepo{q: q}
}

// Append inserta un registro de consumo inmutable.
func (r *UsageRepo) Append(ctx context.Context, record *entity.UsageRecord) error {
	query := `
		INSERT INTO usage_records (id, owner_id, product_id, product_name, quantity_used, used_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		record.ID, record.OwnerID, record.ProductID,
		record.ProductName, record.QuantityUsed, record.UsedAt,
	)
	if err != nil {
		return fmt.Errorf("insert usage record: %w", err)
	}
	return nil
}

// QueryByRange filtra por dueño y rango inclusivo [from, to]; cada límite es
// opcional. Ordena por fecha de uso descendente.
func (r *UsageRepo) QueryByRange(ctx context.Context, ownerID string, from, to *time.Time) ([]*entity.UsageRecord, error) {
	query := `
		SELECT id, owner_id, product_id, product_name, quantity_used, used_at
		FROM usage_records
		WHERE ($1 = '' OR owner_id = $1)
		  AND ($2::timestamptz IS NULL OR used_at >= $2)
		  AND ($3::timestamptz IS NULL OR used_at <= $3)
		ORDER BY used_at DESC, id ASC`
	rows, err := r.q.Query(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query usage records: %w", err)
	}
	defer rows.Close()
	var list []*entity.UsageRecord
	for rows.Next() {
		var u entity.UsageRecord
		if err := rows.Scan(&u.ID, &u.OwnerID, &u.ProductID, &u.ProductName, &u.QuantityUsed, &u.UsedAt); err != nil {
			return nil, fmt.Errorf("scan usage record: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Clear elimina los registros del dueño; con ownerID vacío vacía la tabla.
func (r *UsageRepo) Clear(ctx context.Context, ownerID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM usage_records WHERE ($1 = '' OR owner_id = $1)`,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("clear usage records: %w", err)
	}
	return nil
}
