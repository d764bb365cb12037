package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
)

// UsageRepository define el puerto del libro de consumos (append-only).
type UsageRepository interface {
	// Append almacena un registro inmutable.
	Append(ctx context.Context, record *entity.UsageRecord) error
	// QueryByRange devuelve los registros con usedAt >= from y usedAt <= to
	// (cada límite es opcional: nil lo omite), ordenados por usedAt descendente.
	QueryByRange(ctx context.Context, ownerID string, from, to *time.Time) ([]*entity.UsageRecord, error)
	// Clear elimina todos los registros del dueño (reset administrativo).
	Clear(ctx context.Context, ownerID string) error
}
