package memory

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
	"github.com/tu-usuario/scorte-pro/internal/domain/repository"
)

var _ repository.UsageRepository = (*UsageRepo)(nil)

// UsageRepo adaptador en memoria del libro de consumos.
type UsageRepo struct {
	s    *Store
	inTx bool
}

// NewUsageRepository construye el adaptador sobre el store.
func NewUsageRepository(s *Store) *UsageRepo {
	return &UsageRepo{s: s}
}

func (r *UsageRepo) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

func (r *UsageRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

// Append agrega un registro inmutable al libro.
func (r *UsageRepo) Append(_ context.Context, record *entity.UsageRecord) error {
	defer r.lock()()
	cp := *record
	r.s.usages = append(r.s.usages, &cp)
	return nil
}

// QueryByRange filtra por dueño y rango inclusivo [from, to] y ordena por
// fecha de uso descendente.
func (r *UsageRepo) QueryByRange(_ context.Context, ownerID string, from, to *time.Time) ([]*entity.UsageRecord, error) {
	defer r.rlock()()
	var list []*entity.UsageRecord
	for _, u := range r.s.usages {
		if ownerID != "" && u.OwnerID != ownerID {
			continue
		}
		if from != nil && u.UsedAt.Before(*from) {
			continue
		}
		if to != nil && u.UsedAt.After(*to) {
			continue
		}
		cp := *u
		list = append(list, &cp)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].UsedAt.After(list[j].UsedAt)
	})
	return list, nil
}

// Clear elimina los registros del dueño. Con ownerID vacío limpia todo el libro.
func (r *UsageRepo) Clear(_ context.Context, ownerID string) error {
	defer r.lock()()
	if ownerID == "" {
		r.s.usages = nil
		return nil
	}
	kept := r.s.usages[:0]
	for _, u := range r.s.usages {
		if u.OwnerID != ownerID {
			kept = append(kept, u)
		}
	}
	r.s.usages = kept
	return nil
}
