package memory

import (
	"context"

	"github.com/tu-usuario/scorte-pro/internal/domain"
	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
	"github.com/tu-usuario/scorte-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo adaptador en memoria de UserRepository (indexa por email).
type UserRepo struct {
	s *Store
}

// NewUserRepository construye el adaptador sobre el store.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

// Create persiste un usuario nuevo. El email es clave única: si ya existe
// retorna domain.ErrEmailAlreadyExists, igual que el adaptador de Postgres.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *user
	r.s.users[user.Email] = &cp
	return nil
}

// FindByEmail devuelve (nil, nil) si no hay usuario con ese email.
func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
