// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Se usa como driver de demo/desarrollo (STORAGE_DRIVER=memory) y
// como fake en los tests de casos de uso y handlers.
package memory

import (
	"sync"

	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
)

// Store estado compartido: productos, libro de consumos y usuarios.
// El RWMutex garantiza lecturas consistentes: ninguna lectura observa un
// decremento a medio aplicar.
type Store struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
	usages   []*entity.UsageRecord
	users    map[string]*entity.User
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		products: make(map[string]*entity.Product),
		users:    make(map[string]*entity.User),
	}
}

// snapshot copia el estado mutable para poder restaurarlo en rollback.
func (s *Store) snapshot() (map[string]*entity.Product, []*entity.UsageRecord) {
	products := make(map[string]*entity.Product, len(s.products))
	for id, p := range s.products {
		cp := *p
		products[id] = &cp
	}
	usages := make([]*entity.UsageRecord, len(s.usages))
	copy(usages, s.usages)
	return products, usages
}

func (s *Store) restore(products map[string]*entity.Product, usages []*entity.UsageRecord) {
	s.products = products
	s.usages = usages
}
