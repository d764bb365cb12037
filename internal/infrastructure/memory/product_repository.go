package memory

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
	"github.com/tu-usuario/scorte-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo adaptador en memoria de ProductRepository.
// inTx=true marca las instancias que entrega el TxRunner: operan bajo el lock
// exclusivo ya tomado por la transacción y no deben re-bloquear.
type ProductRepo struct {
	s    *Store
	inTx bool
}

// NewProductRepository construye el adaptador sobre el store.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

func (r *ProductRepo) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

func (r *ProductRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	defer r.lock()()
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

// GetByID devuelve una copia del producto, o (nil, nil) si no existe para ese dueño.
func (r *ProductRepo) GetByID(_ context.Context, id, ownerID string) (*entity.Product, error) {
	defer r.rlock()()
	return r.find(id, ownerID), nil
}

// List devuelve copias de los productos del dueño ordenados por nombre
// ascendente (collation italiana, como el ORDER BY de PostgreSQL).
func (r *ProductRepo) List(_ context.Context, ownerID string) ([]*entity.Product, error) {
	defer r.rlock()()
	var list []*entity.Product
	for _, p := range r.s.products {
		if ownerID != "" && p.OwnerID != ownerID {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	cl := collate.New(language.Italian)
	sort.SliceStable(list, func(i, j int) bool {
		if c := cl.CompareString(list[i].Name, list[j].Name); c != 0 {
			return c < 0
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// Update reemplaza el producto almacenado. Un id inexistente no es error a
// este nivel: el caso de uso ya verificó existencia.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	defer r.lock()()
	if _, ok := r.s.products[product.ID]; !ok {
		return nil
	}
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

// Delete elimina el producto. Idempotente.
func (r *ProductRepo) Delete(_ context.Context, id, ownerID string) error {
	defer r.lock()()
	if p, ok := r.s.products[id]; ok {
		if ownerID == "" || p.OwnerID == ownerID {
			delete(r.s.products, id)
		}
	}
	return nil
}

// GetForUpdate en memoria equivale a GetByID: la exclusión la da el lock del
// TxRunner, que serializa la transacción completa.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id, ownerID string) (*entity.Product, error) {
	return r.GetByID(ctx, id, ownerID)
}

// UpdateQuantity persiste solo la cantidad.
func (r *ProductRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	defer r.lock()()
	if p, ok := r.s.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (r *ProductRepo) find(id, ownerID string) *entity.Product {
	p, ok := r.s.products[id]
	if !ok {
		return nil
	}
	if ownerID != "" && p.OwnerID != ownerID {
		return nil
	}
	cp := *p
	return &cp
}
