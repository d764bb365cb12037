package memory

import (
	"context"

	"github.com/tu-usuario/scorte-pro/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner transaccional en memoria: toma el lock exclusivo del store durante
// todo el callback (serializa los consumos, cumpliendo la exclusión que en
// PostgreSQL da el bloqueo de fila) y restaura un snapshot del estado si fn
// retorna error, de modo que decremento y registro de consumo se observan
// siempre como una sola unidad.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn bajo lock exclusivo con repos atados a la "transacción".
// Commit implícito si fn retorna nil; rollback (restore del snapshot) si no.
func (t *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	usageRepo repository.UsageRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	products, usages := t.s.snapshot()

	productRepo := &ProductRepo{s: t.s, inTx: true}
	usageRepo := &UsageRepo{s: t.s, inTx: true}

	if err := fn(productRepo, usageRepo); err != nil {
		t.s.restore(products, usages)
		return err
	}
	return nil
}
