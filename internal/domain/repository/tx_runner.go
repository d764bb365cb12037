package repository

import "context"

// TxRunner ejecuta el callback dentro de una transacción, con repositorios
// atados a ella. Commit si fn retorna nil, Rollback en caso contrario.
// Es el mecanismo de serialización por producto: toda escritura sobre un
// producto (consumo o update) lee la fila con GetForUpdate dentro de Run.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo ProductRepository,
		usageRepo UsageRepository,
	) error) error
}
