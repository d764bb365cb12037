package report

import (
	"context"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/scorte-pro/internal/application/dto"
	"github.com/tu-usuario/scorte-pro/internal/domain/entity"
	domainreport "github.com/tu-usuario/scorte-pro/internal/domain/report"
	"github.com/tu-usuario/scorte-pro/internal/domain/repository"
)

// UseCase motor del reporte de reposición: agrega el consumo histórico por
// producto y lo cruza con el stock actual para decidir qué reordenar y cuánto.
type UseCase struct {
	usageRepo   repository.UsageRepository
	productRepo repository.ProductRepository
	opts        domainreport.Options
}

// NewUseCase construye el motor. opts selecciona la variante de la fórmula.
func NewUseCase(usageRepo repository.UsageRepository, productRepo repository.ProductRepository, opts domainreport.Options) *UseCase {
	return &UseCase{usageRepo: usageRepo, productRepo: productRepo, opts: opts}
}

// group acumulado de consumo de un producto dentro del rango.
type group struct {
	productID string
	name      string // snapshot del consumo más antiguo dentro del rango
	totalUsed int
}

// BuildReport genera las filas del reporte para el rango dado (límites
// opcionales). Sin mutaciones intermedias es idempotente: mismos argumentos,
// mismas filas.
//
// Los grupos cuyo producto ya no existe se omiten del reporte; su histórico
// permanece en el libro de consumos. Las filas van ordenadas por nombre de
// producto con collation italiana, id como desempate.
func (uc *UseCase) BuildReport(ctx context.Context, ownerID string, from, to *time.Time) ([]dto.ReportRow, error) {
	records, err := uc.usageRepo.QueryByRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	// Agregación por producto: suma de cantidades. El libro viene ordenado por
	// fecha descendente, así que la última asignación de name corresponde al
	// consumo más antiguo del rango.
	groups := make(map[string]*group)
	var order []string
	for _, r := range records {
		g, ok := groups[r.ProductID]
		if !ok {
			g = &group{productID: r.ProductID}
			groups[r.ProductID] = g
			order = append(order, r.ProductID)
		}
		g.name = r.ProductName
		g.totalUsed += r.QuantityUsed
	}

	products, err := uc.productRepo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	rows := make([]dto.ReportRow, 0, len(order))
	for _, id := range order {
		g := groups[id]
		product, ok := byID[g.productID]
		if !ok {
			// Producto eliminado: el consumo huérfano no se reporta.
			continue
		}
		decision := domainreport.Evaluate(product.Quantity, product.MinQuantity, g.totalUsed, uc.opts)
		rows = append(rows, dto.ReportRow{
			ProductID:       g.productID,
			ProductName:     g.name,
			TotalUsed:       g.totalUsed,
			CurrentQuantity: product.Quantity,
			MinQuantity:     product.MinQuantity,
			NeedsReorder:    decision.NeedsReorder,
			QuantityToOrder: decision.QuantityToOrder,
		})
	}

	// Orden estable por nombre (los nombres de producto vienen en italiano,
	// con acentos) y por id como desempate.
	cl := collate.New(language.Italian)
	sort.SliceStable(rows, func(i, j int) bool {
		if c := cl.CompareString(rows[i].ProductName, rows[j].ProductName); c != 0 {
			return c < 0
		}
		return rows[i].ProductID < rows[j].ProductID
	})

	return rows, nil
}
