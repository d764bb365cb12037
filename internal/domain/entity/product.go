package entity

import "time"

// Product representa un artículo de stock consumible con su umbral de reposición.
// Quantity nunca es negativa: un decremento que la dejaría bajo cero se rechaza,
// no se recorta a cero.
type Product struct {
	ID          string
	OwnerID     string // vacío en despliegues single-tenant
	Name        string
	Quantity    int
	MinQuantity int
	Unit        string // unidad de medida, por defecto "pz" (pezzi)
	CreatedAt   time.Time
}

// NeedsReorder indica si el stock actual está en o bajo el umbral.
func (p *Product) NeedsReorder() bool {
	return p.Quantity <= p.MinQuantity
}
