package dto

import "time"

// UsageResponse salida de un registro de consumo. Prodotto lleva el producto
// referenciado poblado; es null si el producto fue eliminado después del consumo.
type UsageResponse struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"prodottoId"`
	ProductName  string           `json:"nomeProdotto"`
	QuantityUsed int              `json:"quantitaUtilizzata"`
	UsedAt       time.Time        `json:"dataUtilizzo"`
	Product      *ProductResponse `json:"prodotto"`
}

// ConsumeResponse salida de POST /api/prodotti/:id/utilizza: el producto ya
// decrementado junto con el registro de consumo recién creado.
type ConsumeResponse struct {
	Product ProductResponse `json:"prodotto"`
	Usage   UsageResponse   `json:"utilizzo"`
}
