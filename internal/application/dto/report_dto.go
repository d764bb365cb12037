package dto

// ReportRow una fila del reporte de reposición: consumo agregado del período
// contra el stock actual del producto. Highlight lo consume la capa de formato
// para resaltar las filas en déficit.
type ReportRow struct {
	ProductID       string `json:"prodottoId"`
	ProductName     string `json:"prodotto"`
	TotalUsed       int    `json:"quantitaUtilizzata"`
	CurrentQuantity int    `json:"quantitaAttuale"`
	MinQuantity     int    `json:"quantitaMinima"`
	NeedsReorder    bool   `json:"daOrdinare"`
	QuantityToOrder int    `json:"quantitaDaOrdinare"`
}

// Highlight indica si la fila debe resaltarse (producto en déficit).
func (r ReportRow) Highlight() bool { return r.NeedsReorder }
