// Package excel renderiza el reporte de reposición como libro XLSX, con el
// mismo layout que el export histórico: hoja "Utilizzi Materiali", cabecera en
// negrita sobre fondo gris y filas en déficit resaltadas en rojo claro.
package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/scorte-pro/internal/application/dto"
)

const sheetName = "Utilizzi Materiali"

// ReportWriter genera el artefacto XLSX a partir de las filas del reporte.
type ReportWriter struct{}

// NewReportWriter construye el writer.
func NewReportWriter() *ReportWriter { return &ReportWriter{} }

// Filename devuelve el nombre de descarga con la fecha del día: utilizzi_YYYY-MM-DD.xlsx.
func (w *ReportWriter) Filename(now time.Time) string {
	return fmt.Sprintf("utilizzi_%s.xlsx", now.Format("2006-01-02"))
}

// ContentType devuelve el MIME type del artefacto XLSX.
func (w *ReportWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Generate construye el workbook y devuelve sus bytes.
func (w *ReportWriter) Generate(rows []dto.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	widths := []struct {
		col   string
		width float64
	}{
		{"A", 30}, {"B", 20}, {"C", 20}, {"D", 20}, {"E", 15}, {"F", 20},
	}
	for _, c := range widths {
		if err := f.SetColWidth(sheetName, c.col, c.col, c.width); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	header := []any{
		"Prodotto", "Quantità Utilizzata", "Quantità Attuale",
		"Quantità Minima", "Da Ordinare", "Quantità da Ordinare",
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "F1", headerStyle); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	highlightStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFCCCC"}},
	})
	if err != nil {
		return nil, fmt.Errorf("highlight style: %w", err)
	}

	for i, row := range rows {
		n := i + 2 // fila 1 es la cabecera
		cells := []any{
			row.ProductName,
			row.TotalUsed,
			row.CurrentQuantity,
			row.MinQuantity,
			reorderLabel(row.NeedsReorder),
			row.QuantityToOrder,
		}
		cell := fmt.Sprintf("A%d", n)
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", n, err)
		}
		if row.Highlight() {
			if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", n), fmt.Sprintf("F%d", n), highlightStyle); err != nil {
				return nil, fmt.Errorf("highlight row %d: %w", n, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func reorderLabel(needsReorder bool) string {
	if needsReorder {
		return "SÌ"
	}
	return "NO"
}
