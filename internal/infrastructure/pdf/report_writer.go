// Package pdf genera el reporte de riordino en PDF usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte Utilizzi Materiali + fecha de emisión       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Prodotto | Usata | Attuale | Minima | Riordinare | Q │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de productos y cuántos requieren riordino        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/scorte-pro/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 200, Green: 30, Blue: 30}
)

// ── Writer ────────────────────────────────────────────────────────────────────

// ReportWriter produce el reporte de utilizos en PDF.
type ReportWriter struct{}

// NewReportWriter construye el writer.
func NewReportWriter() *ReportWriter { return &ReportWriter{} }

// Filename devuelve el nombre del adjunto para la fecha dada.
func (w *ReportWriter) Filename(now time.Time) string {
	return "utilizzi_" + now.Format("2006-01-02") + ".pdf"
}

// ContentType devuelve el MIME type del documento.
func (w *ReportWriter) ContentType() string { return "application/pdf" }

// Generate genera el PDF y devuelve sus bytes.
func (w *ReportWriter) Generate(rows []dto.ReportRow, now time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Utilizzi Materiali", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(now))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de emisión (der).
func headerRow(now time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE UTILIZZI MATERIALI", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Consumi e soglie di riordino", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Data: "+now.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Prodotto", 4, align.Left),
		h("Q.tà Usata", 2, align.Right),
		h("Q.tà Attuale", 2, align.Right),
		h("Q.tà Minima", 1, align.Right),
		h("Riordinare", 1, align.Center),
		h("Da Ordinare", 2, align.Right),
	)
}

// tableRow: una fila por producto; las filas en déficit van en rojo.
func tableRow(r dto.ReportRow) core.Row {
	color := colorGray
	riordino := "NO"
	if r.NeedsReorder {
		color = colorAlert
		riordino = "SÌ"
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: color,
		}))
	}
	return row.New(7).Add(
		cell(r.ProductName, 4, align.Left),
		cell(strconv.Itoa(r.TotalUsed), 2, align.Right),
		cell(strconv.Itoa(r.CurrentQuantity), 2, align.Right),
		cell(strconv.Itoa(r.MinQuantity), 1, align.Right),
		cell(riordino, 1, align.Center),
		cell(strconv.Itoa(r.QuantityToOrder), 2, align.Right),
	)
}

// summaryRow: conteo total y productos en déficit.
func summaryRow(rows []dto.ReportRow) core.Row {
	deficit := 0
	for _, r := range rows {
		if r.NeedsReorder {
			deficit++
		}
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Prodotti: %d   |   Da riordinare: %d", len(rows), deficit),
			props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}
