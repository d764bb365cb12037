package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/scorte-pro/internal/application/dto"
	"github.com/tu-usuario/scorte-pro/internal/application/report"
	"github.com/tu-usuario/scorte-pro/internal/infrastructure/excel"
	"github.com/tu-usuario/scorte-pro/internal/infrastructure/pdf"
)

// ExportHandler genera el reporte de reposición como descarga (Excel o PDF).
type ExportHandler struct {
	reportUC *report.UseCase
	xlsx     *excel.ReportWriter
	pdf      *pdf.ReportWriter
}

// NewExportHandler construye el handler de exportación.
func NewExportHandler(reportUC *report.UseCase, xlsx *excel.ReportWriter, pdfw *pdf.ReportWriter) *ExportHandler {
	return &ExportHandler{reportUC: reportUC, xlsx: xlsx, pdf: pdfw}
}

// Excel godoc
// @Summary      Esportare il report utilizzi in Excel
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        dataInizio  query  string  false  "RFC3339 o YYYY-MM-DD"
// @Param        dataFine    query  string  false  "RFC3339 o YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/excel [get]
func (h *ExportHandler) Excel(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Data non valida"})
	}
	rows, err := h.reportUC.BuildReport(c.UserContext(), GetUserID(c), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Errore interno del server"})
	}
	data, err := h.xlsx.Generate(rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Errore nella generazione del report"})
	}
	return sendAttachment(c, data, h.xlsx.Filename(time.Now()), h.xlsx.ContentType())
}

// PDF godoc
// @Summary      Esportare il report utilizzi in PDF
// @Tags         export
// @Produce      application/pdf
// @Param        dataInizio  query  string  false  "RFC3339 o YYYY-MM-DD"
// @Param        dataFine    query  string  false  "RFC3339 o YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Data non valida"})
	}
	rows, err := h.reportUC.BuildReport(c.UserContext(), GetUserID(c), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Errore interno del server"})
	}
	now := time.Now()
	data, err := h.pdf.Generate(rows, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Errore nella generazione del report"})
	}
	return sendAttachment(c, data, h.pdf.Filename(now), h.pdf.ContentType())
}

func sendAttachment(c *fiber.Ctx, data []byte, filename, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
