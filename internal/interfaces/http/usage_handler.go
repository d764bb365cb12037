package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/scorte-pro/internal/application/dto"
	"github.com/tu-usuario/scorte-pro/internal/application/usage"
)

// UsageHandler maneja las consultas y la limpieza del libro de consumos.
type UsageHandler struct {
	uc *usage.UseCase
}

// NewUsageHandler construye el handler.
func NewUsageHandler(uc *usage.UseCase) *UsageHandler {
	return &UsageHandler{uc: uc}
}

// List godoc
// @Summary      Elencare gli utilizzi registrati
// @Tags         utilizzi
// @Produce      json
// @Param        dataInizio  query  string  false  "RFC3339 o YYYY-MM-DD"
// @Param        dataFine    query  string  false  "RFC3339 o YYYY-MM-DD"
// @Success      200  {array}  dto.UsageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/utilizzi [get]
func (h *UsageHandler) List(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Data non valida"})
	}
	out, err := h.uc.QueryByRange(c.UserContext(), GetUserID(c), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Errore interno del server"})
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Svuotare il registro degli utilizzi
// @Tags         utilizzi
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/utilizzi [delete]
func (h *UsageHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.UserContext(), GetUserID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Errore interno del server"})
	}
	return c.JSON(dto.MessageResponse{Message: "Registro utilizzi svuotato"})
}

// parseRange lee dataInizio y dataFine de la query. Acepta RFC3339 o fecha
// simple YYYY-MM-DD; una dataFine de solo fecha se extiende al final del día
// para que el rango sea inclusivo. Ambos límites son opcionales.
func parseRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if s := c.Query("dataInizio"); s != "" {
		t, err := parseTime(s, false)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if s := c.Query("dataFine"); s != "" {
		t, err := parseTime(s, true)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}

func parseTime(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
