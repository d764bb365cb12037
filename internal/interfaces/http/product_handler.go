package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/scorte-pro/internal/application/consumption"
	"github.com/tu-usuario/scorte-pro/internal/application/dto"
	"github.com/tu-usuario/scorte-pro/internal/application/usecase"
	"github.com/tu-usuario/scorte-pro/internal/domain"
)

// ProductHandler maneja las peticiones HTTP para productos.
type ProductHandler struct {
	uc        *usecase.ProductUseCase
	consumeUC *consumption.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, consumeUC *consumption.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc, consumeUC: consumeUC}
}

// Create godoc
// @Summary      Creare un prodotto
// @Tags         prodotti
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Dati del prodotto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/prodotti [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Richiesta non valida"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Dati del prodotto non validi"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Errore interno del server"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Elencare i prodotti
// @Tags         prodotti
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/prodotti [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Errore interno del server"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Aggiornare un prodotto
// @Tags         prodotti
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del prodotto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campi da aggiornare"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/prodotti/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Richiesta non valida"})
	}
	out, err := h.uc.Update(c.UserContext(), id, GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Dati del prodotto non validi"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Errore interno del server"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Prodotto non trovato"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminare un prodotto
// @Tags         prodotti
// @Produce      json
// @Param        id  path  string  true  "ID del prodotto"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/prodotti/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), GetUserID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Errore interno del server"})
	}
	return c.JSON(dto.MessageResponse{Message: "Prodotto eliminato"})
}

// Consume godoc
// @Summary      Registrare l'utilizzo di un'unità del prodotto
// @Tags         prodotti
// @Produce      json
// @Param        id  path  string  true  "ID del prodotto"
// @Success      200  {object}  dto.ConsumeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/prodotti/{id}/utilizza [post]
func (h *ProductHandler) Consume(c *fiber.Ctx) error {
	out, err := h.consumeUC.Consume(c.UserContext(), GetUserID(c), c.Params("id"), 1)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Prodotto non trovato"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Quantità insufficiente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Errore interno del server"})
		}
	}
	return c.JSON(out)
}
