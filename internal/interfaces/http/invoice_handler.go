package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/waleed-alfaifi/invoices-api/internal/application/dto"
	"github.com/waleed-alfaifi/invoices-api/internal/application/invoicing"
	"github.com/waleed-alfaifi/invoices-api/internal/domain"
	"github.com/waleed-alfaifi/invoices-api/pkg/logger"
)

// InvoiceHandler maneja las peticiones HTTP de facturas (protegido).
type InvoiceHandler struct {
	uc  *invoicing.UseCase
	log *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *invoicing.UseCase, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, log: log}
}

// List devuelve las facturas del usuario autenticado (forma reducida).
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.uc.ListByOwner(c.Context(), userID)
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(list)
}

// Create crea una factura con su grafo completo.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := checkStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationResponse{Errors: errs})
	}
	view, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return h.internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetByID devuelve la factura completa, 404 si no existe o está borrada.
// GET /api/invoices/:invoiceId
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("invoiceId")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	view, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return h.internal(c, err)
	}
	return c.JSON(view)
}

// Update aplica un parche disperso: campo ausente no cambia nada; items
// en lista vacía borra todas las líneas.
// PUT /api/invoices/:invoiceId
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("invoiceId")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := checkStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationResponse{Errors: errs})
	}
	view, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return h.internal(c, err)
	}
	return c.JSON(view)
}

// Delete borrado lógico; responde el nuevo valor del flag.
// DELETE /api/invoices/:invoiceId
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("invoiceId")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	deleted, err := h.uc.SoftDelete(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return h.internal(c, err)
	}
	return c.JSON(dto.DeleteInvoiceResponse{Status: deleted})
}

// internal loguea el error real y responde un genérico sin detalle interno
// (nada de queries ni stack traces hacia el cliente).
func (h *InvoiceHandler) internal(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg("error interno en facturas")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
