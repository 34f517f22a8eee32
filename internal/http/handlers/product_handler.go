package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pricepeek/internal/log"
	"pricepeek/internal/services"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List serves the raw product document verbatim; clients do their own
// flattening and filtering.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	b, err := h.Catalog.Document()
	if err != nil {
		log.Error(c, "catalog.read.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch products"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(b)
}
