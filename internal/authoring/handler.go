package authoring

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"data-marketplace/internal/catalog"
)

type Handler struct {
	editor  *Editor
	columns *ColumnSet
}

func NewHandler(editor *Editor, columns *ColumnSet) *Handler {
	return &Handler{editor: editor, columns: columns}
}

// RegisterRoutes mounts the authoring surface on a router that already
// carries the admin gate.
func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/columns", h.getColumns)
	r.Put("/columns", h.replaceColumns)
	r.Post("/columns/:field/toggle", h.toggleColumn)
	r.Post("/columns/select-all", h.selectAllColumns)
	r.Post("/columns/clear-all", h.clearAllColumns)
	r.Put("/products/:id", h.updateProduct)
	r.Delete("/products/:id", h.deleteProduct)
	r.Post("/products", h.createProduct)
}

func (h *Handler) getColumns(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"columns":  Columns,
		"selected": h.columns.Selected(),
	})
}

func (h *Handler) replaceColumns(c *fiber.Ctx) error {
	payload := struct {
		Fields []string `json:"fields"`
	}{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.columns.Replace(payload.Fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return h.getColumns(c)
}

func (h *Handler) toggleColumn(c *fiber.Ctx) error {
	if err := h.columns.Toggle(c.Params("field")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return h.getColumns(c)
}

func (h *Handler) selectAllColumns(c *fiber.Ctx) error {
	h.columns.SelectAll()
	return h.getColumns(c)
}

func (h *Handler) clearAllColumns(c *fiber.Ctx) error {
	h.columns.ClearAll()
	return h.getColumns(c)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	payload := struct {
		Row      Row `json:"row"`
		Previous Row `json:"previous"`
	}{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.editor.ApplyRowUpdate(c.UserContext(), c.Params("id"), payload.Row, payload.Previous)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Product not found")
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "failed to update product",
			"error":   err.Error(),
		})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	if err := h.editor.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Product not found")
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "failed to delete product",
			"error":   err.Error(),
		})
	}
	return c.SendString("Product deleted")
}

func validateProductPayload(p *catalog.Product) map[string]string {
	required := map[string]string{
		"name":           p.Name,
		"description":    p.Description,
		"purpose":        p.Purpose,
		"type":           p.Type,
		"domain":         p.Domain,
		"region":         p.Region,
		"owner":          p.Owner,
		"classification": p.Classification,
		"gxp":            p.GXP,
	}
	errs := map[string]string{}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = field + " is required"
		}
	}
	return errs
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	p := new(catalog.Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.editor.Add(c.UserContext(), *p)
	if err != nil {
		if errors.Is(err, ErrDuplicateID) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "failed to create product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
