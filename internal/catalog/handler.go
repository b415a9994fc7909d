package catalog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type Handler struct {
	store *Store
	log   zerolog.Logger
}

func NewHandler(store *Store, log zerolog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/health", h.health)
	app.Get("/api/data-products", h.getAllProducts)
	app.Get("/api/products", h.getFilteredProducts)
	app.Get("/api/products/:id", h.getProduct)
	app.Get("/api/view", h.getView)
	app.Put("/api/filters", h.setFilters)
	app.Delete("/api/filters/:field", h.removeFilter)
	app.Put("/api/search", h.setSearch)
	app.Post("/api/reload", h.reload)
	app.Get("/api/status", h.status)
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

// getAllProducts returns the raw collection, mirroring the upstream
// /api/data-products contract; the authoring grid reads this.
func (h *Handler) getAllProducts(c *fiber.Ctx) error {
	return c.JSON(h.store.Products())
}

func (h *Handler) getFilteredProducts(c *fiber.Ctx) error {
	return c.JSON(h.store.Filtered())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.store.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

func (h *Handler) getView(c *fiber.Ctx) error {
	return c.JSON(h.store.View())
}

// setFilters applies a partial filter map; all validation errors are returned
// together.
func (h *Handler) setFilters(c *fiber.Ctx) error {
	filters := map[string]string{}
	if err := c.BodyParser(&filters); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ves := map[string]string{}
	for field := range filters {
		if !IsFilterField(field) {
			ves[field] = "unknown filter field"
		}
	}
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}
	for field, value := range filters {
		_ = h.store.SetFilter(field, value)
	}
	return c.JSON(h.store.View())
}

func (h *Handler) removeFilter(c *fiber.Ctx) error {
	if err := h.store.RemoveFilter(c.Params("field")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(h.store.View())
}

func (h *Handler) setSearch(c *fiber.Ctx) error {
	payload := struct {
		Term string `json:"term"`
	}{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	h.store.SetSearchTerm(payload.Term)
	return c.JSON(h.store.View())
}

func (h *Handler) reload(c *fiber.Ctx) error {
	if err := h.store.Reload(c.UserContext()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "failed to reload products", "error": err.Error()})
	}
	return h.status(c)
}

func (h *Handler) status(c *fiber.Ctx) error {
	var errMsg *string
	if err := h.store.Err(); err != nil {
		msg := err.Error()
		errMsg = &msg
	}
	return c.JSON(fiber.Map{
		"loading": h.store.Loading(),
		"error":   errMsg,
		"count":   len(h.store.Products()),
	})
}
