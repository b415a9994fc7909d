package identity

import "github.com/gofiber/fiber/v2"

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/user-info", h.getUserInfo)
	app.Post("/api/user-info/retry", h.retry)
}

func (h *Handler) getUserInfo(c *fiber.Ctx) error {
	id := h.store.Current()
	// echo the proxy identity header so downstream consumers can read it the
	// same way they would behind the real gateway
	if id.Email != "" {
		c.Set(HeaderGapAuth, id.Email)
	}
	return c.JSON(id)
}

func (h *Handler) retry(c *fiber.Ctx) error {
	if err := h.store.Retry(c.UserContext()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "failed to fetch user info",
			"error":   err.Error(),
		})
	}
	return h.getUserInfo(c)
}
