package identity

import "github.com/gofiber/fiber/v2"

// RequireAdmin protects authoring routes. The gate fails closed: requests
// pass only once the identity is loaded, error-free, and admin. A request
// arriving while the identity is unresolved is denied rather than letting
// protected content flash through.
func RequireAdmin(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !store.Loaded() || store.Loading() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "identity not established",
			})
		}
		if err := store.Err(); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "unable to verify permissions",
				"error":   err.Error(),
			})
		}
		if !store.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "admin access required",
				"user":    store.Current().DisplayName,
			})
		}
		return c.Next()
	}
}
