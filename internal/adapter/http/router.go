package http

import "github.com/gofiber/fiber/v2"

// Register wires all HTTP routes onto the given Fiber app.
func Register(app *fiber.App, h *Handler) {
	v1 := app.Group("/api").Group("/v1")

	v1.Get("/health", h.Health)

	v1.Get("/session", h.GetSession)
	v1.Delete("/session", h.Reset)
	v1.Put("/session/fields/:name", h.SetField)
	v1.Post("/session/readme", h.GenerateReadme)
}
