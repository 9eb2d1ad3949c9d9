package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/notifyhq/notify-admin/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Support *handlers.SupportHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	supportGroup := app.Group("/support")
	supportGroup.Get("/", cfg.Support.SupportPage)
	supportGroup.Post("/", cfg.Support.ChooseSupportType)
	supportGroup.Get("/triage", cfg.Support.TriagePage)
	supportGroup.Post("/triage", cfg.Support.TriageAnswer)
	supportGroup.Get("/escalate", cfg.Support.EscalationPage)
	supportGroup.Get("/thanks", cfg.Support.ThanksPage)
	supportGroup.Get("/feedback/:ticket_type", cfg.Support.FeedbackPage)
	supportGroup.Post("/feedback/:ticket_type", cfg.Support.SubmitFeedback)
}
