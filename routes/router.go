package routes // Router setup layer.

import (
	"github.com/mfluker/aod-onboarding-pdf/handlers"
	"github.com/mfluker/aod-onboarding-pdf/middlewares"
	"github.com/mfluker/aod-onboarding-pdf/services"

	"github.com/gin-gonic/gin"
)

// Setup attaches middlewares and registers all endpoints.
func Setup(r *gin.Engine, svc services.OnboardingService, env string, probe handlers.ConverterProbe) {
	// Standard middlewares globally: access log + panic recovery.
	r.Use(middlewares.RequestLogger(), middlewares.Recovery())

	// The form page; single static file, no template engine needed.
	r.StaticFile("/", "./frontend/index.html")

	// Operator-facing health: app metadata + converter availability.
	r.GET("/healthz", handlers.Health(env, probe))

	// Group API under /api/v1 for versioning.
	api := r.Group("/api/v1")

	oh := handlers.NewOnboardingHandler(svc)
	api.POST("/onboarding", oh.Generate)        // generate + download the PDF
	api.POST("/onboarding/preview", oh.Preview) // derived email/username preview
}
