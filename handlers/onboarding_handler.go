package handlers // Controller layer translates HTTP <-> service calls.

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mfluker/aod-onboarding-pdf/global"
	"github.com/mfluker/aod-onboarding-pdf/models"
	"github.com/mfluker/aod-onboarding-pdf/services"

	"github.com/gin-gonic/gin"
)

// OnboardingHandler bundles dependencies needed by the onboarding endpoints.
type OnboardingHandler struct {
	svc services.OnboardingService // injected pipeline
}

// NewOnboardingHandler constructs the handler with its dependencies.
func NewOnboardingHandler(svc services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{svc: svc}
}

// Generate handles POST /api/v1/onboarding. Accepts a browser form post
// or JSON and streams the PDF back as a download.
func (h *OnboardingHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBind(&req); err != nil { // bind form or JSON by content type
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	art, err := h.svc.Generate(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": userMessage(err)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", art.Filename))
	c.Data(http.StatusOK, "application/pdf", art.Bytes)
}

// Preview handles POST /api/v1/onboarding/preview and returns the derived
// email/username/greeting so the form can show them before the download.
func (h *OnboardingHandler) Preview(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.svc.Preview(req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": userMessage(err)})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ConverterProbe reports whether the external converter is usable.
type ConverterProbe func() error

// Health handles GET /healthz: app metadata + converter availability.
// Converter trouble is an operator problem, so it flips the status to 503
// without leaking host details to end users.
func Health(env string, probe ConverterProbe) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		converter := "ok"
		if err := probe(); err != nil {
			status = http.StatusServiceUnavailable
			converter = "unavailable"
		}
		c.JSON(status, gin.H{
			"version":   global.AppVersion,
			"env":       env,
			"converter": converter,
		})
	}
}

// statusFor maps the pipeline error taxonomy to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrConverterUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, models.ErrConversionFailed):
		return http.StatusBadGateway
	default: // includes ErrTemplateMissing; nothing the user can fix
		return http.StatusInternalServerError
	}
}

// userMessage keeps responses friendly: input problems echo the reason,
// environment problems get a generic line instead of host internals.
func userMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return err.Error()
	case errors.Is(err, models.ErrConverterUnavailable), errors.Is(err, models.ErrConversionFailed):
		return "PDF conversion is currently unavailable, please try again later"
	default:
		return "internal error"
	}
}
