// Use-case layer; owns the generate pipeline, not HTTP or process details.

package services

import (
	"context"
	"fmt"

	"github.com/mfluker/aod-onboarding-pdf/core"
	"github.com/mfluker/aod-onboarding-pdf/global"
	"github.com/mfluker/aod-onboarding-pdf/models"
	"github.com/mfluker/aod-onboarding-pdf/repositories"
	"github.com/mfluker/aod-onboarding-pdf/utils/docx"
	"github.com/mfluker/aod-onboarding-pdf/utils/redislog"
	"github.com/mfluker/aod-onboarding-pdf/utils/soffice"
)

// OnboardingService lists the use-cases handlers can call.
type OnboardingService interface {
	// Generate runs the full pipeline and returns the PDF artifact.
	// Any failure aborts the request; no partial artifact is ever returned.
	Generate(ctx context.Context, req models.GenerateRequest) (*models.Artifact, error)
	// Preview derives the identity values without touching the converter.
	Preview(req models.GenerateRequest) (*models.Preview, error)
}

// onboardingService wires the template store, the converter and the
// email domain together. No mutable state: safe for concurrent requests.
type onboardingService struct {
	repo   repositories.TemplateRepository // read-only embedded templates
	conv   soffice.Converter               // external converter behind an interface
	domain string                          // appended to the email local part
	log    *redislog.Logger                // optional Redis log sink (nil-safe)
}

// NewOnboardingService constructs the service with all dependencies injected.
func NewOnboardingService(repo repositories.TemplateRepository, conv soffice.Converter, emailDomain string, rlog *redislog.Logger) OnboardingService {
	return &onboardingService{repo: repo, conv: conv, domain: emailDomain, log: rlog}
}

// Generate: validate -> normalize -> select template -> substitute ->
// convert -> name the artifact.
func (s *onboardingService) Generate(ctx context.Context, req models.GenerateRequest) (*models.Artifact, error) {
	// Normalize first; invalid names must fail before any template or
	// converter work happens.
	id, err := core.Normalize(req.FirstName, req.LastName)
	if err != nil {
		s.log.Warn("generate invalid input", map[string]string{"role": string(req.Role), "err": err.Error()})
		return nil, err
	}

	tpl, err := s.repo.Template(req.Role)
	if err != nil {
		s.log.Error("generate template lookup failed", map[string]string{"role": string(req.Role), "err": err.Error()})
		return nil, err
	}

	filled, leftover, err := docx.Fill(tpl, s.replacements(id))
	if err != nil {
		s.log.Error("generate substitution failed", map[string]string{"role": string(req.Role), "err": err.Error()})
		return nil, fmt.Errorf("fill template: %w", err)
	}
	if leftover > 0 {
		// Non-fatal: a token survived substitution (e.g. stranded outside
		// a text run). Logged so template problems get noticed.
		s.log.Warn("partial substitution", map[string]string{"role": string(req.Role), "unresolved": fmt.Sprint(leftover)})
	}

	pdf, err := s.conv.Convert(ctx, filled)
	if err != nil {
		s.log.Error("generate conversion failed", map[string]string{"role": string(req.Role), "err": err.Error()})
		return nil, err
	}

	name := core.Filename(req.Role, req.FirstName, req.LastName)
	s.log.Info("generate success", map[string]string{"role": string(req.Role), "filename": name, "pdf_bytes": fmt.Sprint(len(pdf))})
	return &models.Artifact{Filename: name, Bytes: pdf}, nil
}

// Preview derives email/username/greeting for the form's details panel.
func (s *onboardingService) Preview(req models.GenerateRequest) (*models.Preview, error) {
	id, err := core.Normalize(req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	return &models.Preview{
		Greeting: id.Greeting,
		Email:    id.EmailLocal + "@" + s.domain,
		Username: id.Username,
		Filename: core.Filename(req.Role, req.FirstName, req.LastName),
	}, nil
}

// replacements maps the three recognized tokens to their values.
func (s *onboardingService) replacements(id models.Identity) map[string]string {
	return map[string]string{
		global.TokenGreeting: id.Greeting,
		global.TokenEmail:    id.EmailLocal + "@" + s.domain,
		global.TokenUsername: id.Username,
	}
}
