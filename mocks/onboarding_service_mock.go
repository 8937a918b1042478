package mocks

import (
	"context"

	"github.com/mfluker/aod-onboarding-pdf/models"

	"github.com/stretchr/testify/mock"
)

// OnboardingServiceMock is a testify/mock for services.OnboardingService.
// We use this to test the HTTP handlers without the real pipeline.
type OnboardingServiceMock struct{ mock.Mock }

func (m *OnboardingServiceMock) Generate(ctx context.Context, req models.GenerateRequest) (*models.Artifact, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Artifact), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OnboardingServiceMock) Preview(req models.GenerateRequest) (*models.Preview, error) {
	args := m.Called(req)
	if v := args.Get(0); v != nil {
		return v.(*models.Preview), args.Error(1)
	}
	return nil, args.Error(1)
}
