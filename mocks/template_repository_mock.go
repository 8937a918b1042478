package mocks

import (
	"github.com/mfluker/aod-onboarding-pdf/models"

	"github.com/stretchr/testify/mock"
)

// TemplateRepositoryMock stands in for the embedded template store so
// service tests can hand out arbitrary template bytes per role.
type TemplateRepositoryMock struct{ mock.Mock }

func (m *TemplateRepositoryMock) Template(role models.Role) ([]byte, error) {
	args := m.Called(role)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}
