package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// ConverterMock implements soffice.Converter so service tests never shell
// out to a real LibreOffice.
type ConverterMock struct{ mock.Mock }

func (m *ConverterMock) Convert(ctx context.Context, docx []byte) ([]byte, error) {
	args := m.Called(ctx, docx)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ConverterMock) Available() error {
	return m.Called().Error(0)
}
