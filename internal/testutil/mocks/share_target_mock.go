package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockShareTarget is a mock implementation of share.Target.
type MockShareTarget struct {
	mock.Mock
}

func (m *MockShareTarget) Write(text string) error {
	args := m.Called(text)
	return args.Error(0)
}
