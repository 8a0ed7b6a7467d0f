package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockConfirmer is a testify mock implementing types.Confirmer
type MockConfirmer struct {
	mock.Mock
}

// Confirm records the prompt and returns the configured answer
func (m *MockConfirmer) Confirm(prompt string) (bool, error) {
	args := m.Called(prompt)
	return args.Bool(0), args.Error(1)
}
