package contract

import (
	"context"

	"github.com/huangsam/scorecard/schema"
	"github.com/stretchr/testify/mock"
)

// MockExperimentSource is a mock type for the ExperimentSource type.
type MockExperimentSource struct {
	mock.Mock
}

var _ ExperimentSource = &MockExperimentSource{} // Compile-time check

// Fetch implements the contract.ExperimentSource interface.
func (m *MockExperimentSource) Fetch(ctx context.Context) ([]schema.Experiment, error) {
	ret := m.Called(ctx)
	exps, _ := ret.Get(0).([]schema.Experiment)
	return exps, ret.Error(1)
}

// Delete implements the contract.ExperimentSource interface.
func (m *MockExperimentSource) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}
