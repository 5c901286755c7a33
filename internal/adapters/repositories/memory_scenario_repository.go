package repositories

import (
	"context"

	"train-dispatch-service/internal/domain"
)

// MemoryScenarioRepository serves a fixed in-memory scenario. It backs
// tests and local runs that have no postgres available.
type MemoryScenarioRepository struct {
	Scenario domain.Scenario
}

func NewMemoryScenarioRepository(sc domain.Scenario) *MemoryScenarioRepository {
	return &MemoryScenarioRepository{Scenario: sc}
}

func (m *MemoryScenarioRepository) LoadScenario(ctx context.Context) (domain.Scenario, error) {
	return m.Scenario, nil
}
