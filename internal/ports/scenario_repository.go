package ports

import (
	"context"

	"train-dispatch-service/internal/domain"
)

// Port: a boundary for loading the planning scenario from a data source.
type ScenarioRepository interface {
	// Retrieve the full scenario available for planning.
	LoadScenario(ctx context.Context) (domain.Scenario, error)
}
