package ports

import (
	"context"

	"train-dispatch-service/internal/domain"
)

// Port: a cache of computed dispatch plans keyed by scenario
// fingerprint. The search is deterministic, so a cached plan for a
// fingerprint is always still valid for that scenario.
type PlanCache interface {
	// Get returns the cached plan for the fingerprint; ok is false on a miss.
	Get(ctx context.Context, fingerprint string) (plan *domain.Plan, ok bool, err error)
	// Put stores a computed plan under the fingerprint.
	Put(ctx context.Context, fingerprint string, plan *domain.Plan) error
}
