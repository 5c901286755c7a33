package services

import (
	"context"
	"fmt"

	"train-dispatch-service/internal/domain"
	"train-dispatch-service/internal/platform/obs"
)

// PlanDispatch computes a minimum-makespan delivery plan for the
// scenario: build and validate the network, compute the all-pairs
// travel-time table, search the joint state space, and expand the
// winning path into per-train schedules.
//
// The computation is deterministic; identical scenarios always yield
// the same plan. It fails with UnknownStationError when the scenario
// references undeclared stations, and with NoFeasiblePlanError when no
// sequence of train movements delivers every package.
func PlanDispatch(ctx context.Context, sc domain.Scenario) (_ *domain.Plan, err error) {
	defer obs.Time(ctx, "dispatch.plan")(&err)

	net, err := domain.NewNetwork(sc.Stations, sc.Routes)
	if err != nil {
		return nil, fmt.Errorf("plan dispatch: build network: %w", err)
	}

	// Package and train references are checked against the same station
	// set as the routes, before any search begins.
	for _, p := range sc.Packages {
		if !net.HasStation(p.Origin) {
			return nil, &domain.UnknownStationError{Station: p.Origin, Ref: fmt.Sprintf("package %s", p.Name)}
		}
		if !net.HasStation(p.Destination) {
			return nil, &domain.UnknownStationError{Station: p.Destination, Ref: fmt.Sprintf("package %s", p.Name)}
		}
	}
	for _, t := range sc.Trains {
		if !net.HasStation(t.Start) {
			return nil, &domain.UnknownStationError{Station: t.Start, Ref: fmt.Sprintf("train %s", t.Name)}
		}
	}

	matrix := ComputeTravelMatrix(net)

	terminal, err := runSearch(sc, matrix)
	if err != nil {
		return nil, err
	}

	return extractPlan(sc, matrix, terminal), nil
}
