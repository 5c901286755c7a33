package domain

import "fmt"

// UnknownStationError reports a route, package, or train referencing a
// station absent from the declared station set. It is detected while
// building the network, before any search begins, and is fatal to that
// input.
type UnknownStationError struct {
	Station string
	Ref     string
}

func (e *UnknownStationError) Error() string {
	return fmt.Sprintf("unknown station %q referenced by %s", e.Station, e.Ref)
}

// NoFeasiblePlanError reports an exhausted search frontier: no sequence
// of train movements delivers every package. Typical causes are an
// unreachable origin or destination, or a package heavier than every
// train's capacity.
type NoFeasiblePlanError struct {
	Reason string
}

func (e *NoFeasiblePlanError) Error() string {
	return "no feasible plan: " + e.Reason
}
