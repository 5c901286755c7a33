package services

import "train-dispatch-service/internal/domain"

type ActionKind string

const (
	ActionPickup  ActionKind = "pick-up"
	ActionDropoff ActionKind = "drop-off"
)

// Action is one required package event: a pickup at the package origin
// or a dropoff at its destination.
type Action struct {
	Kind    ActionKind
	Package string
	Station string
}

// RequiredActions derives the fixed event catalogue the search must
// complete: one pickup and one dropoff per package, in package order.
// Packages whose origin equals their destination are already home and
// emit nothing. The catalogue itself carries no ordering beyond the
// implicit pickup-before-dropoff per package, which the search enforces
// through package status.
func RequiredActions(packages []domain.Package) []Action {
	actions := make([]Action, 0, 2*len(packages))
	for _, p := range packages {
		if p.PreDelivered() {
			continue
		}

		actions = append(actions,
			Action{Kind: ActionPickup, Package: p.Name, Station: p.Origin},
			Action{Kind: ActionDropoff, Package: p.Name, Station: p.Destination},
		)
	}
	return actions
}
