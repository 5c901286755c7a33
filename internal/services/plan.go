package services

import "train-dispatch-service/internal/domain"

// extractPlan rebuilds the per-train schedules from the accepted
// terminal node's predecessor chain. Each recorded transition becomes
// one move-to step per hop of the shortest path, arrival-timestamped,
// followed by the pickup or dropoff step at the action station.
func extractPlan(sc domain.Scenario, matrix *TravelMatrix, terminal *searchNode) *domain.Plan {
	// Walk back to the initial node, then reverse into forward order.
	var transitions []*transition
	for node := terminal; node.via != nil; node = node.prev {
		transitions = append(transitions, node.via)
	}
	for i, j := 0, len(transitions)-1; i < j; i, j = i+1, j-1 {
		transitions[i], transitions[j] = transitions[j], transitions[i]
	}

	steps := make([][]domain.PlanStep, len(sc.Trains))
	clock := make([]int, len(sc.Trains))

	for _, tr := range transitions {
		at := clock[tr.train]

		hopFrom := tr.from
		for _, hop := range matrix.Path(tr.from, tr.act.Station) {
			mins, _ := matrix.Time(hopFrom, hop)
			at += mins
			steps[tr.train] = append(steps[tr.train], domain.PlanStep{
				Kind:    domain.StepMove,
				Station: hop,
				Minute:  at,
			})
			hopFrom = hop
		}

		kind := domain.StepPickup
		if tr.act.Kind == ActionDropoff {
			kind = domain.StepDropoff
		}
		steps[tr.train] = append(steps[tr.train], domain.PlanStep{
			Kind:    kind,
			Station: tr.act.Station,
			Package: tr.act.Package,
			Minute:  at,
		})

		clock[tr.train] = at
	}

	plan := &domain.Plan{
		Trains:       make([]domain.TrainPlan, len(sc.Trains)),
		MakespanMins: terminal.cost,
	}
	for i, t := range sc.Trains {
		plan.Trains[i] = domain.TrainPlan{
			Train:          t.Name,
			Steps:          steps[i],
			CompleteAtMins: clock[i],
		}
	}
	for _, p := range sc.Packages {
		if p.PreDelivered() {
			plan.PreDelivered = append(plan.PreDelivered, p.Name)
		}
	}

	return plan
}
