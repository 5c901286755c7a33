package dto

import "train-dispatch-service/internal/domain"

type PlanRequest struct {
	// Scenario, when present, is planned instead of the stored one.
	Scenario *ScenarioPayload `json:"scenario"`
	NoCache  bool             `json:"no_cache"`
}

type PlanStepResponse struct {
	Action  string `json:"action"`
	Station string `json:"station"`
	Package string `json:"package,omitempty"`
	Minute  int    `json:"minute"`
}

type TrainPlanResponse struct {
	Train          string             `json:"train"`
	CompleteAtMins int                `json:"complete_at_mins"`
	Steps          []PlanStepResponse `json:"steps"`
}

type PlanResponse struct {
	MakespanMins int                 `json:"makespan_mins"`
	PreDelivered []string            `json:"pre_delivered,omitempty"`
	Cached       bool                `json:"cached"`
	Trains       []TrainPlanResponse `json:"trains"`
}

// FromDomainPlan maps a computed plan onto the wire shape.
func FromDomainPlan(plan *domain.Plan, cached bool) PlanResponse {
	res := PlanResponse{
		MakespanMins: plan.MakespanMins,
		PreDelivered: plan.PreDelivered,
		Cached:       cached,
		Trains:       make([]TrainPlanResponse, 0, len(plan.Trains)),
	}

	for _, tp := range plan.Trains {
		steps := make([]PlanStepResponse, 0, len(tp.Steps))
		for _, s := range tp.Steps {
			steps = append(steps, PlanStepResponse{
				Action:  string(s.Kind),
				Station: s.Station,
				Package: s.Package,
				Minute:  s.Minute,
			})
		}

		res.Trains = append(res.Trains, TrainPlanResponse{
			Train:          tp.Train,
			CompleteAtMins: tp.CompleteAtMins,
			Steps:          steps,
		})
	}

	return res
}
