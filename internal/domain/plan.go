package domain

// StepKind discriminates the three things a train does: travel one hop,
// take a package aboard, or set one down.
type StepKind string

const (
	StepMove    StepKind = "move-to"
	StepPickup  StepKind = "pick-up"
	StepDropoff StepKind = "drop-off"
)

// PlanStep is one entry of a train's ordered schedule. Minute is the
// absolute time the step completes: the arrival minute for moves, the
// instant of the transfer for pickups and drops. Package is empty for
// moves.
type PlanStep struct {
	Kind    StepKind
	Station string
	Package string
	Minute  int
}

// TrainPlan is the full ordered schedule of a single train.
type TrainPlan struct {
	Train          string
	Steps          []PlanStep
	CompleteAtMins int
}

// Represents the computed delivery plan for the whole fleet.
// A Plan is the output of the dispatch search and describes, per train,
// the exact sequence of movements and package transfers. It is
// immutable planning data and contains no side effects.
type Plan struct {
	Trains       []TrainPlan
	MakespanMins int
	PreDelivered []string
}
