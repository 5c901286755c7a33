package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"train-dispatch-service/internal/domain"
)

func twoStationScenario(trainCapacity int) domain.Scenario {
	return domain.Scenario{
		Stations: []domain.Station{{Name: "A"}, {Name: "B"}},
		Routes:   []domain.Route{{Name: "ab", From: "A", To: "B", TravelTimeMins: 10}},
		Packages: []domain.Package{{Name: "pkg", Weight: 5, Origin: "A", Destination: "B"}},
		Trains:   []domain.Train{{Name: "t1", Capacity: trainCapacity, Start: "A"}},
	}
}

func TestPlanDispatchDirectDelivery(t *testing.T) {
	plan, err := PlanDispatch(context.Background(), twoStationScenario(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.MakespanMins != 10 {
		t.Fatalf("makespan = %d, want 10", plan.MakespanMins)
	}

	want := []domain.PlanStep{
		{Kind: domain.StepPickup, Station: "A", Package: "pkg", Minute: 0},
		{Kind: domain.StepMove, Station: "B", Minute: 10},
		{Kind: domain.StepDropoff, Station: "B", Package: "pkg", Minute: 10},
	}
	if !reflect.DeepEqual(plan.Trains[0].Steps, want) {
		t.Fatalf("steps = %+v, want %+v", plan.Trains[0].Steps, want)
	}
	if plan.Trains[0].CompleteAtMins != 10 {
		t.Fatalf("complete at = %d, want 10", plan.Trains[0].CompleteAtMins)
	}
}

func TestPlanDispatchCapacityInfeasible(t *testing.T) {
	// Capacity 3 can never carry the weight-5 package.
	_, err := PlanDispatch(context.Background(), twoStationScenario(3))
	if err == nil {
		t.Fatal("expected error for undersized train")
	}

	var noPlan *domain.NoFeasiblePlanError
	if !errors.As(err, &noPlan) {
		t.Fatalf("error type = %T, want *NoFeasiblePlanError", err)
	}
}

func TestPlanDispatchUnreachableDestination(t *testing.T) {
	sc := twoStationScenario(5)
	sc.Stations = append(sc.Stations, domain.Station{Name: "island"})
	sc.Packages[0].Destination = "island"

	_, err := PlanDispatch(context.Background(), sc)

	var noPlan *domain.NoFeasiblePlanError
	if !errors.As(err, &noPlan) {
		t.Fatalf("error = %v, want *NoFeasiblePlanError", err)
	}
}

func TestPlanDispatchUnknownStation(t *testing.T) {
	sc := twoStationScenario(5)
	sc.Packages[0].Origin = "nowhere"

	_, err := PlanDispatch(context.Background(), sc)

	var unknown *domain.UnknownStationError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownStationError", err)
	}
	if unknown.Station != "nowhere" {
		t.Fatalf("station = %q, want nowhere", unknown.Station)
	}
}

func TestPlanDispatchPreDeliveredPackage(t *testing.T) {
	sc := twoStationScenario(5)
	sc.Packages = []domain.Package{{Name: "home", Weight: 5, Origin: "A", Destination: "A"}}

	plan, err := PlanDispatch(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.MakespanMins != 0 {
		t.Fatalf("makespan = %d, want 0", plan.MakespanMins)
	}
	if len(plan.Trains[0].Steps) != 0 {
		t.Fatalf("steps = %+v, want none", plan.Trains[0].Steps)
	}
	if len(plan.PreDelivered) != 1 || plan.PreDelivered[0] != "home" {
		t.Fatalf("pre-delivered = %v, want [home]", plan.PreDelivered)
	}
}

func TestPlanDispatchParallelRoutesUseCheapest(t *testing.T) {
	sc := domain.Scenario{
		Stations: []domain.Station{{Name: "silom"}, {Name: "thonburi"}},
		Routes: []domain.Route{
			{Name: "r1", From: "silom", To: "thonburi", TravelTimeMins: 30},
			{Name: "r2", From: "silom", To: "thonburi", TravelTimeMins: 10},
			{Name: "r3", From: "silom", To: "thonburi", TravelTimeMins: 10},
		},
		Packages: []domain.Package{{Name: "pkg", Weight: 5, Origin: "silom", Destination: "thonburi"}},
		Trains:   []domain.Train{{Name: "t1", Capacity: 5, Start: "silom"}},
	}

	plan, err := PlanDispatch(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.MakespanMins != 10 {
		t.Fatalf("makespan = %d, want 10 (minimum of the parallel routes)", plan.MakespanMins)
	}
}

func TestPlanDispatchTwoTrainsSplitWork(t *testing.T) {
	sc := domain.Scenario{
		Stations: []domain.Station{{Name: "A"}, {Name: "B"}, {Name: "C"}},
		Routes: []domain.Route{
			{Name: "ab", From: "A", To: "B", TravelTimeMins: 10},
			{Name: "bc", From: "B", To: "C", TravelTimeMins: 10},
		},
		Packages: []domain.Package{
			{Name: "p1", Weight: 1, Origin: "A", Destination: "B"},
			{Name: "p2", Weight: 1, Origin: "C", Destination: "B"},
		},
		Trains: []domain.Train{
			{Name: "t1", Capacity: 10, Start: "A"},
			{Name: "t2", Capacity: 10, Start: "C"},
		},
	}

	plan, err := PlanDispatch(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Each train delivers its nearest package in parallel.
	if plan.MakespanMins != 10 {
		t.Fatalf("makespan = %d, want 10", plan.MakespanMins)
	}
	verifyPlan(t, sc, plan)
}

func TestPlanDispatchSequentialTripsWhenOverweight(t *testing.T) {
	// Two packages at A whose combined weight exceeds capacity: the
	// train must shuttle them one at a time.
	sc := domain.Scenario{
		Stations: []domain.Station{{Name: "A"}, {Name: "B"}},
		Routes:   []domain.Route{{Name: "ab", From: "A", To: "B", TravelTimeMins: 10}},
		Packages: []domain.Package{
			{Name: "p1", Weight: 4, Origin: "A", Destination: "B"},
			{Name: "p2", Weight: 3, Origin: "A", Destination: "B"},
		},
		Trains: []domain.Train{{Name: "t1", Capacity: 5, Start: "A"}},
	}

	plan, err := PlanDispatch(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.MakespanMins != 30 {
		t.Fatalf("makespan = %d, want 30 (deliver, return, deliver)", plan.MakespanMins)
	}
	verifyPlan(t, sc, plan)
}

func TestPlanDispatchIdempotent(t *testing.T) {
	sc := chainScenario()

	first, err := PlanDispatch(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := PlanDispatch(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.MakespanMins != second.MakespanMins {
		t.Fatalf("makespans differ: %d vs %d", first.MakespanMins, second.MakespanMins)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("plans differ between identical runs")
	}
}

func TestPlanDispatchMonotonicity(t *testing.T) {
	base := chainScenario()

	basePlan, err := PlanDispatch(context.Background(), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slower := chainScenario()
	slower.Routes[0].TravelTimeMins += 15
	slowerPlan, err := PlanDispatch(context.Background(), slower)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slowerPlan.MakespanMins < basePlan.MakespanMins {
		t.Fatalf("slowing a route reduced makespan: %d -> %d", basePlan.MakespanMins, slowerPlan.MakespanMins)
	}

	fewer := chainScenario()
	fewer.Trains = fewer.Trains[:1]
	fewerPlan, err := PlanDispatch(context.Background(), fewer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fewerPlan.MakespanMins < basePlan.MakespanMins {
		t.Fatalf("removing a train reduced makespan: %d -> %d", basePlan.MakespanMins, fewerPlan.MakespanMins)
	}
}

func TestPlanDispatchInvariants(t *testing.T) {
	sc := chainScenario()

	plan, err := PlanDispatch(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	verifyPlan(t, sc, plan)
}

// chainScenario: A-B-C-D line with three packages and two trains whose
// capacities force real sequencing decisions.
func chainScenario() domain.Scenario {
	return domain.Scenario{
		Stations: []domain.Station{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}},
		Routes: []domain.Route{
			{Name: "ab", From: "A", To: "B", TravelTimeMins: 10},
			{Name: "bc", From: "B", To: "C", TravelTimeMins: 20},
			{Name: "cd", From: "C", To: "D", TravelTimeMins: 10},
		},
		Packages: []domain.Package{
			{Name: "p1", Weight: 4, Origin: "A", Destination: "C"},
			{Name: "p2", Weight: 3, Origin: "B", Destination: "D"},
			{Name: "p3", Weight: 2, Origin: "D", Destination: "A"},
		},
		Trains: []domain.Train{
			{Name: "t1", Capacity: 5, Start: "A"},
			{Name: "t2", Capacity: 5, Start: "D"},
		},
	}
}

// verifyPlan replays the plan step by step and fails the test on any
// violated invariant: wrong stations, capacity overruns, drops before
// pickups, or undelivered packages.
func verifyPlan(t *testing.T, sc domain.Scenario, plan *domain.Plan) {
	t.Helper()

	pkgByName := make(map[string]domain.Package, len(sc.Packages))
	for _, p := range sc.Packages {
		pkgByName[p.Name] = p
	}

	pickupAt := make(map[string]int)
	dropAt := make(map[string]int)

	for ti, tp := range plan.Trains {
		train := sc.Trains[ti]
		if tp.Train != train.Name {
			t.Fatalf("train order mismatch: plan has %q at index %d, scenario has %q", tp.Train, ti, train.Name)
		}

		load := 0
		lastMinute := 0
		position := train.Start
		aboard := map[string]bool{}

		for _, step := range tp.Steps {
			if step.Minute < lastMinute {
				t.Fatalf("train %s: step minutes go backwards: %d after %d", train.Name, step.Minute, lastMinute)
			}
			lastMinute = step.Minute

			switch step.Kind {
			case domain.StepMove:
				position = step.Station

			case domain.StepPickup:
				pkg, ok := pkgByName[step.Package]
				if !ok {
					t.Fatalf("train %s picks up unknown package %q", train.Name, step.Package)
				}
				if step.Station != pkg.Origin {
					t.Fatalf("package %s picked up at %q, origin is %q", pkg.Name, step.Station, pkg.Origin)
				}
				if position != step.Station {
					t.Fatalf("train %s picks up at %q while at %q", train.Name, step.Station, position)
				}
				load += pkg.Weight
				if load > train.Capacity {
					t.Fatalf("train %s load %d exceeds capacity %d", train.Name, load, train.Capacity)
				}
				aboard[pkg.Name] = true
				pickupAt[pkg.Name] = step.Minute

			case domain.StepDropoff:
				pkg := pkgByName[step.Package]
				if !aboard[pkg.Name] {
					t.Fatalf("train %s drops %s without carrying it", train.Name, pkg.Name)
				}
				if step.Station != pkg.Destination {
					t.Fatalf("package %s dropped at %q, destination is %q", pkg.Name, step.Station, pkg.Destination)
				}
				if position != step.Station {
					t.Fatalf("train %s drops at %q while at %q", train.Name, step.Station, position)
				}
				load -= pkg.Weight
				delete(aboard, pkg.Name)
				dropAt[pkg.Name] = step.Minute
			}
		}

		if len(aboard) != 0 {
			t.Fatalf("train %s finishes still carrying %v", train.Name, aboard)
		}
	}

	preDelivered := map[string]bool{}
	for _, name := range plan.PreDelivered {
		preDelivered[name] = true
	}

	for _, p := range sc.Packages {
		if preDelivered[p.Name] {
			continue
		}
		up, picked := pickupAt[p.Name]
		down, dropped := dropAt[p.Name]
		if !picked || !dropped {
			t.Fatalf("package %s not delivered (picked=%v dropped=%v)", p.Name, picked, dropped)
		}
		if up >= down {
			t.Fatalf("package %s pickup at %d not before drop at %d", p.Name, up, down)
		}
	}
}
