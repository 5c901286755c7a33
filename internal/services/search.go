package services

import (
	"container/heap"
	"strconv"
	"strings"

	"train-dispatch-service/internal/domain"
)

// Package status inside a search state. Loaded packages carry the index
// of the owning train; the two sentinels cover the endpoints of the
// pending -> loaded -> delivered lifecycle.
const (
	statusPending   int8 = -1
	statusDelivered int8 = -2
)

// searchState is one joint snapshot of the fleet and the packages:
// where every train is, how long it has been travelling, and what has
// happened to every package. Two states are equal iff every field is
// equal; that identity drives the visited-state pruning.
type searchState struct {
	trainAt []string
	elapsed []int
	pkg     []int8
}

func (s *searchState) key() string {
	var b strings.Builder
	for i := range s.trainAt {
		b.WriteString(s.trainAt[i])
		b.WriteByte('@')
		b.WriteString(strconv.Itoa(s.elapsed[i]))
		b.WriteByte(';')
	}
	for _, p := range s.pkg {
		b.WriteString(strconv.Itoa(int(p)))
		b.WriteByte(',')
	}
	return b.String()
}

// makespan is the fleet-level cost of the state: the fleet is done only
// when its slowest train is.
func (s *searchState) makespan() int {
	max := 0
	for _, e := range s.elapsed {
		if e > max {
			max = e
		}
	}
	return max
}

func (s *searchState) done() bool {
	for _, p := range s.pkg {
		if p != statusDelivered {
			return false
		}
	}
	return true
}

// load sums the weight currently aboard the given train.
func (s *searchState) load(train int, weights []int) int {
	total := 0
	for i, p := range s.pkg {
		if int(p) == train {
			total += weights[i]
		}
	}
	return total
}

func (s *searchState) clone() *searchState {
	next := &searchState{
		trainAt: make([]string, len(s.trainAt)),
		elapsed: make([]int, len(s.elapsed)),
		pkg:     make([]int8, len(s.pkg)),
	}
	copy(next.trainAt, s.trainAt)
	copy(next.elapsed, s.elapsed)
	copy(next.pkg, s.pkg)
	return next
}

// transition records how a node was reached: which train moved where,
// and which package event it performed on arrival.
type transition struct {
	train int
	act   Action
	from  string
}

type searchNode struct {
	state *searchState
	cost  int
	prev  *searchNode
	via   *transition
	seq   int
}

type nodeFrontier []*searchNode

func (f nodeFrontier) Len() int { return len(f) }

// Ties break on insertion order, keeping the search deterministic.
func (f nodeFrontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].seq < f[j].seq
}

func (f nodeFrontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *nodeFrontier) Push(x any) { *f = append(*f, x.(*searchNode)) }

func (f *nodeFrontier) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return node
}

// runSearch explores the joint state space with uniform-cost search.
// Each transition lets one train perform one outstanding action: it
// travels the shortest path to the action's station and picks up or
// drops off there. Pickups are capacity-checked; dropping at the
// current station is a zero-cost transition, so a train frees capacity
// before loading more at a shared stop simply by search order.
//
// The frontier is ordered by state makespan, so the first all-delivered
// state popped is reached at the minimum possible makespan.
func runSearch(sc domain.Scenario, matrix *TravelMatrix) (*searchNode, error) {
	catalogue := RequiredActions(sc.Packages)

	pkgIndex := make(map[string]int, len(sc.Packages))
	weights := make([]int, len(sc.Packages))
	for i, p := range sc.Packages {
		pkgIndex[p.Name] = i
		weights[i] = p.Weight
	}

	start := &searchState{
		trainAt: make([]string, len(sc.Trains)),
		elapsed: make([]int, len(sc.Trains)),
		pkg:     make([]int8, len(sc.Packages)),
	}
	for i, t := range sc.Trains {
		start.trainAt[i] = t.Start
	}
	for i, p := range sc.Packages {
		if p.PreDelivered() {
			start.pkg[i] = statusDelivered
		} else {
			start.pkg[i] = statusPending
		}
	}

	seq := 0
	frontier := &nodeFrontier{{state: start, cost: 0, seq: seq}}
	heap.Init(frontier)

	// visited maps state identity to the best cost it was expanded at;
	// states reached again at cost >= that are dominated and dropped.
	visited := make(map[string]int)

	for frontier.Len() > 0 {
		node := heap.Pop(frontier).(*searchNode)

		if node.state.done() {
			return node, nil
		}

		k := node.state.key()
		if best, ok := visited[k]; ok && best <= node.cost {
			continue
		}
		visited[k] = node.cost

		for _, act := range catalogue {
			pi := pkgIndex[act.Package]
			status := node.state.pkg[pi]

			switch act.Kind {
			case ActionPickup:
				if status != statusPending {
					continue
				}
				for ti, train := range sc.Trains {
					if !train.Fits(node.state.load(ti, weights), weights[pi]) {
						continue
					}
					if succ := step(node, matrix, ti, act, pi, int8(ti)); succ != nil {
						seq++
						succ.seq = seq
						pushUnlessDominated(frontier, visited, succ)
					}
				}

			case ActionDropoff:
				if status < 0 {
					continue
				}
				ti := int(status)
				if succ := step(node, matrix, ti, act, pi, statusDelivered); succ != nil {
					seq++
					succ.seq = seq
					pushUnlessDominated(frontier, visited, succ)
				}
			}
		}
	}

	return nil, &domain.NoFeasiblePlanError{
		Reason: "search frontier exhausted before every package was delivered",
	}
}

// step builds the successor where the given train travels to the
// action's station and applies the package status change. It returns
// nil when the station is unreachable from the train's position.
func step(node *searchNode, matrix *TravelMatrix, train int, act Action, pi int, newStatus int8) *searchNode {
	from := node.state.trainAt[train]
	mins, ok := matrix.Time(from, act.Station)
	if !ok {
		return nil
	}

	next := node.state.clone()
	next.trainAt[train] = act.Station
	next.elapsed[train] += mins
	next.pkg[pi] = newStatus

	return &searchNode{
		state: next,
		cost:  next.makespan(),
		prev:  node,
		via:   &transition{train: train, act: act, from: from},
	}
}

func pushUnlessDominated(frontier *nodeFrontier, visited map[string]int, succ *searchNode) {
	if best, ok := visited[succ.state.key()]; ok && best <= succ.cost {
		return
	}
	heap.Push(frontier, succ)
}
