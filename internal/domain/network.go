package domain

import (
	"fmt"
	"sort"
)

// Edge is a single adjacency entry: a neighboring station and the
// travel time in minutes of the cheapest route reaching it.
type Edge struct {
	To      string
	Minutes int
}

// Network is the immutable station/route adjacency model. Routes are
// bidirectional, and parallel routes between the same pair collapse to
// their minimum duration at construction time.
type Network struct {
	stations []string
	known    map[string]struct{}
	adj      map[string][]Edge
}

// NewNetwork validates the routes against the declared station set and
// builds the adjacency structure. It fails with UnknownStationError on
// the first route endpoint that is not a declared station.
func NewNetwork(stations []Station, routes []Route) (*Network, error) {
	known := make(map[string]struct{}, len(stations))
	names := make([]string, 0, len(stations))
	for _, s := range stations {
		if _, ok := known[s.Name]; ok {
			continue
		}
		known[s.Name] = struct{}{}
		names = append(names, s.Name)
	}

	// best[a][b] is the cheapest declared duration between a and b.
	best := make(map[string]map[string]int, len(names))
	for _, r := range routes {
		if _, ok := known[r.From]; !ok {
			return nil, &UnknownStationError{Station: r.From, Ref: fmt.Sprintf("route %s", r.Name)}
		}
		if _, ok := known[r.To]; !ok {
			return nil, &UnknownStationError{Station: r.To, Ref: fmt.Sprintf("route %s", r.Name)}
		}
		if r.From == r.To {
			// A loop adds nothing: staying put is always free.
			continue
		}

		link(best, r.From, r.To, r.TravelTimeMins)
		link(best, r.To, r.From, r.TravelTimeMins)
	}

	adj := make(map[string][]Edge, len(best))
	for from, tos := range best {
		edges := make([]Edge, 0, len(tos))
		for to, mins := range tos {
			edges = append(edges, Edge{To: to, Minutes: mins})
		}
		// Keep neighbor order stable so downstream planning is deterministic.
		sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })
		adj[from] = edges
	}

	return &Network{stations: names, known: known, adj: adj}, nil
}

func link(best map[string]map[string]int, from, to string, mins int) {
	tos, ok := best[from]
	if !ok {
		tos = make(map[string]int)
		best[from] = tos
	}
	if cur, ok := tos[to]; !ok || mins < cur {
		tos[to] = mins
	}
}

// Stations returns the declared station names in declaration order.
func (n *Network) Stations() []string {
	return n.stations
}

// HasStation reports whether the name belongs to the declared station set.
func (n *Network) HasStation(name string) bool {
	_, ok := n.known[name]
	return ok
}

// Neighbors returns the stations directly reachable from the given one,
// each with the cheapest travel time, ordered by station name.
func (n *Network) Neighbors(station string) []Edge {
	return n.adj[station]
}
