package services

import (
	"container/heap"

	"train-dispatch-service/internal/domain"
)

// TravelMatrix is the all-pairs shortest travel time table, computed
// once per scenario and read-only afterwards. Besides the times it keeps
// the Dijkstra predecessor maps so plans can be expanded hop by hop.
type TravelMatrix struct {
	mins map[string]map[string]int
	prev map[string]map[string]string
}

// ComputeTravelMatrix runs Dijkstra from every station over the network
// adjacency. Station pairs with no connecting path are simply absent
// from the table; Time reports them as not ok rather than failing.
func ComputeTravelMatrix(net *domain.Network) *TravelMatrix {
	stations := net.Stations()

	m := &TravelMatrix{
		mins: make(map[string]map[string]int, len(stations)),
		prev: make(map[string]map[string]string, len(stations)),
	}

	for _, s := range stations {
		dist, prev := dijkstraFrom(net, s)
		m.mins[s] = dist
		m.prev[s] = prev
	}

	return m
}

// Time returns the shortest travel time in minutes between two
// stations. ok is false when no sequence of routes connects them.
// Time(s, s) is always 0 for declared stations.
func (m *TravelMatrix) Time(from, to string) (mins int, ok bool) {
	dist, ok := m.mins[from]
	if !ok {
		return 0, false
	}
	mins, ok = dist[to]
	return mins, ok
}

// Path returns the station sequence of a shortest route between the two
// stations, excluding the starting station itself. It returns nil when
// the destination is unreachable, and an empty path when from == to.
func (m *TravelMatrix) Path(from, to string) []string {
	if from == to {
		if _, ok := m.mins[from]; !ok {
			return nil
		}
		return []string{}
	}

	prev, ok := m.prev[from]
	if !ok {
		return nil
	}
	if _, ok := m.mins[from][to]; !ok {
		return nil
	}

	// Walk the predecessor chain back from the destination.
	path := []string{}
	for at := to; at != from; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// dijkstraFrom settles shortest travel times from a single source.
// Stale frontier entries are skipped on pop instead of being re-keyed.
func dijkstraFrom(net *domain.Network, source string) (map[string]int, map[string]string) {
	dist := map[string]int{source: 0}
	prev := map[string]string{}
	settled := map[string]bool{}

	pq := &stationFrontier{{station: source, mins: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)
		if settled[item.station] {
			continue
		}
		settled[item.station] = true

		for _, edge := range net.Neighbors(item.station) {
			alt := item.mins + edge.Minutes
			if cur, ok := dist[edge.To]; !ok || alt < cur {
				dist[edge.To] = alt
				prev[edge.To] = item.station
				heap.Push(pq, frontierItem{station: edge.To, mins: alt})
			}
		}
	}

	return dist, prev
}

type frontierItem struct {
	station string
	mins    int
}

type stationFrontier []frontierItem

func (f stationFrontier) Len() int           { return len(f) }
func (f stationFrontier) Less(i, j int) bool { return f[i].mins < f[j].mins }
func (f stationFrontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *stationFrontier) Push(x any) { *f = append(*f, x.(frontierItem)) }
func (f *stationFrontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
