package domain

// A delivery train. Capacity bounds the total weight of packages
// aboard at any instant; Start is where the train waits before its
// first movement. A train's position is always a station, never a
// point along a route.
type Train struct {
	Name     string
	Capacity int
	Start    string
}

// Fits reports whether a package of the given weight can be loaded on
// top of the current load without exceeding capacity.
func (t Train) Fits(currentLoad, weight int) bool {
	return currentLoad+weight <= t.Capacity
}
