package domain

// A direct connection between two stations, traversable in both
// directions at the same cost. Several routes may connect the same
// station pair; the network collapses them to the cheapest one.
type Route struct {
	Name           string
	From           string
	To             string
	TravelTimeMins int
}
