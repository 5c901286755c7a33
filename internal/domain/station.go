package domain

// A named stop in the rail network. Station names are unique and are
// the only identity stations have; the network carries no coordinates.
type Station struct {
	Name string
}
