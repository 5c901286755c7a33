package domain

// Represents a single delivery unit handled by the system.
// A Package starts at its origin station, rides aboard at most one
// train at a time, and is done once dropped at its destination.
// A package whose origin equals its destination is already home and
// needs no train at all.
type Package struct {
	Name        string
	Weight      int
	Origin      string
	Destination string
}

// PreDelivered reports whether the package needs no movement.
func (p Package) PreDelivered() bool {
	return p.Origin == p.Destination
}
