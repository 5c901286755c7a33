package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Scenario is the validated planning input: the station network plus
// the fleet and the outstanding packages. It is the unit of storage,
// caching and API exchange.
type Scenario struct {
	Stations []Station
	Routes   []Route
	Packages []Package
	Trains   []Train
}

// Fingerprint returns a stable hex digest of the scenario, used as the
// plan cache key. Two scenarios with identical content share a
// fingerprint regardless of where they were loaded from.
func (s Scenario) Fingerprint() string {
	raw, err := json.Marshal(s)
	if err != nil {
		// Scenario contains only marshallable fields; this cannot fail.
		return ""
	}

	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
