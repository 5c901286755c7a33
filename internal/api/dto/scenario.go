package dto

import "train-dispatch-service/internal/domain"

type RoutePayload struct {
	Name           string `json:"name"`
	From           string `json:"from"`
	To             string `json:"to"`
	TravelTimeMins int    `json:"travel_time_mins"`
}

type PackagePayload struct {
	Name        string `json:"name"`
	Weight      int    `json:"weight"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type TrainPayload struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Start    string `json:"start"`
}

type ScenarioPayload struct {
	Stations []string         `json:"stations"`
	Routes   []RoutePayload   `json:"routes"`
	Packages []PackagePayload `json:"packages"`
	Trains   []TrainPayload   `json:"trains"`
}

// ToDomain maps the wire shape onto the domain scenario.
func (s ScenarioPayload) ToDomain() domain.Scenario {
	sc := domain.Scenario{
		Stations: make([]domain.Station, 0, len(s.Stations)),
		Routes:   make([]domain.Route, 0, len(s.Routes)),
		Packages: make([]domain.Package, 0, len(s.Packages)),
		Trains:   make([]domain.Train, 0, len(s.Trains)),
	}

	for _, name := range s.Stations {
		sc.Stations = append(sc.Stations, domain.Station{Name: name})
	}
	for _, r := range s.Routes {
		sc.Routes = append(sc.Routes, domain.Route{
			Name:           r.Name,
			From:           r.From,
			To:             r.To,
			TravelTimeMins: r.TravelTimeMins,
		})
	}
	for _, p := range s.Packages {
		sc.Packages = append(sc.Packages, domain.Package{
			Name:        p.Name,
			Weight:      p.Weight,
			Origin:      p.Origin,
			Destination: p.Destination,
		})
	}
	for _, t := range s.Trains {
		sc.Trains = append(sc.Trains, domain.Train{
			Name:     t.Name,
			Capacity: t.Capacity,
			Start:    t.Start,
		})
	}

	return sc
}

// FromDomainScenario maps a domain scenario onto the wire shape.
func FromDomainScenario(sc domain.Scenario) ScenarioPayload {
	out := ScenarioPayload{
		Stations: make([]string, 0, len(sc.Stations)),
		Routes:   make([]RoutePayload, 0, len(sc.Routes)),
		Packages: make([]PackagePayload, 0, len(sc.Packages)),
		Trains:   make([]TrainPayload, 0, len(sc.Trains)),
	}

	for _, s := range sc.Stations {
		out.Stations = append(out.Stations, s.Name)
	}
	for _, r := range sc.Routes {
		out.Routes = append(out.Routes, RoutePayload{
			Name:           r.Name,
			From:           r.From,
			To:             r.To,
			TravelTimeMins: r.TravelTimeMins,
		})
	}
	for _, p := range sc.Packages {
		out.Packages = append(out.Packages, PackagePayload{
			Name:        p.Name,
			Weight:      p.Weight,
			Origin:      p.Origin,
			Destination: p.Destination,
		})
	}
	for _, t := range sc.Trains {
		out.Trains = append(out.Trains, TrainPayload{
			Name:     t.Name,
			Capacity: t.Capacity,
			Start:    t.Start,
		})
	}

	return out
}
