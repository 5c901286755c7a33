package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the postgres schema for scenario storage.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS stations (
		name TEXT PRIMARY KEY
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		name TEXT PRIMARY KEY,
		from_station TEXT NOT NULL REFERENCES stations(name),
		to_station TEXT NOT NULL REFERENCES stations(name),
		travel_time_mins INTEGER NOT NULL CHECK (travel_time_mins >= 0)
	);
	`

	createPackagesQuery := `
	CREATE TABLE IF NOT EXISTS packages (
		name TEXT PRIMARY KEY,
		weight INTEGER NOT NULL CHECK (weight >= 0),
		origin TEXT NOT NULL REFERENCES stations(name),
		destination TEXT NOT NULL REFERENCES stations(name)
	);
	`

	createTrainsQuery := `
	CREATE TABLE IF NOT EXISTS trains (
		name TEXT PRIMARY KEY,
		capacity INTEGER NOT NULL CHECK (capacity >= 0),
		start_station TEXT NOT NULL REFERENCES stations(name)
	);
	`

	statements := []string{
		createStationsQuery,
		createRoutesQuery,
		createPackagesQuery,
		createTrainsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type RouteSeed struct {
	Name           string `json:"name"`
	From           string `json:"from"`
	To             string `json:"to"`
	TravelTimeMins int    `json:"travel_time_mins"`
}

type PackageSeed struct {
	Name        string `json:"name"`
	Weight      int    `json:"weight"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type TrainSeed struct {
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	StartStation string `json:"start_station"`
}

type ScenarioSeed struct {
	Stations []string      `json:"stations"`
	Routes   []RouteSeed   `json:"routes"`
	Packages []PackageSeed `json:"packages"`
	Trains   []TrainSeed   `json:"trains"`
}

// Populate the database with a scenario from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed scenario: read %q: %w", jsonPath, err)
	}

	var seed ScenarioSeed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("seed scenario: parse json: %w", err)
	}

	for i, name := range seed.Stations {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("seed scenario: station at index %d: name cannot be empty", i+1)
		}
	}
	for i, r := range seed.Routes {
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("seed scenario: route at index %d: name cannot be empty", i+1)
		}
		if r.TravelTimeMins < 0 {
			return fmt.Errorf("seed scenario: route %q: negative travel time %d", r.Name, r.TravelTimeMins)
		}
	}
	for i, p := range seed.Packages {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("seed scenario: package at index %d: name cannot be empty", i+1)
		}
		if p.Weight < 0 {
			return fmt.Errorf("seed scenario: package %q: negative weight %d", p.Name, p.Weight)
		}
	}
	for i, t := range seed.Trains {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("seed scenario: train at index %d: name cannot be empty", i+1)
		}
		if t.Capacity < 0 {
			return fmt.Errorf("seed scenario: train %q: negative capacity %d", t.Name, t.Capacity)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed scenario: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, name := range seed.Stations {
		if _, err := tx.Exec(`
		INSERT INTO stations (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING;
		`, name); err != nil {
			return fmt.Errorf("seed scenario: insert station %q: %w", name, err)
		}
	}

	for _, r := range seed.Routes {
		if _, err := tx.Exec(`
		INSERT INTO routes (name, from_station, to_station, travel_time_mins)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET from_station = EXCLUDED.from_station,
			to_station = EXCLUDED.to_station,
			travel_time_mins = EXCLUDED.travel_time_mins;
		`, r.Name, r.From, r.To, r.TravelTimeMins); err != nil {
			return fmt.Errorf("seed scenario: insert route %q: %w", r.Name, err)
		}
	}

	for _, p := range seed.Packages {
		if _, err := tx.Exec(`
		INSERT INTO packages (name, weight, origin, destination)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET weight = EXCLUDED.weight,
			origin = EXCLUDED.origin,
			destination = EXCLUDED.destination;
		`, p.Name, p.Weight, p.Origin, p.Destination); err != nil {
			return fmt.Errorf("seed scenario: insert package %q: %w", p.Name, err)
		}
	}

	for _, t := range seed.Trains {
		if _, err := tx.Exec(`
		INSERT INTO trains (name, capacity, start_station)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET capacity = EXCLUDED.capacity,
			start_station = EXCLUDED.start_station;
		`, t.Name, t.Capacity, t.StartStation); err != nil {
			return fmt.Errorf("seed scenario: insert train %q: %w", t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed scenario: commit tx: %w", err)
	}

	return nil
}
