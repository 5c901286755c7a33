package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"train-dispatch-service/internal/domain"
)

// Postgres-backed implementation of the ScenarioRepository port.
type PostgresScenarioRepository struct{ DB *sql.DB }

func NewPostgresScenarioRepository(db *sql.DB) *PostgresScenarioRepository {
	return &PostgresScenarioRepository{DB: db}
}

// Return the full scenario stored in the database.
func (s *PostgresScenarioRepository) LoadScenario(ctx context.Context) (domain.Scenario, error) {
	var sc domain.Scenario

	if s.DB == nil {
		return sc, errors.New("postgres scenario repository: DB is nil")
	}

	stations, err := s.listStations(ctx)
	if err != nil {
		return sc, fmt.Errorf("load scenario: %w", err)
	}

	routes, err := s.listRoutes(ctx)
	if err != nil {
		return sc, fmt.Errorf("load scenario: %w", err)
	}

	packages, err := s.listPackages(ctx)
	if err != nil {
		return sc, fmt.Errorf("load scenario: %w", err)
	}

	trains, err := s.listTrains(ctx)
	if err != nil {
		return sc, fmt.Errorf("load scenario: %w", err)
	}

	sc = domain.Scenario{
		Stations: stations,
		Routes:   routes,
		Packages: packages,
		Trains:   trains,
	}
	return sc, nil
}

func (s *PostgresScenarioRepository) listStations(ctx context.Context) ([]domain.Station, error) {
	query := `
	SELECT name
	FROM stations
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stations: query stations table: %w", err)
	}
	defer rows.Close()

	stations := make([]domain.Station, 0, 64)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list stations: scan row: %w", err)
		}
		stations = append(stations, domain.Station{Name: name})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stations: row iteration: %w", err)
	}

	return stations, nil
}

func (s *PostgresScenarioRepository) listRoutes(ctx context.Context) ([]domain.Route, error) {
	query := `
	SELECT name, from_station, to_station, travel_time_mins
	FROM routes
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0, 64)
	for rows.Next() {
		var r domain.Route
		if err := rows.Scan(&r.Name, &r.From, &r.To, &r.TravelTimeMins); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		routes = append(routes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}

func (s *PostgresScenarioRepository) listPackages(ctx context.Context) ([]domain.Package, error) {
	query := `
	SELECT name, weight, origin, destination
	FROM packages
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list packages: query packages table: %w", err)
	}
	defer rows.Close()

	packages := make([]domain.Package, 0, 64)
	for rows.Next() {
		var p domain.Package
		if err := rows.Scan(&p.Name, &p.Weight, &p.Origin, &p.Destination); err != nil {
			return nil, fmt.Errorf("list packages: scan row: %w", err)
		}
		packages = append(packages, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list packages: row iteration: %w", err)
	}

	return packages, nil
}

func (s *PostgresScenarioRepository) listTrains(ctx context.Context) ([]domain.Train, error) {
	query := `
	SELECT name, capacity, start_station
	FROM trains
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list trains: query trains table: %w", err)
	}
	defer rows.Close()

	trains := make([]domain.Train, 0, 16)
	for rows.Next() {
		var t domain.Train
		if err := rows.Scan(&t.Name, &t.Capacity, &t.Start); err != nil {
			return nil, fmt.Errorf("list trains: scan row: %w", err)
		}
		trains = append(trains, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trains: row iteration: %w", err)
	}

	return trains, nil
}
