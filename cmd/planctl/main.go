package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"train-dispatch-service/internal/domain"
	"train-dispatch-service/internal/services"
)

// planctl computes a dispatch plan for a scenario given entirely on the
// command line, without the API server or any backing store.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(zerolog.WarnLevel)

	app := &cli.App{
		Name:  "planctl",
		Usage: "compute a minimum-makespan delivery plan for a train fleet",

		Commands: []*cli.Command{
			{
				Name:  "plan",
				Usage: "plan the scenario given on the flags and print the schedule",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "station", Usage: "`NAME` (repeatable)"},
					&cli.StringSliceFlag{Name: "route", Usage: "`NAME,STATION1,STATION2,TRAVEL_TIME_MINS` (repeatable)"},
					&cli.StringSliceFlag{Name: "package", Usage: "`NAME,WEIGHT,ORIGIN,DESTINATION` (repeatable)"},
					&cli.StringSliceFlag{Name: "train", Usage: "`NAME,CAPACITY,START` (repeatable)"},
				},
				Action: runPlan,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func runPlan(c *cli.Context) error {
	sc, err := parseScenario(c)
	if err != nil {
		return err
	}

	plan, err := services.PlanDispatch(context.Background(), sc)
	if err != nil {
		return err
	}

	printPlan(plan)
	return nil
}

func parseScenario(c *cli.Context) (domain.Scenario, error) {
	var sc domain.Scenario

	for _, name := range c.StringSlice("station") {
		sc.Stations = append(sc.Stations, domain.Station{Name: name})
	}

	for _, input := range c.StringSlice("route") {
		route, err := parseRoute(input)
		if err != nil {
			return sc, err
		}
		sc.Routes = append(sc.Routes, route)
	}

	for _, input := range c.StringSlice("package") {
		pkg, err := parsePackage(input)
		if err != nil {
			return sc, err
		}
		sc.Packages = append(sc.Packages, pkg)
	}

	for _, input := range c.StringSlice("train") {
		train, err := parseTrain(input)
		if err != nil {
			return sc, err
		}
		sc.Trains = append(sc.Trains, train)
	}

	return sc, nil
}

func parseRoute(input string) (domain.Route, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 4 {
		return domain.Route{}, fmt.Errorf("parse route %q: want NAME,STATION1,STATION2,TRAVEL_TIME_MINS", input)
	}

	mins, err := strconv.Atoi(parts[3])
	if err != nil {
		return domain.Route{}, fmt.Errorf("parse route %q: travel time: %w", input, err)
	}

	return domain.Route{
		Name:           parts[0],
		From:           parts[1],
		To:             parts[2],
		TravelTimeMins: mins,
	}, nil
}

func parsePackage(input string) (domain.Package, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 4 {
		return domain.Package{}, fmt.Errorf("parse package %q: want NAME,WEIGHT,ORIGIN,DESTINATION", input)
	}

	weight, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.Package{}, fmt.Errorf("parse package %q: weight: %w", input, err)
	}

	return domain.Package{
		Name:        parts[0],
		Weight:      weight,
		Origin:      parts[2],
		Destination: parts[3],
	}, nil
}

func parseTrain(input string) (domain.Train, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 3 {
		return domain.Train{}, fmt.Errorf("parse train %q: want NAME,CAPACITY,START", input)
	}

	capacity, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.Train{}, fmt.Errorf("parse train %q: capacity: %w", input, err)
	}

	return domain.Train{
		Name:     parts[0],
		Capacity: capacity,
		Start:    parts[2],
	}, nil
}

func printPlan(plan *domain.Plan) {
	for _, tp := range plan.Trains {
		fmt.Printf("%s:\n", tp.Train)
		for _, s := range tp.Steps {
			switch s.Kind {
			case domain.StepMove:
				fmt.Printf("  t+%04d  %-8s  %s\n", s.Minute, s.Kind, s.Station)
			default:
				fmt.Printf("  t+%04d  %-8s  %s @ %s\n", s.Minute, s.Kind, s.Package, s.Station)
			}
		}
		if len(tp.Steps) == 0 {
			fmt.Printf("  (idle)\n")
		}
	}

	for _, name := range plan.PreDelivered {
		fmt.Printf("%s: already at destination\n", name)
	}

	fmt.Printf("makespan: %d mins\n", plan.MakespanMins)
}
