package api

import (
	"net/http"

	"train-dispatch-service/internal/api/handlers"
	"train-dispatch-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(repo ports.ScenarioRepository, planCache ports.PlanCache) http.Handler {
	mux := http.NewServeMux()

	scenarioHandler := &handlers.ScenarioHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{Repo: repo, Cache: planCache}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/scenario", scenarioHandler.Get)
	mux.HandleFunc("/plans", planHandler.Plan)

	return loggingMiddleware(mux)
}
