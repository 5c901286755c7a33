package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"train-dispatch-service/internal/api/dto"
	"train-dispatch-service/internal/ports"
)

type ScenarioHandler struct {
	Repo ports.ScenarioRepository
}

// Get returns the stored scenario: stations, routes, packages, trains.
func (h *ScenarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sc, err := h.Repo.LoadScenario(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("load scenario failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromDomainScenario(sc))
}
