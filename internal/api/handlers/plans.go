package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"train-dispatch-service/internal/api/dto"
	"train-dispatch-service/internal/domain"
	"train-dispatch-service/internal/ports"
	"train-dispatch-service/internal/services"
)

type PlanHandler struct {
	Repo  ports.ScenarioRepository
	Cache ports.PlanCache
}

// Plan computes the minimum-makespan dispatch plan. The request may
// carry an inline scenario; otherwise the stored one is planned.
// Identical scenarios are served from the plan cache when one is wired.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain at most one JSON object")
		return
	}

	var sc domain.Scenario
	if req.Scenario != nil {
		sc = req.Scenario.ToDomain()
	} else {
		loaded, err := h.Repo.LoadScenario(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("load scenario failed")
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		sc = loaded
	}

	fingerprint := sc.Fingerprint()

	if h.Cache != nil && !req.NoCache {
		plan, ok, err := h.Cache.Get(r.Context(), fingerprint)
		if err != nil {
			// A broken cache degrades to recomputation, never to failure.
			log.Warn().Err(err).Msg("plan cache get failed")
		}
		if ok {
			writeJSON(w, r, http.StatusOK, dto.FromDomainPlan(plan, true))
			return
		}
	}

	plan, err := services.PlanDispatch(r.Context(), sc)
	if err != nil {
		var unknownStation *domain.UnknownStationError
		if errors.As(err, &unknownStation) {
			writeError(w, r, http.StatusBadRequest, unknownStation.Error())
			return
		}

		var noPlan *domain.NoFeasiblePlanError
		if errors.As(err, &noPlan) {
			writeError(w, r, http.StatusUnprocessableEntity, noPlan.Error())
			return
		}

		log.Error().Err(err).Msg("plan dispatch failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Put(r.Context(), fingerprint, plan); err != nil {
			log.Warn().Err(err).Msg("plan cache put failed")
		}
	}

	writeJSON(w, r, http.StatusOK, dto.FromDomainPlan(plan, false))
}
