package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"train-dispatch-service/internal/adapters/repositories"
	"train-dispatch-service/internal/api/dto"
	"train-dispatch-service/internal/domain"
)

func storedScenario() domain.Scenario {
	return domain.Scenario{
		Stations: []domain.Station{{Name: "A"}, {Name: "B"}},
		Routes:   []domain.Route{{Name: "ab", From: "A", To: "B", TravelTimeMins: 10}},
		Packages: []domain.Package{{Name: "pkg", Weight: 5, Origin: "A", Destination: "B"}},
		Trains:   []domain.Train{{Name: "t1", Capacity: 5, Start: "A"}},
	}
}

func TestPlanEndpointStoredScenario(t *testing.T) {
	router := NewRouter(repositories.NewMemoryScenarioRepository(storedScenario()), nil)

	req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.MakespanMins != 10 {
		t.Fatalf("makespan = %d, want 10", res.MakespanMins)
	}
	if res.Cached {
		t.Fatal("first computation should not be served from cache")
	}
	if len(res.Trains) != 1 || len(res.Trains[0].Steps) != 3 {
		t.Fatalf("unexpected plan shape: %+v", res.Trains)
	}
}

func TestPlanEndpointInlineScenario(t *testing.T) {
	router := NewRouter(repositories.NewMemoryScenarioRepository(domain.Scenario{}), nil)

	inline := dto.FromDomainScenario(storedScenario())
	body, err := json.Marshal(dto.PlanRequest{Scenario: &inline})
	if err != nil {
		t.Fatalf("encode request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.MakespanMins != 10 {
		t.Fatalf("makespan = %d, want 10", res.MakespanMins)
	}
}

func TestPlanEndpointNoFeasiblePlan(t *testing.T) {
	sc := storedScenario()
	sc.Trains[0].Capacity = 3

	router := NewRouter(repositories.NewMemoryScenarioRepository(sc), nil)

	req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestPlanEndpointUnknownStation(t *testing.T) {
	sc := storedScenario()
	sc.Packages[0].Origin = "nowhere"

	router := NewRouter(repositories.NewMemoryScenarioRepository(sc), nil)

	req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestScenarioEndpoint(t *testing.T) {
	router := NewRouter(repositories.NewMemoryScenarioRepository(storedScenario()), nil)

	req := httptest.NewRequest(http.MethodGet, "/scenario", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.ScenarioPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Stations) != 2 || len(res.Packages) != 1 || len(res.Trains) != 1 {
		t.Fatalf("unexpected scenario shape: %+v", res)
	}
}
