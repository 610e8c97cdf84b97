package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"svw.info/kiltergen/internal/domain"
	"svw.info/kiltergen/internal/generator"
	"svw.info/kiltergen/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
	// DefaultParams fill request fields the caller leaves at zero.
	DefaultParams domain.GenerationParams
}

func New(uc *usecase.Service, defaults domain.GenerationParams) *Handler {
	return &Handler{UC: uc, DefaultParams: defaults}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/api/generate", h.handleGenerate)
	r.Post("/api/score", h.handleScore)
	r.Post("/api/flow", h.handleFlow)
	r.Post("/api/validate", h.handleValidate)
	r.Post("/api/save", h.handleSave)
	r.Get("/api/routes/{id}", h.handleLoad)
	r.Get("/api/routes", h.handleList)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ---- Generate ----

type generateReq struct {
	Seed   int64                    `json:"seed,omitempty"`
	Params *domain.GenerationParams `json:"params,omitempty"`
}

type generateResp struct {
	Route      *domain.Route           `json:"route,omitempty"`
	Seed       int64                   `json:"seed,omitempty"`
	Params     domain.GenerationParams `json:"params"`
	Score      *domain.Score           `json:"score,omitempty"`
	Flow       string                  `json:"flow,omitempty"`
	Moves      int                     `json:"moves"`
	DurationMs int64                   `json:"durationMs"`
	Error      string                  `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	params := h.DefaultParams
	if req.Params != nil {
		params = *req.Params
	}

	route, st, err := h.UC.Generate(r.Context(), seed, params)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, generator.ErrInvalidParams):
			status = http.StatusBadRequest
		case errors.Is(err, generator.ErrNoReachableFinish):
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, generateResp{Seed: seed, Params: params, Error: err.Error()})
		return
	}

	resp := generateResp{
		Route:      route,
		Seed:       seed,
		Params:     params,
		Moves:      st.Moves,
		DurationMs: st.Duration.Milliseconds(),
	}
	// Scoring is best-effort enrichment of the generate response; the
	// dedicated endpoints remain the contract for standalone scoring.
	if score, err := h.UC.Score(r.Context(), route); err == nil {
		resp.Score = &score
	}
	if verdict, err := h.UC.FlowVerdict(r.Context(), route); err == nil {
		resp.Flow = verdict
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Score / Flow ----

type routeReq struct {
	Route domain.Route `json:"route"`
}

type scoreResp struct {
	Score domain.Score `json:"score"`
	Error string       `json:"error,omitempty"`
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	var req routeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, scoreResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	score, err := h.UC.Score(r.Context(), &req.Route)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, scoreResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, scoreResp{Score: score})
}

type flowResp struct {
	Flow  string `json:"flow"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleFlow(w http.ResponseWriter, r *http.Request) {
	var req routeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, flowResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	verdict, err := h.UC.FlowVerdict(r.Context(), &req.Route)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, flowResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, flowResp{Flow: verdict})
}

// ---- Validate ----

type validateReq struct {
	Route  domain.Route             `json:"route"`
	Params *domain.GenerationParams `json:"params,omitempty"`
}

type validateResp struct {
	OK        bool              `json:"ok"`
	Conflicts []domain.Conflict `json:"conflicts,omitempty"`
	Error     string            `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	params := h.DefaultParams
	if req.Params != nil {
		params = *req.Params
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), &req.Route, params)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var sr domain.SavedRoute
	if err := json.NewDecoder(r.Body).Decode(&sr); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if sr.ID == "" {
		sr.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if sr.CreatedAt == 0 {
		sr.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &sr); err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: sr.ID})
}

type loadResp struct {
	Route *domain.SavedRoute `json:"route,omitempty"`
	Error string             `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sr, err := h.UC.Load(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, loadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, loadResp{Route: sr})
}

type listResp struct {
	Routes []domain.RouteMeta `json:"routes"`
	Error  string             `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	if metas == nil {
		metas = []domain.RouteMeta{}
	}
	writeJSON(w, http.StatusOK, listResp{Routes: metas})
}
