package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"svw.info/cephalopod/internal/domain"
	"svw.info/cephalopod/internal/generator"
	"svw.info/cephalopod/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
	// EngineName is recorded on saved results.
	EngineName domain.EngineKind
}

func New(uc *usecase.Service, engine domain.EngineKind) *Handler {
	return &Handler{UC: uc, EngineName: engine}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/api/compute", h.handleCompute)
	r.Post("/api/breakdown", h.handleBreakdown)
	r.Post("/api/validate", h.handleValidate)
	r.Post("/api/generate", h.handleGenerate)
	r.Post("/api/save", h.handleSave)
	r.Post("/api/load", h.handleLoad)
	r.Get("/api/records/{id}", h.handleRecord)
	r.Get("/api/list", h.handleList)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errStatus maps use-case errors to HTTP status codes.
func errStatus(err error) int {
	if errors.Is(err, usecase.ErrInvalidProblem) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ---- Compute ----

type problemReq struct {
	Depth uint8        `json:"depth"`
	Board domain.Board `json:"board"`
}

func (q problemReq) problem() *domain.Problem {
	return &domain.Problem{Depth: q.Depth, Board: q.Board}
}

type computeResp struct {
	Result     uint32 `json:"result"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Nodes      int    `json:"nodes,omitempty"`
	CacheHits  int    `json:"cacheHits,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	var req problemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, computeResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	res, st, err := h.UC.Compute(r.Context(), req.problem())
	if err != nil {
		writeJSON(w, errStatus(err), computeResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	writeJSON(w, http.StatusOK, computeResp{
		Result:     res,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
		CacheHits:  st.CacheHits,
	})
}

// ---- Breakdown ----

type breakdownResp struct {
	Result   uint32          `json:"result"`
	Branches []domain.Branch `json:"branches"`
	Error    string          `json:"error,omitempty"`
}

func (h *Handler) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	var req problemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, breakdownResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	total, branches, err := h.UC.Breakdown(r.Context(), req.problem())
	if err != nil {
		writeJSON(w, errStatus(err), breakdownResp{Error: err.Error()})
		return
	}
	if branches == nil {
		branches = []domain.Branch{}
	}
	writeJSON(w, http.StatusOK, breakdownResp{Result: total, Branches: branches})
}

// ---- Validate ----

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req problemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), req.problem())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Generate ----

type generateReq struct {
	Density string `json:"density,omitempty"`
	Depth   uint8  `json:"depth,omitempty"`
	Seed    int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Problem *domain.Problem `json:"problem,omitempty"`
	Seed    int64           `json:"seed,omitempty"`
	Error   string          `json:"error,omitempty"`
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
	p, _, err := h.UC.Generate(r.Context(), seed, generator.ParseDensity(req.Density), req.Depth)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, generateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResp{Problem: p, Seed: seed})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID     string `json:"id,omitempty"`
	Result uint32 `json:"result"`
	Error  string `json:"error,omitempty"`
}

// handleSave always recomputes the result; a client-supplied value is
// overwritten.
func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var rec domain.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	res, st, err := h.UC.Compute(r.Context(), &rec.Problem)
	if err != nil {
		writeJSON(w, errStatus(err), saveResp{Error: err.Error()})
		return
	}
	rec.Result = res
	rec.Engine = h.EngineName
	rec.DurationMs = st.Duration.Milliseconds()
	if rec.ID == "" {
		rec.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &rec); err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: rec.ID, Result: rec.Result})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Record *domain.Record `json:"record,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	h.load(w, r, req.ID)
}

func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	h.load(w, r, chi.URLParam(r, "id"))
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request, id string) {
	rec, err := h.UC.Load(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, loadResp{Record: rec})
}

type listResp struct {
	Records []domain.RecordMeta `json:"records"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	rs, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	if rs == nil {
		rs = []domain.RecordMeta{}
	}
	writeJSON(w, http.StatusOK, listResp{Records: rs})
}
