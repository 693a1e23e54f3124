package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/generator"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
)

type Handler struct {
	UC     *usecase.Service
	Runner *usecase.Runner
}

func New(uc *usecase.Service) *Handler {
	return &Handler{UC: uc, Runner: usecase.NewRunner()}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/dimacs", h.handleDimacs)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// parseGrid runs boundary validation on a request matrix.
func parseGrid(rows [][]uint8) (domain.Grid, error) {
	return domain.FromRows(rows)
}

// ---- Solve ----

type solveReq struct {
	Grid     [][]uint8 `json:"grid"`
	Strategy string    `json:"strategy,omitempty"`
}

type solveResp struct {
	Grid       domain.Grid `json:"grid,omitempty"`
	Strategy   string      `json:"strategy,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, err := parseGrid(req.Grid)
	if err != nil {
		opsTotal.WithLabelValues("solve", "bad_request").Inc()
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	strat := domain.ParseStrategy(req.Strategy)

	// One mutating operation at a time; the result (grid + stats)
	// arrives as a whole on the channel.
	ch, err := h.Runner.Dispatch(r.Context(), g, func(ctx context.Context, snap domain.Grid) (ports.Stats, error) {
		return h.UC.Solve(ctx, snap, strat)
	})
	if err != nil {
		opsTotal.WithLabelValues("solve", "busy").Inc()
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	res := <-ch
	solveDuration.WithLabelValues(strat.String()).Observe(res.Stats.Duration.Seconds())
	if res.Err != nil {
		outcome := "error"
		code := http.StatusInternalServerError
		if errors.Is(res.Err, solver.ErrUnsolvable) {
			outcome, code = "unsolvable", http.StatusUnprocessableEntity
		}
		opsTotal.WithLabelValues("solve", outcome).Inc()
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(solveResp{
			Error:      res.Err.Error(),
			Strategy:   strat.String(),
			DurationMs: res.Stats.Duration.Milliseconds(),
			Nodes:      res.Stats.Nodes,
		})
		return
	}
	opsTotal.WithLabelValues("solve", "ok").Inc()
	_ = json.NewEncoder(w).Encode(solveResp{
		Grid:       res.Grid,
		Strategy:   strat.String(),
		DurationMs: res.Stats.Duration.Milliseconds(),
		Nodes:      res.Stats.Nodes,
	})
}

// ---- Validate ----

type validateReq struct {
	Grid [][]uint8 `json:"grid"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Blanks    []domain.CellCoord `json:"blanks,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, err := parseGrid(req.Grid)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	rep, err := h.UC.Validate(r.Context(), g)
	if err != nil {
		opsTotal.WithLabelValues("validate", "error").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	opsTotal.WithLabelValues("validate", "ok").Inc()
	_ = json.NewEncoder(w).Encode(validateResp{OK: rep.OK(), Conflicts: rep.Conflicts, Blanks: rep.Blanks})
}

// ---- Generate ----

type generateReq struct {
	BlockSize int   `json:"blockSize,omitempty"`
	Attempts  int   `json:"attempts,omitempty"`
	Seed      int64 `json:"seed,omitempty"`
}

type generateResp struct {
	Grid       domain.Grid `json:"grid,omitempty"`
	Seed       int64       `json:"seed,omitempty"`
	Complete   bool        `json:"complete"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.BlockSize == 0 {
		req.BlockSize = 3
	}
	if req.BlockSize < 1 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "block size must be positive"})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := domain.NewGrid(req.BlockSize)
	attempts := req.Attempts
	ch, err := h.Runner.Dispatch(r.Context(), g, func(ctx context.Context, snap domain.Grid) (ports.Stats, error) {
		return h.UC.Fill(ctx, snap, attempts, seed)
	})
	if err != nil {
		opsTotal.WithLabelValues("generate", "busy").Inc()
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	res := <-ch
	resp := generateResp{
		Grid:       res.Grid,
		Seed:       seed,
		Complete:   res.Err == nil,
		DurationMs: res.Stats.Duration.Milliseconds(),
	}
	if res.Err != nil && !errors.Is(res.Err, generator.ErrIncomplete) {
		opsTotal.WithLabelValues("generate", "error").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(generateResp{Error: res.Err.Error()})
		return
	}
	if res.Err != nil {
		// incomplete generation still returns the partial grid
		resp.Error = res.Err.Error()
	}
	opsTotal.WithLabelValues("generate", "ok").Inc()
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- DIMACS export ----

type dimacsReq struct {
	Grid [][]uint8 `json:"grid"`
}

type dimacsResp struct {
	DIMACS string `json:"dimacs,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (h *Handler) handleDimacs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req dimacsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(dimacsResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, err := parseGrid(req.Grid)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(dimacsResp{Error: err.Error()})
		return
	}
	out, err := h.UC.DIMACS(g)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(dimacsResp{Error: err.Error()})
		return
	}
	opsTotal.WithLabelValues("dimacs", "ok").Inc()
	_ = json.NewEncoder(w).Encode(dimacsResp{DIMACS: out})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if _, err := parseGrid(p.Grid); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Puzzles: ps})
}
