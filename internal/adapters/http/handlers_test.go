package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/generator"
	"svw.info/sudoku-engine/internal/infrastructure/storage"
	"svw.info/sudoku-engine/internal/sat"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	uc := usecase.NewService(
		solver.NewBacktrackingSolver(),
		solver.NewSATSolver(sat.NewGiniEngine()),
		generator.New(),
		validator.New(),
		storage.NewFS(t.TempDir()),
	)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any, out any) int {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

var puzzle4 = [][]uint8{
	{1, 0, 0, 0},
	{0, 0, 0, 0},
	{0, 0, 0, 0},
	{0, 0, 0, 0},
}

func TestSolveEndpoint(t *testing.T) {
	srv := newTestServer(t)
	for _, strategy := range []string{"backtracking", "sat"} {
		var out solveResp
		code := postJSON(t, srv.URL+"/api/solve", solveReq{Grid: puzzle4, Strategy: strategy}, &out)
		require.Equal(t, http.StatusOK, code, "strategy %s: %s", strategy, out.Error)
		assert.Equal(t, strategy, out.Strategy)
		require.Len(t, out.Grid, 4)
		assert.Equal(t, uint8(1), out.Grid[0][0])
		for _, row := range out.Grid {
			for _, v := range row {
				assert.NotZero(t, v)
			}
		}
	}
}

func TestSolveEndpointRejectsMalformedGrid(t *testing.T) {
	srv := newTestServer(t)
	var out solveResp
	code := postJSON(t, srv.URL+"/api/solve", solveReq{Grid: [][]uint8{{1, 2}, {2, 1}}}, &out)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, out.Error)
}

func TestSolveEndpointUnsolvable(t *testing.T) {
	srv := newTestServer(t)
	bad := [][]uint8{
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	var out solveResp
	code := postJSON(t, srv.URL+"/api/solve", solveReq{Grid: bad}, &out)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.NotEmpty(t, out.Error)
}

func TestValidateEndpointSeparatesBlanksFromConflicts(t *testing.T) {
	srv := newTestServer(t)
	grid := [][]uint8{
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	var out validateResp
	code := postJSON(t, srv.URL+"/api/validate", validateReq{Grid: grid}, &out)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, out.OK)
	assert.Len(t, out.Conflicts, 2)
	assert.Len(t, out.Blanks, 14)
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer(t)
	var out generateResp
	code := postJSON(t, srv.URL+"/api/generate", generateReq{BlockSize: 2, Seed: 11}, &out)
	require.Equal(t, http.StatusOK, code, out.Error)
	require.Len(t, out.Grid, 4)
	assert.Equal(t, int64(11), out.Seed)
}

func TestDimacsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	var out dimacsResp
	code := postJSON(t, srv.URL+"/api/dimacs", dimacsReq{Grid: puzzle4}, &out)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, out.DIMACS, "p cnf 64 ")
}

func TestSaveLoadListEndpoints(t *testing.T) {
	srv := newTestServer(t)
	var saved saveResp
	code := postJSON(t, srv.URL+"/api/save", map[string]any{"grid": puzzle4}, &saved)
	require.Equal(t, http.StatusOK, code, saved.Error)
	require.NotEmpty(t, saved.ID)

	var loaded loadResp
	code = postJSON(t, srv.URL+"/api/load", loadReq{ID: saved.ID}, &loaded)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, loaded.Puzzle)
	assert.Equal(t, 4, loaded.Puzzle.Size)

	resp, err := http.Get(srv.URL + "/api/list")
	require.NoError(t, err)
	defer resp.Body.Close()
	var list listResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list.Puzzles, 1)
}
