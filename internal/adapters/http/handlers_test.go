package httpadapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"svw.info/cephalopod/internal/breakdown"
	"svw.info/cephalopod/internal/domain"
	"svw.info/cephalopod/internal/engine"
	"svw.info/cephalopod/internal/game"
	"svw.info/cephalopod/internal/generator"
	"svw.info/cephalopod/internal/infrastructure/storage"
	"svw.info/cephalopod/internal/usecase"
	"svw.info/cephalopod/internal/validator"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	table := game.NewCombinationTable()
	uc := usecase.NewService(
		engine.NewMemo(table),
		generator.NewRandom(),
		validator.New(),
		breakdown.NewFirstMoves(table),
		storage.NewFS(t.TempDir()),
	)
	r := chi.NewRouter()
	New(uc, domain.EngineMemo).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string, out any) int {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return resp.StatusCode
}

func TestCompute(t *testing.T) {
	srv := newServer(t)

	var ok computeResp
	if code := post(t, srv, "/api/compute", `{"depth":20,"board":[[0,6,0],[2,2,2],[1,6,1]]}`, &ok); code != http.StatusOK {
		t.Fatalf("status %d: %s", code, ok.Error)
	}
	if ok.Result != 322444322 {
		t.Fatalf("result = %d want 322444322", ok.Result)
	}

	var bad computeResp
	if code := post(t, srv, "/api/compute", `{"depth":2,"board":[[0,9,0],[0,0,0],[0,0,0]]}`, &bad); code != http.StatusBadRequest {
		t.Fatalf("status %d want 400 for out-of-range cell", code)
	}
	if bad.Error == "" {
		t.Fatalf("expected an error message")
	}
}

func TestBreakdownAndSaveRoundTrip(t *testing.T) {
	srv := newServer(t)

	var bd breakdownResp
	if code := post(t, srv, "/api/breakdown", `{"depth":1,"board":[[0,0,0],[0,0,0],[0,0,0]]}`, &bd); code != http.StatusOK {
		t.Fatalf("breakdown status %d: %s", code, bd.Error)
	}
	if bd.Result != 111111111 || len(bd.Branches) != 9 {
		t.Fatalf("breakdown = %d with %d branches", bd.Result, len(bd.Branches))
	}

	var saved saveResp
	if code := post(t, srv, "/api/save", `{"id":"one","problem":{"depth":1,"board":[[0,0,0],[0,0,0],[0,0,0]]}}`, &saved); code != http.StatusOK {
		t.Fatalf("save status %d: %s", code, saved.Error)
	}
	if saved.Result != 111111111 {
		t.Fatalf("save computed %d", saved.Result)
	}

	resp, err := http.Get(srv.URL + "/api/records/one")
	if err != nil {
		t.Fatalf("GET record: %v", err)
	}
	defer resp.Body.Close()
	var loaded loadResp
	if err := json.NewDecoder(resp.Body).Decode(&loaded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if loaded.Record == nil || loaded.Record.Result != 111111111 || loaded.Record.Engine != domain.EngineMemo {
		t.Fatalf("loaded %+v", loaded)
	}
}

func TestGenerateIsSeeded(t *testing.T) {
	srv := newServer(t)
	var a, b generateResp
	post(t, srv, "/api/generate", `{"density":"dense","depth":4,"seed":7}`, &a)
	post(t, srv, "/api/generate", `{"density":"dense","depth":4,"seed":7}`, &b)
	if a.Problem == nil || b.Problem == nil || *a.Problem != *b.Problem {
		t.Fatalf("same seed gave %+v and %+v", a.Problem, b.Problem)
	}
	if a.Problem.Depth != 4 {
		t.Fatalf("depth = %d", a.Problem.Depth)
	}
}

func TestSaveAlwaysRecomputes(t *testing.T) {
	srv := newServer(t)

	var bad saveResp
	code := post(t, srv, "/api/save", `{"id":"x","problem":{"depth":1,"board":[[200,0,0],[0,0,0],[0,0,0]]},"result":5}`, &bad)
	if code != http.StatusBadRequest || bad.Error == "" {
		t.Fatalf("out-of-range board saved: status %d resp %+v", code, bad)
	}

	var forged saveResp
	if code := post(t, srv, "/api/save", `{"id":"y","problem":{"depth":1,"board":[[0,0,0],[0,0,0],[0,0,0]]},"result":42}`, &forged); code != http.StatusOK {
		t.Fatalf("save status %d: %s", code, forged.Error)
	}
	if forged.Result != 111111111 {
		t.Fatalf("saved result = %d want 111111111", forged.Result)
	}

	var loaded loadResp
	post(t, srv, "/api/load", `{"id":"y"}`, &loaded)
	if loaded.Record == nil || loaded.Record.Result != 111111111 {
		t.Fatalf("loaded %+v", loaded)
	}
	var missing loadResp
	if code := post(t, srv, "/api/load", `{"id":"x"}`, &missing); code != http.StatusNotFound || missing.Record != nil {
		t.Fatalf("rejected record must not be stored")
	}
}

func TestGenerateAcceptsEmptyBody(t *testing.T) {
	srv := newServer(t)
	var out generateResp
	if code := post(t, srv, "/api/generate", ``, &out); code != http.StatusOK {
		t.Fatalf("status %d: %s", code, out.Error)
	}
	if out.Problem == nil || out.Seed == 0 {
		t.Fatalf("generate = %+v", out)
	}
}
