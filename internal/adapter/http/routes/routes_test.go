package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agenda_rastreadores/internal/adapter/http/handlers"
	"agenda_rastreadores/internal/adapter/persistence/repository"
	"agenda_rastreadores/internal/infrastructure/database"
	"agenda_rastreadores/internal/infrastructure/identity"
	"agenda_rastreadores/internal/infrastructure/metrics"
	"agenda_rastreadores/internal/usecase"
	"agenda_rastreadores/pkg/log"

	"github.com/gin-gonic/gin"
)

const staticTokens = "adm=admin@x.com:admin:A1,seg=seg@x.com:seguradora:S1,tec=tec@x.com:tecnico:T1,tec2=outro@x.com:tecnico:T2"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	db, err := database.OpenSQL(ctx, "sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := repository.ApplySchema(ctx, db); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	provider, err := identity.NewStaticProvider(staticTokens)
	if err != nil {
		t.Fatalf("static provider: %v", err)
	}

	m := metrics.New()
	repo := repository.NewInstallationSQLRepository(db, repository.DialectSQLite)
	recorder := usecase.NewAuditTrailRecorder(repo, usecase.WithRecorderMetrics(m))
	installations := usecase.NewInstallationUseCase(repo, recorder, usecase.WithMutationMetrics(m))
	queries := usecase.NewInstallationQueryUseCase(repo)

	return NewRouter(Dependencies{
		Installations:  handlers.NewInstallationHandler(installations, queries),
		Identity:       provider,
		HTTPMetrics:    m,
		MetricsHandler: m.Handler(),
		Logger:         log.NewNopLogger(),
	})
}

func call(t *testing.T, r http.Handler, method, path, token, body string) (int, []byte) {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

type installationView struct {
	ID             string  `json:"id"`
	Status         string  `json:"status"`
	TipoServico    string  `json:"tipo_servico"`
	DataInstalacao *string `json:"data_instalacao"`
	Horario        *string `json:"horario"`
	TecnicoID      *string `json:"tecnico_id"`
	Version        int64   `json:"version"`
	Historico      []struct {
		Descricao string `json:"descricao"`
		Usuario   string `json:"usuario"`
	} `json:"historico"`
	Observacoes []struct {
		Texto    string `json:"texto"`
		Destaque bool   `json:"destaque"`
	} `json:"observacoes"`
}

func getInstallation(t *testing.T, r http.Handler, id string) installationView {
	t.Helper()
	code, body := call(t, r, http.MethodGet, "/v1/installations/"+id, "adm", "")
	if code != http.StatusOK {
		t.Fatalf("get %s: %d %s", id, code, body)
	}
	var v installationView
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func narratives(v installationView) []string {
	out := make([]string, 0, len(v.Historico))
	for _, h := range v.Historico {
		out = append(out, h.Descricao)
	}
	return out
}

func TestRouter_PublicRoutes(t *testing.T) {
	r := newTestRouter(t)

	if code, _ := call(t, r, http.MethodGet, "/v1/ping", "", ""); code != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", code)
	}
	code, body := call(t, r, http.MethodGet, "/metrics", "", "")
	if code != http.StatusOK || !strings.Contains(string(body), "agenda_http_requests_total") {
		t.Fatalf("metrics: %d %s", code, body)
	}
	if code, _ := call(t, r, http.MethodPost, "/v1/installations/update", "", `{"id":1}`); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}
	if code, _ := call(t, r, http.MethodPost, "/v1/installations/update", "forged", `{"id":1}`); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with unknown token, got %d", code)
	}
}

func TestRouter_InstallationLifecycle(t *testing.T) {
	r := newTestRouter(t)

	code, body := call(t, r, http.MethodPost, "/v1/installations", "seg", `{"nome_completo":"Ana Souza","placa":"abc1d23","base_rastreador":"Atena","bloqueio":"Sim"}`)
	if code != http.StatusCreated {
		t.Fatalf("create: %d %s", code, body)
	}
	var created installationView
	_ = json.Unmarshal(body, &created)
	id := created.ID
	if created.Status != "A agendar" || created.Version != 1 {
		t.Fatalf("unexpected created record: %s", body)
	}

	// tecnico cannot schedule
	code, _ = call(t, r, http.MethodPost, "/v1/installations/update", "tec",
		`{"id":"`+id+`","status":"Agendado","date":"2024-06-01","time":"14:00","tecnico_id":"T1"}`)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}

	code, body = call(t, r, http.MethodPost, "/v1/installations/update", "adm",
		`{"id":"`+id+`","status":"Agendado","date":"2024-06-01","time":"14:00","tecnico_id":"T1","type":"maintenance"}`)
	if code != http.StatusOK || !strings.Contains(string(body), `"version":2`) {
		t.Fatalf("schedule: %d %s", code, body)
	}
	v := getInstallation(t, r, id)
	if v.Status != "Agendado" || *v.DataInstalacao != "2024-06-01" || *v.Horario != "14:00" || *v.TecnicoID != "T1" || v.TipoServico != "Maintenance" {
		t.Fatalf("unexpected scheduled record: %+v", v)
	}

	// stale version is rejected without writes
	code, _ = call(t, r, http.MethodPost, "/v1/installations/update", "adm", `{"id":"`+id+`","version":1,"action":"return_to_pending"}`)
	if code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}

	// ambiguous request is rejected without writes
	code, _ = call(t, r, http.MethodPost, "/v1/installations/update", "adm", `{"id":"`+id+`","status":"Concluído","nome_completo":"X","nova_observacao_texto":"nota"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}

	// the agenda of T1 holds the job, T2 sees nothing
	code, body = call(t, r, http.MethodGet, "/v1/installations/agenda", "tec", "")
	if code != http.StatusOK || !strings.Contains(string(body), id) {
		t.Fatalf("agenda T1: %d %s", code, body)
	}
	code, body = call(t, r, http.MethodGet, "/v1/installations/agenda", "tec2", "")
	if code != http.StatusOK || string(body) != "[]" {
		t.Fatalf("agenda T2: %d %s", code, body)
	}

	// observation plus return to pending by the assigned tecnico
	code, body = call(t, r, http.MethodPost, "/v1/installations/update", "tec",
		`{"id":"`+id+`","action":"return_to_pending","nova_observacao_texto":"Cliente ausente","nova_observacao_destaque":true}`)
	if code != http.StatusOK {
		t.Fatalf("return: %d %s", code, body)
	}

	v = getInstallation(t, r, id)
	if v.Status != "A agendar" || v.DataInstalacao != nil || v.Horario != nil || v.TecnicoID != nil {
		t.Fatalf("schedule fields must be cleared: %+v", v)
	}
	if len(v.Observacoes) != 1 || v.Observacoes[0].Texto != "Cliente ausente" || !v.Observacoes[0].Destaque {
		t.Fatalf("unexpected observations: %+v", v.Observacoes)
	}
	want := []string{
		"Solicitação de serviço criada",
		"Manutenção Agendada",
		`Nova observação adicionada: "Cliente ausente"`,
		"Serviço devolvido para a lista de pendentes pelo técnico.",
	}
	got := narratives(v)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected history:\n got %q\nwant %q", got, want)
	}
	if v.Historico[3].Usuario != "tec@x.com" {
		t.Fatalf("history must credit the actor, got %q", v.Historico[3].Usuario)
	}

	// admin dashboard and insurer search
	code, body = call(t, r, http.MethodGet, "/v1/installations/dashboard", "adm", "")
	if code != http.StatusOK || !strings.Contains(string(body), `"A agendar":1`) {
		t.Fatalf("dashboard: %d %s", code, body)
	}
	if code, _ = call(t, r, http.MethodGet, "/v1/installations/dashboard", "seg", ""); code != http.StatusForbidden {
		t.Fatalf("dashboard for seguradora: expected 403, got %d", code)
	}
	code, body = call(t, r, http.MethodGet, "/v1/installations/search?q=ABC1", "seg", "")
	if code != http.StatusOK || !strings.Contains(string(body), id) {
		t.Fatalf("search: %d %s", code, body)
	}
}

func TestRouter_UnknownInstallation(t *testing.T) {
	r := newTestRouter(t)

	code, body := call(t, r, http.MethodPost, "/v1/installations/update", "adm", `{"id":999,"status":"Concluído"}`)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d %s", code, body)
	}
	code, _ = call(t, r, http.MethodPost, "/v1/installations/update", "adm", `{"status":"Concluído"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing id, got %d", code)
	}
}
