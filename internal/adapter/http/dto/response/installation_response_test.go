package response

import (
	"encoding/json"
	"testing"
	"time"

	"agenda_rastreadores/internal/domain/entities"
	"agenda_rastreadores/internal/usecase"
)

func TestFromInstallation(t *testing.T) {
	now := time.Now().UTC()
	tec := "T1"
	inst := entities.Installation{
		ID:           "5",
		NomeCompleto: "Ana",
		Status:       entities.StatusAgendado,
		TecnicoID:    &tec,
		Version:      4,
		CreatedAt:    now,
		Historico:    []entities.HistoryEvent{{ID: "h1", Descricao: "Instalação Agendada", Usuario: "admin@x.com", CreatedAt: now}},
		Observacoes:  []entities.Observation{{ID: "o1", Texto: "Portão azul", Destaque: true, Usuario: "admin@x.com", CreatedAt: now}},
	}

	res := FromInstallation(inst)
	if res.ID != "5" || res.Status != "Agendado" || res.Version != 4 || *res.TecnicoID != "T1" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Historico) != 1 || res.Historico[0].Descricao != "Instalação Agendada" {
		t.Fatalf("unexpected history: %+v", res.Historico)
	}
	if len(res.Observacoes) != 1 || !res.Observacoes[0].Destaque {
		t.Fatalf("unexpected observations: %+v", res.Observacoes)
	}
}

func TestFromInstallation_NullSchedule(t *testing.T) {
	raw, err := json.Marshal(FromInstallation(entities.Installation{ID: "1", Status: entities.StatusPendente}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	for _, k := range []string{"data_instalacao", "horario", "tecnico_id"} {
		v, ok := body[k]
		if !ok || v != nil {
			t.Fatalf("expected %s to be present and null, got %v", k, v)
		}
	}
	if hist, ok := body["historico"].([]any); !ok || len(hist) != 0 {
		t.Fatalf("expected empty history array, got %v", body["historico"])
	}
}

func TestFromMutation(t *testing.T) {
	res := FromMutation(usecase.MutationResult{Version: 7})
	if res.Message != "Instalação atualizada com sucesso" || res.Version != 7 {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromDashboard(t *testing.T) {
	res := FromDashboard(usecase.Dashboard{
		Total:     3,
		PorStatus: map[entities.InstallationStatus]int{entities.StatusPendente: 2, entities.StatusConcluido: 1},
		Pendentes: []entities.Installation{{ID: "1"}, {ID: "2"}},
	})
	if res.Total != 3 || res.PorStatus["A agendar"] != 2 || res.PorStatus["Concluído"] != 1 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if len(res.Pendentes) != 2 || res.Agendados == nil || len(res.Agendados) != 0 {
		t.Fatalf("unexpected lists: %+v", res)
	}
}
