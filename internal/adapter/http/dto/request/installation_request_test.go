package request

import (
	"encoding/json"
	"testing"

	"agenda_rastreadores/internal/domain/lifecycle"
)

func decode(t *testing.T, body string) UpdateInstallationRequest {
	t.Helper()
	var req UpdateInstallationRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return req
}

func TestFlexibleString(t *testing.T) {
	cases := map[string]string{
		`{"id":5}`:        "5",
		`{"id":"abc-1"}`:  "abc-1",
		`{"id":"  7  "}`:  "7",
		`{"id":null}`:     "",
		`{}`:              "",
		`{"id":12345678}`: "12345678",
	}
	for body, want := range cases {
		if got := decode(t, body).ResolveID(); got != want {
			t.Fatalf("%s: got %q, want %q", body, got, want)
		}
	}

	var req UpdateInstallationRequest
	if err := json.Unmarshal([]byte(`{"id":true}`), &req); err == nil {
		t.Fatalf("expected error for boolean id")
	}
}

func TestUpdateInstallationRequest_ToCommand(t *testing.T) {
	t.Run("schedule", func(t *testing.T) {
		cmd := decode(t, `{"id":5,"status":"Agendado","date":"2024-06-01","time":"14:00","tecnico_id":"T1","type":"maintenance","version":3}`).ToCommand()

		if cmd.InstallationID != "5" || cmd.Status != "Agendado" || cmd.TecnicoID != "T1" || cmd.Type != "maintenance" {
			t.Fatalf("unexpected command: %+v", cmd)
		}
		if cmd.Record != nil {
			t.Fatalf("record must be nil without nome_completo")
		}
		if cmd.ExpectedVersion == nil || *cmd.ExpectedVersion != 3 {
			t.Fatalf("expected version 3, got %v", cmd.ExpectedVersion)
		}
	})

	t.Run("full edit keyed by nome_completo", func(t *testing.T) {
		cmd := decode(t, `{"id":"9","nome_completo":"Ana","placa":"abc1d23","bloqueio":"Sim"}`).ToCommand()

		if cmd.Record == nil {
			t.Fatalf("expected record")
		}
		if cmd.Record.NomeCompleto != "Ana" || cmd.Record.Placa != "abc1d23" || cmd.Record.Bloqueio != "Sim" {
			t.Fatalf("unexpected record: %+v", cmd.Record)
		}
		if cmd.ExpectedVersion != nil {
			t.Fatalf("version must be nil when omitted")
		}
	})

	t.Run("observation and explicit intent", func(t *testing.T) {
		cmd := decode(t, `{"id":5,"intent":" observation ","nova_observacao_texto":"Cliente ausente","nova_observacao_destaque":true}`).ToCommand()

		if cmd.Intent != lifecycle.IntentObservation {
			t.Fatalf("unexpected intent %q", cmd.Intent)
		}
		if !cmd.HasObservation() || !cmd.ObservationHighlight {
			t.Fatalf("unexpected observation: %+v", cmd)
		}
	})

	t.Run("numeric tecnico id", func(t *testing.T) {
		cmd := decode(t, `{"id":5,"action":"reschedule_self","tecnico_id":42}`).ToCommand()
		if cmd.TecnicoID != "42" || cmd.Action != lifecycle.ActionRescheduleSelf {
			t.Fatalf("unexpected command: %+v", cmd)
		}
	})
}

func TestCreateInstallationRequest_ToRecord(t *testing.T) {
	var req CreateInstallationRequest
	if err := json.Unmarshal([]byte(`{"nome_completo":"Ana","placa":"abc","tipo_servico":"Remoção"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rec := req.ToRecord()
	if rec.NomeCompleto != "Ana" || rec.Placa != "abc" || rec.TipoServico != "Remoção" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}
