package lifecycle

import (
	"context"
	"errors"
	"testing"

	"agenda_rastreadores/internal/domain/entities"
	"agenda_rastreadores/internal/domain/entities/testutil"
)

var admin = entities.Actor{ID: "adm-1", Email: "admin@rastreio.com", Role: entities.RoleAdmin}

func strPtr(s string) *string { return &s }

func scheduled(id string) entities.Installation {
	return entities.Installation{
		ID:             id,
		Status:         entities.StatusAgendado,
		DataInstalacao: strPtr("2024-05-30"),
		Horario:        strPtr("09:00"),
		TecnicoID:      strPtr("T1"),
	}
}

func assertPatch(t *testing.T, got entities.InstallationPatch, want map[string]any) {
	t.Helper()
	m := got.AsMap()
	if len(m) != len(want) {
		t.Fatalf("expected patch %v, got %v", want, m)
	}
	for k, v := range want {
		gv, ok := m[k]
		if !ok || gv != v {
			t.Fatalf("expected %s=%v in patch, got %v", k, v, m)
		}
	}
}

func TestEngine_Plan_Scenarios(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	t.Run("schedule maintenance", func(t *testing.T) {
		cmd := Command{InstallationID: "5", Status: "Agendado", Date: "2024-06-01", Time: "14:00", TecnicoID: "T1", Type: "maintenance"}
		plan, err := engine.Plan(ctx, entities.Installation{ID: "5", Status: entities.StatusPendente}, admin, cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertPatch(t, plan.Patch, map[string]any{
			"status":          "Agendado",
			"data_instalacao": "2024-06-01",
			"horario":         "14:00",
			"tecnico_id":      "T1",
			"tipo_servico":    "Maintenance",
		})
		if plan.Narrative != "Manutenção Agendada" {
			t.Fatalf("unexpected narrative %q", plan.Narrative)
		}
		if plan.Intent != IntentStatusUpdate || plan.Event != EventSchedule {
			t.Fatalf("unexpected intent/event %s/%s", plan.Intent, plan.Event)
		}
	})

	t.Run("complete removal", func(t *testing.T) {
		cmd := Command{InstallationID: "5", Status: "Concluído", CompletionType: "removal"}
		plan, err := engine.Plan(ctx, scheduled("5"), admin, cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertPatch(t, plan.Patch, map[string]any{"status": "Concluído", "tecnico_id": nil})
		if plan.Narrative != "Remoção Concluída" {
			t.Fatalf("unexpected narrative %q", plan.Narrative)
		}
	})

	t.Run("return to pending", func(t *testing.T) {
		cmd := Command{InstallationID: "5", Action: ActionReturnToPending}
		plan, err := engine.Plan(ctx, scheduled("5"), admin, cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertPatch(t, plan.Patch, map[string]any{"status": "A agendar", "tecnico_id": nil, "data_instalacao": nil, "horario": nil})
		if plan.Narrative != "Serviço devolvido para a lista de pendentes pelo técnico." {
			t.Fatalf("unexpected narrative %q", plan.Narrative)
		}
	})

	t.Run("observation only", func(t *testing.T) {
		cmd := Command{InstallationID: "5", ObservationText: "Cliente ausente", ObservationHighlight: true}
		plan, err := engine.Plan(ctx, scheduled("5"), admin, cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.HasUpdate() || plan.Narrative != "" {
			t.Fatalf("expected no update, got %v %q", plan.Patch.AsMap(), plan.Narrative)
		}
		if plan.Observation == nil || plan.Observation.Text != "Cliente ausente" || !plan.Observation.Highlight {
			t.Fatalf("unexpected observation plan: %+v", plan.Observation)
		}
		if got := ObservationNarrative(plan.Observation.Text); got != `Nova observação adicionada: "Cliente ausente"` {
			t.Fatalf("unexpected observation narrative %q", got)
		}
	})
}

func TestEngine_Plan_Narratives(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	cases := []struct {
		name    string
		current entities.Installation
		cmd     Command
		want    string
	}{
		{"schedule removal", entities.Installation{Status: entities.StatusPendente}, Command{Status: "Agendado", Date: "2024-06-01", Time: "14:00", TecnicoID: "T1", Type: "removal"}, "Remoção Agendada"},
		{"schedule default", entities.Installation{Status: entities.StatusReagendar}, Command{Status: "Agendado", Date: "2024-06-01", Time: "14:00", TecnicoID: "T1"}, "Instalação Agendada"},
		{"complete maintenance", scheduled("1"), Command{Status: "Concluído", CompletionType: "maintenance"}, "Manutenção Concluída"},
		{"complete default", scheduled("1"), Command{Status: "Concluído"}, "Instalação Concluída"},
		{"self reschedule", scheduled("1"), Command{Action: ActionRescheduleSelf, Date: "2024-06-03", Time: "10:30"}, "Serviço reagendado pelo técnico para 2024-06-03 às 10:30."},
		{"other status", scheduled("1"), Command{Status: "Reagendar"}, `Status alterado para "Reagendar"`},
		{"full edit", scheduled("1"), Command{Record: &RecordFields{NomeCompleto: "Maria Souza", Placa: "abc1d23"}}, "Dados cadastrais atualizados"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := engine.Plan(ctx, tc.current, admin, tc.cmd)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if plan.Narrative != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, plan.Narrative)
			}
		})
	}
}

func TestEngine_Plan_Invariants(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	t.Run("complete clears technician from any prior value", func(t *testing.T) {
		for _, current := range []entities.Installation{scheduled("1"), {Status: entities.StatusReagendar}, {Status: entities.StatusPendente}} {
			plan, err := engine.Plan(ctx, current, admin, Command{Status: "Concluído"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			after := testutil.Apply(plan.Patch, current)
			if after.TecnicoID != nil || after.Status != entities.StatusConcluido {
				t.Fatalf("expected completed without technician, got %+v", after)
			}
		}
	})

	t.Run("schedule sets the triple", func(t *testing.T) {
		plan, err := engine.Plan(ctx, entities.Installation{Status: entities.StatusPendente}, admin, Command{Status: "Agendado", Date: "2024-06-01", Time: "08:15", TecnicoID: "T9"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		after := testutil.Apply(plan.Patch, entities.Installation{Status: entities.StatusPendente, TipoServico: "Instalação"})
		if after.DataInstalacao == nil || *after.DataInstalacao != "2024-06-01" || after.Horario == nil || *after.Horario != "08:15" || after.TecnicoID == nil || *after.TecnicoID != "T9" {
			t.Fatalf("unexpected schedule: %+v", after)
		}
		if after.TipoServico != "Instalação" {
			t.Fatalf("tipo_servico must stay untouched without type, got %q", after.TipoServico)
		}
	})

	t.Run("status A agendar clears schedule", func(t *testing.T) {
		plan, err := engine.Plan(ctx, scheduled("1"), admin, Command{Status: "A agendar"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		after := testutil.Apply(plan.Patch, scheduled("1"))
		if after.Status != entities.StatusPendente || after.TecnicoID != nil || after.DataInstalacao != nil || after.Horario != nil {
			t.Fatalf("pending invariant broken: %+v", after)
		}
	})

	t.Run("self reschedule keeps status and technician", func(t *testing.T) {
		plan, err := engine.Plan(ctx, scheduled("1"), admin, Command{Action: ActionRescheduleSelf, Date: "2024-07-01", Time: "16:00"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertPatch(t, plan.Patch, map[string]any{"data_instalacao": "2024-07-01", "horario": "16:00"})
	})

	t.Run("unknown stored status is not terminal", func(t *testing.T) {
		plan, err := engine.Plan(ctx, entities.Installation{Status: "Em análise"}, admin, Command{Action: ActionReturnToPending})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v, _ := testutil.Value(plan.Patch, entities.FieldStatus); v == nil || *v != "A agendar" {
			t.Fatalf("unexpected patch %v", plan.Patch.AsMap())
		}
	})
}

func TestEngine_Plan_Rejections(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine()

	cases := []struct {
		name    string
		current entities.Installation
		cmd     Command
		want    error
	}{
		{"status with nome_completo", scheduled("1"), Command{Status: "Agendado", Record: &RecordFields{NomeCompleto: "X"}}, ErrAmbiguousIntent},
		{"unknown action", scheduled("1"), Command{Action: "explode"}, ErrUnknownAction},
		{"unknown intent", scheduled("1"), Command{Intent: "delete"}, ErrUnknownIntent},
		{"declared status without status", scheduled("1"), Command{Intent: IntentStatusUpdate}, ErrIntentMismatch},
		{"declared full edit without record", scheduled("1"), Command{Intent: IntentFullEdit, Status: "Agendado"}, ErrIntentMismatch},
		{"declared return with other action", scheduled("1"), Command{Intent: IntentReturnToPending, Action: ActionRescheduleSelf}, ErrIntentMismatch},
		{"declared observation without text", scheduled("1"), Command{Intent: IntentObservation}, ErrIntentMismatch},
		{"schedule without technician", entities.Installation{Status: entities.StatusPendente}, Command{Status: "Agendado", Date: "2024-06-01", Time: "14:00"}, ErrMissingSchedule},
		{"schedule with bad date", entities.Installation{Status: entities.StatusPendente}, Command{Status: "Agendado", Date: "01/06/2024", Time: "14:00", TecnicoID: "T1"}, ErrInvalidDate},
		{"schedule with bad time", entities.Installation{Status: entities.StatusPendente}, Command{Status: "Agendado", Date: "2024-06-01", Time: "2pm", TecnicoID: "T1"}, ErrInvalidTime},
		{"reschedule without time", scheduled("1"), Command{Action: ActionRescheduleSelf, Date: "2024-06-01"}, ErrMissingReschedule},
		{"edit without name", scheduled("1"), Command{Record: &RecordFields{NomeCompleto: "  "}}, ErrInvalidRecord},
		{"edit with unknown base", scheduled("1"), Command{Record: &RecordFields{NomeCompleto: "A", BaseRastreador: "Outra"}}, ErrInvalidRecord},
		{"complete twice", entities.Installation{Status: entities.StatusConcluido}, Command{Status: "Concluído"}, ErrInvalidTransition},
		{"schedule completed", entities.Installation{Status: entities.StatusConcluido}, Command{Status: "Agendado", Date: "2024-06-01", Time: "14:00", TecnicoID: "T1"}, ErrInvalidTransition},
		{"return completed", entities.Installation{Status: entities.StatusConcluido}, Command{Action: ActionReturnToPending}, ErrInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.Plan(ctx, tc.current, admin, tc.cmd)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("validation errors share a root", func(t *testing.T) {
		for _, err := range []error{ErrAmbiguousIntent, ErrUnknownAction, ErrMissingSchedule, ErrInvalidRecord} {
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("%v must wrap ErrValidation", err)
			}
		}
		if errors.Is(ErrInvalidTransition, ErrValidation) || errors.Is(ErrForbidden, ErrValidation) {
			t.Fatalf("transition and permission errors are not validation errors")
		}
	})

	t.Run("edits and observations still allowed on completed jobs", func(t *testing.T) {
		done := entities.Installation{Status: entities.StatusConcluido}
		if _, err := engine.Plan(ctx, done, admin, Command{Record: &RecordFields{NomeCompleto: "A"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := engine.Plan(ctx, done, admin, Command{ObservationText: "ok"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{"maintenance": "Maintenance", "remoção": "Remoção", "": "", "ínstalação": "Ínstalação", " removal": "Removal"}
	for in, want := range cases {
		if got := capitalize(in); got != want {
			t.Fatalf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
