package testutil

import (
	"testing"
	"time"

	"agenda_rastreadores/internal/domain/entities"
)

func TestApply(t *testing.T) {
	t.Run("does not alias patch values", func(t *testing.T) {
		var p entities.InstallationPatch
		p.Set(entities.FieldDataInstalacao, "2024-06-01")
		p.Set(entities.FieldNomeCompleto, "Joao")
		tec := "T1"
		inst := Apply(p, entities.Installation{TecnicoID: &tec, Status: entities.StatusAgendado})

		if inst.DataInstalacao == nil || *inst.DataInstalacao != "2024-06-01" || inst.NomeCompleto != "Joao" {
			t.Fatalf("unexpected installation: %+v", inst)
		}
		*inst.DataInstalacao = "changed"
		if v, _ := Value(p, entities.FieldDataInstalacao); *v != "2024-06-01" {
			t.Fatalf("patch value was mutated through the installation")
		}
		if inst.TecnicoID == nil || inst.Status != entities.StatusAgendado {
			t.Fatalf("untouched fields changed: %+v", inst)
		}
	})

	t.Run("clears and stamps", func(t *testing.T) {
		var p entities.InstallationPatch
		p.Clear(entities.FieldTecnicoID)
		at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		p.StampAt(at)
		tec := "T1"

		inst := Apply(p, entities.Installation{TecnicoID: &tec})
		if inst.TecnicoID != nil || !inst.UpdatedAt.Equal(at) {
			t.Fatalf("unexpected installation: %+v", inst)
		}
		if v, ok := Value(p, entities.FieldTecnicoID); !ok || v != nil {
			t.Fatalf("expected staged null, got %v %v", v, ok)
		}
		if _, ok := Value(p, entities.FieldHorario); ok {
			t.Fatalf("unexpected field in patch")
		}
	})
}
