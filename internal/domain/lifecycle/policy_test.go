package lifecycle

import (
	"errors"
	"testing"

	"agenda_rastreadores/internal/domain/entities"
)

func TestAuthorize(t *testing.T) {
	tecnico := entities.Actor{ID: "T1", Email: "tec@rastreio.com", Role: entities.RoleTecnico}
	outro := entities.Actor{ID: "T2", Email: "outro@rastreio.com", Role: entities.RoleTecnico}
	seguradora := entities.Actor{ID: "S1", Email: "seg@rastreio.com", Role: entities.RoleSeguradora}
	semPapel := entities.Actor{ID: "X", Email: "x@rastreio.com"}
	job := scheduled("1")

	cases := []struct {
		name    string
		actor   entities.Actor
		intent  Intent
		cmd     Command
		allowed bool
	}{
		{"admin schedules", admin, IntentStatusUpdate, Command{Status: "Agendado"}, true},
		{"tecnico returns own job", tecnico, IntentReturnToPending, Command{}, true},
		{"tecnico reschedules own job", tecnico, IntentRescheduleSelf, Command{}, true},
		{"tecnico completes own job", tecnico, IntentStatusUpdate, Command{Status: "Concluído"}, true},
		{"tecnico flags reschedule", tecnico, IntentStatusUpdate, Command{Status: "Reagendar"}, true},
		{"tecnico cannot schedule", tecnico, IntentStatusUpdate, Command{Status: "Agendado"}, false},
		{"tecnico cannot edit record", tecnico, IntentFullEdit, Command{}, false},
		{"other tecnico cannot return", outro, IntentReturnToPending, Command{}, false},
		{"other tecnico may add observation", outro, IntentNone, Command{ObservationText: "x"}, true},
		{"seguradora edits record", seguradora, IntentFullEdit, Command{}, true},
		{"seguradora adds observation", seguradora, IntentNone, Command{ObservationText: "x"}, true},
		{"seguradora cannot complete", seguradora, IntentStatusUpdate, Command{Status: "Concluído"}, false},
		{"missing role", semPapel, IntentNone, Command{ObservationText: "x"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.actor, job, tc.intent, tc.cmd)
			if tc.allowed && err != nil {
				t.Fatalf("expected allowed, got %v", err)
			}
			if !tc.allowed && !errors.Is(err, ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestAuthorizeCreateAndRead(t *testing.T) {
	cases := []struct {
		role      entities.Role
		canCreate bool
		canRead   bool
	}{
		{entities.RoleAdmin, true, true},
		{entities.RoleSeguradora, true, true},
		{entities.RoleTecnico, false, true},
		{"", false, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			actor := entities.Actor{ID: "x", Role: tc.role}
			if err := AuthorizeCreate(actor); (err == nil) != tc.canCreate {
				t.Fatalf("AuthorizeCreate(%q) = %v", tc.role, err)
			}
			if err := AuthorizeRead(actor); (err == nil) != tc.canRead {
				t.Fatalf("AuthorizeRead(%q) = %v", tc.role, err)
			}
		})
	}
}
