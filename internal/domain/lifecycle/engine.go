package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agenda_rastreadores/internal/domain/entities"
)

// ObservationPlan is the note a request asks to append.
type ObservationPlan struct {
	Text      string
	Highlight bool
}

// Plan is what the engine decided for one request. Patch may be empty; Narrative
// is the primary history entry and is empty whenever Patch is.
type Plan struct {
	Intent      Intent
	Event       string
	Patch       entities.InstallationPatch
	Narrative   string
	Observation *ObservationPlan
}

func (p Plan) HasUpdate() bool { return !p.Patch.IsEmpty() }

// Engine decides, from the stored installation and an inbound command, which
// fields change and which narrative is recorded. It performs no I/O.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Plan resolves the intent, checks the actor's permission and runs the state
// machine. Every validation happens here so a rejected request writes nothing.
func (e *Engine) Plan(ctx context.Context, current entities.Installation, actor entities.Actor, cmd Command) (Plan, error) {
	cmd = normalize(cmd)

	intent, err := ResolveIntent(cmd)
	if err != nil {
		return Plan{}, err
	}
	if err := Authorize(actor, current, intent, cmd); err != nil {
		return Plan{}, err
	}

	plan := Plan{Intent: intent}
	if cmd.HasObservation() {
		plan.Observation = &ObservationPlan{Text: cmd.ObservationText, Highlight: cmd.ObservationHighlight}
	}
	if intent == IntentNone {
		return plan, nil
	}

	status := current.Status
	if status == "" {
		status = entities.StatusPendente
	}

	event, target := eventFor(intent, cmd)
	plan.Event = event
	sm := NewStateMachine(status, target)
	if err := sm.Fire(ctx, event, &transition{cmd: cmd, plan: &plan}); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

func eventFor(intent Intent, cmd Command) (event string, target entities.InstallationStatus) {
	switch intent {
	case IntentReturnToPending:
		return EventReturn, ""
	case IntentRescheduleSelf:
		return EventRescheduleSelf, ""
	case IntentFullEdit:
		return EventEditRecord, ""
	}
	switch s := cmd.targetStatus(); s {
	case entities.StatusAgendado:
		return EventSchedule, ""
	case entities.StatusConcluido:
		return EventComplete, ""
	default:
		return EventChangeStatus, s
	}
}

func normalize(cmd Command) Command {
	cmd.Action = strings.TrimSpace(cmd.Action)
	cmd.Status = strings.TrimSpace(cmd.Status)
	cmd.Date = strings.TrimSpace(cmd.Date)
	cmd.Time = strings.TrimSpace(cmd.Time)
	cmd.Type = strings.TrimSpace(cmd.Type)
	cmd.CompletionType = strings.TrimSpace(cmd.CompletionType)
	cmd.TecnicoID = strings.TrimSpace(cmd.TecnicoID)
	cmd.ObservationText = strings.TrimSpace(cmd.ObservationText)
	if cmd.Record != nil {
		r := NormalizeRecord(*cmd.Record)
		cmd.Record = &r
	}
	return cmd
}

// NormalizeRecord trims the descriptive fields and upper-cases the plate.
func NormalizeRecord(r RecordFields) RecordFields {
	r.NomeCompleto = strings.TrimSpace(r.NomeCompleto)
	r.Placa = strings.ToUpper(strings.TrimSpace(r.Placa))
	r.BaseRastreador = strings.TrimSpace(r.BaseRastreador)
	r.Bloqueio = strings.TrimSpace(r.Bloqueio)
	r.TipoServico = strings.TrimSpace(r.TipoServico)
	return r
}

func validateSchedule(date, hour string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if _, err := time.Parse("15:04", hour); err != nil {
		if _, err := time.Parse("15:04:05", hour); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTime, hour)
		}
	}
	return nil
}

// ValidateRecord checks the descriptive fields of a submission or full edit.
func ValidateRecord(r RecordFields) error {
	return validateRecord(&r)
}

func validateRecord(r *RecordFields) error {
	if r == nil || strings.TrimSpace(r.NomeCompleto) == "" {
		return fmt.Errorf("%w: nome_completo is required", ErrInvalidRecord)
	}
	switch r.BaseRastreador {
	case "", entities.TrackerBaseAtena, entities.TrackerBaseAutocontrol:
	default:
		return fmt.Errorf("%w: base_rastreador %q", ErrInvalidRecord, r.BaseRastreador)
	}
	switch r.Bloqueio {
	case "", entities.LockSim, entities.LockNao:
	default:
		return fmt.Errorf("%w: bloqueio %q", ErrInvalidRecord, r.Bloqueio)
	}
	return nil
}
