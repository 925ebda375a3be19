package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"

	"agenda_rastreadores/internal/domain/entities"
)

const (
	EventSchedule       = "agendar"
	EventComplete       = "concluir"
	EventReturn         = "devolver"
	EventRescheduleSelf = "reagendar_tecnico"
	EventChangeStatus   = "alterar_status"
	EventEditRecord     = "editar_cadastro"
)

var knownStatuses = []entities.InstallationStatus{
	entities.StatusPendente,
	entities.StatusAgendado,
	entities.StatusConcluido,
	entities.StatusReagendar,
}

// StateMachine is the installation lifecycle for a single request.
//
// It is rebuilt per request from the stored status, so statuses written by
// older clients still take part in the graph as non-terminal states.
type StateMachine struct {
	*fsm.FSM
}

// transition travels through the callbacks as the first event argument.
type transition struct {
	cmd  Command
	plan *Plan
}

// NewStateMachine builds the graph for current. target is only used by the
// generic status change event and may be empty.
func NewStateMachine(current, target entities.InstallationStatus) *StateMachine {
	m := &StateMachine{}

	states := append([]entities.InstallationStatus(nil), knownStatuses...)
	if !isKnown(current) {
		states = append(states, current)
	}
	var open []string
	var all []string
	for _, s := range states {
		all = append(all, string(s))
		if !s.IsTerminal() {
			open = append(open, string(s))
		}
	}

	events := fsm.Events{
		{Name: EventSchedule, Src: open, Dst: string(entities.StatusAgendado)},
		{Name: EventComplete, Src: open, Dst: string(entities.StatusConcluido)},
		{Name: EventReturn, Src: open, Dst: string(entities.StatusPendente)},
	}
	// Self transitions keep the status; looplab reports them as NoTransitionError.
	for _, s := range open {
		events = append(events, fsm.EventDesc{Name: EventRescheduleSelf, Src: []string{s}, Dst: s})
	}
	for _, s := range all {
		events = append(events, fsm.EventDesc{Name: EventEditRecord, Src: []string{s}, Dst: s})
	}
	if target != "" {
		events = append(events, fsm.EventDesc{Name: EventChangeStatus, Src: open, Dst: string(target)})
	}

	callbacks := fsm.Callbacks{
		// Guards (before_...): reject malformed payloads before anything is staged
		"before_" + EventSchedule:       guard(m.GuardSchedule),
		"before_" + EventRescheduleSelf: guard(m.GuardReschedule),
		"before_" + EventEditRecord:     guard(m.GuardRecord),

		// Side-Effects (after_...): stage the field patch and the narrative
		"after_" + EventSchedule:       action(m.ActionSchedule),
		"after_" + EventComplete:       action(m.ActionComplete),
		"after_" + EventReturn:         action(m.ActionReturn),
		"after_" + EventRescheduleSelf: action(m.ActionReschedule),
		"after_" + EventEditRecord:     action(m.ActionEditRecord),
	}
	if target != "" {
		callbacks["after_"+EventChangeStatus] = action(m.ActionChangeStatus)
	}

	m.FSM = fsm.NewFSM(string(current), events, callbacks)
	return m
}

// Fire runs event and translates library errors into lifecycle errors.
func (m *StateMachine) Fire(ctx context.Context, event string, t *transition) error {
	if !m.Can(event) {
		return fmt.Errorf("%w: %s from %q", ErrInvalidTransition, event, m.Current())
	}
	err := m.Event(ctx, event, t)
	if err == nil {
		return nil
	}

	var canceled fsm.CanceledError
	if errors.As(err, &canceled) {
		return canceled.Err
	}
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return noTransition.Err
	}
	var invalid fsm.InvalidEventError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s from %q", ErrInvalidTransition, invalid.Event, invalid.State)
	}
	return err
}

func (m *StateMachine) GuardSchedule(_ context.Context, e *fsm.Event) error {
	t := e.Args[0].(*transition)
	if t.cmd.Date == "" || t.cmd.Time == "" || t.cmd.TecnicoID == "" {
		return ErrMissingSchedule
	}
	return validateSchedule(t.cmd.Date, t.cmd.Time)
}

func (m *StateMachine) GuardReschedule(_ context.Context, e *fsm.Event) error {
	t := e.Args[0].(*transition)
	if t.cmd.Date == "" || t.cmd.Time == "" {
		return ErrMissingReschedule
	}
	return validateSchedule(t.cmd.Date, t.cmd.Time)
}

func (m *StateMachine) GuardRecord(_ context.Context, e *fsm.Event) error {
	t := e.Args[0].(*transition)
	return validateRecord(t.cmd.Record)
}

// ActionSchedule sets the schedule triple and, when a service type is given, the capitalised type.
func (m *StateMachine) ActionSchedule(_ context.Context, e *fsm.Event) error {
	t := e.Args[0].(*transition)
	p := &t.plan.Patch
	p.Set(entities.FieldStatus, string(entities.StatusAgendado))
	p.Set(entities.FieldDataInstalacao, t.cmd.Date)
	p.Set(entities.FieldHorario, t.cmd.Time)
	p.Set(entities.FieldTecnicoID, t.cmd.TecnicoID)
	if t.cmd.Type != "" {
		p.Set(entities.FieldTipoServico, capitalize(t.cmd.Type))
	}
	t.plan.Narrative = scheduledNarrative(t.cmd.Type)
	return nil
}

// ActionComplete releases the technician; date and time stay as a record of the visit.
func (m *StateMachine) ActionComplete(_ context.Context, e *fsm.Event) error {
	t := e.Args[0].(*transition)
	t.plan.Patch.Set(entities.FieldStatus, string(entities.StatusConcluido))
	t.plan.Patch.Clear(entities.FieldTecnicoID)
	t.plan.Narrative = completedNarrative(t.cmd.CompletionType)
	return nil
}

func (m *StateMachine) ActionReturn(_ context.Context, e *fsm.Event) error {
	t := e.Args[0].(*transition)
	p := &t.plan.Patch
	p.Set(entities.FieldStatus, string(entities.StatusPendente))
	p.Clear(entities.FieldTecnicoID)
	p.Clear(entities.FieldDataInstalacao)
	p.Clear(entities.FieldHorario)
	t.plan.Narrative = NarrativeReturnedToPending
	return nil
}

func (m *StateMachine) ActionReschedule(_ context.Context, e *fsm.Event) error {
	t := e.Args[0].(*transition)
	t.plan.Patch.Set(entities.FieldDataInstalacao, t.cmd.Date)
	t.plan.Patch.Set(entities.FieldHorario, t.cmd.Time)
	t.plan.Narrative = rescheduledNarrative(t.cmd.Date, t.cmd.Time)
	return nil
}

// ActionChangeStatus stores the status verbatim. Moving back to A agendar also
// clears the schedule so the pending invariant holds.
func (m *StateMachine) ActionChangeStatus(_ context.Context, e *fsm.Event) error {
	t := e.Args[0].(*transition)
	status := entities.InstallationStatus(e.Dst)
	t.plan.Patch.Set(entities.FieldStatus, string(status))
	if status == entities.StatusPendente {
		t.plan.Patch.Clear(entities.FieldTecnicoID)
		t.plan.Patch.Clear(entities.FieldDataInstalacao)
		t.plan.Patch.Clear(entities.FieldHorario)
	}
	t.plan.Narrative = statusChangedNarrative(status)
	return nil
}

func (m *StateMachine) ActionEditRecord(_ context.Context, e *fsm.Event) error {
	t := e.Args[0].(*transition)
	r := t.cmd.Record
	p := &t.plan.Patch
	p.Set(entities.FieldNomeCompleto, r.NomeCompleto)
	p.Set(entities.FieldContato, r.Contato)
	p.Set(entities.FieldPlaca, r.Placa)
	p.Set(entities.FieldModelo, r.Modelo)
	p.Set(entities.FieldAno, r.Ano)
	p.Set(entities.FieldCor, r.Cor)
	p.Set(entities.FieldEndereco, r.Endereco)
	p.Set(entities.FieldUsuarioRastreador, r.UsuarioRastreador)
	p.Set(entities.FieldSenhaRastreador, r.SenhaRastreador)
	p.Set(entities.FieldBaseRastreador, r.BaseRastreador)
	p.Set(entities.FieldBloqueio, r.Bloqueio)
	if r.TipoServico != "" {
		p.Set(entities.FieldTipoServico, r.TipoServico)
	}
	t.plan.Narrative = NarrativeRecordUpdated
	return nil
}

func guard(fn func(ctx context.Context, e *fsm.Event) error) fsm.Callback {
	return func(ctx context.Context, e *fsm.Event) {
		if err := fn(ctx, e); err != nil {
			e.Cancel(err)
		}
	}
}

func action(fn func(ctx context.Context, e *fsm.Event) error) fsm.Callback {
	return func(ctx context.Context, e *fsm.Event) {
		if err := fn(ctx, e); err != nil {
			e.Err = err
		}
	}
}

func isKnown(s entities.InstallationStatus) bool {
	for _, k := range knownStatuses {
		if k == s {
			return true
		}
	}
	return false
}
