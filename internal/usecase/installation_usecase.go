package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"agenda_rastreadores/internal/domain/entities"
	"agenda_rastreadores/internal/domain/lifecycle"
	"agenda_rastreadores/internal/usecase/interfaces"
	"agenda_rastreadores/pkg/log"

	"github.com/google/uuid"
)

// IInstallationUseCase exposes the installation lifecycle operations.
//
// Mapping to the HTTP surface:
//   - POST /installations        => Create()
//   - GET  /installations/:id    => GetByID()
//   - POST /installations/update => Mutate()
type IInstallationUseCase interface {
	Create(ctx context.Context, actor entities.Actor, record lifecycle.RecordFields) (entities.Installation, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Installation, error)
	Mutate(ctx context.Context, actor entities.Actor, cmd lifecycle.Command) (MutationResult, error)
}

// MutationResult is what a successful mutation reports back to the caller.
type MutationResult struct {
	Installation entities.Installation
	Plan         lifecycle.Plan
	Version      int64
}

type InstallationUseCase struct {
	repo     interfaces.IInstallationRepository
	recorder IAuditTrailRecorder
	engine   *lifecycle.Engine
	metrics  interfaces.IMutationMetrics
	now      func() time.Time
	newID    func() string
}

var _ IInstallationUseCase = (*InstallationUseCase)(nil)

type InstallationOption func(*InstallationUseCase)

func WithMutationMetrics(m interfaces.IMutationMetrics) InstallationOption {
	return func(u *InstallationUseCase) { u.metrics = m }
}

func WithInstallationClock(now func() time.Time, newID func() string) InstallationOption {
	return func(u *InstallationUseCase) {
		u.now = now
		u.newID = newID
	}
}

func NewInstallationUseCase(repo interfaces.IInstallationRepository, recorder IAuditTrailRecorder, opts ...InstallationOption) *InstallationUseCase {
	u := &InstallationUseCase{
		repo:     repo,
		recorder: recorder,
		engine:   lifecycle.NewEngine(),
		metrics:  nopMetrics{},
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *InstallationUseCase) Create(ctx context.Context, actor entities.Actor, record lifecycle.RecordFields) (entities.Installation, error) {
	if err := lifecycle.AuthorizeCreate(actor); err != nil {
		return entities.Installation{}, err
	}
	record = lifecycle.NormalizeRecord(record)
	if err := lifecycle.ValidateRecord(record); err != nil {
		return entities.Installation{}, err
	}

	tipo := record.TipoServico
	if tipo == "" {
		tipo = entities.ServiceTypeInstalacao
	}
	now := u.now()
	inst := entities.Installation{
		ID:                u.newID(),
		NomeCompleto:      record.NomeCompleto,
		Contato:           record.Contato,
		Placa:             record.Placa,
		Modelo:            record.Modelo,
		Ano:               record.Ano,
		Cor:               record.Cor,
		Endereco:          record.Endereco,
		UsuarioRastreador: record.UsuarioRastreador,
		SenhaRastreador:   record.SenhaRastreador,
		BaseRastreador:    record.BaseRastreador,
		Bloqueio:          record.Bloqueio,
		Status:            entities.StatusPendente,
		TipoServico:       tipo,
		Version:           1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	event := u.recorder.NewEvent(inst.ID, lifecycle.NarrativeCreated, actor)

	created, err := u.repo.Create(ctx, inst, event)
	if err != nil {
		log.Error(err, "[installation][usecase] create failed", "installation_id", inst.ID)
		return entities.Installation{}, err
	}
	created.Historico = []entities.HistoryEvent{event}
	log.Info("[installation][usecase] created", "installation_id", created.ID, "usuario", actor.Identity())
	return created, nil
}

func (u *InstallationUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Installation, error) {
	if err := lifecycle.AuthorizeRead(actor); err != nil {
		return entities.Installation{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Installation{}, ErrInvalidInstallationID
	}

	inst, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Installation{}, err
	}
	if inst.ID == "" {
		return entities.Installation{}, ErrInstallationNotFound
	}
	return inst, nil
}

// Mutate runs one request through the lifecycle engine and persists the result.
//
// Every check runs before the first write. The observation is written first;
// the field update and its history entry then commit together.
func (u *InstallationUseCase) Mutate(ctx context.Context, actor entities.Actor, cmd lifecycle.Command) (res MutationResult, err error) {
	intent := cmd.Intent
	defer func() {
		u.metrics.ObserveMutation(intentLabel(intent), outcomeOf(err))
	}()

	id := strings.TrimSpace(cmd.InstallationID)
	if id == "" {
		return MutationResult{}, ErrInvalidInstallationID
	}
	cmd.InstallationID = id

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return MutationResult{}, err
	}
	if current.ID == "" {
		return MutationResult{}, ErrInstallationNotFound
	}
	if cmd.ExpectedVersion != nil && *cmd.ExpectedVersion != current.Version {
		return MutationResult{}, ErrVersionConflict
	}

	plan, err := u.engine.Plan(ctx, current, actor, cmd)
	if err != nil {
		log.Warn("[installation][usecase] mutation rejected", "installation_id", id, "usuario", actor.Identity(), "reason", err.Error())
		return MutationResult{}, err
	}
	intent = plan.Intent
	if intent == lifecycle.IntentNone && plan.Observation != nil {
		intent = lifecycle.IntentObservation
	}

	if plan.Observation != nil {
		if _, err := u.recorder.RecordObservation(ctx, id, plan.Observation.Text, plan.Observation.Highlight, actor); err != nil {
			return MutationResult{}, err
		}
	}

	res = MutationResult{Installation: current, Plan: plan, Version: current.Version}
	if !plan.HasUpdate() {
		log.Info("[installation][usecase] mutation applied", "installation_id", id, "intent", intent, "update", false)
		return res, nil
	}

	event := u.recorder.NewEvent(id, plan.Narrative, actor)
	plan.Patch.StampAt(u.now())
	updated, err := u.repo.Update(ctx, id, plan.Patch, current.Version, &event)
	if err != nil {
		log.Error(err, "[installation][usecase] update failed", "installation_id", id, "intent", intent)
		return MutationResult{}, err
	}
	if updated.ID == "" {
		return MutationResult{}, ErrInstallationNotFound
	}

	u.metrics.ObserveTransition(plan.Event, string(current.Status), string(updated.Status))
	u.metrics.ObserveAuditWrite("history")
	log.Info("[installation][usecase] mutation applied",
		"installation_id", id,
		"intent", intent,
		"event", plan.Event,
		"patch", plan.Patch.AsMap(),
		"version", updated.Version,
	)

	res.Installation = updated
	res.Version = updated.Version
	return res, nil
}

// intentLabel keeps the metric label set closed; the declared intent is client input.
func intentLabel(intent lifecycle.Intent) string {
	switch intent {
	case lifecycle.IntentNone:
		return "none"
	case lifecycle.IntentObservation, lifecycle.IntentReturnToPending, lifecycle.IntentRescheduleSelf,
		lifecycle.IntentStatusUpdate, lifecycle.IntentFullEdit:
		return string(intent)
	}
	return "unknown"
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidInstallationID), errors.Is(err, lifecycle.ErrValidation):
		return "invalid"
	case errors.Is(err, lifecycle.ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrInstallationNotFound):
		return "not_found"
	case errors.Is(err, ErrVersionConflict), errors.Is(err, lifecycle.ErrInvalidTransition):
		return "conflict"
	}
	return "error"
}
