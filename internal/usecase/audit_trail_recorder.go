package usecase

import (
	"context"
	"strings"
	"time"

	"agenda_rastreadores/internal/domain/entities"
	"agenda_rastreadores/internal/domain/lifecycle"
	"agenda_rastreadores/internal/usecase/interfaces"
	"agenda_rastreadores/pkg/log"

	"github.com/google/uuid"
)

// IAuditTrailRecorder appends history and observations for an installation.
//
// The recorder owns identity, id and timestamp of every entry; callers only
// say what happened and who did it.
type IAuditTrailRecorder interface {
	NewEvent(installationID, narrative string, actor entities.Actor) entities.HistoryEvent
	RecordEvent(ctx context.Context, installationID, narrative string, actor entities.Actor) (entities.HistoryEvent, error)
	RecordObservation(ctx context.Context, installationID, text string, highlight bool, actor entities.Actor) (entities.Observation, error)
}

type AuditTrailRecorder struct {
	repo    interfaces.IAuditTrailRepository
	metrics interfaces.IMutationMetrics
	now     func() time.Time
	newID   func() string
}

var _ IAuditTrailRecorder = (*AuditTrailRecorder)(nil)

type RecorderOption func(*AuditTrailRecorder)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *AuditTrailRecorder) { r.now = now }
}

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(newID func() string) RecorderOption {
	return func(r *AuditTrailRecorder) { r.newID = newID }
}

func WithRecorderMetrics(m interfaces.IMutationMetrics) RecorderOption {
	return func(r *AuditTrailRecorder) { r.metrics = m }
}

func NewAuditTrailRecorder(repo interfaces.IAuditTrailRepository, opts ...RecorderOption) *AuditTrailRecorder {
	r := &AuditTrailRecorder{
		repo:    repo,
		metrics: nopMetrics{},
		now:     func() time.Time { return time.Now().UTC() },
		newID:   newEventID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *AuditTrailRecorder) NewEvent(installationID, narrative string, actor entities.Actor) entities.HistoryEvent {
	return entities.HistoryEvent{
		ID:             r.newID(),
		InstallationID: installationID,
		Descricao:      narrative,
		Usuario:        actor.Identity(),
		CreatedAt:      r.now(),
	}
}

func (r *AuditTrailRecorder) RecordEvent(ctx context.Context, installationID, narrative string, actor entities.Actor) (entities.HistoryEvent, error) {
	installationID = strings.TrimSpace(installationID)
	if installationID == "" {
		return entities.HistoryEvent{}, ErrInvalidInstallationID
	}

	event := r.NewEvent(installationID, narrative, actor)
	if err := r.repo.AppendHistory(ctx, event); err != nil {
		log.Error(err, "[audit][usecase] append history failed", "installation_id", installationID)
		return entities.HistoryEvent{}, err
	}
	r.metrics.ObserveAuditWrite("history")
	return event, nil
}

func (r *AuditTrailRecorder) RecordObservation(ctx context.Context, installationID, text string, highlight bool, actor entities.Actor) (entities.Observation, error) {
	installationID = strings.TrimSpace(installationID)
	if installationID == "" {
		return entities.Observation{}, ErrInvalidInstallationID
	}

	obs := entities.Observation{
		ID:             r.newID(),
		InstallationID: installationID,
		Texto:          text,
		Destaque:       highlight,
		Usuario:        actor.Identity(),
		CreatedAt:      r.now(),
	}
	event := r.NewEvent(installationID, lifecycle.ObservationNarrative(text), actor)
	if err := r.repo.AppendObservation(ctx, obs, event); err != nil {
		log.Error(err, "[audit][usecase] append observation failed", "installation_id", installationID)
		return entities.Observation{}, err
	}
	r.metrics.ObserveAuditWrite("observation")
	return obs, nil
}

type nopMetrics struct{}

func (nopMetrics) ObserveMutation(string, string)           {}
func (nopMetrics) ObserveTransition(string, string, string) {}
func (nopMetrics) ObserveAuditWrite(string)                 {}

// newEventID returns a time-ordered UUIDv7 so entries stamped in the same
// instant still sort in append order.
func newEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
