package interfaces

import (
	"context"

	"agenda_rastreadores/internal/domain/entities"
)

// IAuditTrailRepository is the append-only side of the store.
type IAuditTrailRepository interface {
	AppendHistory(ctx context.Context, event entities.HistoryEvent) error
	// AppendObservation writes the observation and the history entry narrating it atomically.
	AppendObservation(ctx context.Context, obs entities.Observation, event entities.HistoryEvent) error
}
