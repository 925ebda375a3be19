package interfaces

import (
	"context"
	"errors"

	"agenda_rastreadores/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the stored version differs from the expected one.
var ErrVersionConflict = errors.New("installation was changed by another request")

// IInstallationRepository abstracts persistence for installations.
//
// The scheduling service must be able to:
//   - register a request together with its creation history entry
//   - read one installation with its history and observations
//   - list installations for the agenda, search and dashboard views
//   - apply a partial update and its history entry in one atomic write
//
// Not found is reported as an empty entity, never as an error.
type IInstallationRepository interface {
	Create(ctx context.Context, inst entities.Installation, event entities.HistoryEvent) (entities.Installation, error)
	GetByID(ctx context.Context, id string) (entities.Installation, error)
	List(ctx context.Context, filter entities.InstallationFilter) ([]entities.Installation, error)
	// Update applies patch when the stored version equals expectedVersion and
	// bumps the version by one. event, when non-nil, commits with the update.
	Update(ctx context.Context, id string, patch entities.InstallationPatch, expectedVersion int64, event *entities.HistoryEvent) (entities.Installation, error)
}
