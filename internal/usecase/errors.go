package usecase

import (
	"errors"

	"agenda_rastreadores/internal/usecase/interfaces"
)

var (
	ErrInvalidInstallationID = errors.New("invalid installation id")
	ErrInstallationNotFound  = errors.New("installation not found")
	ErrVersionConflict       = interfaces.ErrVersionConflict
	ErrUnauthenticated       = errors.New("missing authenticated actor")
)
