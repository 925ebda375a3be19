package lifecycle

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is wrapped by every request-shape error so callers can map them to a 400.
	ErrValidation = errors.New("invalid mutation request")

	ErrAmbiguousIntent   = fmt.Errorf("%w: status and nome_completo cannot be sent together", ErrValidation)
	ErrUnknownIntent     = fmt.Errorf("%w: unknown intent", ErrValidation)
	ErrUnknownAction     = fmt.Errorf("%w: unknown action", ErrValidation)
	ErrIntentMismatch    = fmt.Errorf("%w: payload does not match declared intent", ErrValidation)
	ErrMissingSchedule   = fmt.Errorf("%w: date, time and tecnico_id are required to schedule", ErrValidation)
	ErrMissingReschedule = fmt.Errorf("%w: date and time are required to reschedule", ErrValidation)
	ErrInvalidDate       = fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	ErrInvalidTime       = fmt.Errorf("%w: time must be HH:MM", ErrValidation)
	ErrInvalidRecord     = fmt.Errorf("%w: invalid installation record", ErrValidation)

	ErrInvalidTransition = errors.New("transition not allowed from current status")
	ErrForbidden         = errors.New("role not allowed to perform this change")
)
