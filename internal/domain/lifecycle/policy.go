package lifecycle

import (
	"fmt"

	"agenda_rastreadores/internal/domain/entities"
)

// Authorize checks that actor may run intent (plus the observation side
// effect, when present) on current.
//
//   - admin: everything
//   - tecnico: observations; return, self-reschedule and Concluído/Reagendar on jobs assigned to them
//   - seguradora: observations and full record edits
func Authorize(actor entities.Actor, current entities.Installation, intent Intent, cmd Command) error {
	switch actor.Role {
	case entities.RoleAdmin:
		return nil
	case entities.RoleTecnico:
		return authorizeTecnico(actor, current, intent, cmd)
	case entities.RoleSeguradora:
		switch intent {
		case IntentNone, IntentFullEdit:
			return nil
		}
		return fmt.Errorf("%w: %s cannot %s", ErrForbidden, actor.Role, intent)
	}
	return fmt.Errorf("%w: missing role", ErrForbidden)
}

func authorizeTecnico(actor entities.Actor, current entities.Installation, intent Intent, cmd Command) error {
	switch intent {
	case IntentNone:
		return nil
	case IntentReturnToPending, IntentRescheduleSelf:
	case IntentStatusUpdate:
		switch cmd.targetStatus() {
		case entities.StatusConcluido, entities.StatusReagendar:
		default:
			return fmt.Errorf("%w: tecnico cannot set status %q", ErrForbidden, cmd.Status)
		}
	default:
		return fmt.Errorf("%w: tecnico cannot %s", ErrForbidden, intent)
	}
	if !current.IsAssignedTo(actor.ID) {
		return fmt.Errorf("%w: installation %s is not assigned to %s", ErrForbidden, current.ID, actor.Identity())
	}
	return nil
}

// AuthorizeCreate allows insurers and administrators to register new requests.
func AuthorizeCreate(actor entities.Actor) error {
	switch actor.Role {
	case entities.RoleAdmin, entities.RoleSeguradora:
		return nil
	}
	return fmt.Errorf("%w: %q cannot create installations", ErrForbidden, actor.Role)
}

// AuthorizeRead allows any recognised role to read installations and their history.
func AuthorizeRead(actor entities.Actor) error {
	switch actor.Role {
	case entities.RoleAdmin, entities.RoleTecnico, entities.RoleSeguradora:
		return nil
	}
	return fmt.Errorf("%w: missing role", ErrForbidden)
}
