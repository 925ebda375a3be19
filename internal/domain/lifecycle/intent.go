package lifecycle

import (
	"strings"

	"agenda_rastreadores/internal/domain/entities"
)

// Intent is the caller's purpose for a mutation request.
type Intent string

const (
	IntentNone            Intent = ""
	IntentObservation     Intent = "observation"
	IntentReturnToPending Intent = "return_to_pending"
	IntentRescheduleSelf  Intent = "reschedule_self"
	IntentStatusUpdate    Intent = "status_update"
	IntentFullEdit        Intent = "full_edit"
)

const (
	ActionReturnToPending = "return_to_pending"
	ActionRescheduleSelf  = "reschedule_self"

	CompletionMaintenance = "maintenance"
	CompletionRemoval     = "removal"
)

// RecordFields is the full client/vehicle record sent by an edit.
type RecordFields struct {
	NomeCompleto      string
	Contato           string
	Placa             string
	Modelo            string
	Ano               string
	Cor               string
	Endereco          string
	UsuarioRastreador string
	SenhaRastreador   string
	BaseRastreador    string
	Bloqueio          string
	TipoServico       string
}

// Command is a parsed mutation request.
//
// Intent may be declared explicitly; when empty it is inferred from which
// fields are present. Record is non-nil whenever nome_completo was sent.
type Command struct {
	InstallationID string
	Intent         Intent
	Action         string

	Status         string
	Date           string
	Time           string
	Type           string
	CompletionType string
	TecnicoID      string

	Record *RecordFields

	ObservationText      string
	ObservationHighlight bool

	ExpectedVersion *int64
}

func (c Command) HasObservation() bool {
	return strings.TrimSpace(c.ObservationText) != ""
}

func (c Command) hasStatus() bool {
	return strings.TrimSpace(c.Status) != ""
}

// ResolveIntent returns the primary intent of the command, excluding the
// observation side effect which is always evaluated separately.
//
// A declared intent must match the payload. Without a declaration the
// precedence is: action, nome_completo, status.
func ResolveIntent(c Command) (Intent, error) {
	if c.Record != nil && c.hasStatus() {
		return IntentNone, ErrAmbiguousIntent
	}

	switch c.Intent {
	case IntentNone:
		return inferIntent(c)
	case IntentObservation:
		if !c.HasObservation() || c.Action != "" || c.hasStatus() || c.Record != nil {
			return IntentNone, ErrIntentMismatch
		}
		return IntentNone, nil
	case IntentReturnToPending, IntentRescheduleSelf:
		if c.Action != "" && c.Action != string(c.Intent) {
			return IntentNone, ErrIntentMismatch
		}
		if c.hasStatus() || c.Record != nil {
			return IntentNone, ErrIntentMismatch
		}
		return c.Intent, nil
	case IntentStatusUpdate:
		if !c.hasStatus() || c.Action != "" {
			return IntentNone, ErrIntentMismatch
		}
		return c.Intent, nil
	case IntentFullEdit:
		if c.Record == nil || c.Action != "" {
			return IntentNone, ErrIntentMismatch
		}
		return c.Intent, nil
	}
	return IntentNone, ErrUnknownIntent
}

func inferIntent(c Command) (Intent, error) {
	switch strings.TrimSpace(c.Action) {
	case ActionReturnToPending:
		return IntentReturnToPending, nil
	case ActionRescheduleSelf:
		return IntentRescheduleSelf, nil
	case "":
	default:
		return IntentNone, ErrUnknownAction
	}
	if c.Record != nil {
		return IntentFullEdit, nil
	}
	if c.hasStatus() {
		return IntentStatusUpdate, nil
	}
	return IntentNone, nil
}

// targetStatus is the status a status_update command asks for.
func (c Command) targetStatus() entities.InstallationStatus {
	return entities.InstallationStatus(strings.TrimSpace(c.Status))
}
