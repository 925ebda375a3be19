package lifecycle

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"agenda_rastreadores/internal/domain/entities"
)

const (
	NarrativeReturnedToPending = "Serviço devolvido para a lista de pendentes pelo técnico."
	NarrativeRecordUpdated     = "Dados cadastrais atualizados"
	NarrativeCreated           = "Solicitação de serviço criada"
)

type serviceKind int

const (
	kindInstallation serviceKind = iota
	kindMaintenance
	kindRemoval
)

func kindOf(raw string) serviceKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case CompletionMaintenance, "manutencao", "manutenção":
		return kindMaintenance
	case CompletionRemoval, "remocao", "remoção":
		return kindRemoval
	}
	return kindInstallation
}

func (k serviceKind) label() string {
	switch k {
	case kindMaintenance:
		return "Manutenção"
	case kindRemoval:
		return "Remoção"
	}
	return "Instalação"
}

// ObservationNarrative is the history text written alongside a new observation.
func ObservationNarrative(text string) string {
	return `Nova observação adicionada: "` + text + `"`
}

func scheduledNarrative(serviceType string) string {
	if kindOf(serviceType) == kindInstallation {
		return "Instalação Agendada"
	}
	return kindOf(serviceType).label() + " Agendada"
}

func completedNarrative(completionType string) string {
	return kindOf(completionType).label() + " Concluída"
}

func rescheduledNarrative(date, hour string) string {
	return fmt.Sprintf("Serviço reagendado pelo técnico para %s às %s.", date, hour)
}

func statusChangedNarrative(status entities.InstallationStatus) string {
	return `Status alterado para "` + string(status) + `"`
}

// capitalize upper-cases the first letter and keeps the rest untouched.
func capitalize(s string) string {
	s = strings.TrimSpace(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
