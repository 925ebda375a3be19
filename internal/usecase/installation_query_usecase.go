package usecase

import (
	"context"
	"fmt"
	"strings"

	"agenda_rastreadores/internal/domain/entities"
	"agenda_rastreadores/internal/domain/lifecycle"
	"agenda_rastreadores/internal/usecase/interfaces"
)

// IInstallationQueryUseCase exposes the role-filtered read views.
type IInstallationQueryUseCase interface {
	Agenda(ctx context.Context, actor entities.Actor, tecnicoID string) ([]entities.Installation, error)
	Search(ctx context.Context, actor entities.Actor, query string) ([]entities.Installation, error)
	Dashboard(ctx context.Context, actor entities.Actor) (Dashboard, error)
}

// Dashboard is the administrator overview.
type Dashboard struct {
	Total     int
	PorStatus map[entities.InstallationStatus]int
	Pendentes []entities.Installation
	Agendados []entities.Installation
}

type InstallationQueryUseCase struct {
	repo interfaces.IInstallationRepository
}

var _ IInstallationQueryUseCase = (*InstallationQueryUseCase)(nil)

func NewInstallationQueryUseCase(repo interfaces.IInstallationRepository) *InstallationQueryUseCase {
	return &InstallationQueryUseCase{repo: repo}
}

// Agenda lists scheduled jobs. Technicians always get their own agenda;
// administrators may narrow it to one technician.
func (u *InstallationQueryUseCase) Agenda(ctx context.Context, actor entities.Actor, tecnicoID string) ([]entities.Installation, error) {
	filter := entities.InstallationFilter{Statuses: []entities.InstallationStatus{entities.StatusAgendado}}
	switch actor.Role {
	case entities.RoleTecnico:
		filter.TecnicoID = actor.ID
	case entities.RoleAdmin:
		filter.TecnicoID = strings.TrimSpace(tecnicoID)
	default:
		return nil, fmt.Errorf("%w: %q has no agenda", lifecycle.ErrForbidden, actor.Role)
	}
	return u.repo.List(ctx, filter)
}

func (u *InstallationQueryUseCase) Search(ctx context.Context, actor entities.Actor, query string) ([]entities.Installation, error) {
	if err := lifecycle.AuthorizeRead(actor); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, entities.InstallationFilter{Query: strings.TrimSpace(query)})
}

func (u *InstallationQueryUseCase) Dashboard(ctx context.Context, actor entities.Actor) (Dashboard, error) {
	if actor.Role != entities.RoleAdmin {
		return Dashboard{}, fmt.Errorf("%w: dashboard is restricted to administrators", lifecycle.ErrForbidden)
	}

	all, err := u.repo.List(ctx, entities.InstallationFilter{})
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{
		Total:     len(all),
		PorStatus: make(map[entities.InstallationStatus]int),
		Pendentes: []entities.Installation{},
		Agendados: []entities.Installation{},
	}
	for _, inst := range all {
		d.PorStatus[inst.Status]++
		switch inst.Status {
		case entities.StatusPendente, entities.StatusReagendar:
			d.Pendentes = append(d.Pendentes, inst)
		case entities.StatusAgendado:
			d.Agendados = append(d.Agendados, inst)
		}
	}
	return d, nil
}
