package response

import (
	"time"

	"agenda_rastreadores/internal/domain/entities"
	"agenda_rastreadores/internal/usecase"
)

const MessageInstallationUpdated = "Instalação atualizada com sucesso"

type HistoryEventResponse struct {
	ID        string    `json:"id"`
	Descricao string    `json:"descricao"`
	Usuario   string    `json:"usuario"`
	CreatedAt time.Time `json:"created_at"`
}

type ObservationResponse struct {
	ID        string    `json:"id"`
	Texto     string    `json:"texto"`
	Destaque  bool      `json:"destaque"`
	Usuario   string    `json:"usuario"`
	CreatedAt time.Time `json:"created_at"`
}

type InstallationResponse struct {
	ID                string                 `json:"id"`
	NomeCompleto      string                 `json:"nome_completo"`
	Contato           string                 `json:"contato"`
	Placa             string                 `json:"placa"`
	Modelo            string                 `json:"modelo"`
	Ano               string                 `json:"ano"`
	Cor               string                 `json:"cor"`
	Endereco          string                 `json:"endereco"`
	UsuarioRastreador string                 `json:"usuario_rastreador"`
	SenhaRastreador   string                 `json:"senha_rastreador"`
	BaseRastreador    string                 `json:"base_rastreador"`
	Bloqueio          string                 `json:"bloqueio"`
	Status            string                 `json:"status"`
	TipoServico       string                 `json:"tipo_servico"`
	DataInstalacao    *string                `json:"data_instalacao"`
	Horario           *string                `json:"horario"`
	TecnicoID         *string                `json:"tecnico_id"`
	Version           int64                  `json:"version"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
	Historico         []HistoryEventResponse `json:"historico"`
	Observacoes       []ObservationResponse  `json:"observacoes"`
}

func FromInstallation(i entities.Installation) InstallationResponse {
	res := InstallationResponse{
		ID:                i.ID,
		NomeCompleto:      i.NomeCompleto,
		Contato:           i.Contato,
		Placa:             i.Placa,
		Modelo:            i.Modelo,
		Ano:               i.Ano,
		Cor:               i.Cor,
		Endereco:          i.Endereco,
		UsuarioRastreador: i.UsuarioRastreador,
		SenhaRastreador:   i.SenhaRastreador,
		BaseRastreador:    i.BaseRastreador,
		Bloqueio:          i.Bloqueio,
		Status:            string(i.Status),
		TipoServico:       i.TipoServico,
		DataInstalacao:    i.DataInstalacao,
		Horario:           i.Horario,
		TecnicoID:         i.TecnicoID,
		Version:           i.Version,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
		Historico:         make([]HistoryEventResponse, 0, len(i.Historico)),
		Observacoes:       make([]ObservationResponse, 0, len(i.Observacoes)),
	}
	for _, e := range i.Historico {
		res.Historico = append(res.Historico, HistoryEventResponse{ID: e.ID, Descricao: e.Descricao, Usuario: e.Usuario, CreatedAt: e.CreatedAt})
	}
	for _, o := range i.Observacoes {
		res.Observacoes = append(res.Observacoes, ObservationResponse{ID: o.ID, Texto: o.Texto, Destaque: o.Destaque, Usuario: o.Usuario, CreatedAt: o.CreatedAt})
	}
	return res
}

func FromInstallations(list []entities.Installation) []InstallationResponse {
	out := make([]InstallationResponse, 0, len(list))
	for _, i := range list {
		out = append(out, FromInstallation(i))
	}
	return out
}

// MutationResponse acknowledges a successful POST /installations/update.
type MutationResponse struct {
	Message string `json:"message"`
	Version int64  `json:"version"`
}

func FromMutation(r usecase.MutationResult) MutationResponse {
	return MutationResponse{Message: MessageInstallationUpdated, Version: r.Version}
}

type DashboardResponse struct {
	Total     int                    `json:"total"`
	PorStatus map[string]int         `json:"por_status"`
	Pendentes []InstallationResponse `json:"pendentes"`
	Agendados []InstallationResponse `json:"agendados"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	byStatus := make(map[string]int, len(d.PorStatus))
	for status, n := range d.PorStatus {
		byStatus[string(status)] = n
	}
	return DashboardResponse{
		Total:     d.Total,
		PorStatus: byStatus,
		Pendentes: FromInstallations(d.Pendentes),
		Agendados: FromInstallations(d.Agendados),
	}
}
