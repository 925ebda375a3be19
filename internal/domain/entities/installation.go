package entities

import "time"

// InstallationStatus represents the lifecycle of an installation request.
//
// Domain notes:
//   - A agendar: waiting for an administrator to assign a technician.
//   - Agendado: date, time and technician are set.
//   - Concluído: terminal, the technician finished the job.
//   - Reagendar: the job must be scheduled again.
type InstallationStatus string

const (
	StatusPendente  InstallationStatus = "A agendar"
	StatusAgendado  InstallationStatus = "Agendado"
	StatusConcluido InstallationStatus = "Concluído"
	StatusReagendar InstallationStatus = "Reagendar"
)

// IsTerminal reports whether no further lifecycle transition is allowed.
func (s InstallationStatus) IsTerminal() bool {
	return s == StatusConcluido
}

const (
	ServiceTypeInstalacao = "Instalação"
	ServiceTypeManutencao = "Manutenção"
	ServiceTypeRemocao    = "Remoção"
)

const (
	TrackerBaseAtena       = "Atena"
	TrackerBaseAutocontrol = "Autocontrol"

	LockSim = "Sim"
	LockNao = "Nao"
)

// Installation is a tracker installation/maintenance/removal job.
//
// Storage model:
//   - PK: id
//   - history and observations live in their own tables keyed by installation_id
//
// Schedule invariant:
//   - status Agendado  => DataInstalacao, Horario and TecnicoID are non-nil
//   - status A agendar => DataInstalacao, Horario and TecnicoID are nil
type Installation struct {
	ID string `json:"id"`

	NomeCompleto      string `json:"nome_completo"`
	Contato           string `json:"contato"`
	Placa             string `json:"placa"`
	Modelo            string `json:"modelo"`
	Ano               string `json:"ano"`
	Cor               string `json:"cor"`
	Endereco          string `json:"endereco"`
	UsuarioRastreador string `json:"usuario_rastreador"`
	SenhaRastreador   string `json:"senha_rastreador"`
	BaseRastreador    string `json:"base_rastreador"`
	Bloqueio          string `json:"bloqueio"`

	Status         InstallationStatus `json:"status"`
	TipoServico    string             `json:"tipo_servico"`
	DataInstalacao *string            `json:"data_instalacao"`
	Horario        *string            `json:"horario"`
	TecnicoID      *string            `json:"tecnico_id"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Historico   []HistoryEvent `json:"historico,omitempty"`
	Observacoes []Observation  `json:"observacoes,omitempty"`
}

// IsAssignedTo reports whether the installation is assigned to the given technician.
func (i Installation) IsAssignedTo(tecnicoID string) bool {
	return i.TecnicoID != nil && tecnicoID != "" && *i.TecnicoID == tecnicoID
}

// InstallationFilter narrows List results for the query views.
type InstallationFilter struct {
	TecnicoID string
	Statuses  []InstallationStatus
	// Query is matched case-insensitively against name and plate.
	Query string
}
