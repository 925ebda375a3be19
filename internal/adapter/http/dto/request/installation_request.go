package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"agenda_rastreadores/internal/domain/lifecycle"
)

// FlexibleString accepts either a JSON string or a JSON number. Clients send
// installation and technician ids both ways.
type FlexibleString string

func (s *FlexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexibleString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(data))
	}
	*s = FlexibleString(n.String())
	return nil
}

func (s FlexibleString) String() string {
	return strings.TrimSpace(string(s))
}

// RecordRequest carries the descriptive client/vehicle fields.
type RecordRequest struct {
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
	TipoServico       string `json:"tipo_servico"`
}

func (r RecordRequest) toRecord(nome string) lifecycle.RecordFields {
	return lifecycle.RecordFields{
		NomeCompleto:      nome,
		Contato:           r.Contato,
		Placa:             r.Placa,
		Modelo:            r.Modelo,
		Ano:               r.Ano,
		Cor:               r.Cor,
		Endereco:          r.Endereco,
		UsuarioRastreador: r.UsuarioRastreador,
		SenhaRastreador:   r.SenhaRastreador,
		BaseRastreador:    r.BaseRastreador,
		Bloqueio:          r.Bloqueio,
		TipoServico:       r.TipoServico,
	}
}

// UpdateInstallationRequest is the body of POST /installations/update.
//
// Only id is required. intent is optional; when omitted the purpose is
// inferred from which fields are present. Sending nome_completo turns the
// request into a full edit of the record fields.
type UpdateInstallationRequest struct {
	ID             FlexibleString `json:"id"`
	Intent         string         `json:"intent"`
	Action         string         `json:"action"`
	Status         string         `json:"status"`
	Date           string         `json:"date"`
	Time           string         `json:"time"`
	Type           string         `json:"type"`
	CompletionType string         `json:"completionType"`
	TecnicoID      FlexibleString `json:"tecnico_id"`
	Version        *int64         `json:"version"`

	NovaObservacaoTexto    string `json:"nova_observacao_texto"`
	NovaObservacaoDestaque bool   `json:"nova_observacao_destaque"`

	NomeCompleto *string `json:"nome_completo"`
	RecordRequest
}

func (r UpdateInstallationRequest) ResolveID() string {
	return r.ID.String()
}

func (r UpdateInstallationRequest) ToCommand() lifecycle.Command {
	cmd := lifecycle.Command{
		InstallationID:       r.ResolveID(),
		Intent:               lifecycle.Intent(strings.TrimSpace(r.Intent)),
		Action:               strings.TrimSpace(r.Action),
		Status:               r.Status,
		Date:                 r.Date,
		Time:                 r.Time,
		Type:                 r.Type,
		CompletionType:       r.CompletionType,
		TecnicoID:            r.TecnicoID.String(),
		ObservationText:      r.NovaObservacaoTexto,
		ObservationHighlight: r.NovaObservacaoDestaque,
		ExpectedVersion:      r.Version,
	}
	if r.NomeCompleto != nil {
		record := r.RecordRequest.toRecord(*r.NomeCompleto)
		cmd.Record = &record
	}
	return cmd
}

// CreateInstallationRequest is the body of POST /installations.
type CreateInstallationRequest struct {
	NomeCompleto string `json:"nome_completo" binding:"required"`
	RecordRequest
}

func (r CreateInstallationRequest) ToRecord() lifecycle.RecordFields {
	return r.RecordRequest.toRecord(r.NomeCompleto)
}
