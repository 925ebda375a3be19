package entities

import "time"

// Installation columns that may be changed through a patch.
const (
	FieldStatus            = "status"
	FieldTipoServico       = "tipo_servico"
	FieldDataInstalacao    = "data_instalacao"
	FieldHorario           = "horario"
	FieldTecnicoID         = "tecnico_id"
	FieldNomeCompleto      = "nome_completo"
	FieldContato           = "contato"
	FieldPlaca             = "placa"
	FieldModelo            = "modelo"
	FieldAno               = "ano"
	FieldCor               = "cor"
	FieldEndereco          = "endereco"
	FieldUsuarioRastreador = "usuario_rastreador"
	FieldSenhaRastreador   = "senha_rastreador"
	FieldBaseRastreador    = "base_rastreador"
	FieldBloqueio          = "bloqueio"
)

var patchableFields = map[string]struct{}{
	FieldStatus: {}, FieldTipoServico: {}, FieldDataInstalacao: {}, FieldHorario: {},
	FieldTecnicoID: {}, FieldNomeCompleto: {}, FieldContato: {}, FieldPlaca: {},
	FieldModelo: {}, FieldAno: {}, FieldCor: {}, FieldEndereco: {},
	FieldUsuarioRastreador: {}, FieldSenhaRastreador: {}, FieldBaseRastreador: {},
	FieldBloqueio: {},
}

// IsPatchableField reports whether field names an installation column a patch may touch.
func IsPatchableField(field string) bool {
	_, ok := patchableFields[field]
	return ok
}

// FieldUpdate sets Field to Value, or to null when Value is nil.
type FieldUpdate struct {
	Field string
	Value *string
}

// InstallationPatch is an ordered partial update. Setting the same field twice
// keeps the first position and the last value.
type InstallationPatch struct {
	updates []FieldUpdate
	at      time.Time
}

func (p *InstallationPatch) Set(field, value string) {
	v := value
	p.put(field, &v)
}

func (p *InstallationPatch) Clear(field string) {
	p.put(field, nil)
}

func (p *InstallationPatch) put(field string, value *string) {
	for i := range p.updates {
		if p.updates[i].Field == field {
			p.updates[i].Value = value
			return
		}
	}
	p.updates = append(p.updates, FieldUpdate{Field: field, Value: value})
}

// StampAt sets the time stores write to updated_at.
func (p *InstallationPatch) StampAt(t time.Time) { p.at = t }

// StampedAt is the zero time when the patch was never stamped.
func (p InstallationPatch) StampedAt() time.Time { return p.at }

func (p InstallationPatch) Len() int { return len(p.updates) }

func (p InstallationPatch) IsEmpty() bool { return len(p.updates) == 0 }

func (p InstallationPatch) Updates() []FieldUpdate {
	out := make([]FieldUpdate, len(p.updates))
	copy(out, p.updates)
	return out
}

// AsMap renders the patch with nil for cleared fields; handy for logs and assertions.
func (p InstallationPatch) AsMap() map[string]any {
	out := make(map[string]any, len(p.updates))
	for _, u := range p.updates {
		if u.Value == nil {
			out[u.Field] = nil
			continue
		}
		out[u.Field] = *u.Value
	}
	return out
}
