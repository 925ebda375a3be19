// Package testutil replays installation patches in memory for tests.
package testutil

import "agenda_rastreadores/internal/domain/entities"

// Value returns the value staged for field. ok is false when the field is not part of the patch.
func Value(p entities.InstallationPatch, field string) (value *string, ok bool) {
	for _, u := range p.Updates() {
		if u.Field == field {
			return u.Value, true
		}
	}
	return nil, false
}

// Apply returns a copy of inst with the patch applied, the way a store would persist it.
func Apply(p entities.InstallationPatch, inst entities.Installation) entities.Installation {
	for _, u := range p.Updates() {
		switch u.Field {
		case entities.FieldStatus:
			inst.Status = entities.InstallationStatus(deref(u.Value))
		case entities.FieldTipoServico:
			inst.TipoServico = deref(u.Value)
		case entities.FieldDataInstalacao:
			inst.DataInstalacao = cloneString(u.Value)
		case entities.FieldHorario:
			inst.Horario = cloneString(u.Value)
		case entities.FieldTecnicoID:
			inst.TecnicoID = cloneString(u.Value)
		case entities.FieldNomeCompleto:
			inst.NomeCompleto = deref(u.Value)
		case entities.FieldContato:
			inst.Contato = deref(u.Value)
		case entities.FieldPlaca:
			inst.Placa = deref(u.Value)
		case entities.FieldModelo:
			inst.Modelo = deref(u.Value)
		case entities.FieldAno:
			inst.Ano = deref(u.Value)
		case entities.FieldCor:
			inst.Cor = deref(u.Value)
		case entities.FieldEndereco:
			inst.Endereco = deref(u.Value)
		case entities.FieldUsuarioRastreador:
			inst.UsuarioRastreador = deref(u.Value)
		case entities.FieldSenhaRastreador:
			inst.SenhaRastreador = deref(u.Value)
		case entities.FieldBaseRastreador:
			inst.BaseRastreador = deref(u.Value)
		case entities.FieldBloqueio:
			inst.Bloqueio = deref(u.Value)
		}
	}
	if at := p.StampedAt(); !at.IsZero() {
		inst.UpdatedAt = at
	}
	return inst
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}
