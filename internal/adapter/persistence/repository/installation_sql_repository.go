package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"agenda_rastreadores/internal/domain/entities"
	"agenda_rastreadores/internal/usecase/interfaces"
)

// Dialect selects the placeholder style of the SQL backend.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const sqlTimeLayout = "2006-01-02T15:04:05.000000Z"

const installationColumns = `id, nome_completo, contato, placa, modelo, ano, cor, endereco,
	usuario_rastreador, senha_rastreador, base_rastreador, bloqueio,
	status, tipo_servico, data_instalacao, horario, tecnico_id, version, created_at, updated_at`

var nullableColumns = map[string]bool{
	entities.FieldDataInstalacao: true,
	entities.FieldHorario:        true,
	entities.FieldTecnicoID:      true,
}

// InstallationSQLRepository persists installations through database/sql.
//
// The same queries run on postgres (pgx stdlib driver) and sqlite (modernc);
// they are written with ? placeholders and rebound for postgres.
type InstallationSQLRepository struct {
	db      *sql.DB
	dialect Dialect
}

var (
	_ interfaces.IInstallationRepository = (*InstallationSQLRepository)(nil)
	_ interfaces.IAuditTrailRepository   = (*InstallationSQLRepository)(nil)
)

func NewInstallationSQLRepository(db *sql.DB, dialect Dialect) *InstallationSQLRepository {
	return &InstallationSQLRepository{db: db, dialect: dialect}
}

func (r *InstallationSQLRepository) Create(ctx context.Context, inst entities.Installation, event entities.HistoryEvent) (entities.Installation, error) {
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, r.rebind(`INSERT INTO installations (`+installationColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
			inst.ID, inst.NomeCompleto, inst.Contato, inst.Placa, inst.Modelo, inst.Ano, inst.Cor, inst.Endereco,
			inst.UsuarioRastreador, inst.SenhaRastreador, inst.BaseRastreador, inst.Bloqueio,
			string(inst.Status), inst.TipoServico, nullString(inst.DataInstalacao), nullString(inst.Horario), nullString(inst.TecnicoID),
			inst.Version, sqlTime(inst.CreatedAt), sqlTime(inst.UpdatedAt),
		)
		if err != nil {
			return fmt.Errorf("insert installation: %w", err)
		}
		return r.insertHistory(ctx, tx, event)
	})
	if err != nil {
		return entities.Installation{}, err
	}
	return inst, nil
}

func (r *InstallationSQLRepository) GetByID(ctx context.Context, id string) (entities.Installation, error) {
	row := r.db.QueryRowContext(ctx, r.rebind(`SELECT `+installationColumns+` FROM installations WHERE id = ?`), id)
	inst, err := scanInstallation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Installation{}, nil
	}
	if err != nil {
		return entities.Installation{}, err
	}

	if inst.Historico, err = r.history(ctx, id); err != nil {
		return entities.Installation{}, err
	}
	if inst.Observacoes, err = r.observations(ctx, id); err != nil {
		return entities.Installation{}, err
	}
	return inst, nil
}

func (r *InstallationSQLRepository) List(ctx context.Context, filter entities.InstallationFilter) ([]entities.Installation, error) {
	var (
		where []string
		args  []any
	)
	if filter.TecnicoID != "" {
		where = append(where, "tecnico_id = ?")
		args = append(args, filter.TecnicoID)
	}
	if len(filter.Statuses) > 0 {
		marks := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			marks[i] = "?"
			args = append(args, string(s))
		}
		where = append(where, "status IN ("+strings.Join(marks, ", ")+")")
	}
	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		where = append(where, `(LOWER(nome_completo) LIKE ? ESCAPE '\' OR LOWER(placa) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	query := `SELECT ` + installationColumns + ` FROM installations`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY data_instalacao IS NULL, data_instalacao, horario, created_at"

	rows, err := r.db.QueryContext(ctx, r.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list installations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []entities.Installation
	for rows.Next() {
		inst, err := scanInstallation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, rows.Err()
}

func (r *InstallationSQLRepository) Update(ctx context.Context, id string, patch entities.InstallationPatch, expectedVersion int64, event *entities.HistoryEvent) (entities.Installation, error) {
	sets := make([]string, 0, patch.Len()+2)
	args := make([]any, 0, patch.Len()+4)
	for _, u := range patch.Updates() {
		if !entities.IsPatchableField(u.Field) {
			return entities.Installation{}, fmt.Errorf("field %q cannot be patched", u.Field)
		}
		sets = append(sets, u.Field+" = ?")
		switch {
		case u.Value != nil:
			args = append(args, *u.Value)
		case nullableColumns[u.Field]:
			args = append(args, nil)
		default:
			args = append(args, "")
		}
	}
	sets = append(sets, "version = version + 1", "updated_at = ?")
	args = append(args, sqlTime(updatedAt(patch)), id, expectedVersion)

	var updated entities.Installation
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, r.rebind(`UPDATE installations SET `+strings.Join(sets, ", ")+` WHERE id = ? AND version = ?`), args...)
		if err != nil {
			return fmt.Errorf("update installation: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			var version int64
			err := tx.QueryRowContext(ctx, r.rebind(`SELECT version FROM installations WHERE id = ?`), id).Scan(&version)
			if errors.Is(err, sql.ErrNoRows) {
				return errNotFound
			}
			if err != nil {
				return err
			}
			return interfaces.ErrVersionConflict
		}

		if event != nil {
			if err := r.insertHistory(ctx, tx, *event); err != nil {
				return err
			}
		}

		row := tx.QueryRowContext(ctx, r.rebind(`SELECT `+installationColumns+` FROM installations WHERE id = ?`), id)
		updated, err = scanInstallation(row)
		return err
	})
	if errors.Is(err, errNotFound) {
		return entities.Installation{}, nil
	}
	if err != nil {
		return entities.Installation{}, err
	}
	return updated, nil
}

func (r *InstallationSQLRepository) AppendHistory(ctx context.Context, event entities.HistoryEvent) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		return r.insertHistory(ctx, tx, event)
	})
}

func (r *InstallationSQLRepository) AppendObservation(ctx context.Context, obs entities.Observation, event entities.HistoryEvent) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, r.rebind(`INSERT INTO installation_observations (id, installation_id, texto, destaque, usuario, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`),
			obs.ID, obs.InstallationID, obs.Texto, obs.Destaque, obs.Usuario, sqlTime(obs.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("insert observation: %w", err)
		}
		return r.insertHistory(ctx, tx, event)
	})
}

// errNotFound only travels inside a transaction closure; callers get an empty entity.
var errNotFound = errors.New("installation not found")

func (r *InstallationSQLRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

func (r *InstallationSQLRepository) insertHistory(ctx context.Context, tx *sql.Tx, e entities.HistoryEvent) error {
	_, err := tx.ExecContext(ctx, r.rebind(`INSERT INTO installation_history (id, installation_id, descricao, usuario, created_at)
		VALUES (?, ?, ?, ?, ?)`),
		e.ID, e.InstallationID, e.Descricao, e.Usuario, sqlTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

func (r *InstallationSQLRepository) history(ctx context.Context, id string) ([]entities.HistoryEvent, error) {
	rows, err := r.db.QueryContext(ctx, r.rebind(`SELECT id, installation_id, descricao, usuario, created_at
		FROM installation_history WHERE installation_id = ? ORDER BY created_at, id`), id)
	if err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []entities.HistoryEvent{}
	for rows.Next() {
		var (
			e         entities.HistoryEvent
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.InstallationID, &e.Descricao, &e.Usuario, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.CreatedAt = parseSQLTime(createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *InstallationSQLRepository) observations(ctx context.Context, id string) ([]entities.Observation, error) {
	rows, err := r.db.QueryContext(ctx, r.rebind(`SELECT id, installation_id, texto, destaque, usuario, created_at
		FROM installation_observations WHERE installation_id = ? ORDER BY created_at, id`), id)
	if err != nil {
		return nil, fmt.Errorf("select observations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []entities.Observation{}
	for rows.Next() {
		var (
			o         entities.Observation
			createdAt string
		)
		if err := rows.Scan(&o.ID, &o.InstallationID, &o.Texto, &o.Destaque, &o.Usuario, &createdAt); err != nil {
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		o.CreatedAt = parseSQLTime(createdAt)
		out = append(out, o)
	}
	return out, rows.Err()
}

// rebind rewrites ? placeholders as $1..$n for postgres.
func (r *InstallationSQLRepository) rebind(query string) string {
	if r.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInstallation(s rowScanner) (entities.Installation, error) {
	var (
		inst                   entities.Installation
		status                 string
		data, horario, tecnico sql.NullString
		createdAt, updatedAt   string
	)
	err := s.Scan(
		&inst.ID, &inst.NomeCompleto, &inst.Contato, &inst.Placa, &inst.Modelo, &inst.Ano, &inst.Cor, &inst.Endereco,
		&inst.UsuarioRastreador, &inst.SenhaRastreador, &inst.BaseRastreador, &inst.Bloqueio,
		&status, &inst.TipoServico, &data, &horario, &tecnico, &inst.Version, &createdAt, &updatedAt,
	)
	if err != nil {
		return entities.Installation{}, err
	}
	inst.Status = entities.InstallationStatus(status)
	inst.DataInstalacao = stringPtr(data)
	inst.Horario = stringPtr(horario)
	inst.TecnicoID = stringPtr(tecnico)
	inst.CreatedAt = parseSQLTime(createdAt)
	inst.UpdatedAt = parseSQLTime(updatedAt)
	return inst, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func sqlTime(t time.Time) string {
	return t.UTC().Format(sqlTimeLayout)
}

func parseSQLTime(s string) time.Time {
	t, err := time.Parse(sqlTimeLayout, s)
	if err != nil {
		return parseTime(s)
	}
	return t
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
