package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agenda_rastreadores/internal/domain/entities"
	"agenda_rastreadores/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"golang.org/x/sync/errgroup"
)

const (
	defaultInstallationsTableName = "installations"
	defaultHistoryTableName       = "installation_history"
	defaultObservationsTableName  = "installation_observations"

	// InstallationIndexName is the GSI (installation_id, created_at) on the history and observation tables.
	InstallationIndexName = "installation_id-index"
)

// DynamoTables names the three tables backing the repository.
type DynamoTables struct {
	Installations string
	History       string
	Observations  string
}

// withDefaults fills empty table names.
func (t DynamoTables) withDefaults() DynamoTables {
	if t.Installations == "" {
		t.Installations = defaultInstallationsTableName
	}
	if t.History == "" {
		t.History = defaultHistoryTableName
	}
	if t.Observations == "" {
		t.Observations = defaultObservationsTableName
	}
	return t
}

type installationItem struct {
	ID                string  `dynamodbav:"id"`
	NomeCompleto      string  `dynamodbav:"nome_completo"`
	Contato           string  `dynamodbav:"contato"`
	Placa             string  `dynamodbav:"placa"`
	Modelo            string  `dynamodbav:"modelo"`
	Ano               string  `dynamodbav:"ano"`
	Cor               string  `dynamodbav:"cor"`
	Endereco          string  `dynamodbav:"endereco"`
	UsuarioRastreador string  `dynamodbav:"usuario_rastreador"`
	SenhaRastreador   string  `dynamodbav:"senha_rastreador"`
	BaseRastreador    string  `dynamodbav:"base_rastreador"`
	Bloqueio          string  `dynamodbav:"bloqueio"`
	Status            string  `dynamodbav:"status"`
	TipoServico       string  `dynamodbav:"tipo_servico"`
	DataInstalacao    *string `dynamodbav:"data_instalacao,omitempty"`
	Horario           *string `dynamodbav:"horario,omitempty"`
	TecnicoID         *string `dynamodbav:"tecnico_id,omitempty"`
	Version           int64   `dynamodbav:"version"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

type historyItem struct {
	ID             string `dynamodbav:"id"`
	InstallationID string `dynamodbav:"installation_id"`
	Descricao      string `dynamodbav:"descricao"`
	Usuario        string `dynamodbav:"usuario"`
	CreatedAt      string `dynamodbav:"created_at"`
}

type observationItem struct {
	ID             string `dynamodbav:"id"`
	InstallationID string `dynamodbav:"installation_id"`
	Texto          string `dynamodbav:"texto"`
	Destaque       bool   `dynamodbav:"destaque"`
	Usuario        string `dynamodbav:"usuario"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// InstallationDynamoRepository persists installations and their audit trail in DynamoDB.
//
// Table requirements:
//   - installations: PK id (string)
//   - installation_history, installation_observations: PK id (string),
//     GSI installation_id-index (installation_id, created_at)
//
// Writes that must be atomic (update + history, observation + history) go
// through TransactWriteItems.
type InstallationDynamoRepository struct {
	ddb    *dynamodb.Client
	tables DynamoTables
}

var (
	_ interfaces.IInstallationRepository = (*InstallationDynamoRepository)(nil)
	_ interfaces.IAuditTrailRepository   = (*InstallationDynamoRepository)(nil)
)

func NewInstallationDynamoRepository(ddb *dynamodb.Client, tables DynamoTables) *InstallationDynamoRepository {
	return &InstallationDynamoRepository{ddb: ddb, tables: tables.withDefaults()}
}

func (r *InstallationDynamoRepository) Create(ctx context.Context, inst entities.Installation, event entities.HistoryEvent) (entities.Installation, error) {
	av, err := attributevalue.MarshalMap(toInstallationItem(inst))
	if err != nil {
		return entities.Installation{}, err
	}
	historyPut, err := r.historyPut(event)
	if err != nil {
		return entities.Installation{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(r.tables.Installations),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
			historyPut,
		},
	})
	if err != nil {
		if conditionFailed(err) != nil {
			return entities.Installation{}, fmt.Errorf("installation %s already exists: %w", inst.ID, err)
		}
		return entities.Installation{}, err
	}
	return inst, nil
}

// GetByID loads the installation and, in parallel, its history and observations.
//
// The record itself is read with ConsistentRead. History and observations come
// from the installation_id-index GSI, which is eventually consistent: a read
// right after a mutation may not list the newest entries yet.
func (r *InstallationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Installation, error) {
	inst, err := r.getInstallation(ctx, id)
	if err != nil || inst.ID == "" {
		return inst, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var items []historyItem
		if err := r.queryByInstallation(gctx, r.tables.History, id, &items); err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		inst.Historico = make([]entities.HistoryEvent, 0, len(items))
		for _, it := range items {
			inst.Historico = append(inst.Historico, fromHistoryItem(it))
		}
		sortHistory(inst.Historico)
		return nil
	})
	g.Go(func() error {
		var items []observationItem
		if err := r.queryByInstallation(gctx, r.tables.Observations, id, &items); err != nil {
			return fmt.Errorf("query observations: %w", err)
		}
		inst.Observacoes = make([]entities.Observation, 0, len(items))
		for _, it := range items {
			inst.Observacoes = append(inst.Observacoes, fromObservationItem(it))
		}
		sortObservations(inst.Observacoes)
		return nil
	})
	if err := g.Wait(); err != nil {
		return entities.Installation{}, err
	}
	return inst, nil
}

// List scans the installations table. Technician and status filters are
// pushed down; the free-text query is case-insensitive so it runs here.
func (r *InstallationDynamoRepository) List(ctx context.Context, filter entities.InstallationFilter) ([]entities.Installation, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tables.Installations)}

	if cond, ok := scanCondition(filter); ok {
		expr, err := expression.NewBuilder().WithFilter(cond).Build()
		if err != nil {
			return nil, err
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	var out []entities.Installation
	p := dynamodb.NewScanPaginator(r.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []installationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			inst := fromInstallationItem(it)
			if matchesFilter(inst, filter) {
				out = append(out, inst)
			}
		}
	}
	sortAgenda(out)
	return out, nil
}

func (r *InstallationDynamoRepository) Update(ctx context.Context, id string, patch entities.InstallationPatch, expectedVersion int64, event *entities.HistoryEvent) (entities.Installation, error) {
	expr, err := buildUpdateExpression(patch, expectedVersion, updatedAt(patch))
	if err != nil {
		return entities.Installation{}, err
	}

	items := []types.TransactWriteItem{
		{Update: &types.Update{
			TableName: aws.String(r.tables.Installations),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			UpdateExpression:                    expr.Update(),
			ConditionExpression:                 expr.Condition(),
			ExpressionAttributeNames:            expr.Names(),
			ExpressionAttributeValues:           expr.Values(),
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		}},
	}
	if event != nil {
		put, err := r.historyPut(*event)
		if err != nil {
			return entities.Installation{}, err
		}
		items = append(items, put)
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if reason := conditionFailed(err); reason != nil {
			// ALL_OLD comes back only when the row exists, so an empty item means missing.
			if len(reason.Item) == 0 {
				return entities.Installation{}, nil
			}
			return entities.Installation{}, interfaces.ErrVersionConflict
		}
		return entities.Installation{}, err
	}
	return r.getInstallation(ctx, id)
}

// conditionFailed returns the cancellation reason of the first transaction
// item when its condition check failed.
func conditionFailed(err error) *types.CancellationReason {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) || len(tce.CancellationReasons) == 0 {
		return nil
	}
	reason := tce.CancellationReasons[0]
	if aws.ToString(reason.Code) != "ConditionalCheckFailed" {
		return nil
	}
	return &reason
}

func (r *InstallationDynamoRepository) AppendHistory(ctx context.Context, event entities.HistoryEvent) error {
	av, err := attributevalue.MarshalMap(toHistoryItem(event))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tables.History),
		Item:      av,
	})
	return err
}

func (r *InstallationDynamoRepository) AppendObservation(ctx context.Context, obs entities.Observation, event entities.HistoryEvent) error {
	av, err := attributevalue.MarshalMap(toObservationItem(obs))
	if err != nil {
		return err
	}
	historyPut, err := r.historyPut(event)
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(r.tables.Observations), Item: av}},
			historyPut,
		},
	})
	return err
}

func (r *InstallationDynamoRepository) getInstallation(ctx context.Context, id string) (entities.Installation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Installations),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Installation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Installation{}, nil
	}

	var it installationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Installation{}, err
	}
	return fromInstallationItem(it), nil
}

func (r *InstallationDynamoRepository) queryByInstallation(ctx context.Context, table, id string, out any) error {
	keyCond := expression.Key("installation_id").Equal(expression.Value(id))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return err
	}

	var all []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(InstallationIndexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		all = append(all, page.Items...)
	}
	return attributevalue.UnmarshalListOfMaps(all, out)
}

func (r *InstallationDynamoRepository) historyPut(event entities.HistoryEvent) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toHistoryItem(event))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.tables.History), Item: av}}, nil
}

// buildUpdateExpression turns a patch into SET/REMOVE clauses guarded by the
// expected version. Cleared fields are removed so they read back as null.
func buildUpdateExpression(patch entities.InstallationPatch, expectedVersion int64, now time.Time) (expression.Expression, error) {
	update := expression.Set(expression.Name("updated_at"), expression.Value(formatTime(now))).
		Add(expression.Name("version"), expression.Value(1))
	for _, u := range patch.Updates() {
		if !entities.IsPatchableField(u.Field) {
			return expression.Expression{}, fmt.Errorf("field %q cannot be patched", u.Field)
		}
		if u.Value == nil {
			update = update.Remove(expression.Name(u.Field))
			continue
		}
		update = update.Set(expression.Name(u.Field), expression.Value(*u.Value))
	}

	versionCond := expression.Name("version").Equal(expression.Value(expectedVersion))
	if expectedVersion == 0 {
		versionCond = expression.Or(expression.AttributeNotExists(expression.Name("version")), versionCond)
	}
	cond := expression.AttributeExists(expression.Name("id")).And(versionCond)

	return expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
}

func scanCondition(f entities.InstallationFilter) (expression.ConditionBuilder, bool) {
	var conds []expression.ConditionBuilder
	if f.TecnicoID != "" {
		conds = append(conds, expression.Name("tecnico_id").Equal(expression.Value(f.TecnicoID)))
	}
	switch len(f.Statuses) {
	case 0:
	case 1:
		conds = append(conds, expression.Name("status").Equal(expression.Value(string(f.Statuses[0]))))
	default:
		right := make([]expression.OperandBuilder, 0, len(f.Statuses)-1)
		for _, s := range f.Statuses[1:] {
			right = append(right, expression.Value(string(s)))
		}
		conds = append(conds, expression.Name("status").In(expression.Value(string(f.Statuses[0])), right...))
	}

	switch len(conds) {
	case 0:
		return expression.ConditionBuilder{}, false
	case 1:
		return conds[0], true
	}
	return expression.And(conds[0], conds[1], conds[2:]...), true
}

func toInstallationItem(inst entities.Installation) installationItem {
	return installationItem{
		ID:                inst.ID,
		NomeCompleto:      inst.NomeCompleto,
		Contato:           inst.Contato,
		Placa:             inst.Placa,
		Modelo:            inst.Modelo,
		Ano:               inst.Ano,
		Cor:               inst.Cor,
		Endereco:          inst.Endereco,
		UsuarioRastreador: inst.UsuarioRastreador,
		SenhaRastreador:   inst.SenhaRastreador,
		BaseRastreador:    inst.BaseRastreador,
		Bloqueio:          inst.Bloqueio,
		Status:            string(inst.Status),
		TipoServico:       inst.TipoServico,
		DataInstalacao:    inst.DataInstalacao,
		Horario:           inst.Horario,
		TecnicoID:         inst.TecnicoID,
		Version:           inst.Version,
		CreatedAt:         formatTime(inst.CreatedAt),
		UpdatedAt:         formatTime(inst.UpdatedAt),
	}
}

func fromInstallationItem(it installationItem) entities.Installation {
	return entities.Installation{
		ID:                it.ID,
		NomeCompleto:      it.NomeCompleto,
		Contato:           it.Contato,
		Placa:             it.Placa,
		Modelo:            it.Modelo,
		Ano:               it.Ano,
		Cor:               it.Cor,
		Endereco:          it.Endereco,
		UsuarioRastreador: it.UsuarioRastreador,
		SenhaRastreador:   it.SenhaRastreador,
		BaseRastreador:    it.BaseRastreador,
		Bloqueio:          it.Bloqueio,
		Status:            entities.InstallationStatus(it.Status),
		TipoServico:       it.TipoServico,
		DataInstalacao:    it.DataInstalacao,
		Horario:           it.Horario,
		TecnicoID:         it.TecnicoID,
		Version:           it.Version,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

func toHistoryItem(e entities.HistoryEvent) historyItem {
	return historyItem{
		ID:             e.ID,
		InstallationID: e.InstallationID,
		Descricao:      e.Descricao,
		Usuario:        e.Usuario,
		CreatedAt:      formatTime(e.CreatedAt),
	}
}

func fromHistoryItem(it historyItem) entities.HistoryEvent {
	return entities.HistoryEvent{
		ID:             it.ID,
		InstallationID: it.InstallationID,
		Descricao:      it.Descricao,
		Usuario:        it.Usuario,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}

func toObservationItem(o entities.Observation) observationItem {
	return observationItem{
		ID:             o.ID,
		InstallationID: o.InstallationID,
		Texto:          o.Texto,
		Destaque:       o.Destaque,
		Usuario:        o.Usuario,
		CreatedAt:      formatTime(o.CreatedAt),
	}
}

func fromObservationItem(it observationItem) entities.Observation {
	return entities.Observation{
		ID:             it.ID,
		InstallationID: it.InstallationID,
		Texto:          it.Texto,
		Destaque:       it.Destaque,
		Usuario:        it.Usuario,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
