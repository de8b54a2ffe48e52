package database

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

const leadsTable = "leads"

var leadColumns = []interface{}{
	"id", "name", "email", "phone", "status", "source",
	"sales_agent_id", "tags", "created_at", "updated_at",
}

type LeadRepository struct {
	DB      *sql.DB
	Builder goqu.DialectWrapper
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{
		DB:      db,
		Builder: goqu.Dialect("postgres"),
	}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query, args, err := r.Builder.Insert(leadsTable).
		Rows(leadRecord(lead)).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Printf("erro ao inserir lead: %v", err)
		return err
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query, args, err := r.Builder.From(leadsTable).
		Select(leadColumns...).
		Where(goqu.I("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) Find(ctx context.Context, filter entity.LeadFilter) ([]*entity.Lead, error) {
	query, args, err := r.Builder.From(leadsTable).
		Select(leadColumns...).
		Where(LeadFilterExpressions(filter)...).
		Order(goqu.I("created_at").Desc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]*entity.Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	rec := leadRecord(lead)
	delete(rec, "id")
	delete(rec, "created_at") // imutável depois de criado

	query, args, err := r.Builder.Update(leadsTable).
		Set(rec).
		Where(goqu.I("id").Eq(lead.ID)).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return checkFound(result, entity.ErrLeadNotFound)
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.Builder.Delete(leadsTable).
		Where(goqu.I("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return checkFound(result, entity.ErrLeadNotFound)
}

func (r *LeadRepository) CountByAgent(ctx context.Context, agentID string) (int, error) {
	return r.count(ctx, goqu.I("sales_agent_id").Eq(agentID))
}

func (r *LeadRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	return r.count(ctx, goqu.I("created_at").Gte(since))
}

func (r *LeadRepository) CountInPipeline(ctx context.Context) (int, error) {
	return r.count(ctx, goqu.I("status").Neq(entity.StatusClosed))
}

func (r *LeadRepository) CountClosedByAgent(ctx context.Context) ([]entity.ClosedByAgent, error) {
	query, args, err := r.Builder.From(goqu.T(leadsTable).As("l")).
		Join(
			goqu.T(agentsTable).As("a"),
			goqu.On(goqu.I("a.id").Eq(goqu.I("l.sales_agent_id"))),
		).
		Select(
			goqu.I("a.id"), goqu.I("a.name"), goqu.I("a.email"), goqu.I("a.created_at"),
			goqu.COUNT(goqu.Star()).As("total"),
		).
		Where(goqu.I("l.status").Eq(entity.StatusClosed)).
		GroupBy(goqu.I("a.id"), goqu.I("a.name"), goqu.I("a.email"), goqu.I("a.created_at")).
		Order(goqu.I("total").Desc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]entity.ClosedByAgent, 0)
	for rows.Next() {
		var row entity.ClosedByAgent
		agent := &entity.SalesAgent{}
		if err := rows.Scan(&agent.ID, &agent.Name, &agent.Email, &agent.CreatedAt, &row.Count); err != nil {
			return nil, err
		}
		row.SalesAgent = agent
		report = append(report, row)
	}
	return report, rows.Err()
}

func (r *LeadRepository) count(ctx context.Context, expressions ...goqu.Expression) (int, error) {
	query, args, err := r.Builder.From(leadsTable).
		Select(goqu.COUNT(goqu.Star())).
		Where(expressions...).
		Prepared(true).ToSQL()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// LeadFilterExpressions traduz o filtro da listagem em predicados.
// Campo ausente não restringe nada; tags casam por interseção
// (overlap do Postgres), não por subconjunto.
func LeadFilterExpressions(filter entity.LeadFilter) []goqu.Expression {
	expressions := make([]goqu.Expression, 0, 4)

	if filter.SalesAgentID != nil {
		expressions = append(expressions, goqu.I("sales_agent_id").Eq(*filter.SalesAgentID))
	}
	if filter.Status != nil {
		expressions = append(expressions, goqu.I("status").Eq(*filter.Status))
	}
	if filter.Source != nil {
		expressions = append(expressions, goqu.I("source").Eq(*filter.Source))
	}
	if len(filter.Tags) > 0 {
		expressions = append(expressions, goqu.L("tags && ?", pq.Array(filter.Tags)))
	}

	return expressions
}

func leadRecord(lead *entity.Lead) goqu.Record {
	var agentID interface{}
	if lead.SalesAgentID != nil {
		agentID = *lead.SalesAgentID
	}

	return goqu.Record{
		"id":             lead.ID,
		"name":           lead.Name,
		"email":          lead.Email,
		"phone":          lead.Phone,
		"status":         lead.Status,
		"source":         lead.Source,
		"sales_agent_id": agentID,
		"tags":           pq.Array(lead.Tags),
		"created_at":     lead.CreatedAt,
		"updated_at":     lead.UpdatedAt,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		lead    entity.Lead
		agentID sql.NullString
		tags    pq.StringArray
	)

	err := row.Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.Phone,
		&lead.Status, &lead.Source, &agentID, &tags,
		&lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if agentID.Valid {
		lead.SalesAgentID = &agentID.String
	}
	lead.Tags = []string(tags)
	if lead.Tags == nil {
		lead.Tags = []string{}
	}
	return &lead, nil
}

func checkFound(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
