package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

const agentsTable = "sales_agents"

type SalesAgentRepository struct {
	DB      *sql.DB
	Builder goqu.DialectWrapper
}

func NewSalesAgentRepository(db *sql.DB) *SalesAgentRepository {
	return &SalesAgentRepository{
		DB:      db,
		Builder: goqu.Dialect("postgres"),
	}
}

func (r *SalesAgentRepository) Create(ctx context.Context, agent *entity.SalesAgent) error {
	query, args, err := r.Builder.Insert(agentsTable).
		Rows(goqu.Record{
			"id":         agent.ID,
			"name":       agent.Name,
			"email":      agent.Email,
			"created_at": agent.CreatedAt,
		}).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}

		log.Printf("erro ao inserir sales agent: %v", err)
		return err
	}

	return nil
}

func (r *SalesAgentRepository) FindByID(ctx context.Context, id string) (*entity.SalesAgent, error) {
	query, args, err := r.Builder.From(agentsTable).
		Select("id", "name", "email", "created_at").
		Where(goqu.I("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	var agent entity.SalesAgent
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&agent.ID, &agent.Name, &agent.Email, &agent.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *SalesAgentRepository) FindAll(ctx context.Context) ([]*entity.SalesAgent, error) {
	query, args, err := r.Builder.From(agentsTable).
		Select("id", "name", "email", "created_at").
		Order(goqu.I("created_at").Asc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := make([]*entity.SalesAgent, 0)
	for rows.Next() {
		var agent entity.SalesAgent
		if err := rows.Scan(&agent.ID, &agent.Name, &agent.Email, &agent.CreatedAt); err != nil {
			return nil, err
		}
		agents = append(agents, &agent)
	}
	return agents, rows.Err()
}

func (r *SalesAgentRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.Builder.Delete(agentsTable).
		Where(goqu.I("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return checkFound(result, entity.ErrAgentNotFound)
}
