package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

const tagsTable = "tags"

type TagRepository struct {
	DB      *sql.DB
	Builder goqu.DialectWrapper
}

func NewTagRepository(db *sql.DB) *TagRepository {
	return &TagRepository{
		DB:      db,
		Builder: goqu.Dialect("postgres"),
	}
}

func (r *TagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	query, args, err := r.Builder.Insert(tagsTable).
		Rows(goqu.Record{
			"id":         tag.ID,
			"name":       tag.Name,
			"created_at": tag.CreatedAt,
		}).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrTagAlreadyExists
		}
		return err
	}
	return nil
}

func (r *TagRepository) FindAll(ctx context.Context) ([]*entity.Tag, error) {
	query, args, err := r.Builder.From(tagsTable).
		Select("id", "name", "created_at").
		Order(goqu.I("name").Asc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]*entity.Tag, 0)
	for rows.Next() {
		var tag entity.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, &tag)
	}
	return tags, rows.Err()
}

// EnsureAll registra os nomes que o lead usou e ainda não existem.
// Nome repetido é ignorado (ON CONFLICT DO NOTHING).
func (r *TagRepository) EnsureAll(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	records := make([]interface{}, 0, len(names))
	now := time.Now()
	for _, name := range names {
		records = append(records, goqu.Record{
			"id":         uuid.New().String(),
			"name":       name,
			"created_at": now,
		})
	}

	query, args, err := r.Builder.Insert(tagsTable).
		Rows(records...).
		OnConflict(goqu.DoNothing()).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query, args...)
	return err
}
