package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

const commentsTable = "comments"

type CommentRepository struct {
	DB      *sql.DB
	Builder goqu.DialectWrapper
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{
		DB:      db,
		Builder: goqu.Dialect("postgres"),
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	var authorID interface{}
	if comment.AuthorID != nil {
		authorID = *comment.AuthorID
	}

	query, args, err := r.Builder.Insert(commentsTable).
		Rows(goqu.Record{
			"id":         comment.ID,
			"lead_id":    comment.LeadID,
			"author_id":  authorID,
			"text":       comment.Text,
			"created_at": comment.CreatedAt,
		}).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query, args...)
	return err
}

// FindByLead lista os comentários do lead, mais recentes primeiro,
// com nome/email do autor resolvidos no join.
func (r *CommentRepository) FindByLead(ctx context.Context, leadID string) ([]*entity.Comment, error) {
	query, args, err := r.Builder.From(goqu.T(commentsTable).As("c")).
		LeftJoin(
			goqu.T(agentsTable).As("a"),
			goqu.On(goqu.I("a.id").Eq(goqu.I("c.author_id"))),
		).
		Select(
			goqu.I("c.id"), goqu.I("c.lead_id"), goqu.I("c.author_id"),
			goqu.I("c.text"), goqu.I("c.created_at"),
			goqu.I("a.name"), goqu.I("a.email"),
		).
		Where(goqu.I("c.lead_id").Eq(leadID)).
		Order(goqu.I("c.created_at").Desc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*entity.Comment, 0)
	for rows.Next() {
		var (
			comment     entity.Comment
			authorID    sql.NullString
			authorName  sql.NullString
			authorEmail sql.NullString
		)
		err := rows.Scan(
			&comment.ID, &comment.LeadID, &authorID,
			&comment.Text, &comment.CreatedAt,
			&authorName, &authorEmail,
		)
		if err != nil {
			return nil, err
		}

		if authorID.Valid {
			comment.AuthorID = &authorID.String
		}
		comment.AuthorName = authorName.String
		comment.AuthorEmail = authorEmail.String
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.Builder.Delete(commentsTable).
		Where(goqu.I("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return checkFound(result, entity.ErrCommentNotFound)
}

// DeleteByLead apaga todos os comentários do lead (cascata no delete
// do lead). Zero linhas não é erro.
func (r *CommentRepository) DeleteByLead(ctx context.Context, leadID string) error {
	query, args, err := r.Builder.Delete(commentsTable).
		Where(goqu.I("lead_id").Eq(leadID)).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query, args...)
	return err
}
