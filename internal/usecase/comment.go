package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type CommentUseCase struct {
	Comments entity.CommentRepository
	Leads    entity.LeadRepository
	Agents   entity.SalesAgentRepository
}

func NewCommentUseCase(comments entity.CommentRepository, leads entity.LeadRepository, agents entity.SalesAgentRepository) *CommentUseCase {
	return &CommentUseCase{Comments: comments, Leads: leads, Agents: agents}
}

// Create grava um comentário no lead. A existência do lead é checada
// aqui, não por constraint de storage: lead inexistente vira 404 e
// nenhum comentário é persistido.
func (uc *CommentUseCase) Create(ctx context.Context, leadID string, input CreateCommentInput) (*entity.Comment, error) {
	if errs := ValidateCreateCommentInput(input); len(errs) > 0 {
		return nil, errs
	}

	if _, err := uc.Leads.FindByID(ctx, leadID); err != nil {
		return nil, err
	}

	comment := entity.NewComment(leadID, input.Text, input.AuthorID)

	if input.AuthorID != nil {
		author, err := uc.Agents.FindByID(ctx, *input.AuthorID)
		if errors.Is(err, entity.ErrAgentNotFound) {
			return nil, ValidationErrors{{Field: "author_id", Message: "does not reference an existing sales agent"}}
		}
		if err != nil {
			return nil, err
		}
		comment.AuthorName = author.Name
		comment.AuthorEmail = author.Email
	}

	if err := uc.Comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (uc *CommentUseCase) ListByLead(ctx context.Context, leadID string) ([]*entity.Comment, error) {
	return uc.Comments.FindByLead(ctx, leadID)
}

func (uc *CommentUseCase) Delete(ctx context.Context, id string) error {
	return uc.Comments.Delete(ctx, id)
}
