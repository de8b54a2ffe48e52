package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrCommentNotFound = errors.New("comment not found")

type Comment struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	AuthorID  *string   `json:"author_id,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`

	// Preenchidos no join da listagem, nunca persistidos
	AuthorName  string `json:"author_name,omitempty"`
	AuthorEmail string `json:"author_email,omitempty"`
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	// FindByLead returns the lead's comments newest first with the
	// author's name/email joined in.
	FindByLead(ctx context.Context, leadID string) ([]*Comment, error)
	Delete(ctx context.Context, id string) error
	DeleteByLead(ctx context.Context, leadID string) error
}

func NewComment(leadID, text string, authorID *string) *Comment {
	return &Comment{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now(),
	}
}
