package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAgentNotFound      = errors.New("sales agent not found")
	ErrEmailAlreadyExists = errors.New("a sales agent with this email already exists")
	ErrAgentHasLeads      = errors.New("agent has leads assigned, reassign or delete leads first")
)

type SalesAgent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"` // único entre todos os agentes
	CreatedAt time.Time `json:"created_at"`
}

type SalesAgentRepository interface {
	Create(ctx context.Context, agent *SalesAgent) error
	FindByID(ctx context.Context, id string) (*SalesAgent, error)
	FindAll(ctx context.Context) ([]*SalesAgent, error)
	Delete(ctx context.Context, id string) error
}

func NewSalesAgent(name, email string) *SalesAgent {
	return &SalesAgent{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
}
