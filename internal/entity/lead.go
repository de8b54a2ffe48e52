package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errors.New("lead not found")

// Funil de vendas: estados e origens aceitos
var LeadStatuses = []string{"New", "Contacted", "Qualified", "Proposal Sent", "Closed"}

var LeadSources = []string{"Website", "Referral", "Cold Call", "Advertisement", "Email", "Other"}

const StatusClosed = "Closed"

type Lead struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Status       string    `json:"status"` // New, Contacted, Qualified, Proposal Sent, Closed
	Source       string    `json:"source"`
	SalesAgentID *string   `json:"sales_agent_id,omitempty"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LeadFilter carries the optional list filters. A nil/empty field does
// not constrain the result.
type LeadFilter struct {
	SalesAgentID *string
	Status       *string
	Source       *string
	Tags         []string // matches on intersection, not subset
}

type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	Find(ctx context.Context, filter LeadFilter) ([]*Lead, error)
	Update(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, id string) error
	CountByAgent(ctx context.Context, agentID string) (int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
	CountInPipeline(ctx context.Context) (int, error)
	CountClosedByAgent(ctx context.Context) ([]ClosedByAgent, error)
}

// ClosedByAgent is one row of the closed-by-agent report.
type ClosedByAgent struct {
	SalesAgent *SalesAgent `json:"sales_agent"`
	Count      int         `json:"count"`
}

// NewLead cria uma nova instância com ID e Timestamps
func NewLead(name, email, phone, status, source string, salesAgentID *string, tags []string) *Lead {
	if tags == nil {
		tags = []string{}
	}
	return &Lead{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		Status:       status,
		Source:       source,
		SalesAgentID: salesAgentID,
		Tags:         tags,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func IsValidLeadStatus(status string) bool {
	for _, s := range LeadStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsValidLeadSource(source string) bool {
	for _, s := range LeadSources {
		if s == source {
			return true
		}
	}
	return false
}
