package usecase

import (
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type CreateLeadInput struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Status       string   `json:"status"`
	Source       string   `json:"source"`
	SalesAgentID *string  `json:"sales_agent_id"`
	Tags         []string `json:"tags"`
}

// UpdateLeadInput é um merge parcial: campo nil mantém o valor atual.
// SalesAgentID com string vazia desvincula o agente.
type UpdateLeadInput struct {
	Name         *string  `json:"name"`
	Email        *string  `json:"email"`
	Phone        *string  `json:"phone"`
	Status       *string  `json:"status"`
	Source       *string  `json:"source"`
	SalesAgentID *string  `json:"sales_agent_id"`
	Tags         []string `json:"tags"`
}

// LeadOutput is the API shape of a lead: the assigned agent comes back
// expanded as the full record, or null when unassigned.
type LeadOutput struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email,omitempty"`
	Phone      string             `json:"phone,omitempty"`
	Status     string             `json:"status"`
	Source     string             `json:"source"`
	SalesAgent *entity.SalesAgent `json:"sales_agent"`
	Tags       []string           `json:"tags"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type CreateAgentInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateCommentInput struct {
	Text     string  `json:"text"`
	AuthorID *string `json:"author_id"`
}

type CreateTagInput struct {
	Name string `json:"name"`
}

type ReportCountOutput struct {
	Count int `json:"count"`
}
