package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type AgentUseCase struct {
	Agents entity.SalesAgentRepository
	Leads  entity.LeadRepository
}

func NewAgentUseCase(agents entity.SalesAgentRepository, leads entity.LeadRepository) *AgentUseCase {
	return &AgentUseCase{Agents: agents, Leads: leads}
}

func (uc *AgentUseCase) Create(ctx context.Context, input CreateAgentInput) (*entity.SalesAgent, error) {
	if errs := ValidateCreateAgentInput(input); len(errs) > 0 {
		return nil, errs
	}

	agent := entity.NewSalesAgent(input.Name, input.Email)
	if err := uc.Agents.Create(ctx, agent); err != nil {
		// ErrEmailAlreadyExists sobe direto para virar 409
		return nil, err
	}

	return agent, nil
}

func (uc *AgentUseCase) List(ctx context.Context) ([]*entity.SalesAgent, error) {
	return uc.Agents.FindAll(ctx)
}

// Delete remove o agente somente se nenhum lead o referencia. O check
// é best-effort: sem transação, um lead pode ser atribuído entre a
// contagem e o delete.
func (uc *AgentUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Agents.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := uc.Leads.CountByAgent(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return entity.ErrAgentHasLeads
	}

	return uc.Agents.Delete(ctx, id)
}
