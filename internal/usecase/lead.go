package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
)

type LeadUseCase struct {
	Leads    entity.LeadRepository
	Agents   entity.SalesAgentRepository
	Comments entity.CommentRepository
	Tags     entity.TagRepository
	Queue    QueueProducerInterface
}

func NewLeadUseCase(
	leads entity.LeadRepository,
	agents entity.SalesAgentRepository,
	comments entity.CommentRepository,
	tags entity.TagRepository,
	producer QueueProducerInterface,
) *LeadUseCase {
	return &LeadUseCase{
		Leads:    leads,
		Agents:   agents,
		Comments: comments,
		Tags:     tags,
		Queue:    producer,
	}
}

func (uc *LeadUseCase) Create(ctx context.Context, input CreateLeadInput) (*LeadOutput, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	// O agente referenciado precisa existir antes de atribuir
	var agent *entity.SalesAgent
	if input.SalesAgentID != nil {
		found, err := uc.Agents.FindByID(ctx, *input.SalesAgentID)
		if errors.Is(err, entity.ErrAgentNotFound) {
			return nil, ValidationErrors{{Field: "sales_agent_id", Message: "does not reference an existing sales agent"}}
		}
		if err != nil {
			return nil, err
		}
		agent = found
	}

	tags := normalizeTags(input.Tags)
	if len(tags) > 0 {
		if err := uc.Tags.EnsureAll(ctx, tags); err != nil {
			return nil, err
		}
	}

	lead := entity.NewLead(input.Name, input.Email, input.Phone, input.Status, input.Source, input.SalesAgentID, tags)
	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	uc.publish(ctx, queue.EventLeadCreated, lead, agent)
	if agent != nil {
		uc.publish(ctx, queue.EventLeadAssigned, lead, agent)
	}

	return leadToOutput(lead, agent), nil
}

func (uc *LeadUseCase) List(ctx context.Context, filter entity.LeadFilter) ([]*LeadOutput, error) {
	if errs := ValidateLeadFilter(filter); len(errs) > 0 {
		return nil, errs
	}

	leads, err := uc.Leads.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Cache local para não buscar o mesmo agente duas vezes
	agents := make(map[string]*entity.SalesAgent)
	outputs := make([]*LeadOutput, 0, len(leads))
	for _, lead := range leads {
		agent, err := uc.resolveAgent(ctx, agents, lead.SalesAgentID)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, leadToOutput(lead, agent))
	}

	return outputs, nil
}

func (uc *LeadUseCase) Get(ctx context.Context, id string) (*LeadOutput, error) {
	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	agent, err := uc.loadAgent(ctx, lead.SalesAgentID)
	if err != nil {
		return nil, err
	}

	return leadToOutput(lead, agent), nil
}

func (uc *LeadUseCase) Update(ctx context.Context, id string, input UpdateLeadInput) (*LeadOutput, error) {
	if errs := ValidateUpdateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousAgent := lead.SalesAgentID

	if input.Name != nil {
		lead.Name = *input.Name
	}
	if input.Email != nil {
		lead.Email = *input.Email
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}
	if input.Source != nil {
		lead.Source = *input.Source
	}
	if input.SalesAgentID != nil {
		if *input.SalesAgentID == "" {
			lead.SalesAgentID = nil
		} else {
			lead.SalesAgentID = input.SalesAgentID
		}
	}
	if input.Tags != nil {
		lead.Tags = normalizeTags(input.Tags)
	}
	lead.UpdatedAt = time.Now()

	var agent *entity.SalesAgent
	if lead.SalesAgentID != nil {
		found, err := uc.Agents.FindByID(ctx, *lead.SalesAgentID)
		if errors.Is(err, entity.ErrAgentNotFound) {
			return nil, ValidationErrors{{Field: "sales_agent_id", Message: "does not reference an existing sales agent"}}
		}
		if err != nil {
			return nil, err
		}
		agent = found
	}

	if len(lead.Tags) > 0 {
		if err := uc.Tags.EnsureAll(ctx, lead.Tags); err != nil {
			return nil, err
		}
	}

	if err := uc.Leads.Update(ctx, lead); err != nil {
		return nil, err
	}

	newlyAssigned := lead.SalesAgentID != nil &&
		(previousAgent == nil || *previousAgent != *lead.SalesAgentID)
	if newlyAssigned {
		uc.publish(ctx, queue.EventLeadAssigned, lead, agent)
	}

	return leadToOutput(lead, agent), nil
}

func (uc *LeadUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.Leads.Delete(ctx, id); err != nil {
		return err
	}

	// Cascata: comentários órfãos não sobrevivem ao lead
	if err := uc.Comments.DeleteByLead(ctx, id); err != nil {
		log.Printf("falha ao apagar comentários do lead %s: %v", id, err)
	}

	uc.publish(ctx, queue.EventLeadDeleted, &entity.Lead{ID: id}, nil)
	return nil
}

// publish é best-effort: evento perdido não derruba o request.
func (uc *LeadUseCase) publish(ctx context.Context, event string, lead *entity.Lead, agent *entity.SalesAgent) {
	if uc.Queue == nil {
		return
	}

	payload := queue.LeadEventPayload{
		Event:      event,
		LeadID:     lead.ID,
		LeadName:   lead.Name,
		Status:     lead.Status,
		OccurredAt: time.Now(),
	}
	if agent != nil {
		payload.SalesAgentID = agent.ID
		payload.SalesAgentName = agent.Name
		payload.SalesAgentEmail = agent.Email
	}

	if err := uc.Queue.PublishLeadEvent(ctx, payload); err != nil {
		log.Printf("falha ao publicar evento %s do lead %s: %v", event, lead.ID, err)
	}
}

func (uc *LeadUseCase) loadAgent(ctx context.Context, id *string) (*entity.SalesAgent, error) {
	if id == nil {
		return nil, nil
	}

	agent, err := uc.Agents.FindByID(ctx, *id)
	if errors.Is(err, entity.ErrAgentNotFound) {
		// Referência pendurada (agente removido depois da atribuição):
		// o lead volta como não atribuído em vez de quebrar a leitura
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return agent, nil
}

func (uc *LeadUseCase) resolveAgent(ctx context.Context, cache map[string]*entity.SalesAgent, id *string) (*entity.SalesAgent, error) {
	if id == nil {
		return nil, nil
	}
	if agent, ok := cache[*id]; ok {
		return agent, nil
	}

	agent, err := uc.loadAgent(ctx, id)
	if err != nil {
		return nil, err
	}
	cache[*id] = agent
	return agent, nil
}

func leadToOutput(lead *entity.Lead, agent *entity.SalesAgent) *LeadOutput {
	return &LeadOutput{
		ID:         lead.ID,
		Name:       lead.Name,
		Email:      lead.Email,
		Phone:      lead.Phone,
		Status:     lead.Status,
		Source:     lead.Source,
		SalesAgent: agent,
		Tags:       lead.Tags,
		CreatedAt:  lead.CreatedAt,
		UpdatedAt:  lead.UpdatedAt,
	}
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
