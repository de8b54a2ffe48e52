package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}
