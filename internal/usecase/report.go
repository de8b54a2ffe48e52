package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type ReportUseCase struct {
	Leads entity.LeadRepository
}

func NewReportUseCase(leads entity.LeadRepository) *ReportUseCase {
	return &ReportUseCase{Leads: leads}
}

// LastWeek conta os leads criados na janela deslizante de 7 dias
// (não é semana-calendário).
func (uc *ReportUseCase) LastWeek(ctx context.Context) (*ReportCountOutput, error) {
	since := time.Now().Add(-7 * 24 * time.Hour)

	count, err := uc.Leads.CountCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}
	return &ReportCountOutput{Count: count}, nil
}

// Pipeline conta os leads que ainda não chegaram em Closed.
func (uc *ReportUseCase) Pipeline(ctx context.Context) (*ReportCountOutput, error) {
	count, err := uc.Leads.CountInPipeline(ctx)
	if err != nil {
		return nil, err
	}
	return &ReportCountOutput{Count: count}, nil
}

func (uc *ReportUseCase) ClosedByAgent(ctx context.Context) ([]entity.ClosedByAgent, error) {
	return uc.Leads.CountClosedByAgent(ctx)
}
