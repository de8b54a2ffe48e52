package handlers

import (
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type ReportHandler struct {
	ReportUC *usecase.ReportUseCase
}

func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{ReportUC: uc}
}

func (h *ReportHandler) LastWeek(w http.ResponseWriter, r *http.Request) {
	output, err := h.ReportUC.LastWeek(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output)
}

func (h *ReportHandler) Pipeline(w http.ResponseWriter, r *http.Request) {
	output, err := h.ReportUC.Pipeline(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output)
}

func (h *ReportHandler) ClosedByAgent(w http.ResponseWriter, r *http.Request) {
	report, err := h.ReportUC.ClosedByAgent(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
