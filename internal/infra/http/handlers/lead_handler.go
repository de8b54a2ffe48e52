package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type LeadHandler struct {
	LeadUC *usecase.LeadUseCase
}

func NewLeadHandler(uc *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{LeadUC: uc}
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	output, err := h.LeadUC.Create(r.Context(), input)
	if err != nil {
		handleError(w, err)
		return
	}

	middleware.RecordLeadCreated(output.Source)
	respondJSON(w, http.StatusCreated, output)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := parseLeadFilter(r)

	outputs, err := h.LeadUC.List(r.Context(), filter)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, outputs)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	output, err := h.LeadUC.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	output, err := h.LeadUC.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.LeadUC.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "lead deleted successfully"})
}

// parseLeadFilter monta o filtro tipado a partir da query string.
// Chave ausente não entra no filtro.
func parseLeadFilter(r *http.Request) entity.LeadFilter {
	query := r.URL.Query()

	filter := entity.LeadFilter{
		SalesAgentID: queryParam(query.Get("salesAgentId")),
		Status:       queryParam(query.Get("status")),
		Source:       queryParam(query.Get("source")),
	}

	if raw := query.Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}

	return filter
}

func queryParam(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
