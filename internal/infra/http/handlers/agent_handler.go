package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type AgentHandler struct {
	AgentUC *usecase.AgentUseCase
}

func NewAgentHandler(uc *usecase.AgentUseCase) *AgentHandler {
	return &AgentHandler{AgentUC: uc}
}

func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateAgentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	agent, err := h.AgentUC.Create(r.Context(), input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, agent)
}

func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	agents, err := h.AgentUC.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, agents)
}

func (h *AgentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.AgentUC.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrAgentHasLeads) {
			middleware.RecordAgentDeletionBlocked()
		}
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "sales agent deleted successfully"})
}
