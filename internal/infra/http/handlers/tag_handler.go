package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type TagHandler struct {
	TagUC *usecase.TagUseCase
}

func NewTagHandler(uc *usecase.TagUseCase) *TagHandler {
	return &TagHandler{TagUC: uc}
}

func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateTagInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	tag, err := h.TagUC.Create(r.Context(), input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, tag)
}

func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.TagUC.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tags)
}
