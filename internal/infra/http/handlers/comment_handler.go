package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type CommentHandler struct {
	CommentUC *usecase.CommentUseCase
}

func NewCommentHandler(uc *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{CommentUC: uc}
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	var input usecase.CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	comment, err := h.CommentUC.Create(r.Context(), leadID, input)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) ListByLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	comments, err := h.CommentUC.ListByLead(r.Context(), leadID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.CommentUC.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "comment deleted successfully"})
}
