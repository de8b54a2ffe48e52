package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// handleError converte o erro do usecase no status HTTP. Erro
// inesperado vira 500 genérico: o detalhe fica só no log do servidor.
func handleError(w http.ResponseWriter, err error) {
	var validationErrs usecase.ValidationErrors
	if errors.As(err, &validationErrs) {
		respondError(w, http.StatusBadRequest, validationErrs.Error())
		return
	}

	switch {
	case errors.Is(err, entity.ErrLeadNotFound),
		errors.Is(err, entity.ErrAgentNotFound),
		errors.Is(err, entity.ErrCommentNotFound):
		respondError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, entity.ErrEmailAlreadyExists),
		errors.Is(err, entity.ErrTagAlreadyExists):
		respondError(w, http.StatusConflict, err.Error())

	case errors.Is(err, entity.ErrAgentHasLeads):
		respondError(w, http.StatusBadRequest, err.Error())

	default:
		log.Printf("erro interno: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
