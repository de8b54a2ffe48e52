package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

func newCommentRouter(commentRepo *MockCommentRepositoryHandler, leadRepo *MockLeadRepositoryHandler, agentRepo *MockAgentRepositoryHandler) *chi.Mux {
	uc := usecase.NewCommentUseCase(commentRepo, leadRepo, agentRepo)
	handler := handlers.NewCommentHandler(uc)

	r := chi.NewRouter()
	r.Post("/leads/{id}/comments", handler.Create)
	r.Get("/leads/{id}/comments", handler.ListByLead)
	r.Delete("/comments/{id}", handler.Delete)
	return r
}

func TestCreateCommentHandlerLeadNotFound(t *testing.T) {
	commentRepo := new(MockCommentRepositoryHandler)
	leadRepo := new(MockLeadRepositoryHandler)
	router := newCommentRouter(commentRepo, leadRepo, new(MockAgentRepositoryHandler))

	leadRepo.On("FindByID", mock.Anything, "nope").Return(nil, entity.ErrLeadNotFound)

	body := bytes.NewBufferString(`{"text":"olá"}`)
	req := httptest.NewRequest(http.MethodPost, "/leads/nope/comments", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCommentHandlerSuccess(t *testing.T) {
	commentRepo := new(MockCommentRepositoryHandler)
	leadRepo := new(MockLeadRepositoryHandler)
	router := newCommentRouter(commentRepo, leadRepo, new(MockAgentRepositoryHandler))

	lead := &entity.Lead{ID: "lead-1", Name: "João", Status: "New", Source: "Website", Tags: []string{}}
	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(lead, nil)
	commentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := bytes.NewBufferString(`{"text":"cliente pediu retorno"}`)
	req := httptest.NewRequest(http.MethodPost, "/leads/lead-1/comments", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var comment entity.Comment
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comment))
	assert.Equal(t, "lead-1", comment.LeadID)
	assert.Equal(t, "cliente pediu retorno", comment.Text)
}

func TestListCommentsHandlerNewestFirst(t *testing.T) {
	commentRepo := new(MockCommentRepositoryHandler)
	router := newCommentRouter(commentRepo, new(MockLeadRepositoryHandler), new(MockAgentRepositoryHandler))

	now := time.Now()
	comments := []*entity.Comment{
		{ID: "c2", LeadID: "lead-1", Text: "recente", CreatedAt: now},
		{ID: "c1", LeadID: "lead-1", Text: "antigo", CreatedAt: now.Add(-time.Hour)},
	}
	commentRepo.On("FindByLead", mock.Anything, "lead-1").Return(comments, nil)

	req := httptest.NewRequest(http.MethodGet, "/leads/lead-1/comments", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result []*entity.Comment
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result, 2)
	assert.Equal(t, "c2", result[0].ID)
}

func TestDeleteCommentHandlerNotFound(t *testing.T) {
	commentRepo := new(MockCommentRepositoryHandler)
	router := newCommentRouter(commentRepo, new(MockLeadRepositoryHandler), new(MockAgentRepositoryHandler))

	commentRepo.On("Delete", mock.Anything, "nope").Return(entity.ErrCommentNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/comments/nope", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
