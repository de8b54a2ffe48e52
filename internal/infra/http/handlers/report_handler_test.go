package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

func newReportRouter(leadRepo *MockLeadRepositoryHandler) *chi.Mux {
	uc := usecase.NewReportUseCase(leadRepo)
	handler := handlers.NewReportHandler(uc)

	r := chi.NewRouter()
	r.Get("/report/last-week", handler.LastWeek)
	r.Get("/report/pipeline", handler.Pipeline)
	r.Get("/report/closed-by-agent", handler.ClosedByAgent)
	return r
}

func TestPipelineHandler(t *testing.T) {
	leadRepo := new(MockLeadRepositoryHandler)
	router := newReportRouter(leadRepo)

	leadRepo.On("CountInPipeline", mock.Anything).Return(4, nil)

	req := httptest.NewRequest(http.MethodGet, "/report/pipeline", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var output usecase.ReportCountOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &output))
	assert.Equal(t, 4, output.Count)
}

func TestLastWeekHandler(t *testing.T) {
	leadRepo := new(MockLeadRepositoryHandler)
	router := newReportRouter(leadRepo)

	leadRepo.On("CountCreatedSince", mock.Anything, mock.Anything).Return(9, nil)

	req := httptest.NewRequest(http.MethodGet, "/report/last-week", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var output usecase.ReportCountOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &output))
	assert.Equal(t, 9, output.Count)
}

func TestReportHandlerInternalError(t *testing.T) {
	leadRepo := new(MockLeadRepositoryHandler)
	router := newReportRouter(leadRepo)

	leadRepo.On("CountInPipeline", mock.Anything).Return(0, errors.New("connection reset"))

	req := httptest.NewRequest(http.MethodGet, "/report/pipeline", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// detalhe do driver não vaza para o cliente
	var response map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "internal server error", response["error"])
}

func TestClosedByAgentHandler(t *testing.T) {
	leadRepo := new(MockLeadRepositoryHandler)
	router := newReportRouter(leadRepo)

	report := []entity.ClosedByAgent{
		{SalesAgent: &entity.SalesAgent{ID: "agent-1", Name: "Maria Souza"}, Count: 3},
	}
	leadRepo.On("CountClosedByAgent", mock.Anything).Return(report, nil)

	req := httptest.NewRequest(http.MethodGet, "/report/closed-by-agent", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result []entity.ClosedByAgent
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result, 1)
	assert.Equal(t, 3, result[0].Count)
}
