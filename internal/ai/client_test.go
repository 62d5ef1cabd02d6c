package ai

import (
	"context"
	"encoding/json"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/clients/perplexity"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
)

// stubCompleter возвращает заготовленный JSON и считает вызовы модели
type stubCompleter struct {
	t        *testing.T
	response string
	err      error
	calls    int
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.calls++
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.response}},
		},
	}, nil
}

func newTestClient(stub *stubCompleter) *Client {
	return &Client{api: stub, model: "test-model"}
}

func makeIncidents(n int) []*models.Incident {
	incidents := make([]*models.Incident, n)
	for i := range incidents {
		incidents[i] = &models.Incident{Category: "Flooding", Severity: models.SeverityMedium}
	}
	return incidents
}

func TestAnalyzeTrends_ShortCircuitBelowMinimum(t *testing.T) {
	stub := &stubCompleter{t: t}
	client := newTestClient(stub)

	// Меньше 5 инцидентов: фиксированный ответ, модель не вызывается
	report, err := client.AnalyzeTrends(context.Background(), makeIncidents(4))
	require.NoError(t, err)
	assert.Equal(t, TrendFallbackMessage, report.Summary)
	assert.Zero(t, stub.calls)
}

func TestAnalyzeTrends_CallsModelAtMinimum(t *testing.T) {
	payload, _ := json.Marshal(TrendReport{
		Summary:          "Flooding reports are rising",
		DominantCategory: "Flooding",
		Observation:      "Cluster near the river district",
	})
	stub := &stubCompleter{t: t, response: string(payload)}
	client := newTestClient(stub)

	report, err := client.AnalyzeTrends(context.Background(), makeIncidents(5))
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "Flooding", report.DominantCategory)
}

func TestSynthesizeLiveIncidents_ShortCircuitOnZeroResults(t *testing.T) {
	stub := &stubCompleter{t: t}
	client := newTestClient(stub)

	synthesis, err := client.SynthesizeLiveIncidents(context.Background(), "Chennai", nil)
	require.NoError(t, err)
	assert.Equal(t, LiveNoIncidentsCategory, synthesis.Category)
	assert.Equal(t, LiveNoIncidentsSummary, synthesis.Summary)
	assert.Zero(t, stub.calls)
}

func TestSynthesizeLiveIncidents_CallsModelWithResults(t *testing.T) {
	payload, _ := json.Marshal(LiveSynthesis{
		Category: "Traffic Disruption",
		Summary:  "Major jam on the ring road after a truck breakdown.",
		Impact:   "high",
	})
	stub := &stubCompleter{t: t, response: string(payload)}
	client := newTestClient(stub)

	results := []perplexity.SearchResult{
		{Title: "Truck breakdown blocks ring road", URL: "https://example.com/1", Summary: "..."},
	}
	synthesis, err := client.SynthesizeLiveIncidents(context.Background(), "Chennai", results)
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "Traffic Disruption", synthesis.Category)
	assert.Equal(t, "high", synthesis.Impact)
}

func TestPredictImpact_ShortCircuitOnZeroIncidents(t *testing.T) {
	stub := &stubCompleter{t: t}
	client := newTestClient(stub)

	report, err := client.PredictImpact(context.Background(), "T. Nagar", nil)
	require.NoError(t, err)
	assert.Equal(t, "low", report.Level)
	assert.Zero(t, stub.calls)
}

func TestClassifyIncident_ValidResponse(t *testing.T) {
	payload, _ := json.Marshal(IncidentAnalysis{
		Category: "Flooding",
		Severity: models.SeverityHigh,
		Summary:  "Street flooded knee-deep after overnight rain.",
	})
	stub := &stubCompleter{t: t, response: string(payload)}
	client := newTestClient(stub)

	analysis, err := client.ClassifyIncident(context.Background(), IncidentInput{
		Description: "Road fully under water",
		Address:     "Anna Salai",
	})
	require.NoError(t, err)
	assert.Equal(t, "Flooding", analysis.Category)
	assert.Equal(t, models.SeverityHigh, analysis.Severity)
}

func TestClassifyIncident_InvalidSeverityClampedToMedium(t *testing.T) {
	stub := &stubCompleter{t: t, response: `{"category":"Accident","severity":"Catastrophic","summary":"Two cars collided."}`}
	client := newTestClient(stub)

	analysis, err := client.ClassifyIncident(context.Background(), IncidentInput{Description: "crash"})
	require.NoError(t, err)
	assert.Equal(t, models.SeverityMedium, analysis.Severity)
}

func TestClassifyIncident_MalformedJSON(t *testing.T) {
	stub := &stubCompleter{t: t, response: `not json`}
	client := newTestClient(stub)

	_, err := client.ClassifyIncident(context.Background(), IncidentInput{Description: "crash"})
	assert.Error(t, err)
}
