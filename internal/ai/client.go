package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/clients/perplexity"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
)

// TrendMinIncidents - минимум инцидентов для запуска анализа трендов.
// Меньше - возвращается локальный ответ без обращения к модели.
const TrendMinIncidents = 5

// TrendFallbackMessage - фиксированный ответ при нехватке данных
const TrendFallbackMessage = "Not enough incident reports to detect trends yet. At least 5 reports are needed."

// Фиксированный ответ живого поиска при нулевых результатах
const (
	LiveNoIncidentsCategory = "No Incidents"
	LiveNoIncidentsSummary  = "No recent civic disruptions were found near this location."
)

// chatCompleter - узкий контракт модели, позволяющий подменять клиента в тестах
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client выполняет генеративные флоу поверх chat-completions API
type Client struct {
	api   chatCompleter
	model string
}

// NewClient создает клиент генеративных флоу
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
	}
}

// ClassifyIncident классифицирует отчет об инциденте: категория,
// серьезность и сводка. Если приложено фото, оно передается модели.
func (c *Client) ClassifyIncident(ctx context.Context, input IncidentInput) (*IncidentAnalysis, error) {
	userText := fmt.Sprintf("Description: %s\nAddress: %s\nCoordinates: %f, %f",
		input.Description, input.Address, input.Latitude, input.Longitude)

	userMessage := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if input.MediaDataURL != "" {
		userMessage.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: userText},
			{
				Type:     openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{URL: input.MediaDataURL},
			},
		}
	} else {
		userMessage.Content = userText
	}

	var analysis IncidentAnalysis
	if err := c.complete(ctx, classifySystemPrompt, userMessage, classifySchema, &analysis); err != nil {
		return nil, err
	}

	// Валидация enum на границе: некорректная severity приводится к Medium
	if !analysis.Severity.IsValid() {
		analysis.Severity = models.SeverityMedium
	}
	if analysis.Category == "" {
		analysis.Category = "Other"
	}
	return &analysis, nil
}

// AnalyzeTrends строит отчет о трендах по инцидентам. При менее чем
// TrendMinIncidents записях модель не вызывается и возвращается
// фиксированный ответ - это оптимизация стоимости и задержки.
func (c *Client) AnalyzeTrends(ctx context.Context, incidents []*models.Incident) (*TrendReport, error) {
	if len(incidents) < TrendMinIncidents {
		return &TrendReport{
			Summary:          TrendFallbackMessage,
			DominantCategory: "",
			Observation:      "",
		}, nil
	}

	payload, err := json.Marshal(incidents)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal incidents for trend analysis: %w", err)
	}

	userMessage := openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: fmt.Sprintf("Incident reports:\n%s", payload),
	}

	var report TrendReport
	if err := c.complete(ctx, trendSystemPrompt, userMessage, trendSchema, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// PredictImpact оценивает влияние активных инцидентов на район.
// Без инцидентов возвращается локальный ответ без вызова модели.
func (c *Client) PredictImpact(ctx context.Context, location string, incidents []*models.Incident) (*ImpactReport, error) {
	if len(incidents) == 0 {
		return &ImpactReport{
			Level:   "low",
			Summary: "No active incidents are reported in this area.",
		}, nil
	}

	payload, err := json.Marshal(incidents)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal incidents for impact prediction: %w", err)
	}

	userMessage := openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: fmt.Sprintf("Location: %s\nActive incidents:\n%s", location, payload),
	}

	var report ImpactReport
	if err := c.complete(ctx, impactSystemPrompt, userMessage, impactSchema, &report); err != nil {
		return nil, err
	}
	if !isValidImpact(report.Level) {
		report.Level = "moderate"
	}
	return &report, nil
}

// SynthesizeLiveIncidents синтезирует сырые результаты веб-поиска в один
// категоризированный отчет. Нулевые результаты дают фиксированный ответ
// "No Incidents" без обращения к модели.
func (c *Client) SynthesizeLiveIncidents(ctx context.Context, location string, results []perplexity.SearchResult) (*LiveSynthesis, error) {
	if len(results) == 0 {
		return &LiveSynthesis{
			Category: LiveNoIncidentsCategory,
			Summary:  LiveNoIncidentsSummary,
			Impact:   "low",
		}, nil
	}

	payload, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search results: %w", err)
	}

	userMessage := openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: fmt.Sprintf("Location: %s\nSearch results:\n%s", location, payload),
	}

	var synthesis LiveSynthesis
	if err := c.complete(ctx, liveSystemPrompt, userMessage, liveSchema, &synthesis); err != nil {
		return nil, err
	}
	if !isValidImpact(synthesis.Impact) {
		synthesis.Impact = "moderate"
	}
	return &synthesis, nil
}

// SummarizeRouteHazards готовит короткий brief для водителя об
// опасностях вдоль маршрута
func (c *Client) SummarizeRouteHazards(ctx context.Context, routeSummary string, incidents []*models.Incident) (string, error) {
	payload, err := json.Marshal(incidents)
	if err != nil {
		return "", fmt.Errorf("failed to marshal incidents for hazard briefing: %w", err)
	}

	userMessage := openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: fmt.Sprintf("Route: %s\nIncidents on route:\n%s", routeSummary, payload),
	}

	var out struct {
		Briefing string `json:"briefing"`
	}
	if err := c.complete(ctx, hazardSystemPrompt, userMessage, hazardSchema, &out); err != nil {
		return "", err
	}
	return out.Briefing, nil
}

// complete выполняет один вызов модели со структурированным выводом
// и разбирает JSON-ответ в out
func (c *Client) complete(ctx context.Context, systemPrompt string, userMessage openai.ChatCompletionMessage, schema *openai.ChatCompletionResponseFormatJSONSchema, out any) error {
	if c.api == nil {
		return errors.New("AI client is not initialized - missing API key")
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			userMessage,
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type:       openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: schema,
		},
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		return fmt.Errorf("model API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return errors.New("model returned no choices")
	}

	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), out); err != nil {
		return fmt.Errorf("failed to parse model JSON response: %w", err)
	}
	return nil
}

func isValidImpact(level string) bool {
	switch level {
	case "low", "moderate", "high":
		return true
	}
	return false
}
