package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client - клиент ElevenLabs: синтез речи и исходящие звонки
// голосового агента
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// OutboundCall - параметры исходящего звонка голосового агента
type OutboundCall struct {
	AgentID          string            `json:"agent_id"`
	AgentPhoneNumber string            `json:"agent_phone_number_id"`
	ToNumber         string            `json:"to_number"`
	DynamicVariables map[string]string `json:"dynamic_variables,omitempty"`
}

// NewClient создает клиент ElevenLabs
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.elevenlabs.io",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Speak синтезирует речь для текста и возвращает аудио (mpeg)
func (c *Client) Speak(ctx context.Context, text, voiceID string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("ElevenLabs API key is not configured. Set ELEVENLABS_API_KEY to enable voice output")
	}

	requestBody := map[string]any{
		"text":     text,
		"model_id": "eleven_multilingual_v2",
	}
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal speech request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute speech request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("speech API error %d: %s", resp.StatusCode, string(body))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio response: %w", err)
	}
	return audio, nil
}

// InitiateCall запускает исходящий звонок агента на указанный номер
// с динамическими переменными разговора
func (c *Client) InitiateCall(ctx context.Context, call OutboundCall) error {
	if c.apiKey == "" {
		return fmt.Errorf("ElevenLabs API key is not configured. Set ELEVENLABS_API_KEY to enable outbound calls")
	}

	payload := map[string]any{
		"agent_id":              call.AgentID,
		"agent_phone_number_id": call.AgentPhoneNumber,
		"to_number":             call.ToNumber,
	}
	if len(call.DynamicVariables) > 0 {
		payload["conversation_initiation_client_data"] = map[string]any{
			"dynamic_variables": call.DynamicVariables,
		}
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal call request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/convai/twilio/outbound-call", bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create call request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute call request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("call API error %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
