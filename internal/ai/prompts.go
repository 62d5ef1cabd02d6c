package ai

import (
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"
)

// classifySystemPrompt - классификация пользовательского отчета об инциденте
const classifySystemPrompt = `You are a civic incident analyst. A resident has submitted a report with a description, an optional address and optionally a photo or video frame. Classify the incident.

Instructions:
- Pick the single best category from this list: Accident, Traffic Jam, Road Closure, Flooding, Power Outage, Fallen Tree, Pothole, Public Disturbance, Other.
- Assess severity strictly as one of: Low, Medium, High. Consider danger to life and disruption to traffic or utilities.
- Write a factual one-or-two sentence summary of what happened, suitable for a public map popup. No speculation, no filler.
- If the media contradicts the description, trust the media.

Return valid JSON with fields: category, severity, summary.`

// trendSystemPrompt - анализ трендов по списку инцидентов
const trendSystemPrompt = `You are a civic analytics assistant. You receive a JSON list of recent incident reports (category, severity, address, created_at). Identify patterns.

Instructions:
- Find the dominant category and any notable clustering in time or place.
- Write a short trend summary (2-3 sentences) for a city operations dashboard.
- Add one actionable observation, e.g. a recurring hotspot or a rising category.

Return valid JSON with fields: summary, dominant_category, observation.`

// impactSystemPrompt - предиктивная оценка влияния на район
const impactSystemPrompt = `You are a civic impact forecaster. You receive a location and a JSON list of active incidents near it. Predict the near-term impact on residents and traffic in that area.

Instructions:
- Classify impact level as one of: low, moderate, high.
- Write a 2-3 sentence impact summary: what is disrupted, for whom and roughly how long.
- Base the assessment only on the provided incidents.

Return valid JSON with fields: level, summary.`

// liveSystemPrompt - синтез результатов веб-поиска в один отчет
const liveSystemPrompt = `You are a civic disruption analyst. You receive raw web search results (title, url, summary) about possible disruptions near a location. Synthesize them into one categorized report.

Instructions:
- Pick one category that best describes the overall situation (e.g. "Traffic Disruption", "Power Outage", "No Incidents").
- Summarize the concrete, recent facts in 2-4 sentences. Ignore stale or irrelevant results.
- Classify impact as one of: low, moderate, high.

Return valid JSON with fields: category, summary, impact.`

// hazardSystemPrompt - сводка об опасностях вдоль маршрута
const hazardSystemPrompt = `You are a route safety briefer. You receive a route description and a JSON list of incidents lying on or near that route. Write a short spoken-style briefing for a driver about to depart.

Instructions:
- Mention the most severe hazards first.
- Keep it under 80 words, plain language, no coordinates.
- If the list is empty, say the route looks clear.

Return valid JSON with a single field: briefing.`

// JSON-схемы структурированных ответов моделей

var classifySchema = &openai.ChatCompletionResponseFormatJSONSchema{
	Name:   "incident_classification",
	Strict: true,
	Schema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"category": {"type": "string", "description": "Single best category label"},
			"severity": {"type": "string", "enum": ["Low", "Medium", "High"]},
			"summary": {"type": "string", "description": "One or two factual sentences"}
		},
		"required": ["category", "severity", "summary"],
		"additionalProperties": false
	}`),
}

var trendSchema = &openai.ChatCompletionResponseFormatJSONSchema{
	Name:   "trend_report",
	Strict: true,
	Schema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"summary": {"type": "string"},
			"dominant_category": {"type": "string"},
			"observation": {"type": "string"}
		},
		"required": ["summary", "dominant_category", "observation"],
		"additionalProperties": false
	}`),
}

var impactSchema = &openai.ChatCompletionResponseFormatJSONSchema{
	Name:   "impact_report",
	Strict: true,
	Schema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"level": {"type": "string", "enum": ["low", "moderate", "high"]},
			"summary": {"type": "string"}
		},
		"required": ["level", "summary"],
		"additionalProperties": false
	}`),
}

var liveSchema = &openai.ChatCompletionResponseFormatJSONSchema{
	Name:   "live_synthesis",
	Strict: true,
	Schema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"category": {"type": "string"},
			"summary": {"type": "string"},
			"impact": {"type": "string", "enum": ["low", "moderate", "high"]}
		},
		"required": ["category", "summary", "impact"],
		"additionalProperties": false
	}`),
}

var hazardSchema = &openai.ChatCompletionResponseFormatJSONSchema{
	Name:   "hazard_briefing",
	Strict: true,
	Schema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"briefing": {"type": "string"}
		},
		"required": ["briefing"],
		"additionalProperties": false
	}`),
}
