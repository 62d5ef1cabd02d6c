package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/config"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/service/mocks"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *mocks.MockRouteService, *mocks.MockLiveService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	incidentMock := mocks.NewMockIncidentService(ctrl)
	routeMock := mocks.NewMockRouteService(ctrl)
	liveMock := mocks.NewMockLiveService(ctrl)
	placesMock := mocks.NewMockPlacesService(ctrl)
	speechMock := mocks.NewMockSpeechService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(incidentMock, routeMock, liveMock, placesMock, speechMock, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, incidentMock, routeMock, liveMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// makeReportForm собирает multipart-форму отчета об инциденте
func makeReportForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCreateIncident_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:        incidentID,
		Latitude:  13.0827,
		Longitude: 80.2707,
		Category:  "Flooding",
		Severity:  models.SeverityHigh,
		Summary:   "Street flooded after heavy rain",
		Upvotes:   0,
		CreatedAt: time.Now(),
	}

	incidentMock.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.ReportInput) (*models.Incident, error) {
			assert.Equal(t, "Улица затоплена после ливня", input.Description)
			return expectedIncident, nil
		}).Times(1)

	body, contentType := makeReportForm(t, map[string]string{
		"description": "Улица затоплена после ливня",
		"latitude":    "13.0827",
		"longitude":   "80.2707",
	})
	req := httptest.NewRequest("POST", "/api/v1/incidents", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-API-Key", "test-api-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, _ := json.Marshal(resp.Data)
	var incident IncidentResponse
	require.NoError(t, json.Unmarshal(data, &incident))
	assert.Equal(t, incidentID, incident.ID)
	assert.Equal(t, "Flooding", incident.Category)
	// Свежий отчет всегда начинается с нуля голосов
	assert.Equal(t, 0, incident.Upvotes)
}

func TestCreateIncident_MissingDescription(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)

	incidentMock.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	body, contentType := makeReportForm(t, map[string]string{
		"latitude":  "13.0827",
		"longitude": "80.2707",
	})
	req := httptest.NewRequest("POST", "/api/v1/incidents", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "description is required")
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestCreateIncident_InvalidCoordinates(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)

	incidentMock.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0)

	body, contentType := makeReportForm(t, map[string]string{
		"description": "test",
		"latitude":    "91.0",
		"longitude":   "80.0",
	})
	req := httptest.NewRequest("POST", "/api/v1/incidents", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "coordinates out of range")
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, _, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestUpvoteIncident_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()

	incidentMock.EXPECT().
		UpvoteIncident(gomock.Any(), incidentID).
		Return(3, nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/upvote", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"upvotes":3`)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestCreateComment_ValidationError(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	incidentID := uuid.New()

	incidentMock.EXPECT().AddComment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateCommentRequest{Text: ""})
	w := makeRequest(router, "POST", "/api/v1/incidents/"+incidentID.String()+"/comments", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeRoute_Success(t *testing.T) {
	_, _, routeMock, _, router := newTestHandler(t)

	analysis := &models.RouteAnalysis{
		Alternatives: []models.RouteAlternative{
			{Summary: "Anna Salai", TrafficStatus: models.TrafficModerate, JunctionCount: 4},
		},
		HazardSummary: "One accident on the route",
	}
	routeMock.EXPECT().
		AnalyzeRoute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(analysis, nil).
		Times(1)

	reqBody := AnalyzeRouteRequest{
		OriginLatitude:       13.0827,
		OriginLongitude:      80.2707,
		DestinationLatitude:  12.9716,
		DestinationLongitude: 77.5946,
	}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes/analyze", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Anna Salai")
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestAnalyzeRoute_ProviderError(t *testing.T) {
	_, _, routeMock, _, router := newTestHandler(t)

	routeMock.EXPECT().
		AnalyzeRoute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("quota exceeded")).
		Times(1)

	reqBody := AnalyzeRouteRequest{
		OriginLatitude:       13.0827,
		OriginLongitude:      80.2707,
		DestinationLatitude:  12.9716,
		DestinationLongitude: 77.5946,
	}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes/analyze", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestLiveSearch_Success(t *testing.T) {
	_, _, _, liveMock, router := newTestHandler(t)

	report := &models.LiveReport{
		Location: "T Nagar, Chennai",
		Sections: []models.LiveSectionReport{
			{Kind: "traffic", Category: "No Incidents", Summary: "No verified incidents found for this area."},
		},
	}
	liveMock.EXPECT().
		Search(gomock.Any(), "T Nagar, Chennai").
		Return(report, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(LiveSearchRequest{Address: "T Nagar, Chennai"})
	w := makeRequest(router, "POST", "/api/v1/live/search", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No Incidents")
}

func TestHealthCheck(t *testing.T) {
	_, _, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
