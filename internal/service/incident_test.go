package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/ai"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/config"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/service/mocks"
	webhook_mocks "github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/webhook/mocks"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockAnalyzer, *mocks.MockVoiceClient, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	analyzerMock := mocks.NewMockAnalyzer(ctrl)
	voiceMock := mocks.NewMockVoiceClient(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		TrendIncidentLimit:      100,
		ElevenLabsAgentID:       "agent-1",
		ElevenLabsPhoneNumberID: "phone-1",
	}

	service := NewIncidentService(repoMock, analyzerMock, voiceMock, logger, cfg, webhookMock)
	return service.(*incidentService), repoMock, analyzerMock, voiceMock, webhookMock
}

func TestReportIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, analyzerMock, _, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	input := models.ReportInput{
		Description: "Дерево упало на проезжую часть",
		Latitude:    13.0827,
		Longitude:   80.2707,
		Address:     "Anna Salai, Chennai",
	}
	analysis := &ai.IncidentAnalysis{
		Category: "Fallen Tree",
		Severity: models.SeverityHigh,
		Summary:  "A fallen tree is blocking the road",
	}

	// Ожидания
	analyzerMock.EXPECT().
		ClassifyIncident(ctx, gomock.Any()).
		Return(analysis, nil).
		Times(1)
	repoMock.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			incident.ID = uuid.New()
			return nil
		}).
		Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	incident, err := service.ReportIncident(ctx, input)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Fallen Tree", incident.Category)
	assert.Equal(t, models.SeverityHigh, incident.Severity)
	assert.Equal(t, input.Latitude, incident.Latitude)
	assert.Equal(t, input.Longitude, incident.Longitude)
	// Свежесозданный инцидент всегда имеет ноль голосов
	assert.Equal(t, 0, incident.Upvotes)
}

func TestReportIncident_ClassificationError(t *testing.T) {
	// Подготовка
	service, _, analyzerMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	analyzerMock.EXPECT().
		ClassifyIncident(ctx, gomock.Any()).
		Return(nil, fmt.Errorf("model unavailable")).
		Times(1)

	// Действие
	incident, err := service.ReportIncident(ctx, models.ReportInput{Description: "test"})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
}

func TestReportIncident_WebhookFailureIsNotFatal(t *testing.T) {
	// Подготовка
	service, repoMock, analyzerMock, _, webhookMock := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	analyzerMock.EXPECT().
		ClassifyIncident(ctx, gomock.Any()).
		Return(&ai.IncidentAnalysis{Category: "Other", Severity: models.SeverityLow, Summary: "ok"}, nil).
		Times(1)
	repoMock.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		Return(nil).
		Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("queue unavailable")).
		Times(1)

	// Действие
	incident, err := service.ReportIncident(ctx, models.ReportInput{Description: "test"})

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, incident)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:      incidentID,
		Summary: "Тестовый инцидент из кеша",
	}

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:      incidentID,
		Summary: "Тестовый инцидент из БД",
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		GetIncidentByID(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// 3. Инцидент кешируется
	repoMock.EXPECT().
		SetIncidentCache(ctx, expectedIncident).
		Return(nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestUpvoteIncident_IncrementsCounter(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания: каждый голос увеличивает счетчик на единицу
	gomock.InOrder(
		repoMock.EXPECT().UpvoteIncident(ctx, incidentID).Return(1, nil),
		repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil),
		repoMock.EXPECT().UpvoteIncident(ctx, incidentID).Return(2, nil),
		repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil),
		repoMock.EXPECT().UpvoteIncident(ctx, incidentID).Return(3, nil),
		repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil),
	)

	// Действие и Проверки
	for want := 1; want <= 3; want++ {
		upvotes, err := service.UpvoteIncident(ctx, incidentID)
		require.NoError(t, err)
		assert.Equal(t, want, upvotes)
	}
}

func TestAddComment_IncidentNotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetIncidentByID(ctx, incidentID).
		Return(nil, fmt.Errorf("incident not found")).
		Times(1)

	// Действие
	comment, err := service.AddComment(ctx, incidentID, "text")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, comment)
}

func TestAddComment_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetIncidentByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID}, nil).
		Times(1)
	repoMock.EXPECT().
		CreateComment(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	comment, err := service.AddComment(ctx, incidentID, "Дорогу уже расчистили")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, incidentID, comment.IncidentID)
	assert.Equal(t, commentAuthor, comment.Author)
}

func TestAnalyzeTrends_Success(t *testing.T) {
	// Подготовка
	service, repoMock, analyzerMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidents := []*models.Incident{{Category: "Flooding"}, {Category: "Flooding"}}
	expectedReport := &ai.TrendReport{
		Summary:          "Flooding dominates recent reports",
		DominantCategory: "Flooding",
	}

	// Ожидания
	repoMock.EXPECT().
		ListRecentIncidents(ctx, 100).
		Return(incidents, nil).
		Times(1)
	analyzerMock.EXPECT().
		AnalyzeTrends(ctx, incidents).
		Return(expectedReport, nil).
		Times(1)

	// Действие
	report, err := service.AnalyzeTrends(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedReport, report)
}

func TestCreatePoliceAlert_CallFailureIsNotFatal(t *testing.T) {
	// Подготовка
	service, repoMock, _, voiceMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	alert := &models.PoliceAlert{
		ChildName:     "Arjun",
		SchoolName:    "DAV School",
		SchoolContact: "+914412345678",
	}

	// Ожидания
	repoMock.EXPECT().
		CreatePoliceAlert(ctx, alert).
		Return(nil).
		Times(1)
	voiceMock.EXPECT().
		InitiateCall(ctx, gomock.Any()).
		Return(fmt.Errorf("telephony provider error")).
		Times(1)

	// Действие
	err := service.CreatePoliceAlert(ctx, alert)

	// Проверки: заявка сохранена, несмотря на упавший звонок
	require.NoError(t, err)
}

func TestCreatePoliceAlert_RepoError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	alert := &models.PoliceAlert{ChildName: "Arjun", SchoolContact: "+914412345678"}

	// Ожидания
	repoMock.EXPECT().
		CreatePoliceAlert(ctx, alert).
		Return(fmt.Errorf("db down")).
		Times(1)

	// Действие
	err := service.CreatePoliceAlert(ctx, alert)

	// Проверки
	require.Error(t, err)
}
