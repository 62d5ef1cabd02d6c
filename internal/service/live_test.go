package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/ai"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/clients/perplexity"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/service/mocks"
)

// newTestLiveService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestLiveService(t *testing.T) (LiveService, *mocks.MockLiveSearcher, *mocks.MockAnalyzer) {
	ctrl := gomock.NewController(t)
	searcherMock := mocks.NewMockLiveSearcher(ctrl)
	analyzerMock := mocks.NewMockAnalyzer(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewLiveService(searcherMock, analyzerMock, logger)
	return service, searcherMock, analyzerMock
}

func TestLiveSearch_Success(t *testing.T) {
	// Подготовка
	service, searcherMock, analyzerMock := newTestLiveService(t)
	ctx := context.Background()
	address := "T Nagar, Chennai"
	trafficResults := []perplexity.SearchResult{
		{Title: "Accident on Usman Road", URL: "https://news.example.com/a", Summary: "Two lanes blocked", Date: "2026-08-31"},
	}

	// Ожидания: оба запроса выполняются, каждый набор синтезируется отдельно
	searcherMock.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(trafficResults, nil).
		Times(1)
	searcherMock.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return([]perplexity.SearchResult{}, nil).
		Times(1)
	analyzerMock.EXPECT().
		SynthesizeLiveIncidents(ctx, address, gomock.Any()).
		Return(&ai.LiveSynthesis{Category: "Accident", Summary: "One accident nearby", Impact: "moderate"}, nil).
		Times(1)
	analyzerMock.EXPECT().
		SynthesizeLiveIncidents(ctx, address, gomock.Any()).
		Return(&ai.LiveSynthesis{Category: "No Incidents", Summary: "No verified incidents found for this area.", Impact: "low"}, nil).
		Times(1)

	// Действие
	report, err := service.Search(ctx, address)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, address, report.Location)
	require.Len(t, report.Sections, 2)
	assert.Equal(t, "traffic", report.Sections[0].Kind)
	assert.Equal(t, "electricity", report.Sections[1].Kind)
}

func TestLiveSearch_QueriesConstrainRecency(t *testing.T) {
	// Подготовка
	service, searcherMock, analyzerMock := newTestLiveService(t)
	ctx := context.Background()
	address := "T Nagar, Chennai"

	// Ожидания: собираем тексты обоих запросов
	var mu sync.Mutex
	var queries []string
	searcherMock.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query string) ([]perplexity.SearchResult, error) {
			mu.Lock()
			queries = append(queries, query)
			mu.Unlock()
			return []perplexity.SearchResult{}, nil
		}).
		Times(2)
	analyzerMock.EXPECT().
		SynthesizeLiveIncidents(ctx, address, gomock.Any()).
		Return(&ai.LiveSynthesis{Category: "No Incidents", Summary: "No verified incidents found for this area.", Impact: "low"}, nil).
		Times(2)

	// Действие
	_, err := service.Search(ctx, address)

	// Проверки: каждый запрос ограничивает выдачу последними 48 часами
	require.NoError(t, err)
	require.Len(t, queries, 2)
	for _, query := range queries {
		assert.Contains(t, query, "in the last 48 hours")
		assert.Contains(t, query, address)
	}
}

func TestLiveSearch_SearcherError(t *testing.T) {
	// Подготовка
	service, searcherMock, _ := newTestLiveService(t)
	ctx := context.Background()

	// Ожидания
	searcherMock.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("upstream timeout")).
		Times(2)

	// Действие
	report, err := service.Search(ctx, "T Nagar, Chennai")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
}
