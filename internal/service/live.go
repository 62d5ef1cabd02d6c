package service

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/clients/perplexity"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
)

// LiveSearcher определяет контракт веб-поиска свежих новостей
type LiveSearcher interface {
	Search(ctx context.Context, query string) ([]perplexity.SearchResult, error)
}

// LiveService определяет контракт живого поиска инцидентов по адресу
type LiveService interface {
	Search(ctx context.Context, address string) (*models.LiveReport, error)
}

type liveService struct {
	searcher LiveSearcher
	analyzer Analyzer
	logger   *logrus.Logger
}

func NewLiveService(searcher LiveSearcher, analyzer Analyzer, logger *logrus.Logger) LiveService {
	return &liveService{
		searcher: searcher,
		analyzer: analyzer,
		logger:   logger,
	}
}

// Search выполняет два поисковых запроса по адресу (дорожная обстановка
// и отключения электричества) параллельно, затем прогоняет каждый набор
// результатов через генеративный синтез.
func (s *liveService) Search(ctx context.Context, address string) (*models.LiveReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "live",
		"method":  "Search",
	})
	log.Info("Running live incident search")

	queries := []struct {
		kind  string
		query string
	}{
		{"traffic", fmt.Sprintf("Current traffic incidents, road accidents and road closures near %s in the last 48 hours", address)},
		{"electricity", fmt.Sprintf("Current power cuts and electricity outages near %s in the last 48 hours", address)},
	}

	type searchOutcome struct {
		results []perplexity.SearchResult
		err     error
	}

	outcomes := make([]searchOutcome, len(queries))
	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, query string) {
			defer wg.Done()
			results, err := s.searcher.Search(ctx, query)
			outcomes[i] = searchOutcome{results: results, err: err}
		}(i, q.query)
	}
	wg.Wait()

	for i, outcome := range outcomes {
		if outcome.err != nil {
			log.WithError(outcome.err).WithField("kind", queries[i].kind).Error("Live search query failed")
			return nil, fmt.Errorf("service: live search failed: %w", outcome.err)
		}
	}

	report := &models.LiveReport{Location: address}
	for i, outcome := range outcomes {
		synthesis, err := s.analyzer.SynthesizeLiveIncidents(ctx, address, outcome.results)
		if err != nil {
			log.WithError(err).WithField("kind", queries[i].kind).Error("Failed to synthesize live search results")
			return nil, fmt.Errorf("service: could not synthesize live results: %w", err)
		}

		section := models.LiveSectionReport{
			Kind:     queries[i].kind,
			Category: synthesis.Category,
			Summary:  synthesis.Summary,
			Impact:   synthesis.Impact,
		}
		for _, r := range outcome.results {
			section.Incidents = append(section.Incidents, toLiveIncident(r, address))
		}
		report.Sections = append(report.Sections, section)
	}

	log.WithField("sections", len(report.Sections)).Info("Live search completed")
	return report, nil
}

func toLiveIncident(r perplexity.SearchResult, location string) models.LiveIncident {
	ts, _ := time.Parse("2006-01-02", r.Date)
	return models.LiveIncident{
		ID:        uuid.NewString(),
		Source:    sourceHost(r.URL),
		Title:     r.Title,
		Summary:   r.Summary,
		URL:       r.URL,
		Timestamp: ts,
		TimeAgo:   timeAgo(ts),
		Location:  location,
	}
}

func sourceHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "web"
	}
	return u.Host
}

// timeAgo переводит дату публикации в человекочитаемую давность
func timeAgo(ts time.Time) string {
	if ts.IsZero() {
		return "recently"
	}
	days := int(time.Since(ts).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
