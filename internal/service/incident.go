package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/ai"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/clients/elevenlabs"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/clients/perplexity"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/config"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/webhook"
)

// Автор комментариев пока фиксированный: аккаунтов в приложении нет
const commentAuthor = "Anonymous"

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncidentByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	ListRecentIncidents(ctx context.Context, limit int) ([]*models.Incident, error)
	ListIncidentsNear(ctx context.Context, lat, lng float64, radiusMeters int) ([]*models.Incident, error)
	UpvoteIncident(ctx context.Context, id uuid.UUID) (int, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
	ListComments(ctx context.Context, incidentID uuid.UUID) ([]*models.Comment, error)
	CreatePoliceAlert(ctx context.Context, alert *models.PoliceAlert) error
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// Analyzer определяет контракт генеративных флоу анализа
type Analyzer interface {
	ClassifyIncident(ctx context.Context, input ai.IncidentInput) (*ai.IncidentAnalysis, error)
	AnalyzeTrends(ctx context.Context, incidents []*models.Incident) (*ai.TrendReport, error)
	PredictImpact(ctx context.Context, location string, incidents []*models.Incident) (*ai.ImpactReport, error)
	SynthesizeLiveIncidents(ctx context.Context, location string, results []perplexity.SearchResult) (*ai.LiveSynthesis, error)
	SummarizeRouteHazards(ctx context.Context, routeSummary string, incidents []*models.Incident) (string, error)
}

// VoiceClient определяет контракт синтеза речи и исходящих звонков
type VoiceClient interface {
	Speak(ctx context.Context, text, voiceID string) ([]byte, error)
	InitiateCall(ctx context.Context, call elevenlabs.OutboundCall) error
}

// IncidentService определяет контракт бизнес-логики управления инцидентами
type IncidentService interface {
	ReportIncident(ctx context.Context, input models.ReportInput) (*models.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	UpvoteIncident(ctx context.Context, id uuid.UUID) (int, error)
	AddComment(ctx context.Context, incidentID uuid.UUID, text string) (*models.Comment, error)
	ListComments(ctx context.Context, incidentID uuid.UUID) ([]*models.Comment, error)
	AnalyzeTrends(ctx context.Context) (*ai.TrendReport, error)
	CreatePoliceAlert(ctx context.Context, alert *models.PoliceAlert) error
}

type incidentService struct {
	repo             IncidentRepository
	analyzer         Analyzer
	voice            VoiceClient
	logger           *logrus.Logger
	cfg              *config.Config
	webhookPublisher webhook.WebhookPublisher
}

func NewIncidentService(repo IncidentRepository, analyzer Analyzer, voice VoiceClient, logger *logrus.Logger, cfg *config.Config, webhookPublisher webhook.WebhookPublisher) IncidentService {
	return &incidentService{
		repo:             repo,
		analyzer:         analyzer,
		voice:            voice,
		logger:           logger,
		cfg:              cfg,
		webhookPublisher: webhookPublisher,
	}
}

// ReportIncident классифицирует пользовательский отчет через генеративный
// флоу и сохраняет инцидент. Счетчик голосов нового инцидента равен нулю.
func (s *incidentService) ReportIncident(ctx context.Context, input models.ReportInput) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ReportIncident",
	})
	log.Info("Analyzing a new incident report")

	analysis, err := s.analyzer.ClassifyIncident(ctx, ai.IncidentInput{
		Description:  input.Description,
		Address:      input.Address,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		MediaDataURL: input.MediaDataURL,
	})
	if err != nil {
		log.WithError(err).Error("Failed to classify incident report")
		return nil, fmt.Errorf("service: could not analyze incident report: %w", err)
	}

	incident := &models.Incident{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Category:  analysis.Category,
		Severity:  analysis.Severity,
		Summary:   analysis.Summary,
		Address:   input.Address,
	}

	if err := s.repo.CreateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	// Публикация события о новом инциденте: ошибка очереди не
	// отменяет уже сохраненный отчет
	event := webhook.IncidentEvent{
		IncidentID: incident.ID,
		Category:   incident.Category,
		Severity:   incident.Severity,
		Summary:    incident.Summary,
		Latitude:   incident.Latitude,
		Longitude:  incident.Longitude,
		Address:    incident.Address,
		Timestamp:  incident.CreatedAt,
	}
	if err := s.webhookPublisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish incident event")
	}

	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"category":    incident.Category,
		"severity":    incident.Severity,
	}).Info("Incident created successfully")
	return incident, nil
}

// GetIncident получает инцидент по ID, сначала пробуя кеш
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetIncidentByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// ListIncidents возвращает список инцидентов с пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
	})

	incidents, err := s.repo.ListIncidents(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// UpvoteIncident увеличивает счетчик голосов на единицу и возвращает
// новое значение. Дедупликации нет: N вызовов дают count+N.
func (s *incidentService) UpvoteIncident(ctx context.Context, id uuid.UUID) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpvoteIncident",
		"incident_id": id,
	})

	upvotes, err := s.repo.UpvoteIncident(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to upvote incident in repository")
		return 0, fmt.Errorf("service: could not upvote incident: %w", err)
	}

	// Кеш устарел: следующее чтение пойдет в бд
	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.WithField("upvotes", upvotes).Info("Incident upvoted")
	return upvotes, nil
}

// AddComment добавляет комментарий к существующему инциденту
func (s *incidentService) AddComment(ctx context.Context, incidentID uuid.UUID, text string) (*models.Comment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AddComment",
		"incident_id": incidentID,
	})

	// Комментарий всегда ссылается на существующий инцидент
	if _, err := s.repo.GetIncidentByID(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Attempted to comment on a non-existent incident")
		return nil, fmt.Errorf("service: incident with id %s not found for comment: %w", incidentID, err)
	}

	comment := &models.Comment{
		IncidentID: incidentID,
		Text:       text,
		Author:     commentAuthor,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		log.WithError(err).Error("Failed to create comment in repository")
		return nil, fmt.Errorf("service: could not create comment: %w", err)
	}

	log.WithField("comment_id", comment.ID).Info("Comment created successfully")
	return comment, nil
}

// ListComments возвращает комментарии инцидента, новые первыми
func (s *incidentService) ListComments(ctx context.Context, incidentID uuid.UUID) ([]*models.Comment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ListComments",
		"incident_id": incidentID,
	})

	comments, err := s.repo.ListComments(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to list comments from repository")
		return nil, fmt.Errorf("service: could not list comments: %w", err)
	}
	return comments, nil
}

// AnalyzeTrends строит отчет о трендах по последним инцидентам
func (s *incidentService) AnalyzeTrends(ctx context.Context) (*ai.TrendReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "AnalyzeTrends",
	})

	incidents, err := s.repo.ListRecentIncidents(ctx, s.cfg.TrendIncidentLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents for trend analysis")
		return nil, fmt.Errorf("service: could not load incidents for trends: %w", err)
	}

	report, err := s.analyzer.AnalyzeTrends(ctx, incidents)
	if err != nil {
		log.WithError(err).Error("Failed to analyze incident trends")
		return nil, fmt.Errorf("service: could not analyze trends: %w", err)
	}

	log.WithField("incident_count", len(incidents)).Info("Trend analysis completed")
	return report, nil
}

// CreatePoliceAlert сохраняет заявку и запускает исходящий звонок агента
// школьному контакту. Неудавшийся звонок не отменяет сохраненную заявку.
func (s *incidentService) CreatePoliceAlert(ctx context.Context, alert *models.PoliceAlert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreatePoliceAlert",
	})
	log.Info("Creating a police alert")

	if err := s.repo.CreatePoliceAlert(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create police alert in repository")
		return fmt.Errorf("service: could not create police alert: %w", err)
	}

	if s.cfg.ElevenLabsAgentID != "" && alert.SchoolContact != "" {
		call := elevenlabs.OutboundCall{
			AgentID:          s.cfg.ElevenLabsAgentID,
			AgentPhoneNumber: s.cfg.ElevenLabsPhoneNumberID,
			ToNumber:         alert.SchoolContact,
			DynamicVariables: map[string]string{
				"child_name":       alert.ChildName,
				"school_name":      alert.SchoolName,
				"overdue_by":       alert.OverdueBy,
				"time_left_school": alert.TimeLeftSchool,
			},
		}
		if err := s.voice.InitiateCall(ctx, call); err != nil {
			log.WithError(err).Warn("Failed to initiate agent call for police alert")
		}
	}

	log.WithField("alert_id", alert.ID).Info("Police alert created successfully")
	return nil
}
