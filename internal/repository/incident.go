package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/service"
)

const incidentCacheTTL = 5 * time.Minute

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const incidentColumns = `
	id,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	category,
	severity,
	summary,
	COALESCE(address, ''),
	upvotes,
	created_at`

// CreateIncident создает новую запись об инциденте в бд.
// Счетчик upvotes стартует с нуля, created_at назначает сервер.
func (r *IncidentRepository) CreateIncident(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (location, category, severity, summary, address, upvotes)
		VALUES (ST_SetSRID(ST_MakePoint($1, $2), 4326), $3, $4, $5, NULLIF($6, ''), 0)
		RETURNING id, upvotes, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Longitude,
		incident.Latitude,
		incident.Category,
		string(incident.Severity),
		incident.Summary,
		incident.Address,
	).Scan(&incident.ID, &incident.Upvotes, &incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetIncidentByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetIncidentByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	incident := &models.Incident{}
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Category,
		&incident.Severity,
		&incident.Summary,
		&incident.Address,
		&incident.Upvotes,
		&incident.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает список инцидентов с пагинацией, новые первыми
func (r *IncidentRepository) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + incidentColumns + `
		FROM incidents
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	return scanIncidents(rows)
}

// ListRecentIncidents возвращает последние инциденты для корреляции с маршрутом
func (r *IncidentRepository) ListRecentIncidents(ctx context.Context, limit int) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		ORDER BY created_at DESC
		LIMIT $1;`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent incidents: %w", err)
	}
	defer rows.Close()

	return scanIncidents(rows)
}

// ListIncidentsNear находит инциденты в радиусе radiusMeters от точки
func (r *IncidentRepository) ListIncidentsNear(ctx context.Context, lat, lng float64, radiusMeters int) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE ST_DWithin(
			location,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		)
		ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, lng, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find incidents near location: %w", err)
	}
	defer rows.Close()

	return scanIncidents(rows)
}

// UpvoteIncident атомарно увеличивает счетчик голосов и возвращает новое значение
func (r *IncidentRepository) UpvoteIncident(ctx context.Context, id uuid.UUID) (int, error) {
	query := `UPDATE incidents SET upvotes = upvotes + 1 WHERE id = $1 RETURNING upvotes;`

	var upvotes int
	err := r.db.QueryRow(ctx, query, id).Scan(&upvotes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("incident with id %s not found for upvote", id)
		}
		return 0, fmt.Errorf("failed to upvote incident: %w", err)
	}
	return upvotes, nil
}

// CreateComment создает комментарий к существующему инциденту.
// Внешний ключ гарантирует, что инцидент существует на момент создания.
func (r *IncidentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (incident_id, text, author)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		comment.IncidentID,
		comment.Text,
		comment.Author,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// ListComments возвращает комментарии инцидента, новые первыми
func (r *IncidentRepository) ListComments(ctx context.Context, incidentID uuid.UUID) ([]*models.Comment, error) {
	query := `
		SELECT id, incident_id, text, author, created_at
		FROM comments
		WHERE incident_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		comment := &models.Comment{}
		err := rows.Scan(
			&comment.ID,
			&comment.IncidentID,
			&comment.Text,
			&comment.Author,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error comments iteration: %w", err)
	}
	return comments, nil
}

// CreatePoliceAlert сохраняет заявку о пропавшем ребенке (write-once)
func (r *IncidentRepository) CreatePoliceAlert(ctx context.Context, alert *models.PoliceAlert) error {
	query := `
		INSERT INTO police_alerts (
			child_name, school_name, overdue_by, time_left_school, school_contact,
			home_location, school_location
		)
		VALUES ($1, $2, $3, $4, $5,
			ST_SetSRID(ST_MakePoint($6, $7), 4326),
			ST_SetSRID(ST_MakePoint($8, $9), 4326))
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.ChildName,
		alert.SchoolName,
		alert.OverdueBy,
		alert.TimeLeftSchool,
		alert.SchoolContact,
		alert.HomeLongitude,
		alert.HomeLatitude,
		alert.SchoolLongitude,
		alert.SchoolLatitude,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create police alert: %w", err)
	}
	return nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

func scanIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		err := rows.Scan(
			&incident.ID,
			&incident.Latitude,
			&incident.Longitude,
			&incident.Category,
			&incident.Severity,
			&incident.Summary,
			&incident.Address,
			&incident.Upvotes,
			&incident.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error incidents iteration: %w", err)
	}
	return incidents, nil
}
