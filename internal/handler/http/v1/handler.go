package v1

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/config"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/geo"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/service"
)

// Максимальный размер приложенного медиафайла
const maxMediaBytes = 5 << 20

type Handler struct {
	incidentService service.IncidentService
	routeService    service.RouteService
	liveService     service.LiveService
	placesService   service.PlacesService
	speechService   service.SpeechService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	routeService service.RouteService,
	liveService service.LiveService,
	placesService service.PlacesService,
	speechService service.SpeechService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		routeService:    routeService,
		liveService:     liveService,
		placesService:   placesService,
		speechService:   speechService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, APIResponse{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{Success: false, Error: message})
}

// remediationMessage переводит ошибки доступа внешнего AI-провайдера
// в понятное пользователю сообщение с шагами по исправлению
func remediationMessage(err error) (string, bool) {
	msg := err.Error()
	if strings.Contains(msg, "PERMISSION_DENIED") || strings.Contains(msg, "insufficient_quota") || strings.Contains(msg, "billing") {
		return "The incident analysis service is not available: the configured AI API key has no access or has exhausted its quota. Check the billing status of the key and try again.", true
	}
	return "", false
}

// @Summary Report a new incident
// @Description Report a new incident with an optional photo. The report is classified automatically. Requires API key.
// @Tags Incidents
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param description formData string true "What happened"
// @Param latitude formData number true "Latitude of the incident"
// @Param longitude formData number true "Longitude of the incident"
// @Param address formData string false "Human-readable address"
// @Param media formData file false "Photo of the incident"
// @Success 201 {object} APIResponse{data=IncidentResponse}
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 500 {object} APIResponse "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	log := h.logger.WithField("method", "createIncident")

	description := c.PostForm("description")
	if strings.TrimSpace(description) == "" {
		respondError(c, http.StatusBadRequest, "description is required")
		return
	}

	latitude, err := strconv.ParseFloat(c.PostForm("latitude"), 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid latitude")
		return
	}
	longitude, err := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid longitude")
		return
	}
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		respondError(c, http.StatusBadRequest, "coordinates out of range")
		return
	}

	input := models.ReportInput{
		Description: description,
		Latitude:    latitude,
		Longitude:   longitude,
		Address:     c.PostForm("address"),
	}

	// Приложенный снимок уходит в классификатор как data URL
	if file, err := c.FormFile("media"); err == nil {
		if file.Size > maxMediaBytes {
			respondError(c, http.StatusBadRequest, "media file is too large")
			return
		}
		opened, err := file.Open()
		if err != nil {
			log.WithError(err).Error("Failed to open uploaded media")
			respondError(c, http.StatusInternalServerError, "internal server error")
			return
		}
		defer opened.Close()

		data, err := io.ReadAll(opened)
		if err != nil {
			log.WithError(err).Error("Failed to read uploaded media")
			respondError(c, http.StatusInternalServerError, "internal server error")
			return
		}
		mimeType := file.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = http.DetectContentType(data)
		}
		input.MediaDataURL = fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	}

	incident, err := h.incidentService.ReportIncident(c.Request.Context(), input)
	if err != nil {
		log.WithError(err).Error("Failed to report incident")
		if msg, ok := remediationMessage(err); ok {
			respondError(c, http.StatusServiceUnavailable, msg)
			return
		}
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respondOK(c, http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of reported incidents, newest first. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} APIResponse{data=[]IncidentResponse}
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 500 {object} APIResponse "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respondOK(c, http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} APIResponse{data=IncidentResponse}
// @Failure 400 {object} APIResponse "Invalid incident ID"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 404 {object} APIResponse "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid incident ID")
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		respondError(c, http.StatusNotFound, "incident not found")
		return
	}
	respondOK(c, http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Upvote an incident
// @Description Increment the upvote counter of an incident by one. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} APIResponse{data=UpvoteResponse}
// @Failure 400 {object} APIResponse "Invalid incident ID"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 500 {object} APIResponse "Internal server error"
// @Router /incidents/{id}/upvote [post]
func (h *Handler) upvoteIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid incident ID")
		return
	}
	log := h.logger.WithField("method", "upvoteIncident").WithField("id", id)

	upvotes, err := h.incidentService.UpvoteIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to upvote incident")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respondOK(c, http.StatusOK, UpvoteResponse{ID: id, Upvotes: upvotes})
}

// @Summary Add a comment to an incident
// @Description Add a comment to an existing incident. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param comment body CreateCommentRequest true "Comment"
// @Success 201 {object} APIResponse{data=CommentResponse}
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 404 {object} APIResponse "Incident not found"
// @Router /incidents/{id}/comments [post]
func (h *Handler) createComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid incident ID")
		return
	}
	log := h.logger.WithField("method", "createComment").WithField("id", id)

	var input CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.incidentService.AddComment(c.Request.Context(), id, input.Text)
	if err != nil {
		log.WithError(err).Warn("Failed to add comment")
		respondError(c, http.StatusNotFound, "incident not found")
		return
	}
	respondOK(c, http.StatusCreated, ModelToCommentResponse(comment))
}

// @Summary List comments of an incident
// @Description List comments of an incident, newest first. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} APIResponse{data=[]CommentResponse}
// @Failure 400 {object} APIResponse "Invalid incident ID"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 500 {object} APIResponse "Internal server error"
// @Router /incidents/{id}/comments [get]
func (h *Handler) listComments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid incident ID")
		return
	}
	log := h.logger.WithField("method", "listComments").WithField("id", id)

	comments, err := h.incidentService.ListComments(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list comments")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respondOK(c, http.StatusOK, ModelsToCommentResponses(comments))
}

// @Summary Create a police alert
// @Description Report a child overdue from school and trigger an agent call to the school. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreatePoliceAlertRequest true "Police alert"
// @Success 201 {object} APIResponse
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 500 {object} APIResponse "Internal server error"
// @Router /police-alerts [post]
func (h *Handler) createPoliceAlert(c *gin.Context) {
	log := h.logger.WithField("method", "createPoliceAlert")

	var input CreatePoliceAlertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	alert := DTOToPoliceAlertModel(input)
	if err := h.incidentService.CreatePoliceAlert(c.Request.Context(), alert); err != nil {
		log.WithError(err).Error("Failed to create police alert")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"id": alert.ID})
}

// @Summary Analyze routes between two points
// @Description Build route alternatives and correlate them with known incidents. Requires API key.
// @Tags Routes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param route body AnalyzeRouteRequest true "Route endpoints"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 502 {object} APIResponse "Routing provider error"
// @Router /routes/analyze [post]
func (h *Handler) analyzeRoute(c *gin.Context) {
	log := h.logger.WithField("method", "analyzeRoute")

	var input AnalyzeRouteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	origin := geo.Point{Latitude: input.OriginLatitude, Longitude: input.OriginLongitude}
	destination := geo.Point{Latitude: input.DestinationLatitude, Longitude: input.DestinationLongitude}

	analysis, err := h.routeService.AnalyzeRoute(c.Request.Context(), origin, destination)
	if err != nil {
		log.WithError(err).Error("Failed to analyze route")
		respondError(c, http.StatusBadGateway, "could not analyze the route")
		return
	}
	respondOK(c, http.StatusOK, analysis)
}

// @Summary Autocomplete a place
// @Description Suggest addresses for a partial input. Requires API key.
// @Tags Places
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input query string true "Partial address"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse "Missing input"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 502 {object} APIResponse "Places provider error"
// @Router /places/autocomplete [get]
func (h *Handler) placesAutocomplete(c *gin.Context) {
	log := h.logger.WithField("method", "placesAutocomplete")

	input := c.Query("input")
	if strings.TrimSpace(input) == "" {
		respondError(c, http.StatusBadRequest, "input query parameter is required")
		return
	}

	predictions, err := h.placesService.Autocomplete(c.Request.Context(), input)
	if err != nil {
		log.WithError(err).Error("Failed to autocomplete places")
		respondError(c, http.StatusBadGateway, "could not fetch place suggestions")
		return
	}
	respondOK(c, http.StatusOK, predictions)
}

// @Summary Get place details
// @Description Resolve a place_id to coordinates and a formatted address. Requires API key.
// @Tags Places
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param place_id path string true "Place ID"
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 502 {object} APIResponse "Places provider error"
// @Router /places/{place_id} [get]
func (h *Handler) placeDetails(c *gin.Context) {
	log := h.logger.WithField("method", "placeDetails")

	details, err := h.placesService.Details(c.Request.Context(), c.Param("place_id"))
	if err != nil {
		log.WithError(err).Error("Failed to fetch place details")
		respondError(c, http.StatusBadGateway, "could not fetch place details")
		return
	}
	respondOK(c, http.StatusOK, details)
}

// @Summary Live incident search
// @Description Search the web for fresh traffic and electricity incidents near an address. Requires API key.
// @Tags Live
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param search body LiveSearchRequest true "Address to search around"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 502 {object} APIResponse "Search provider error"
// @Router /live/search [post]
func (h *Handler) liveSearch(c *gin.Context) {
	log := h.logger.WithField("method", "liveSearch")

	var input LiveSearchRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.liveService.Search(c.Request.Context(), input.Address)
	if err != nil {
		log.WithError(err).Error("Failed to run live search")
		respondError(c, http.StatusBadGateway, err.Error())
		return
	}
	respondOK(c, http.StatusOK, report)
}

// @Summary Analyze incident trends
// @Description Build a trend report over recent incidents. Requires API key.
// @Tags Analytics
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 500 {object} APIResponse "Internal server error"
// @Router /analytics/trends [get]
func (h *Handler) analyzeTrends(c *gin.Context) {
	log := h.logger.WithField("method", "analyzeTrends")

	report, err := h.incidentService.AnalyzeTrends(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to analyze trends")
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	respondOK(c, http.StatusOK, report)
}

// @Summary Synthesize speech
// @Description Convert text to speech and return the audio stream. Requires API key.
// @Tags Speech
// @Accept json
// @Produce audio/mpeg
// @Security ApiKeyAuth
// @Param speech body SpeakRequest true "Text to speak"
// @Success 200 {file} binary
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 502 {object} APIResponse "Speech provider error"
// @Router /speech [post]
func (h *Handler) speak(c *gin.Context) {
	log := h.logger.WithField("method", "speak")

	var input SpeakRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	audio, err := h.speechService.Speak(c.Request.Context(), input.Text)
	if err != nil {
		log.WithError(err).Error("Failed to synthesize speech")
		respondError(c, http.StatusBadGateway, "could not synthesize speech")
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

// @Summary Health check
// @Description Check that the service is up
// @Tags System
// @Produce json
// @Success 200 {object} APIResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{"status": "ok"})
}
