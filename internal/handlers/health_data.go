package handlers

import (
	"net/http"
	"strconv"

	"github.com/aura-health/aura/backend/internal/apierror"
	"github.com/aura-health/aura/backend/internal/logger"
	"github.com/aura-health/aura/backend/internal/models"
	"github.com/aura-health/aura/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// HealthDataHandler handles health measurement HTTP requests
type HealthDataHandler struct {
	healthService service.HealthDataService
}

// NewHealthDataHandler creates a new health data handler
func NewHealthDataHandler(healthService service.HealthDataService) *HealthDataHandler {
	return &HealthDataHandler{
		healthService: healthService,
	}
}

// RecordHealthData handles POST /api/v1/health/data
func (h *HealthDataHandler) RecordHealthData(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	var req models.RecordHealthDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid health data payload"))
		return
	}

	point, err := h.healthService.Record(c.Request.Context(), userID.(string), &req)
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to record health data", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, point)
}

// RecordHealthDataBatch handles POST /api/v1/health/data/batch
func (h *HealthDataHandler) RecordHealthDataBatch(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	var req models.BatchRecordHealthDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid health data batch payload"))
		return
	}

	count, err := h.healthService.RecordBatch(c.Request.Context(), userID.(string), &req)
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to record health data batch", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"recorded": count,
	})
}

// GetHealthData handles GET /api/v1/health/data?days=N
func (h *HealthDataHandler) GetHealthData(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	days := 0
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 || parsed > 365 {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
				{Field: "days", Message: "must be an integer between 1 and 365", Code: "out_of_range"},
			}))
			return
		}
		days = parsed
	}

	points, err := h.healthService.GetRecent(c.Request.Context(), userID.(string), days)
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to get health data", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, models.HealthDataResponse{
		Data:  points,
		Count: len(points),
	})
}

// GetLatestHealthData handles GET /api/v1/health/latest
func (h *HealthDataHandler) GetLatestHealthData(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	point, err := h.healthService.GetLatest(c.Request.Context(), userID.(string))
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to get latest health data", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	if point == nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "health data"))
		return
	}

	c.JSON(http.StatusOK, point)
}
