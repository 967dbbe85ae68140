package handlers

import (
	"net/http"

	"github.com/aura-health/aura/backend/internal/apierror"
	"github.com/aura-health/aura/backend/internal/logger"
	"github.com/aura-health/aura/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// WellnessHandler handles pattern analysis and wellness profile requests
type WellnessHandler struct {
	wellnessService service.WellnessService
}

// NewWellnessHandler creates a new wellness handler
func NewWellnessHandler(wellnessService service.WellnessService) *WellnessHandler {
	return &WellnessHandler{
		wellnessService: wellnessService,
	}
}

// Analyze runs pattern detection over the user's recent history
// POST /api/v1/wellness/analyze
func (h *WellnessHandler) Analyze(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	log := logger.Ctx(c.Request.Context())

	result, err := h.wellnessService.Analyze(c.Request.Context(), userID.(string))
	if err != nil {
		log.Error("pattern analysis failed", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProfile returns the user's wellness profile
// GET /api/v1/wellness/profile
func (h *WellnessHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	profile, err := h.wellnessService.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to get wellness profile", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, profile)
}
