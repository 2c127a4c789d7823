package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shopstack/ledger-core/internal/core/ports/services"
	"github.com/shopstack/ledger-core/internal/dto"
	"github.com/shopstack/ledger-core/internal/middleware"
)

// periodHandler handles HTTP requests for fiscal periods.
type periodHandler struct {
	periodService portssvc.PeriodService
}

func newPeriodHandler(periodService portssvc.PeriodService) *periodHandler {
	return &periodHandler{
		periodService: periodService,
	}
}

func (h *periodHandler) createPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	period, err := h.periodService.CreatePeriod(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, err, "Failed to create period")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

func (h *periodHandler) listPeriods(c *gin.Context) {
	periods, err := h.periodService.ListPeriods(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list periods")
		return
	}

	c.JSON(http.StatusOK, gin.H{"periods": dto.ToPeriodResponses(periods)})
}

func (h *periodHandler) getCurrentPeriod(c *gin.Context) {
	period, err := h.periodService.GetCurrentPeriod(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve current period")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

func (h *periodHandler) closePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")
	actorID := middleware.GetActorFromContext(c)

	period, err := h.periodService.ClosePeriod(c.Request.Context(), periodID, actorID)
	if err != nil {
		respondServiceError(c, err, "Failed to close period")
		return
	}

	logger.Info("Period closed", slog.String("period_id", periodID), slog.String("closed_by", actorID))
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// registerPeriodRoutes registers fiscal period routes.
func registerPeriodRoutes(group *gin.RouterGroup, periodService portssvc.PeriodService) {
	handler := newPeriodHandler(periodService)

	periods := group.Group("/periods")
	{
		periods.POST("", handler.createPeriod)
		periods.GET("", handler.listPeriods)
		periods.GET("/current", handler.getCurrentPeriod)
		periods.POST("/:periodID/close", handler.closePeriod)
	}
}
