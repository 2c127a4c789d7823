package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shopstack/ledger-core/internal/core/ports/services"
	"github.com/shopstack/ledger-core/internal/dto"
	"github.com/shopstack/ledger-core/internal/middleware"
)

// journalHandler handles HTTP requests for journal entries.
type journalHandler struct {
	journalService portssvc.JournalService
}

func newJournalHandler(journalService portssvc.JournalService) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	entry, err := h.journalService.CreateEntry(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, err, "Failed to create journal entry")
		return
	}

	logger.Info("Journal entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

func (h *journalHandler) getEntry(c *gin.Context) {
	entryID := c.Param("entryID")

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *journalHandler) postEntry(c *gin.Context) {
	entryID := c.Param("entryID")
	actorID := middleware.GetActorFromContext(c)

	entry, err := h.journalService.PostEntry(c.Request.Context(), entryID, actorID)
	if err != nil {
		respondServiceError(c, err, "Failed to post journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.ReverseEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for reverseEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A reversal reason is required"})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	reversing, err := h.journalService.ReverseEntry(c.Request.Context(), entryID, req.Reason, actorID)
	if err != nil {
		respondServiceError(c, err, "Failed to reverse journal entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(reversing))
}

func (h *journalHandler) deleteDraft(c *gin.Context) {
	entryID := c.Param("entryID")
	actorID := middleware.GetActorFromContext(c)

	if err := h.journalService.DeleteDraft(c.Request.Context(), entryID, actorID); err != nil {
		respondServiceError(c, err, "Failed to delete draft entry")
		return
	}

	c.Status(http.StatusNoContent)
}

// bulkPost posts a batch of entries. Partial failure is expected: the
// response reports success or failure per entry with HTTP 200 either way.
func (h *journalHandler) bulkPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bulkPost", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID := middleware.GetActorFromContext(c)
	results, err := h.journalService.BulkPost(c.Request.Context(), req.EntryIDs, actorID)
	if err != nil {
		respondServiceError(c, err, "Failed to bulk post journal entries")
		return
	}

	c.JSON(http.StatusOK, dto.BulkPostResponse{Results: results})
}

// registerJournalRoutes registers journal entry routes.
func registerJournalRoutes(group *gin.RouterGroup, journalService portssvc.JournalService) {
	handler := newJournalHandler(journalService)

	entries := group.Group("/entries")
	{
		entries.POST("", handler.createEntry)
		entries.GET("", handler.listEntries)
		entries.POST("/bulk-post", handler.bulkPost)
		entries.GET("/:entryID", handler.getEntry)
		entries.DELETE("/:entryID", handler.deleteDraft)
		entries.POST("/:entryID/post", handler.postEntry)
		entries.POST("/:entryID/reverse", handler.reverseEntry)
	}
}
