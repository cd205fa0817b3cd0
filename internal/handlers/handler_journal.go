package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/brightbooks/bb_backend/internal/apperrors"
	portssvc "github.com/brightbooks/bb_backend/internal/core/ports/services"
	"github.com/brightbooks/bb_backend/internal/dto"
	"github.com/brightbooks/bb_backend/internal/middleware"
	"github.com/brightbooks/bb_backend/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// respondJournalError translates engine errors into HTTP responses:
// validation failures are 400, invisible journals 404, state conflicts 409,
// anything else a 500 with the detail kept out of the response body.
func respondJournalError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, accounting.ErrUnbalanced),
		errors.Is(err, accounting.ErrInvalidLine),
		errors.Is(err, apperrors.ErrAccountNotFound),
		errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Journal request rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
	case errors.Is(err, apperrors.ErrAlreadyPosted),
		errors.Is(err, apperrors.ErrNotPosted),
		errors.Is(err, apperrors.ErrImmutableJournal),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Journal state conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Journal operation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// requestScope pulls the authenticated user and owner from the context,
// aborting with 401 when either is missing.
func requestScope(c *gin.Context) (ownerID, userID string, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	ownerID, ok = middleware.GetOwnerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return ownerID, userID, true
}

func journalIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("journalID"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid journal ID"})
		return 0, false
	}
	return id, true
}

// createJournal godoc
// @Summary Create a journal entry
// @Description Creates a new journal with its lines, optionally posting it immediately
// @Tags journals
// @Accept json
// @Produce json
// @Param journal body dto.CreateJournalRequest true "Journal and lines"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Validation failure (unbalanced, bad line, unknown account)"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	journal, err := h.journalService.CreateJournal(c.Request.Context(), ownerID, req, userID)
	if err != nil {
		respondJournalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// getJournal godoc
// @Summary Get a journal entry
// @Description Retrieves a journal with its lines, attachments and derived totals
// @Tags journals
// @Produce json
// @Param journalID path int true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	ownerID, _, ok := requestScope(c)
	if !ok {
		return
	}
	journalID, ok := journalIDParam(c)
	if !ok {
		return
	}

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), ownerID, journalID)
	if err != nil {
		respondJournalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journal entries
// @Description Lists journals for the caller's owner, filtered by type, posted flag and date range
// @Tags journals
// @Produce json
// @Param journalType query string false "Journal type code"
// @Param posted query bool false "Posted flag filter"
// @Param dateFrom query string false "Inclusive start date (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive end date (YYYY-MM-DD)"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.ListJournalsResponse
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, _, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listJournals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.journalService.ListJournals(c.Request.Context(), ownerID, params)
	if err != nil {
		respondJournalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateJournal godoc
// @Summary Update a draft journal entry
// @Description Replaces the header fields and the full line set of a draft journal
// @Tags journals
// @Accept json
// @Produce json
// @Param journalID path int true "Journal ID"
// @Param journal body dto.UpdateJournalRequest true "Replacement journal content"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Journal is posted and immutable"
// @Security BearerAuth
// @Router /journals/{journalID} [put]
func (h *journalHandler) updateJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	journalID, ok := journalIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	journal, err := h.journalService.UpdateJournal(c.Request.Context(), ownerID, journalID, req, userID)
	if err != nil {
		respondJournalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// postJournal godoc
// @Summary Post a journal entry
// @Description Finalizes a draft journal so it affects reported balances
// @Tags journals
// @Produce json
// @Param journalID path int true "Journal ID"
// @Success 204 "Posted"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Journal already posted"
// @Security BearerAuth
// @Router /journals/{journalID}/post [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	ownerID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	journalID, ok := journalIDParam(c)
	if !ok {
		return
	}

	if err := h.journalService.PostJournal(c.Request.Context(), ownerID, journalID, userID); err != nil {
		respondJournalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// unpostJournal godoc
// @Summary Unpost a journal entry
// @Description Returns a posted journal to the editable draft state
// @Tags journals
// @Produce json
// @Param journalID path int true "Journal ID"
// @Success 204 "Unposted"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Journal is not posted"
// @Security BearerAuth
// @Router /journals/{journalID}/unpost [post]
func (h *journalHandler) unpostJournal(c *gin.Context) {
	ownerID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	journalID, ok := journalIDParam(c)
	if !ok {
		return
	}

	if err := h.journalService.UnpostJournal(c.Request.Context(), ownerID, journalID, userID); err != nil {
		respondJournalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteJournal godoc
// @Summary Delete a journal entry
// @Description Soft-deletes a draft journal; posted journals must be unposted first
// @Tags journals
// @Produce json
// @Param journalID path int true "Journal ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Journal not found or already deleted"
// @Failure 409 {object} map[string]string "Journal is posted and immutable"
// @Security BearerAuth
// @Router /journals/{journalID} [delete]
func (h *journalHandler) deleteJournal(c *gin.Context) {
	ownerID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	journalID, ok := journalIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.journalService.DeleteJournal(c.Request.Context(), ownerID, journalID, userID)
	if err != nil {
		respondJournalError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// registerJournalRoutes registers journal specific routes.
func registerJournalRoutes(group *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	handler := newJournalHandler(journalService)

	journals := group.Group("/journals")
	{
		journals.POST("", handler.createJournal)
		journals.GET("", handler.listJournals)
		journals.GET("/:journalID", handler.getJournal)
		journals.PUT("/:journalID", handler.updateJournal)
		journals.POST("/:journalID/post", handler.postJournal)
		journals.POST("/:journalID/unpost", handler.unpostJournal)
		journals.DELETE("/:journalID", handler.deleteJournal)
	}
}
