package handlers

import (
	"net/http"

	portssvc "github.com/brightbooks/bb_backend/internal/core/ports/services"
	"github.com/brightbooks/bb_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// auditHandler exposes the per-journal audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(auditService portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: auditService}
}

// listJournalAudit godoc
// @Summary List audit entries for a journal
// @Description Returns the recorded lifecycle events (post, unpost, update, delete) for one journal, newest first
// @Tags audit
// @Produce json
// @Param journalID path int true "Journal ID"
// @Success 200 {array} dto.AuditEntryResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Security BearerAuth
// @Router /journals/{journalID}/audit [get]
func (h *auditHandler) listJournalAudit(c *gin.Context) {
	ownerID, _, ok := requestScope(c)
	if !ok {
		return
	}
	journalID, ok := journalIDParam(c)
	if !ok {
		return
	}

	entries, err := h.auditService.ListJournalAudit(c.Request.Context(), ownerID, journalID)
	if err != nil {
		respondJournalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuditEntryResponses(entries))
}

// registerAuditRoutes registers audit trail routes.
func registerAuditRoutes(group *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	handler := newAuditHandler(auditService)
	group.GET("/journals/:journalID/audit", handler.listJournalAudit)
}
