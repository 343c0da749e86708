package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffee-builder/internal/domain/dto"
	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/guttosm/coffee-builder/internal/middleware"
	"github.com/guttosm/coffee-builder/internal/service"
)

func toSessionResponse(view *service.SessionView) dto.SessionResponse {
	return dto.SessionResponse{
		ID:        view.ID,
		CreatedAt: view.CreatedAt,
		Quote:     view.Quote,
	}
}

// sessionID reads the :id path parameter and records it for logging.
func sessionID(c *gin.Context) string {
	id := c.Param("id")
	middleware.SetSessionID(c, id)
	return id
}

// CreateSession handles POST /api/sessions requests.
//
// @Summary      Create session
// @Description  Starts a configurator session on the active catalog with every category at its baseline. Sessions expire after CACHE_TTL of inactivity.
// @Tags         Sessions
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Success      201 {object} dto.SuccessResponse{data=dto.SessionResponse} "Session created"
// @Header       201 {string} Location "URL of the new session"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	view, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		middleware.AuditLogError(h.auditLogger, c, model.ActionSessionCreate, "Session creation failed", err, nil)
		builder.ServiceError(err)
		return
	}
	middleware.SetSessionID(c, view.ID)

	middleware.AuditLog(h.auditLogger, c, model.ActionSessionCreate, "Session created", map[string]interface{}{
		"catalog_version": view.CatalogVersion,
	})
	c.Header("Location", "/api/sessions/"+view.ID)
	builder.SuccessCreated(toSessionResponse(view))
}

// GetSession handles GET /api/sessions/:id requests.
//
// @Summary      Get session
// @Description  Returns the current selections, preview, itemized summary and total of a session.
// @Tags         Sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionResponse} "Session"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Security     ApiKeyAuth
// @Router       /api/sessions/{id} [get]
func (h *Handler) GetSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	view, err := h.sessions.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(toSessionResponse(view))
}

// SelectSingle handles PUT /api/sessions/:id/single requests.
//
// @Summary      Select option
// @Description  Replaces the selection of a single-choice category (flavor, grind, size, milk). Unknown option ids are accepted and priced at zero.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body dto.SelectRequest true "Category and option id"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionResponse} "Updated session"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid category"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Security     ApiKeyAuth
// @Router       /api/sessions/{id}/single [put]
func (h *Handler) SelectSingle(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := sessionID(c)

	req, err := BuildRequestAndValidate[dto.SelectRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	view, err := h.sessions.SelectSingle(c.Request.Context(), id, model.Category(req.Category), req.ID)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	middleware.AuditLog(h.auditLogger, c, model.ActionSelect, "Option selected", map[string]interface{}{
		"category": req.Category,
		"id":       req.ID,
		"total":    view.Total,
	})
	builder.SuccessOK(toSessionResponse(view))
}

// ToggleMulti handles POST /api/sessions/:id/toggle requests.
//
// @Summary      Toggle add-on
// @Description  Adds the add-on to a multi-choice category (syrups, toppings) if absent, or removes it if present.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body dto.ToggleRequest true "Category and add-on id"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionResponse} "Updated session"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid category"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Security     ApiKeyAuth
// @Router       /api/sessions/{id}/toggle [post]
func (h *Handler) ToggleMulti(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := sessionID(c)

	req, err := BuildRequestAndValidate[dto.ToggleRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	view, err := h.sessions.ToggleMulti(c.Request.Context(), id, model.Category(req.Category), req.ID)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	middleware.AuditLog(h.auditLogger, c, model.ActionToggle, "Add-on toggled", map[string]interface{}{
		"category": req.Category,
		"id":       req.ID,
		"total":    view.Total,
	})
	builder.SuccessOK(toSessionResponse(view))
}

// ResetSession handles POST /api/sessions/:id/reset requests.
//
// @Summary      Reset session
// @Description  Returns every category of the session to its baseline.
// @Tags         Sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionResponse} "Reset session"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Security     ApiKeyAuth
// @Router       /api/sessions/{id}/reset [post]
func (h *Handler) ResetSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	view, err := h.sessions.Reset(c.Request.Context(), sessionID(c))
	if err != nil {
		builder.ServiceError(err)
		return
	}

	middleware.AuditLog(h.auditLogger, c, model.ActionReset, "Session reset", nil)
	builder.SuccessOK(toSessionResponse(view))
}

// DeleteSession handles DELETE /api/sessions/:id requests.
//
// @Summary      Delete session
// @Description  Discards a session.
// @Tags         Sessions
// @Param        id path string true "Session ID"
// @Success      204 "Session deleted"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Security     ApiKeyAuth
// @Router       /api/sessions/{id} [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.sessions.Delete(c.Request.Context(), sessionID(c)); err != nil {
		builder.ServiceError(err)
		return
	}

	middleware.AuditLog(h.auditLogger, c, model.ActionSessionDelete, "Session deleted", nil)
	builder.NoContent()
}

// GetSessionTotal handles GET /api/sessions/:id/total requests.
//
// @Summary      Get session total
// @Description  Returns base price plus every selected option and add-on, in minor currency units.
// @Tags         Sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.TotalResponse} "Session total"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Security     ApiKeyAuth
// @Router       /api/sessions/{id}/total [get]
func (h *Handler) GetSessionTotal(c *gin.Context) {
	builder := NewResponseBuilder(c)

	view, err := h.sessions.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.TotalResponse{ID: view.ID, Total: view.Total})
}

// GetSessionSnapshot handles GET /api/sessions/:id/snapshot requests.
//
// @Summary      Get session preview
// @Description  Returns the display names of the current selections. Unknown ids show as "unresolved".
// @Tags         Sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SnapshotResponse} "Session preview"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Security     ApiKeyAuth
// @Router       /api/sessions/{id}/snapshot [get]
func (h *Handler) GetSessionSnapshot(c *gin.Context) {
	builder := NewResponseBuilder(c)

	view, err := h.sessions.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		builder.ServiceError(err)
		return
	}
	builder.SuccessOK(dto.SnapshotResponse{ID: view.ID, Snapshot: view.Snapshot})
}
