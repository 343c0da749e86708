package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffee-builder/internal/domain/dto"
	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/guttosm/coffee-builder/internal/i18n"
	"github.com/guttosm/coffee-builder/internal/middleware"
	"github.com/guttosm/coffee-builder/internal/repository"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	anonymousPublisher  = "anonymous"
)

// GetCatalog handles GET /api/catalog requests.
//
// @Summary      Get active catalog
// @Description  Returns the active price table. Version 0 is the built-in reference catalog, served when no published version is available. Supports conditional requests via ETag / If-None-Match.
// @Tags         Catalog
// @Produce      json
// @Param        If-None-Match header string false "ETag from a previous response"
// @Success      200 {object} dto.SuccessResponse{data=dto.CatalogResponse} "Active catalog"
// @Success      304 "Catalog unchanged"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	entry, err := h.loadCatalog(c.Request.Context())
	if err != nil {
		builder.ServiceError(err)
		return
	}

	c.Header("ETag", entry.etag)
	if c.GetHeader("If-None-Match") == entry.etag {
		c.Status(http.StatusNotModified)
		c.Writer.WriteHeaderNow()
		return
	}

	builder.SuccessOK(dto.CatalogResponse{Version: entry.version, Catalogs: entry.catalogs})
}

// GetCatalogHistory handles GET /api/catalog/history requests.
//
// @Summary      List catalog versions
// @Description  Returns published catalog versions, newest first. Requires MongoDB.
// @Tags         Catalog
// @Produce      json
// @Param        limit query int false "Maximum number of versions (1-100)" default(20)
// @Success      200 {object} dto.SuccessResponse{data=dto.CatalogHistoryResponse} "Catalog history"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid limit"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Catalog storage unavailable"
// @Security     ApiKeyAuth
// @Router       /api/catalog/history [get]
func (h *Handler) GetCatalogHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil, map[string]string{
				"limit": "must be an integer between 1 and " + strconv.Itoa(maxHistoryLimit),
			})
			return
		}
		limit = n
	}

	configs, err := h.catalogs.List(c.Request.Context(), limit)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	versions := make([]dto.CatalogVersionResponse, 0, len(configs))
	for i := range configs {
		versions = append(versions, toCatalogVersionResponse(&configs[i]))
	}
	builder.SuccessOK(dto.CatalogHistoryResponse{Versions: versions, Count: len(versions)})
}

// PublishCatalog handles PUT /api/catalog requests.
//
// @Summary      Publish catalog
// @Description  Validates a complete price table and stores it as the new active version. Existing sessions keep the version they were created with. Requires MongoDB and, when auth is enabled, a token with the catalog:write scope.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.PublishCatalogRequest true "Price table"
// @Success      201 {object} dto.SuccessResponse{data=dto.CatalogVersionResponse} "Published version"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid catalog"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - token lacks catalog:write"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Catalog storage unavailable"
// @Security     BearerAuth
// @Router       /api/catalog [put]
func (h *Handler) PublishCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.PublishCatalogRequest](c)
	if err != nil {
		middleware.AuditLogError(h.auditLogger, c, model.ActionPublishCatalog, "Catalog rejected", err, nil)
		builder.BindError(err)
		return
	}

	createdBy := middleware.GetSubject(c)
	if createdBy == "" {
		createdBy = anonymousPublisher
	}

	config, err := h.catalogs.Publish(c.Request.Context(), req.Catalogs, createdBy)
	if err != nil {
		middleware.AuditLogError(h.auditLogger, c, model.ActionPublishCatalog, "Catalog publish failed", err, nil)
		builder.ServiceError(err)
		return
	}
	h.InvalidateCatalogCache()

	middleware.AuditLog(h.auditLogger, c, model.ActionPublishCatalog, "Catalog published", map[string]interface{}{
		"version": config.Version,
	})
	c.Header("ETag", catalogETag(config.Version))
	builder.SuccessCreated(toCatalogVersionResponse(config))
}

func toCatalogVersionResponse(config *repository.CatalogConfig) dto.CatalogVersionResponse {
	return dto.CatalogVersionResponse{
		Version:   config.Version,
		Active:    config.Active,
		CreatedAt: config.CreatedAt,
		CreatedBy: config.CreatedBy,
		Catalogs:  config.Catalogs,
	}
}
