package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffee-builder/internal/circuitbreaker"
	"github.com/guttosm/coffee-builder/internal/domain/dto"
	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/guttosm/coffee-builder/internal/i18n"
	"github.com/guttosm/coffee-builder/internal/middleware"
	"github.com/guttosm/coffee-builder/internal/service"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// Validator interface for types that can validate themselves.
type Validator interface {
	Validate() error
}

// BuildRequest binds the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildRequestAndValidate binds the JSON body and validates it if T implements Validator.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if validator, ok := any(req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// ResponseBuilder writes the JSON envelopes of the API.
// Uses sync.Pool for DTO reuse to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()

	// gin serializes synchronously, so the pooled value can be reused afterwards.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// NoContent sends an empty 204 response.
func (b *ResponseBuilder) NoContent() {
	b.c.Status(http.StatusNoContent)
	b.c.Writer.WriteHeaderNow()
}

// Error sends an error response with the given status code and message key.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, err, nil)
}

// ErrorWithDetails sends an error response carrying per-field details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, err error, details map[string]string) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()

	// The error handler middleware logs what is attached here.
	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// BindError answers a request whose body could not be decoded or validated.
func (b *ResponseBuilder) BindError(err error) {
	var ve *dto.ValidationError
	if errors.As(err, &ve) {
		key := i18n.ErrKeyInvalidRequest
		if ve.Field == "category" {
			key = i18n.ErrKeyInvalidCategory
		}
		b.ErrorWithDetails(http.StatusBadRequest, key, err, map[string]string{ve.Field: ve.Message})
		return
	}

	var ce *model.CatalogValidationError
	if errors.As(err, &ce) {
		b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidCatalog, err, problemDetails(ce.Problems))
		return
	}

	b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}

// ServiceError maps a service-layer error to its HTTP status and message.
func (b *ResponseBuilder) ServiceError(err error) {
	var ce *model.CatalogValidationError
	var ve *dto.ValidationError

	switch {
	case errors.As(err, &ce), errors.As(err, &ve):
		b.BindError(err)
	case errors.Is(err, service.ErrSessionNotFound):
		b.Error(http.StatusNotFound, i18n.ErrKeySessionNotFound, nil)
	case errors.Is(err, service.ErrInvalidCategory):
		b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidCategory, nil)
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		b.Error(http.StatusServiceUnavailable, i18n.ErrKeyCatalogStoreUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// problemDetails turns "field: message" problems into a details map.
func problemDetails(problems []string) map[string]string {
	details := make(map[string]string, len(problems))
	for _, p := range problems {
		field, message, ok := strings.Cut(p, ": ")
		if !ok {
			field, message = "catalog", p
		}
		if existing, dup := details[field]; dup {
			message = existing + "; " + message
		}
		details[field] = message
	}
	return details
}
