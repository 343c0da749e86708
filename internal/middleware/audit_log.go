package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffee-builder/internal/domain/model"
)

// AuditLog records a configurator or catalog action. Entries carry the
// request id, subject and session recorded on the context.
func AuditLog(al *AsyncLogger, c *gin.Context, action model.ActionType, message string, fields map[string]interface{}) {
	if al == nil {
		return
	}
	al.Log(newAuditEntry(c, "info", action, message, fields))
}

// AuditLogError records a failed action.
func AuditLogError(al *AsyncLogger, c *gin.Context, action model.ActionType, message string, err error, fields map[string]interface{}) {
	if al == nil {
		return
	}
	entry := newAuditEntry(c, "error", action, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	al.Log(entry)
}

func newAuditEntry(c *gin.Context, level string, action model.ActionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Subject:    GetSubject(c),
		ActionType: action,
		SessionID:  GetSessionID(c),
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}
