package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActionType classifies audit log entries.
type ActionType string

const (
	ActionQuote          ActionType = "quote"
	ActionSessionCreate  ActionType = "session_create"
	ActionSessionDelete  ActionType = "session_delete"
	ActionSelect         ActionType = "select"
	ActionToggle         ActionType = "toggle"
	ActionReset          ActionType = "reset"
	ActionPublishCatalog ActionType = "publish_catalog"
)

// LogEntry is a request or audit log line. Context that does not fit the
// fixed fields goes into Fields.
type LogEntry struct {
	ID         primitive.ObjectID     `json:"id"`
	Timestamp  time.Time              `json:"timestamp"`
	Level      string                 `json:"level"`
	Message    string                 `json:"message"`
	RequestID  string                 `json:"request_id,omitempty"`
	Method     string                 `json:"method,omitempty"`
	Path       string                 `json:"path,omitempty"`
	StatusCode int                    `json:"status_code,omitempty"`
	Duration   int64                  `json:"duration_ms,omitempty"`
	IP         string                 `json:"ip,omitempty"`
	UserAgent  string                 `json:"user_agent,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Subject    string                 `json:"subject,omitempty"`
	ActionType ActionType             `json:"action_type,omitempty"`
	SessionID  string                 `json:"session_id,omitempty"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

// WithField sets one entry in Fields, allocating the map on first use.
func (e *LogEntry) WithField(key string, value interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithFields merges fields into Fields.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{}, len(fields))
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogQueryOptions filters log queries.
type LogQueryOptions struct {
	RequestID  string
	Level      string
	ActionType ActionType
	SessionID  string
	Method     string
	Path       string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
