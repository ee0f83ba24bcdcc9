package middleware

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	maxAuditRequestBody  = 50000 // bytes
	maxAuditResponseBody = 10000 // characters
)

// auditSkipPaths are never written to the trail. The audit endpoint itself
// is excluded so reading logs does not generate more logs.
var auditSkipPaths = []string{
	"/swagger",
	"/health",
	"/metrics",
	"/favicon.ico",
	"/api/auditlogs",
}

// AuditEntry is the middleware-level capture of one request. The registry
// adapts it to the persisted audit-log entity, keeping this package free of
// storage concerns.
type AuditEntry struct {
	UserID           string
	UserName         string
	HTTPMethod       string
	RequestPath      string
	QueryString      string
	Controller       string
	Action           string
	RequestBody      *string
	ResponseBody     *string
	StatusCode       int
	Timestamp        time.Time
	DurationMs       int64
	IPAddress        string
	UserAgent        string
	ExceptionDetails *string
	AdditionalInfo   string
}

// AuditRecorderFunc persists one entry. Failures are swallowed by the
// middleware so auditing can never break the primary request.
type AuditRecorderFunc func(ctx context.Context, entry AuditEntry) error

// bodyCapture tees the response into a bounded buffer. Once the limit is
// crossed the buffer is discarded and the body streams through uncaptured.
type bodyCapture struct {
	gin.ResponseWriter
	buf      bytes.Buffer
	limit    int
	overflow bool
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	if !w.overflow {
		if w.buf.Len()+len(b) <= w.limit {
			w.buf.Write(b)
		} else {
			w.overflow = true
			w.buf.Reset()
		}
	}
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// AuditTrail records every request except the skip list: identity, route,
// bounded request/response bodies, status, duration, client address. A
// downstream panic is annotated on the entry and re-raised.
func AuditTrail(record AuditRecorderFunc, logger *zap.Logger) gin.HandlerFunc {
	l := logger.Named("audit")
	return func(c *gin.Context) {
		if shouldSkipAudit(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()

		capture := &bodyCapture{ResponseWriter: c.Writer, limit: maxAuditResponseBody}
		c.Writer = capture

		entry := AuditEntry{
			HTTPMethod:  c.Request.Method,
			RequestPath: c.Request.URL.Path,
			QueryString: c.Request.URL.RawQuery,
			RequestBody: readRequestBody(c),
			Timestamp:   time.Now().UTC(),
			IPAddress:   clientIP(c),
			UserAgent:   c.Request.UserAgent(),
		}

		defer func() {
			if r := recover(); r != nil {
				detail := fmt.Sprintf("panic: %v", r)
				entry.ExceptionDetails = &detail
				finishAudit(c, &entry, capture, start, record, l)
				panic(r)
			}
			finishAudit(c, &entry, capture, start, record, l)
		}()

		c.Next()
	}
}

func finishAudit(
	c *gin.Context,
	entry *AuditEntry,
	capture *bodyCapture,
	start time.Time,
	record AuditRecorderFunc,
	logger *zap.Logger,
) {
	entry.StatusCode = c.Writer.Status()
	entry.DurationMs = time.Since(start).Milliseconds()
	entry.Controller = controllerName(c)
	entry.Action = actionName(c)

	// Identity is resolved after the handler chain so that the auth
	// middleware has had its chance to set it.
	entry.UserID, entry.UserName, entry.AdditionalInfo = requestIdentity(c)

	if entry.ExceptionDetails == nil && len(c.Errors) > 0 {
		detail := c.Errors.String()
		if len(detail) > 2000 {
			detail = detail[:2000]
		}
		entry.ExceptionDetails = &detail
	}

	status := entry.StatusCode
	loggable := (status >= 200 && status < 300) || status >= 400
	if loggable && !capture.overflow && capture.buf.Len() > 0 {
		body := capture.buf.String()
		entry.ResponseBody = &body
	}

	if err := record(c.Request.Context(), *entry); err != nil {
		// Audit persistence must never fail the request.
		logger.Error("audit log write failed",
			zap.String("path", entry.RequestPath),
			zap.Error(err),
		)
	}
}

func shouldSkipAudit(path string) bool {
	lower := strings.ToLower(path)
	for _, skip := range auditSkipPaths {
		if strings.HasPrefix(lower, skip) {
			return true
		}
	}
	return false
}

func readRequestBody(c *gin.Context) *string {
	req := c.Request
	if req.Body == nil || req.ContentLength <= 0 || req.ContentLength > maxAuditRequestBody {
		return nil
	}

	contentType := strings.ToLower(req.Header.Get("Content-Type"))
	isJSONOrForm := strings.Contains(contentType, "application/json") ||
		strings.Contains(contentType, "application/x-www-form-urlencoded")
	if !isJSONOrForm {
		return nil
	}

	raw, err := io.ReadAll(io.LimitReader(req.Body, maxAuditRequestBody))
	if err != nil {
		return nil
	}
	// Rewind so the handler can bind the body as usual.
	req.Body = io.NopCloser(bytes.NewReader(raw))

	body := string(raw)
	return &body
}

func requestIdentity(c *gin.Context) (userID, userName, additionalInfo string) {
	username := c.GetString("username")
	if username == "" {
		return "Anonymous", "Anonymous", "IsAuthenticated=false"
	}
	return username, username, "IsAuthenticated=true, AuthType=Bearer"
}

func controllerName(c *gin.Context) string {
	// First path segment after /api, e.g. /api/employee/search -> employee.
	trimmed := strings.TrimPrefix(c.Request.URL.Path, "/api/")
	if trimmed == c.Request.URL.Path {
		return "Unknown"
	}
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	if trimmed == "" {
		return "Unknown"
	}
	return trimmed
}

func actionName(c *gin.Context) string {
	// HandlerName is the fully qualified function, e.g.
	// .../internal/employee.(*Handler).GetAll-fm.
	name := c.HandlerName()
	if name == "" {
		return "Unknown"
	}
	name = strings.TrimSuffix(name, "-fm")
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		name = name[idx+1:]
	}
	if name == "" {
		return "Unknown"
	}
	return name
}

func clientIP(c *gin.Context) string {
	if fwd := c.Request.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}
	if real := c.Request.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
